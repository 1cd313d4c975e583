package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

func catalog() []product.Product {
	return []product.Product{
		{ID: "p1", Title: "Black Abaya", Price: 300, Quantity: 3},
		{ID: "p2", Title: "Silk Hijab", Price: 150, Quantity: 0},
		{ID: "p3", Title: "Linen Dress", Price: 200, PriceAfterDiscount: 150, Quantity: 10},
	}
}

func newStore() (*Store, *InMemoryRepository) {
	repo := NewInMemoryRepository(catalog(), map[string]float64{"EID10": 10})
	return NewStore(repo, product.NewService(product.NewInMemoryRepository(catalog()))), repo
}

func userCtx() context.Context {
	return apiclient.WithToken(context.Background(), "tok")
}

func TestStore_AddRejectsOutOfStock(t *testing.T) {
	store, repo := newStore()
	_, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p2", Quantity: 1})
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.ErrorIs(t, err, errs.ErrConflict)

	c, _ := repo.Get(userCtx())
	assert.True(t, c.Empty())
}

func TestStore_AddClampsToStock(t *testing.T) {
	store, _ := newStore()
	c, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p1", Quantity: 10, Size: "M"})
	require.NoError(t, err)
	require.Len(t, c.CartItems, 1)
	assert.Equal(t, 3, c.CartItems[0].Quantity)
	assert.Equal(t, 900.0, c.TotalCartPrice)

	c, err = store.Add(userCtx(), "s1", AddInput{ProductID: "p3"})
	require.NoError(t, err)
	require.Len(t, c.CartItems, 2)
	line, ok := c.Line("p3", "", "")
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 150.0, line.Price)
}

func TestStore_UpdateQuantityRollsBack(t *testing.T) {
	store, repo := newStore()
	c, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p3", Quantity: 2})
	require.NoError(t, err)
	itemID := c.CartItems[0].ID

	_, err = store.UpdateQuantity(userCtx(), "s1", itemID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	repo.SetFail(errs.ErrUpstream)
	_, err = store.UpdateQuantity(userCtx(), "s1", itemID, 5)
	assert.ErrorIs(t, err, errs.ErrUpstream)

	current, err := store.Current(userCtx(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, current.CartItems[0].Quantity)
	assert.Equal(t, 300.0, current.TotalCartPrice)

	repo.SetFail(nil)
	c, err = store.UpdateQuantity(userCtx(), "s1", itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.CartItems[0].Quantity)
	assert.Equal(t, 750.0, c.TotalCartPrice)
}

func TestStore_UpdateUnknownItem(t *testing.T) {
	store, _ := newStore()
	_, err := store.UpdateQuantity(userCtx(), "s1", "nope", 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestStore_CouponAndClear(t *testing.T) {
	store, _ := newStore()
	_, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	_, err = store.ApplyCoupon(userCtx(), "s1", "  ")
	assert.ErrorIs(t, err, ErrCouponRequired)
	_, err = store.ApplyCoupon(userCtx(), "s1", "BOGUS")
	assert.ErrorIs(t, err, ErrCouponInvalid)

	c, err := store.ApplyCoupon(userCtx(), "s1", "eid10")
	require.NoError(t, err)
	assert.Equal(t, 540.0, c.TotalPriceAfterDiscount)
	assert.Equal(t, 60.0, Summarize(c, 500).Discount)

	c, err = store.Clear(userCtx(), "s1")
	require.NoError(t, err)
	assert.True(t, c.Empty())

	store.Forget("s1")
	c, err = store.Current(userCtx(), "s1")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestMirror_OfferLosesToMutations(t *testing.T) {
	m := &mirror{}
	_, v, _ := m.snapshot()
	out, ok := m.offer(Cart{ID: "first"}, v)
	assert.True(t, ok)
	assert.Equal(t, "first", out.ID)

	_, stale, _ := m.snapshot()
	m.begin()
	_, ok = m.offer(Cart{ID: "during"}, stale)
	assert.False(t, ok)
	m.set(Cart{ID: "mutated"})
	m.end()

	out, ok = m.offer(Cart{ID: "stale"}, stale)
	assert.False(t, ok)
	assert.Equal(t, "mutated", out.ID)
}

// gatedRepository holds Add until release is closed.
type gatedRepository struct {
	*InMemoryRepository
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepository) Add(ctx context.Context, in AddInput) error {
	close(r.entered)
	<-r.release
	return r.InMemoryRepository.Add(ctx, in)
}

func TestStore_LoadDuringAddKeepsServerCart(t *testing.T) {
	repo := &gatedRepository{
		InMemoryRepository: NewInMemoryRepository(catalog(), nil),
		entered:            make(chan struct{}),
		release:            make(chan struct{}),
	}
	store := NewStore(repo, product.NewService(product.NewInMemoryRepository(catalog())))

	type result struct {
		cart Cart
		err  error
	}
	done := make(chan result, 1)
	go func() {
		c, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p3", Quantity: 1})
		done <- result{c, err}
	}()

	<-repo.entered
	loaded, err := store.Load(userCtx(), "s1")
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
	close(repo.release)

	r := <-done
	require.NoError(t, r.err)
	require.Len(t, r.cart.CartItems, 1)

	current, err := store.Current(userCtx(), "s1")
	require.NoError(t, err)
	require.Len(t, current.CartItems, 1)
	assert.Equal(t, "p3", current.CartItems[0].Product.ID)
}

// countingRepository counts cart fetches.
type countingRepository struct {
	*InMemoryRepository
	gets int
}

func (r *countingRepository) Get(ctx context.Context) (Cart, error) {
	r.gets++
	return r.InMemoryRepository.Get(ctx)
}

func TestStore_ClearRefetches(t *testing.T) {
	repo := &countingRepository{InMemoryRepository: NewInMemoryRepository(catalog(), nil)}
	store := NewStore(repo, product.NewService(product.NewInMemoryRepository(catalog())))
	_, err := store.Add(userCtx(), "s1", AddInput{ProductID: "p3", Quantity: 2})
	require.NoError(t, err)

	before := repo.gets
	c, err := store.Clear(userCtx(), "s1")
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, before+1, repo.gets)
}

func TestStore_PruneDropsIdleMirrors(t *testing.T) {
	store, _ := newStore()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.Load(userCtx(), "old")
	require.NoError(t, err)
	now = now.Add(2 * time.Hour)
	_, err = store.Load(userCtx(), "fresh")
	require.NoError(t, err)

	assert.Equal(t, 1, store.Prune(time.Hour))
	store.mu.Lock()
	_, oldKept := store.mirrors["old"]
	_, freshKept := store.mirrors["fresh"]
	store.mu.Unlock()
	assert.False(t, oldKept)
	assert.True(t, freshKept)
}
