package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/metrics"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

// ProductLookup is what Add needs to check stock before calling the API.
type ProductLookup interface {
	Get(ctx context.Context, id string) (product.Product, error)
}

// mirror is one session's view of its server cart. seq serializes
// mutations; mu guards the fields.
type mirror struct {
	seq sync.Mutex

	mu      sync.Mutex
	cart    Cart
	version uint64
	pending int
	loaded  bool
	touched time.Time
}

func (m *mirror) snapshot() (Cart, uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.clone(), m.version, m.loaded
}

// begin marks a mutation as in flight. Fetches overlapping it are discarded.
func (m *mirror) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending++
	m.version++
}

func (m *mirror) end() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending--
}

// set stores a cart produced by the mutation holding seq.
func (m *mirror) set(c Cart) Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version++
	m.cart = c
	m.loaded = true
	return c.clone()
}

// offer stores a fetched cart unless a mutation ran or started after version
// was read. A rejected cart is returned as is when nothing is mirrored yet.
func (m *mirror) offer(c Cart, version uint64) (Cart, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending > 0 || m.version != version {
		if m.loaded {
			return m.cart.clone(), false
		}
		return c, false
	}
	m.version++
	m.cart = c
	m.loaded = true
	return c.clone(), true
}

// Store keeps a cart mirror per session.
type Store struct {
	repo     Repository
	products ProductLookup
	now      func() time.Time

	mu      sync.Mutex
	mirrors map[string]*mirror
}

func NewStore(repo Repository, products ProductLookup) *Store {
	return &Store{repo: repo, products: products, now: time.Now, mirrors: map[string]*mirror{}}
}

func (s *Store) mirror(key string) *mirror {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mirrors[key]
	if !ok {
		m = &mirror{}
		s.mirrors[key] = m
	}
	m.touched = s.now()
	return m
}

// lock takes the session's mutation slot. The returned func releases it.
func (s *Store) lock(key string) (*mirror, func()) {
	m := s.mirror(key)
	m.seq.Lock()
	m.begin()
	return m, func() {
		m.end()
		m.seq.Unlock()
	}
}

// Load fetches the server cart into the mirror. A mutation overlapping the
// fetch wins over it.
func (s *Store) Load(ctx context.Context, key string) (Cart, error) {
	m := s.mirror(key)
	_, version, _ := m.snapshot()
	c, err := s.repo.Get(ctx)
	if err != nil {
		return Cart{}, err
	}
	out, _ := m.offer(c, version)
	return out, nil
}

// Current is the mirrored cart, loading it on first use.
func (s *Store) Current(ctx context.Context, key string) (Cart, error) {
	if c, _, ok := s.mirror(key).snapshot(); ok {
		return c, nil
	}
	return s.Load(ctx, key)
}

// Add puts qty units of a product variant in the cart. Out-of-stock products
// are refused before the API is called and qty is clamped to [1, stock].
func (s *Store) Add(ctx context.Context, key string, in AddInput) (Cart, error) {
	p, err := s.products.Get(ctx, in.ProductID)
	if err != nil {
		return Cart{}, err
	}
	if !p.InStock() {
		return Cart{}, ErrOutOfStock
	}
	in.Quantity = clamp(in.Quantity, 1, p.Quantity)

	m, unlock := s.lock(key)
	defer unlock()

	before, _, loaded := m.snapshot()
	if !loaded {
		if before, err = s.repo.Get(ctx); err != nil {
			return Cart{}, err
		}
	}
	existing := 0
	if line, ok := before.Line(in.ProductID, in.Color, in.Size); ok {
		existing = line.Quantity
	}

	if err := s.repo.Add(ctx, in); err != nil {
		return Cart{}, err
	}
	return s.refetch(ctx, m, func(c Cart) (bool, error) {
		// the API adds one unit per call
		target := clamp(existing+in.Quantity, 1, p.Quantity)
		line, ok := c.Line(in.ProductID, in.Color, in.Size)
		if !ok || line.Quantity == target {
			return false, nil
		}
		return true, s.repo.UpdateQuantity(ctx, line.ID, target)
	})
}

// UpdateQuantity shows the new quantity at once and rolls the mirror back
// to the pre-change cart when the API refuses it.
func (s *Store) UpdateQuantity(ctx context.Context, key, itemID string, qty int) (Cart, error) {
	if qty < 1 {
		return Cart{}, ErrInvalidQuantity
	}
	m, unlock := s.lock(key)
	defer unlock()

	before, _, loaded := m.snapshot()
	if !loaded {
		c, err := s.repo.Get(ctx)
		if err != nil {
			return Cart{}, err
		}
		before = m.set(c)
	}
	if _, ok := before.Item(itemID); !ok {
		return Cart{}, ErrItemNotFound
	}

	m.set(before.withQuantity(itemID, qty))

	if err := s.repo.UpdateQuantity(ctx, itemID, qty); err != nil {
		m.set(before)
		metrics.CartRollbacks.Inc()
		zerolog.Ctx(ctx).Warn().Err(err).Str("item", itemID).Msg("cart quantity rolled back")
		return Cart{}, err
	}
	return s.refetch(ctx, m, nil)
}

func (s *Store) Remove(ctx context.Context, key, itemID string) (Cart, error) {
	m, unlock := s.lock(key)
	defer unlock()
	if err := s.repo.Remove(ctx, itemID); err != nil {
		return Cart{}, err
	}
	return s.refetch(ctx, m, nil)
}

func (s *Store) Clear(ctx context.Context, key string) (Cart, error) {
	m, unlock := s.lock(key)
	defer unlock()
	if err := s.repo.Clear(ctx); err != nil {
		return Cart{}, err
	}
	return s.refetch(ctx, m, nil)
}

func (s *Store) ApplyCoupon(ctx context.Context, key, code string) (Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Cart{}, ErrCouponRequired
	}
	m, unlock := s.lock(key)
	defer unlock()
	if err := s.repo.ApplyCoupon(ctx, code); err != nil {
		return Cart{}, err
	}
	return s.refetch(ctx, m, nil)
}

// Forget drops the session's mirror after checkout or when the session ends.
func (s *Store) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mirrors, key)
}

// Prune drops mirrors no request used for idle and reports how many went.
func (s *Store) Prune(idle time.Duration) int {
	cutoff := s.now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key, m := range s.mirrors {
		if m.touched.Before(cutoff) {
			delete(s.mirrors, key)
			n++
		}
	}
	return n
}

// refetch loads the authoritative cart after a mutation. fix may issue one
// follow-up change and asks for another fetch by returning true.
func (s *Store) refetch(ctx context.Context, m *mirror, fix func(Cart) (bool, error)) (Cart, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return Cart{}, err
	}
	if fix != nil {
		again, err := fix(c)
		if err != nil {
			return Cart{}, err
		}
		if again {
			if c, err = s.repo.Get(ctx); err != nil {
				return Cart{}, err
			}
		}
	}
	return m.set(c), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}
