package order

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Repository interface {
	CreateCash(ctx context.Context, cartID string, addr ShippingAddress) (Order, error)
	ListMine(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
}

// InMemoryRepository records orders per token. Totals come from the seeded
// cart prices.
type InMemoryRepository struct {
	mu     sync.Mutex
	totals map[string]float64
	orders map[string][]Order
	nextID int
	fail   error
}

// NewInMemoryRepository accepts the total of each known cart id.
func NewInMemoryRepository(cartTotals map[string]float64) *InMemoryRepository {
	if cartTotals == nil {
		cartTotals = map[string]float64{}
	}
	return &InMemoryRepository{totals: cartTotals, orders: map[string][]Order{}}
}

func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *InMemoryRepository) SetCartTotal(cartID string, total float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals[cartID] = total
}

func (r *InMemoryRepository) owner(ctx context.Context) (string, error) {
	if r.fail != nil {
		return "", r.fail
	}
	tok := apiclient.TokenFrom(ctx)
	if tok == "" {
		return "", errs.ErrUnauthorized
	}
	return tok, nil
}

func (r *InMemoryRepository) CreateCash(ctx context.Context, cartID string, addr ShippingAddress) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return Order{}, err
	}
	total, ok := r.totals[cartID]
	if !ok {
		return Order{}, errs.ErrNotFound
	}
	r.nextID++
	o := Order{
		ID:                "64f0c0ffee" + strconv.Itoa(100000+r.nextID),
		CartItems:         []Item{},
		TotalOrderPrice:   total,
		PaymentMethodType: "cash",
		ShippingAddress:   &addr,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	delete(r.totals, cartID)
	r.orders[tok] = append(r.orders[tok], o)
	return o, nil
}

func (r *InMemoryRepository) ListMine(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return nil, err
	}
	return append([]Order{}, r.orders[tok]...), nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, o := range r.orders[tok] {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, errs.ErrNotFound
}
