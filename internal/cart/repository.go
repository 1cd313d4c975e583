package cart

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

type AddInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// Repository talks to the cart of whoever owns the token in ctx.
type Repository interface {
	Get(ctx context.Context) (Cart, error)
	Add(ctx context.Context, in AddInput) error
	UpdateQuantity(ctx context.Context, itemID string, qty int) error
	Remove(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
	ApplyCoupon(ctx context.Context, code string) error
}

// InMemoryRepository keeps one cart per token and prices lines from a fixed
// catalog. Coupons are percentages.
type InMemoryRepository struct {
	mu      sync.Mutex
	catalog map[string]product.Product
	coupons map[string]float64
	carts   map[string]*Cart
	nextID  int
	fail    error
}

func NewInMemoryRepository(catalog []product.Product, coupons map[string]float64) *InMemoryRepository {
	r := &InMemoryRepository{
		catalog: map[string]product.Product{},
		coupons: coupons,
		carts:   map[string]*Cart{},
	}
	for _, p := range catalog {
		r.catalog[p.ID] = p
	}
	return r
}

// SetFail makes every mutation return err; reads keep working.
func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *InMemoryRepository) cart(ctx context.Context) (*Cart, error) {
	tok := apiclient.TokenFrom(ctx)
	if tok == "" {
		return nil, errs.ErrUnauthorized
	}
	c, ok := r.carts[tok]
	if !ok {
		c = &Cart{ID: "cart-" + tok, CartItems: []CartItem{}}
		r.carts[tok] = c
	}
	return c, nil
}

func (r *InMemoryRepository) Get(ctx context.Context) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, err := r.cart(ctx)
	if err != nil {
		return Cart{}, err
	}
	return c.clone(), nil
}

func (r *InMemoryRepository) Add(ctx context.Context, in AddInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	c, err := r.cart(ctx)
	if err != nil {
		return err
	}
	p, ok := r.catalog[in.ProductID]
	if !ok {
		return errs.ErrNotFound
	}
	for i, it := range c.CartItems {
		if it.Product.ID == in.ProductID && it.Color == in.Color && it.Size == in.Size {
			c.CartItems[i].Quantity++
			r.reprice(c)
			return nil
		}
	}
	r.nextID++
	c.CartItems = append(c.CartItems, CartItem{
		ID:       "item" + strconv.Itoa(r.nextID),
		Product:  ItemProduct{Product: p, Populated: true},
		Quantity: 1,
		Color:    in.Color,
		Size:     in.Size,
		Price:    p.FinalPrice(),
	})
	r.reprice(c)
	return nil
}

func (r *InMemoryRepository) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	c, err := r.cart(ctx)
	if err != nil {
		return err
	}
	for i, it := range c.CartItems {
		if it.ID == itemID {
			c.CartItems[i].Quantity = qty
			r.reprice(c)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) Remove(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	c, err := r.cart(ctx)
	if err != nil {
		return err
	}
	for i, it := range c.CartItems {
		if it.ID == itemID {
			c.CartItems = append(c.CartItems[:i], c.CartItems[i+1:]...)
			r.reprice(c)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	tok := apiclient.TokenFrom(ctx)
	if tok == "" {
		return errs.ErrUnauthorized
	}
	delete(r.carts, tok)
	return nil
}

func (r *InMemoryRepository) ApplyCoupon(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	c, err := r.cart(ctx)
	if err != nil {
		return err
	}
	pct, ok := r.coupons[strings.ToUpper(code)]
	if !ok {
		return ErrCouponInvalid
	}
	c.Coupon = strings.ToUpper(code)
	c.TotalPriceAfterDiscount = round2(c.TotalCartPrice - c.TotalCartPrice*pct/100)
	return nil
}

func (r *InMemoryRepository) reprice(c *Cart) {
	total := 0.0
	for _, it := range c.CartItems {
		total += it.Price * float64(it.Quantity)
	}
	c.TotalCartPrice = round2(total)
	c.TotalPriceAfterDiscount = 0
	c.Coupon = ""
}
