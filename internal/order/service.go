package order

import (
	"context"

	"github.com/wichananm65/fashion-storefront/internal/cart"
	"github.com/wichananm65/fashion-storefront/internal/events"
)

type Service struct {
	repo   Repository
	carts  *cart.Store
	events events.Publisher
}

func NewService(repo Repository, carts *cart.Store, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{repo: repo, carts: carts, events: publisher}
}

// PlaceCash turns the session's current server cart into a cash-on-delivery
// order and drops the cart mirror.
func (s *Service) PlaceCash(ctx context.Context, key string, addr ShippingAddress) (Order, error) {
	if err := addr.validate(); err != nil {
		return Order{}, err
	}
	c, err := s.carts.Load(ctx, key)
	if err != nil {
		return Order{}, err
	}
	if c.ID == "" || c.Empty() {
		return Order{}, ErrCartMissing
	}
	o, err := s.repo.CreateCash(ctx, c.ID, addr)
	if err != nil {
		return Order{}, err
	}
	s.carts.Forget(key)
	s.events.Publish(ctx, key, events.OrderCreated, map[string]any{
		"order": o.ID,
		"total": o.TotalOrderPrice,
		"items": len(c.CartItems),
		"city":  addr.City,
	})
	return o, nil
}

func (s *Service) ListMine(ctx context.Context, term string) ([]Order, error) {
	orders, err := s.repo.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(orders, term), nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.repo.Get(ctx, id)
}
