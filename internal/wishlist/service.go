package wishlist

import (
	"context"

	"github.com/wichananm65/fashion-storefront/internal/product"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	return s.repo.List(ctx)
}

// IDs lists the saved product ids.
func (s *Service) IDs(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out, nil
}

func (s *Service) Contains(ctx context.Context, productID string) (bool, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return false, err
	}
	return contains(ids, productID), nil
}

func (s *Service) Add(ctx context.Context, productID string) ([]string, error) {
	return s.repo.Add(ctx, productID)
}

func (s *Service) Remove(ctx context.Context, productID string) ([]string, error) {
	return s.repo.Remove(ctx, productID)
}

// Toggle adds the product when absent and removes it when present. added
// reports which of the two happened.
func (s *Service) Toggle(ctx context.Context, productID string) (ids []string, added bool, err error) {
	in, err := s.Contains(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if in {
		ids, err = s.repo.Remove(ctx, productID)
		return ids, false, err
	}
	ids, err = s.repo.Add(ctx, productID)
	return ids, true, err
}
