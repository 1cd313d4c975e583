package product

import (
	"context"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) (apiclient.List[Product], error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Section fetches a short list for a home page strip.
func (s *Service) Section(ctx context.Context, sortBy string, sale bool, limit int) ([]Product, error) {
	res, err := s.repo.List(ctx, ListParams{Page: 1, Limit: limit, SortBy: sortBy, Sale: sale})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
