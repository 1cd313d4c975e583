package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/events"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

const (
	DefaultDebounce = 400 * time.Millisecond
	DefaultLimit    = 5
)

type Result struct {
	Query      string            `json:"query"`
	Results    []product.Product `json:"results"`
	Superseded bool              `json:"superseded"`
}

type Service struct {
	debouncer *Debouncer[product.Product]
	events    events.Publisher
}

func NewService(products *product.Service, publisher events.Publisher, debounce time.Duration, limit int) *Service {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	lookup := func(ctx context.Context, query string) ([]product.Product, error) {
		res, err := products.List(ctx, product.ListParams{Page: 1, Limit: limit, Keyword: query})
		if err != nil {
			// the dropdown just shows nothing
			zerolog.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("search lookup failed")
			return []product.Product{}, nil
		}
		return res.Data, nil
	}
	return &Service{debouncer: NewDebouncer[product.Product](debounce, lookup), events: publisher}
}

// Suggest returns the dropdown results for the visitor identified by key.
func (s *Service) Suggest(ctx context.Context, key, query string) (Result, error) {
	query = strings.TrimSpace(query)
	results, err := s.debouncer.Search(ctx, key, query)
	if errors.Is(err, ErrSuperseded) {
		return Result{Query: query, Results: []product.Product{}, Superseded: true}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if query != "" {
		s.events.Publish(ctx, key, events.SearchPerformed, map[string]any{"query": query, "results": len(results)})
	}
	return Result{Query: query, Results: results}, nil
}
