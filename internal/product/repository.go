package product

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

type Repository interface {
	List(ctx context.Context, params ListParams) (apiclient.List[Product], error)
	Get(ctx context.Context, id string) (Product, error)
}

// InMemoryRepository applies the same filter, sort and paging rules the API
// does, over a fixed product set.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	fail     error
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	return &InMemoryRepository{products: append([]Product(nil), seed...)}
}

func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *InMemoryRepository) List(_ context.Context, params ListParams) (apiclient.List[Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return apiclient.List[Product]{}, r.fail
	}
	params = params.normalized()

	matched := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(p, params) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, SortField(params.SortBy))

	pages := (len(matched) + params.Limit - 1) / params.Limit
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	out := apiclient.List[Product]{
		Results: end - start,
		Data:    matched[start:end],
		PaginationResult: apiclient.Pagination{
			CurrentPage:   params.Page,
			Limit:         params.Limit,
			NumberOfPages: pages,
		},
	}
	if end < len(matched) {
		out.PaginationResult.Next = params.Page + 1
	}
	if params.Page > 1 {
		out.PaginationResult.Prev = params.Page - 1
	}
	return out, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return Product{}, r.fail
	}
	for _, p := range r.products {
		if p.ID == id || (p.Slug != "" && p.Slug == id) {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func matches(p Product, params ListParams) bool {
	if params.Category != "" && p.Category.ID != params.Category {
		return false
	}
	if params.Brand != "" && (p.Brand == nil || p.Brand.ID != params.Brand) {
		return false
	}
	if params.Subcategory != "" {
		found := false
		for _, s := range p.Subcategories {
			if s.ID == params.Subcategory {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if params.PriceMin > 0 && p.Price < params.PriceMin {
		return false
	}
	if params.PriceMax > 0 && p.Price > params.PriceMax {
		return false
	}
	if params.Sale && p.PriceAfterDiscount <= 0 {
		return false
	}
	if params.Keyword != "" {
		kw := strings.ToLower(params.Keyword)
		if !strings.Contains(strings.ToLower(p.Title), kw) && !strings.Contains(strings.ToLower(p.Description), kw) {
			return false
		}
	}
	return true
}

func sortProducts(ps []Product, field string) {
	desc := strings.HasPrefix(field, "-")
	key := strings.TrimPrefix(field, "-")
	var less func(a, b Product) bool
	switch key {
	case "price":
		less = func(a, b Product) bool { return a.Price < b.Price }
	case "sold":
		less = func(a, b Product) bool { return a.Sold < b.Sold }
	case "ratingsAverage":
		less = func(a, b Product) bool { return a.RatingsAverage < b.RatingsAverage }
	case "createdAt":
		less = func(a, b Product) bool { return a.CreatedAt < b.CreatedAt }
	case "title":
		less = func(a, b Product) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	default:
		return
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if desc {
			return less(ps[j], ps[i])
		}
		return less(ps[i], ps[j])
	})
}
