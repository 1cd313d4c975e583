package category

import (
	"context"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	// ListSubcategories returns every subcategory when categoryID is empty.
	ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error)
	ListBrands(ctx context.Context) ([]Brand, error)
}

type InMemoryRepository struct {
	mu            sync.RWMutex
	categories    []Category
	subcategories []Subcategory
	brands        []Brand
	fail          error
}

func NewInMemoryRepository(categories []Category, subs []Subcategory, brands []Brand) *InMemoryRepository {
	return &InMemoryRepository{
		categories:    append([]Category(nil), categories...),
		subcategories: append([]Subcategory(nil), subs...),
		brands:        append([]Brand(nil), brands...),
	}
}

// SetFail makes every call return err; nil restores normal answers.
func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *InMemoryRepository) ListCategories(_ context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]Category(nil), r.categories...), nil
}

func (r *InMemoryRepository) GetCategory(_ context.Context, id string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return Category{}, r.fail
	}
	for _, c := range r.categories {
		if c.ID == id || c.Slug == id {
			return c, nil
		}
	}
	return Category{}, errs.ErrNotFound
}

func (r *InMemoryRepository) ListSubcategories(_ context.Context, categoryID string) ([]Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]Subcategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		if categoryID == "" || s.Category == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListBrands(_ context.Context) ([]Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]Brand(nil), r.brands...), nil
}
