package review

import (
	"context"
	"strconv"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Repository interface {
	ListForProduct(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, in Input) (Review, error)
	Update(ctx context.Context, id string, in Input) (Review, error)
	Delete(ctx context.Context, id string) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
	nextID  int
	fail    error
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	return &InMemoryRepository{reviews: append([]Review(nil), seed...), nextID: len(seed) + 1}
}

func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *InMemoryRepository) ListForProduct(_ context.Context, productID string) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return nil, r.fail
	}
	out := []Review{}
	for _, rv := range r.reviews {
		if rv.Product.ID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(_ context.Context, in Input) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return Review{}, r.fail
	}
	rv := Review{ID: "r" + strconv.Itoa(r.nextID), Title: in.Title, Ratings: in.Ratings, Product: apiclient.Ref{ID: in.Product}}
	r.nextID++
	r.reviews = append(r.reviews, rv)
	return rv, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id string, in Input) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ID == id {
			rv.Title = in.Title
			rv.Ratings = in.Ratings
			r.reviews[i] = rv
			return rv, nil
		}
	}
	return Review{}, errs.ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}
