// Package wishlist manages the shopper's saved products and keeps their ids
// on the session for the header badge.
package wishlist

import (
	"context"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

type Repository interface {
	List(ctx context.Context) ([]product.Product, error)
	// Add and Remove answer with the wishlist's product ids afterwards.
	Add(ctx context.Context, productID string) ([]string, error)
	Remove(ctx context.Context, productID string) ([]string, error)
}

// InMemoryRepository keeps one wishlist per token.
type InMemoryRepository struct {
	mu      sync.Mutex
	catalog map[string]product.Product
	lists   map[string][]string
	fail    error
}

func NewInMemoryRepository(catalog []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{catalog: map[string]product.Product{}, lists: map[string][]string{}}
	for _, p := range catalog {
		r.catalog[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
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

func (r *InMemoryRepository) List(ctx context.Context) ([]product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return nil, err
	}
	out := []product.Product{}
	for _, id := range r.lists[tok] {
		out = append(out, r.catalog[id])
	}
	return out, nil
}

func (r *InMemoryRepository) Add(ctx context.Context, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := r.catalog[productID]; !ok {
		return nil, errs.ErrNotFound
	}
	if !contains(r.lists[tok], productID) {
		r.lists[tok] = append(r.lists[tok], productID)
	}
	return append([]string(nil), r.lists[tok]...), nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, id := range r.lists[tok] {
		if id != productID {
			ids = append(ids, id)
		}
	}
	r.lists[tok] = ids
	return append([]string(nil), ids...), nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
