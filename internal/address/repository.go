package address

import (
	"context"
	"strconv"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Repository interface {
	List(ctx context.Context) ([]Address, error)
	Add(ctx context.Context, in Input) (Address, error)
	Update(ctx context.Context, id string, in Input) (Address, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps addresses per token.
type InMemoryRepository struct {
	mu     sync.Mutex
	books  map[string][]Address
	nextID int
	fail   error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{books: map[string][]Address{}}
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

func (r *InMemoryRepository) List(ctx context.Context) ([]Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return nil, err
	}
	return append([]Address{}, r.books[tok]...), nil
}

func (r *InMemoryRepository) Add(ctx context.Context, in Input) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return Address{}, err
	}
	r.nextID++
	a := fromInput("a"+strconv.Itoa(r.nextID), in)
	r.books[tok] = append(r.books[tok], a)
	return a, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, in Input) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return Address{}, err
	}
	for i, a := range r.books[tok] {
		if a.ID == id {
			r.books[tok][i] = fromInput(id, in)
			return r.books[tok][i], nil
		}
	}
	return Address{}, errs.ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, err := r.owner(ctx)
	if err != nil {
		return err
	}
	book := r.books[tok]
	for i, a := range book {
		if a.ID == id {
			r.books[tok] = append(book[:i], book[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func fromInput(id string, in Input) Address {
	return Address{ID: id, Alias: in.Alias, Details: in.Details, Phone: in.Phone, City: in.City, PostalCode: in.PostalCode}
}
