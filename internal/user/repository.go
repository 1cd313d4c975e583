package user

import (
	"context"
	"strconv"
	"sync"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

// Repository covers the signed-in user's own account. The caller is
// identified by the bearer token carried in ctx.
type Repository interface {
	GetMe(ctx context.Context) (User, error)
	UpdateMe(ctx context.Context, in UpdateInput) (User, error)
	ChangeMyPassword(ctx context.Context, in PasswordInput) (User, string, error)
	DeleteMe(ctx context.Context) error
}

// InMemoryRepository keys accounts by bearer token. Used by tests.
type InMemoryRepository struct {
	mu        sync.RWMutex
	byToken   map[string]User
	passwords map[string]string
	rotations int
}

func NewInMemoryRepository(seed map[string]User) *InMemoryRepository {
	r := &InMemoryRepository{byToken: make(map[string]User, len(seed)), passwords: map[string]string{}}
	for tok, u := range seed {
		r.byToken[tok] = u
	}
	return r
}

// SetPassword seeds the current password for the account behind token.
func (r *InMemoryRepository) SetPassword(token, password string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passwords[token] = password
}

func (r *InMemoryRepository) GetMe(ctx context.Context) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byToken[apiclient.TokenFrom(ctx)]
	if !ok {
		return User{}, errs.ErrUnauthorized
	}
	return u, nil
}

func (r *InMemoryRepository) UpdateMe(ctx context.Context, in UpdateInput) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok := apiclient.TokenFrom(ctx)
	u, ok := r.byToken[tok]
	if !ok {
		return User{}, errs.ErrUnauthorized
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	r.byToken[tok] = u
	return u, nil
}

func (r *InMemoryRepository) ChangeMyPassword(ctx context.Context, in PasswordInput) (User, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok := apiclient.TokenFrom(ctx)
	u, ok := r.byToken[tok]
	if !ok {
		return User{}, "", errs.ErrUnauthorized
	}
	if cur, ok := r.passwords[tok]; ok && cur != in.CurrentPassword {
		return User{}, "", errs.ErrBadRequest
	}
	r.rotations++
	next := tok + "-r" + strconv.Itoa(r.rotations)
	delete(r.byToken, tok)
	delete(r.passwords, tok)
	r.byToken[next] = u
	r.passwords[next] = in.Password
	return u, next, nil
}

func (r *InMemoryRepository) DeleteMe(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok := apiclient.TokenFrom(ctx)
	if _, ok := r.byToken[tok]; !ok {
		return errs.ErrUnauthorized
	}
	delete(r.byToken, tok)
	return nil
}
