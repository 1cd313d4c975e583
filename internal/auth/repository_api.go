package auth

import (
	"context"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

type Repository interface {
	Login(ctx context.Context, in Credentials) (Result, error)
	Signup(ctx context.Context, in SignupInput) (Result, error)
}

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) Login(ctx context.Context, in Credentials) (Result, error) {
	var out Result
	err := r.client.Post(ctx, "/auth/login", in, &out)
	return out, err
}

func (r *APIRepository) Signup(ctx context.Context, in SignupInput) (Result, error) {
	var out Result
	err := r.client.Post(ctx, "/auth/signup", in, &out)
	return out, err
}
