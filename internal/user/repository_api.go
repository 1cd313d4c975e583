package user

import (
	"context"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) GetMe(ctx context.Context) (User, error) {
	var out apiclient.Envelope[User]
	if err := r.client.Get(ctx, "/users/getMe", nil, &out); err != nil {
		return User{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) UpdateMe(ctx context.Context, in UpdateInput) (User, error) {
	var out apiclient.Envelope[User]
	if err := r.client.Put(ctx, "/users/updateMe", in, &out); err != nil {
		return User{}, err
	}
	return out.Data, nil
}

// ChangeMyPassword returns the re-issued token; the old one stops working.
func (r *APIRepository) ChangeMyPassword(ctx context.Context, in PasswordInput) (User, string, error) {
	var out struct {
		Data  User   `json:"data"`
		Token string `json:"token"`
	}
	if err := r.client.Put(ctx, "/users/changeMyPassword", in, &out); err != nil {
		return User{}, "", err
	}
	return out.Data, out.Token, nil
}

func (r *APIRepository) DeleteMe(ctx context.Context) error {
	return r.client.Delete(ctx, "/users/deleteMe", nil)
}
