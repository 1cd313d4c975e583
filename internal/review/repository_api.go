package review

import (
	"context"
	"net/url"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) ListForProduct(ctx context.Context, productID string) ([]Review, error) {
	var out apiclient.List[Review]
	if err := r.client.Get(ctx, "/products/"+url.PathEscape(productID)+"/reviews", url.Values{"limit": {"100"}}, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r *APIRepository) Create(ctx context.Context, in Input) (Review, error) {
	var out apiclient.Envelope[Review]
	if err := r.client.Post(ctx, "/reviews", in, &out); err != nil {
		return Review{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) Update(ctx context.Context, id string, in Input) (Review, error) {
	var out apiclient.Envelope[Review]
	body := map[string]any{"title": in.Title, "ratings": in.Ratings}
	if err := r.client.Put(ctx, "/reviews/"+url.PathEscape(id), body, &out); err != nil {
		return Review{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/reviews/"+url.PathEscape(id), nil)
}
