package product

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

func (r *APIRepository) List(ctx context.Context, params ListParams) (apiclient.List[Product], error) {
	var out apiclient.List[Product]
	if err := r.client.Get(ctx, "/products", params.Query(), &out); err != nil {
		return apiclient.List[Product]{}, err
	}
	if out.Data == nil {
		out.Data = []Product{}
	}
	return out, nil
}

func (r *APIRepository) Get(ctx context.Context, id string) (Product, error) {
	var out apiclient.Envelope[Product]
	if err := r.client.Get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		if apiclient.IsNotFound(err) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return out.Data, nil
}
