package wishlist

import (
	"context"
	"net/url"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

// List treats a missing wishlist as an empty one.
func (r *APIRepository) List(ctx context.Context) ([]product.Product, error) {
	var out apiclient.List[product.Product]
	if err := r.client.Get(ctx, "/wishlist", nil, &out); err != nil {
		if apiclient.IsNotFound(err) {
			return []product.Product{}, nil
		}
		return nil, err
	}
	if out.Data == nil {
		return []product.Product{}, nil
	}
	return out.Data, nil
}

func (r *APIRepository) Add(ctx context.Context, productID string) ([]string, error) {
	var out apiclient.Envelope[[]apiclient.Ref]
	if err := r.client.Post(ctx, "/wishlist", map[string]string{"productId": productID}, &out); err != nil {
		return nil, err
	}
	return ids(out.Data), nil
}

func (r *APIRepository) Remove(ctx context.Context, productID string) ([]string, error) {
	var out apiclient.Envelope[[]apiclient.Ref]
	if err := r.client.Delete(ctx, "/wishlist/"+url.PathEscape(productID), &out); err != nil {
		return nil, err
	}
	return ids(out.Data), nil
}

// ids accepts both bare ids and populated products.
func ids(refs []apiclient.Ref) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}
