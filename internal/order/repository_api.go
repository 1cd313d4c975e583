package order

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

func (r *APIRepository) CreateCash(ctx context.Context, cartID string, addr ShippingAddress) (Order, error) {
	var out apiclient.Envelope[Order]
	body := map[string]ShippingAddress{"shippingAddress": addr}
	if err := r.client.Post(ctx, "/orders/"+url.PathEscape(cartID), body, &out); err != nil {
		return Order{}, err
	}
	return out.Data, nil
}

// ListMine treats "no orders" (404) as an empty history.
func (r *APIRepository) ListMine(ctx context.Context) ([]Order, error) {
	var out apiclient.List[Order]
	if err := r.client.Get(ctx, "/orders", nil, &out); err != nil {
		if apiclient.IsNotFound(err) {
			return []Order{}, nil
		}
		return nil, err
	}
	if out.Data == nil {
		return []Order{}, nil
	}
	return out.Data, nil
}

func (r *APIRepository) Get(ctx context.Context, id string) (Order, error) {
	var out apiclient.Envelope[Order]
	if err := r.client.Get(ctx, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return Order{}, err
	}
	return out.Data, nil
}
