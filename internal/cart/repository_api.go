package cart

import (
	"context"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

type cartEnvelope struct {
	Status         string `json:"status,omitempty"`
	NumOfCartItems int    `json:"numOfCartItems"`
	Data           Cart   `json:"data"`
}

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

// Get returns the shopper's cart with every line's product populated. A
// shopper without a cart gets an empty one.
func (r *APIRepository) Get(ctx context.Context) (Cart, error) {
	var out cartEnvelope
	if err := r.client.Get(ctx, "/cart", nil, &out); err != nil {
		if apiclient.IsNotFound(err) {
			return Cart{CartItems: []CartItem{}}, nil
		}
		return Cart{}, err
	}
	if out.Data.CartItems == nil {
		out.Data.CartItems = []CartItem{}
	}
	r.populate(ctx, out.Data.CartItems)
	return out.Data, nil
}

// populate fetches bare product ids concurrently. A failed lookup leaves
// the line as the API sent it.
func (r *APIRepository) populate(ctx context.Context, items []CartItem) {
	var wg sync.WaitGroup
	for i := range items {
		if items[i].Product.Populated || items[i].Product.ID == "" {
			continue
		}
		wg.Add(1)
		go func(it *CartItem) {
			defer wg.Done()
			var p apiclient.Envelope[product.Product]
			if err := r.client.Get(ctx, "/products/"+url.PathEscape(it.Product.ID), nil, &p); err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Str("product", it.Product.ID).Msg("cart line left unpopulated")
				return
			}
			it.Product = ItemProduct{Product: p.Data, Populated: true}
		}(&items[i])
	}
	wg.Wait()
}

func (r *APIRepository) Add(ctx context.Context, in AddInput) error {
	body := map[string]string{"productId": in.ProductID}
	if in.Color != "" {
		body["color"] = in.Color
	}
	if in.Size != "" {
		body["size"] = in.Size
	}
	return r.client.Post(ctx, "/cart", body, nil)
}

func (r *APIRepository) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	return r.client.Put(ctx, "/cart/"+url.PathEscape(itemID), map[string]int{"quantity": qty}, nil)
}

func (r *APIRepository) Remove(ctx context.Context, itemID string) error {
	return r.client.Delete(ctx, "/cart/"+url.PathEscape(itemID), nil)
}

func (r *APIRepository) Clear(ctx context.Context) error {
	return r.client.Delete(ctx, "/cart", nil)
}

func (r *APIRepository) ApplyCoupon(ctx context.Context, code string) error {
	return r.client.Put(ctx, "/cart/applyCoupon", map[string]string{"coupon": code}, nil)
}
