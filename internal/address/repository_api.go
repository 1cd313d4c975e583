package address

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

func (r *APIRepository) List(ctx context.Context) ([]Address, error) {
	var out apiclient.List[Address]
	if err := r.client.Get(ctx, "/addresses", nil, &out); err != nil {
		if apiclient.IsNotFound(err) {
			return []Address{}, nil
		}
		return nil, err
	}
	if out.Data == nil {
		return []Address{}, nil
	}
	return out.Data, nil
}

func (r *APIRepository) Add(ctx context.Context, in Input) (Address, error) {
	var out apiclient.Envelope[Address]
	if err := r.client.Post(ctx, "/addresses", in, &out); err != nil {
		return Address{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) Update(ctx context.Context, id string, in Input) (Address, error) {
	var out apiclient.Envelope[Address]
	if err := r.client.Put(ctx, "/addresses/"+url.PathEscape(id), in, &out); err != nil {
		return Address{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/addresses/"+url.PathEscape(id), nil)
}
