package category

import (
	"context"
	"net/url"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

// catalogLimit is large enough to fetch the whole taxonomy in one page.
const catalogLimit = "100"

type APIRepository struct {
	client *apiclient.Client
}

func NewAPIRepository(client *apiclient.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) ListCategories(ctx context.Context) ([]Category, error) {
	var out apiclient.List[Category]
	if err := r.client.Get(ctx, "/categories", url.Values{"limit": {catalogLimit}}, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r *APIRepository) GetCategory(ctx context.Context, id string) (Category, error) {
	var out apiclient.Envelope[Category]
	if err := r.client.Get(ctx, "/categories/"+url.PathEscape(id), nil, &out); err != nil {
		return Category{}, err
	}
	return out.Data, nil
}

func (r *APIRepository) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	path := "/subcategories"
	if categoryID != "" {
		path = "/categories/" + url.PathEscape(categoryID) + "/subcategories"
	}
	var out apiclient.List[Subcategory]
	if err := r.client.Get(ctx, path, url.Values{"limit": {catalogLimit}}, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r *APIRepository) ListBrands(ctx context.Context) ([]Brand, error) {
	var out apiclient.List[Brand]
	if err := r.client.Get(ctx, "/brands", url.Values{"limit": {catalogLimit}}, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
