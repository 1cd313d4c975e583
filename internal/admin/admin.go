// Package admin is the back-office: dashboard figures plus catalog, order,
// customer and review management, all performed against the commerce API
// with the signed-in admin's token.
package admin

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/category"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

var (
	ErrMissingFields = errs.WithKey(errs.ErrValidation, "requiredFields")
	ErrCoverRequired = errs.WithKey(errs.ErrValidation, "coverImageRequired")
	ErrInvalidBulk   = errs.WithKey(errs.ErrValidation, "bulkInvalid")
	ErrInvalidRole   = errs.WithKey(errs.ErrValidation, "invalidRole")
)

type Service struct {
	api *apiclient.Client
	// storefront catalog snapshot, refreshed after category and brand edits
	catalog *category.Service
}

// NewService builds the back-office service. catalog may be nil.
func NewService(api *apiclient.Client, catalog *category.Service) *Service {
	return &Service{api: api, catalog: catalog}
}

// Query is the paging and filtering shared by the admin list screens.
type Query struct {
	Page   int
	Limit  int
	Sort   string
	Search string
	Extra  url.Values
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	for k, vals := range q.Extra {
		for _, val := range vals {
			if val != "" {
				v.Add(k, val)
			}
		}
	}
	return v
}

func list[T any](ctx context.Context, api *apiclient.Client, path string, query url.Values) (apiclient.List[T], error) {
	var out apiclient.List[T]
	if err := api.Get(ctx, path, query, &out); err != nil {
		return apiclient.List[T]{}, err
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return out, nil
}

func one[T any](ctx context.Context, api *apiclient.Client, path string) (T, error) {
	var out apiclient.Envelope[T]
	err := api.Get(ctx, path, nil, &out)
	return out.Data, err
}

func refreshCatalog(ctx context.Context, catalog *category.Service) {
	if catalog == nil {
		return
	}
	if err := catalog.Refresh(ctx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("catalog refresh after admin edit failed")
	}
}
