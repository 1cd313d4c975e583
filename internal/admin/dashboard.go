package admin

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/order"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

const dashboardListLimit = "5"

type Trend struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

type Trends struct {
	Revenue  Trend `json:"revenue"`
	Orders   Trend `json:"orders"`
	Products Trend `json:"products"`
	Users    Trend `json:"users"`
}

type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalUsers    int     `json:"totalUsers"`
	Trends        Trends  `json:"trends"`
}

type Dashboard struct {
	Stats        Stats             `json:"stats"`
	RecentOrders []order.Order     `json:"recentOrders"`
	TopProducts  []product.Product `json:"topProducts"`
}

func flatTrends() Trends {
	flat := Trend{IsPositive: true}
	return Trends{Revenue: flat, Orders: flat, Products: flat, Users: flat}
}

// statsResponse accepts the figures either bare or wrapped in "data".
type statsResponse struct {
	Stats
	Data *Stats `json:"data"`
}

// Stats asks the API for the dashboard figures. Older APIs lack the
// endpoint (404); the figures are then counted from the raw lists. Any
// other failure yields zeros.
func (s *Service) Stats(ctx context.Context) Stats {
	var raw statsResponse
	err := s.api.Get(ctx, "/admin/dashboard/stats", nil, &raw)
	switch {
	case err == nil:
		if raw.Data != nil {
			return *raw.Data
		}
		return raw.Stats
	case apiclient.IsNotFound(err):
		return s.aggregate(ctx)
	}
	zerolog.Ctx(ctx).Warn().Err(err).Msg("dashboard stats unavailable")
	return Stats{Trends: flatTrends()}
}

func (s *Service) aggregate(ctx context.Context) Stats {
	var (
		wg       sync.WaitGroup
		orders   []order.Order
		products []json.RawMessage
		users    []json.RawMessage
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		orders = quietList[order.Order](ctx, s, "/orders", nil)
	}()
	go func() {
		defer wg.Done()
		products = quietList[json.RawMessage](ctx, s, "/products", nil)
	}()
	go func() {
		defer wg.Done()
		users = quietList[json.RawMessage](ctx, s, "/users", nil)
	}()
	wg.Wait()

	st := Stats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		TotalUsers:    len(users),
		Trends:        flatTrends(),
	}
	for _, o := range orders {
		st.TotalRevenue += o.TotalOrderPrice
	}
	return st
}

// Dashboard loads the figures, the latest orders and the best sellers in
// parallel. A failing list is shown empty.
func (s *Service) Dashboard(ctx context.Context) Dashboard {
	var (
		wg sync.WaitGroup
		d  Dashboard
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		d.Stats = s.Stats(ctx)
	}()
	go func() {
		defer wg.Done()
		q := url.Values{"limit": {dashboardListLimit}, "sort": {"-createdAt"}}
		d.RecentOrders = quietList[order.Order](ctx, s, "/orders", q)
	}()
	go func() {
		defer wg.Done()
		q := url.Values{"limit": {dashboardListLimit}, "sort": {"-sold"}}
		d.TopProducts = quietList[product.Product](ctx, s, "/products", q)
	}()
	wg.Wait()
	return d
}

func quietList[T any](ctx context.Context, s *Service, path string, query url.Values) []T {
	res, err := list[T](ctx, s.api, path, query)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("dashboard list unavailable")
		return []T{}
	}
	return res.Data
}
