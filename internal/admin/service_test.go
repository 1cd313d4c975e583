package admin

import (
	"context"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/order"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

func newService(t *testing.T, api *fiber.App) *Service {
	t.Helper()
	srv := httptest.NewServer(adaptor.FiberApp(api))
	t.Cleanup(srv.Close)
	return NewService(apiclient.New(apiclient.Options{BaseURL: srv.URL, BreakerName: t.Name()}), nil)
}

func TestStats_AggregatesWhenEndpointMissing(t *testing.T) {
	api := fiber.New()
	api.Get("/admin/dashboard/stats", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Can't find this route"})
	})
	api.Get("/orders", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []fiber.Map{
			{"_id": "o1", "totalOrderPrice": 100},
			{"_id": "o2", "totalOrderPrice": 250.5},
		}})
	})
	api.Get("/products", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []fiber.Map{{"_id": "p1"}, {"_id": "p2"}, {"_id": "p3"}}})
	})
	api.Get("/users", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "boom"})
	})

	st := newService(t, api).Stats(context.Background())
	assert.InDelta(t, 350.5, st.TotalRevenue, 0.001)
	assert.Equal(t, 2, st.TotalOrders)
	assert.Equal(t, 3, st.TotalProducts)
	assert.Equal(t, 0, st.TotalUsers)
	assert.True(t, st.Trends.Revenue.IsPositive)
	assert.True(t, st.Trends.Users.IsPositive)
}

func TestStats_ZeroOnOtherFailures(t *testing.T) {
	var listed atomic.Int32
	api := fiber.New()
	api.Get("/admin/dashboard/stats", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "no"})
	})
	api.Get("/orders", func(c *fiber.Ctx) error {
		listed.Add(1)
		return c.JSON(fiber.Map{"data": []fiber.Map{}})
	})

	st := newService(t, api).Stats(context.Background())
	assert.Equal(t, Stats{Trends: flatTrends()}, st)
	assert.Zero(t, listed.Load())
}

func TestStats_AcceptsWrappedFigures(t *testing.T) {
	api := fiber.New()
	api.Get("/admin/dashboard/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
			"totalRevenue": 900, "totalOrders": 4, "totalProducts": 10, "totalUsers": 7,
			"trends": fiber.Map{"revenue": fiber.Map{"value": 12.5, "isPositive": true}},
		}})
	})

	st := newService(t, api).Stats(context.Background())
	assert.Equal(t, 900.0, st.TotalRevenue)
	assert.Equal(t, 7, st.TotalUsers)
	assert.Equal(t, 12.5, st.Trends.Revenue.Value)
}

func TestDashboard_FailingListsAreEmpty(t *testing.T) {
	var sorts atomic.Value
	api := fiber.New()
	api.Get("/admin/dashboard/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"totalOrders": 1})
	})
	api.Get("/orders", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).SendString("down")
	})
	api.Get("/products", func(c *fiber.Ctx) error {
		sorts.Store(c.Query("sort") + "|" + c.Query("limit"))
		return c.JSON(fiber.Map{"data": []fiber.Map{{"_id": "p1", "sold": 40}}})
	})

	d := newService(t, api).Dashboard(context.Background())
	assert.Equal(t, 1, d.Stats.TotalOrders)
	assert.NotNil(t, d.RecentOrders)
	assert.Empty(t, d.RecentOrders)
	require.Len(t, d.TopProducts, 1)
	assert.Equal(t, 40, d.TopProducts[0].Sold)
	assert.Equal(t, "-sold|5", sorts.Load())
}

func TestProducts_SortAndLocalSearch(t *testing.T) {
	var sort atomic.Value
	api := fiber.New()
	api.Get("/products", func(c *fiber.Ctx) error {
		sort.Store(c.Query("sort"))
		return c.JSON(fiber.Map{"results": 3, "data": []fiber.Map{
			{"_id": "p1", "title": "Black Abaya", "description": "Crepe"},
			{"_id": "p2", "title": "Silk Hijab", "description": "Soft silk"},
			{"_id": "p3", "title": "Linen Dress", "description": "Summer SILK blend"},
		}})
	})
	svc := newService(t, api)

	res, err := svc.Products(context.Background(), Query{Sort: "price-high", Search: " silk "})
	require.NoError(t, err)
	assert.Equal(t, "-price", sort.Load())
	require.Len(t, res.Data, 2)
	assert.Equal(t, "p2", res.Data[0].ID)
	assert.Equal(t, "p3", res.Data[1].ID)

	_, err = svc.Products(context.Background(), Query{Sort: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "-createdAt", sort.Load())
}

func TestProductForm(t *testing.T) {
	f := ProductForm{Title: "Abaya", Description: "Black", Price: 200, Discount: 25, Quantity: 3, Category: "c1"}
	assert.Equal(t, 150.0, f.FinalPrice())
	assert.ErrorIs(t, f.validate(true), ErrCoverRequired)
	assert.NoError(t, f.validate(false))

	f.Cover = &apiclient.File{Name: "cover.jpg", Content: []byte("img")}
	assert.NoError(t, f.validate(true))

	m := f.multipart()
	assert.Equal(t, []string{"150"}, m.Values("priceAfterDiscount"))
	require.Len(t, m.Files(), 1)
	assert.Equal(t, "imageCover", m.Files()[0].Field)

	f.Title = "  "
	assert.ErrorIs(t, f.validate(false), ErrMissingFields)

	noDiscount := ProductForm{Price: 99.5}
	assert.Equal(t, 99.5, noDiscount.FinalPrice())
	assert.Empty(t, noDiscount.multipart().Values("priceAfterDiscount"))
}

func TestPriceChange(t *testing.T) {
	cases := []struct {
		change PriceChange
		in     float64
		want   float64
	}{
		{PriceChange{Type: PriceIncrease, Value: 10}, 100, 110},
		{PriceChange{Type: PriceDecrease, Value: 15}, 200, 170},
		{PriceChange{Type: PriceSet, Value: 49.99}, 200, 49.99},
		{PriceChange{Type: PriceIncrease, Value: 33}, 9.99, 13.29},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.change.Apply(tc.in), "%+v on %v", tc.change, tc.in)
	}

	assert.ErrorIs(t, PriceChange{Type: PriceDecrease, Value: 120}.validate(), ErrInvalidBulk)
	assert.ErrorIs(t, PriceChange{Type: "double"}.validate(), ErrInvalidBulk)
}

func TestBulk_ReportsPerProductFailures(t *testing.T) {
	type update struct{ price, discounted string }
	updates := make(chan update, 4)
	api := fiber.New()
	api.Get("/products/:id", func(c *fiber.Ctx) error {
		if c.Params("id") != "p1" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No product for this id"})
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"_id": "p1", "price": 100, "priceAfterDiscount": 80}})
	})
	api.Put("/products/:id", func(c *fiber.Ctx) error {
		updates <- update{c.FormValue("price"), c.FormValue("priceAfterDiscount")}
		return c.JSON(fiber.Map{"data": fiber.Map{"_id": c.Params("id")}})
	})
	svc := newService(t, api)

	res, err := svc.Bulk(context.Background(), BulkRequest{
		Action: BulkUpdatePrice,
		IDs:    []string{"p1", "p2"},
		Price:  &PriceChange{Type: PriceIncrease, Value: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, res.Succeeded)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "p2", res.Failed[0].ID)
	assert.ErrorIs(t, res.Failed[0].Err, product.ErrNotFound)
	assert.Equal(t, update{"110", "88"}, <-updates)

	_, err = svc.Bulk(context.Background(), BulkRequest{Action: BulkUpdateStock, IDs: []string{"p1"}})
	assert.ErrorIs(t, err, ErrInvalidBulk)
	_, err = svc.Bulk(context.Background(), BulkRequest{Action: BulkDelete})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestOrders_StatusFilter(t *testing.T) {
	var status atomic.Value
	api := fiber.New()
	api.Get("/orders", func(c *fiber.Ctx) error {
		status.Store(c.Query("status"))
		return c.JSON(fiber.Map{"data": []fiber.Map{
			{"_id": "o1", "status": "shipped"},
			{"_id": "o2", "status": "pending"},
			{"_id": "o3", "status": "SHIPPED"},
		}})
	})
	svc := newService(t, api)

	res, err := svc.Orders(context.Background(), Query{}, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", status.Load())
	require.Len(t, res.Data, 2)
	assert.Equal(t, "o1", res.Data[0].ID)
	assert.Equal(t, "o3", res.Data[1].ID)

	_, err = svc.Orders(context.Background(), Query{}, "lost")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestChangeRole(t *testing.T) {
	var body atomic.Value
	api := fiber.New()
	api.Put("/users/changeUserRole/:id", func(c *fiber.Ctx) error {
		body.Store(c.Params("id") + ":" + string(c.Body()))
		return c.JSON(fiber.Map{"data": fiber.Map{"_id": c.Params("id"), "role": "admin"}})
	})
	svc := newService(t, api)

	_, err := svc.ChangeRole(context.Background(), "u1", "root")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Nil(t, body.Load())

	u, err := svc.ChangeRole(context.Background(), "u1", " Admin ")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, `u1:{"role":"admin"}`, body.Load())
}

func TestReviews_FilterKeepsFullSummary(t *testing.T) {
	api := fiber.New()
	api.Get("/reviews", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []fiber.Map{
			{"_id": "r1", "title": "Great", "ratings": 5},
			{"_id": "r2", "title": "Fine", "ratings": 3},
			{"_id": "r3", "title": "Love it", "ratings": 5},
		}})
	})

	page, err := newService(t, api).Reviews(context.Background(), Query{}, "", 5)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, 3, page.Summary.Count)
	assert.Equal(t, 4.3, page.Summary.Average)
	assert.Equal(t, 5, page.Summary.Distribution[0].Stars)
	assert.Equal(t, 2, page.Summary.Distribution[0].Count)
}

func TestSaveSubcategory_Validates(t *testing.T) {
	svc := NewService(apiclient.New(apiclient.Options{BaseURL: "http://127.0.0.1:1", BreakerName: t.Name()}), nil)
	_, err := svc.SaveSubcategory(context.Background(), "", SubcategoryInput{Name: "Kids"})
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.SaveCategory(context.Background(), "", ImageForm{Name: "  "})
	assert.ErrorIs(t, err, ErrMissingFields)
}
