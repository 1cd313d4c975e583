package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type adminFixture struct {
	app      *fiber.App
	sessions *session.InMemoryRepository
}

func newAdminFixture(t *testing.T, api *fiber.App) adminFixture {
	t.Helper()
	srv := httptest.NewServer(adaptor.FiberApp(api))
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Options{BaseURL: srv.URL, BreakerName: t.Name()})
	sessRepo := session.NewInMemoryRepository()
	mgr := session.NewManager(sessRepo, session.Options{})
	h := NewHandler(NewService(client, nil), web.NewAdminResponder(mgr))

	app := fiber.New()
	group := app.Group("/bff/admin", func(c *fiber.Ctx) error {
		if tok := c.Get("X-Session-Token"); tok != "" {
			s := &session.Session{ID: "s-" + tok, Token: tok, User: &session.Profile{ID: "a1", Role: "admin"}}
			_ = sessRepo.Save(c.UserContext(), *s)
			session.Put(c, s)
		}
		return c.Next()
	})
	h.RegisterRoutes(group)
	return adminFixture{app: app, sessions: sessRepo}
}

func (f adminFixture) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	req.Header.Set("X-Session-Token", "admin-tok")
	res, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	body := map[string]any{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &body); err != nil {
			t.Fatalf("invalid json %q: %v", b, err)
		}
	}
	return res.StatusCode, body
}

func productUpload(t *testing.T, fields map[string][]string, withCover bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vals := range fields {
		for _, v := range vals {
			if err := w.WriteField(k, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
	}
	if withCover {
		part, err := w.CreateFormFile("imageCover", "cover.jpg")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		_, _ = part.Write([]byte("jpeg-bytes"))
	}
	_ = w.Close()
	req := httptest.NewRequest(http.MethodPost, "/bff/admin/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestCreateProduct_ForwardsMultipart(t *testing.T) {
	type received struct {
		values map[string][]string
		cover  string
	}
	got := make(chan received, 1)
	api := fiber.New()
	api.Post("/products", func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		r := received{values: form.Value}
		if fhs := form.File["imageCover"]; len(fhs) == 1 {
			r.cover = fhs[0].Filename
		}
		got <- r
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"_id": "p9", "title": form.Value["title"][0]}})
	})
	f := newAdminFixture(t, api)

	status, body := f.do(t, productUpload(t, map[string][]string{
		"title":       {"Black Abaya"},
		"description": {"Crepe abaya"},
		"price":       {"200"},
		"discount":    {"10"},
		"quantity":    {"4"},
		"category":    {"c1"},
		"colors[]":    {"black", "navy"},
		"sizes[]":     {"M"},
	}, true))
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", status, body)
	}
	if body["redirect"] != "/admin/products" {
		t.Fatalf("expected redirect to the product list, got %v", body["redirect"])
	}

	r := <-got
	if r.cover != "cover.jpg" {
		t.Fatalf("cover not forwarded: %q", r.cover)
	}
	if v := r.values["priceAfterDiscount"]; len(v) != 1 || v[0] != "180" {
		t.Fatalf("expected priceAfterDiscount 180, got %v", v)
	}
	if v := r.values["colors[]"]; len(v) != 2 || v[1] != "navy" {
		t.Fatalf("colors not forwarded: %v", v)
	}
	if _, ok := r.values["discount"]; ok {
		t.Fatalf("discount percentage must not reach the API")
	}
}

func TestCreateProduct_RequiresCover(t *testing.T) {
	api := fiber.New()
	api.Post("/products", func(c *fiber.Ctx) error {
		t.Errorf("API must not be called without a cover image")
		return c.SendStatus(fiber.StatusCreated)
	})
	f := newAdminFixture(t, api)

	status, body := f.do(t, productUpload(t, map[string][]string{
		"title": {"Abaya"}, "description": {"x"}, "price": {"10"}, "quantity": {"1"}, "category": {"c1"},
	}, false))
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	if body["message"] != i18n.T(i18n.Arabic, "coverImageRequired") {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestBulkRoute_AllFailedIsAnError(t *testing.T) {
	api := fiber.New()
	api.Delete("/products/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product has open orders"})
	})
	f := newAdminFixture(t, api)

	req := httptest.NewRequest(http.MethodPost, "/bff/admin/products/bulk", strings.NewReader(`{"action":"delete","ids":["p1"]}`))
	req.Header.Set("Content-Type", "application/json")
	status, body := f.do(t, req)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["message"] != "product has open orders" {
		t.Fatalf("expected the API message, got %v", body["message"])
	}
}

func TestOrderStatusRoute(t *testing.T) {
	api := fiber.New()
	api.Put("/orders/:id", func(c *fiber.Ctx) error {
		var in map[string]string
		_ = json.Unmarshal(c.Body(), &in)
		return c.JSON(fiber.Map{"data": fiber.Map{"_id": c.Params("id"), "status": in["status"], "totalOrderPrice": 320}})
	})
	f := newAdminFixture(t, api)

	req := httptest.NewRequest(http.MethodPut, "/bff/admin/orders/64f0c0ffee12ab34/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	status, body := f.do(t, req)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	data, _ := body["data"].(map[string]any)
	if data["statusLabel"] != i18n.T(i18n.Arabic, "shipped") || data["number"] != "EE12AB34" {
		t.Fatalf("unexpected order view %v", data)
	}

	req = httptest.NewRequest(http.MethodPut, "/bff/admin/orders/o1/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	if status, _ := f.do(t, req); status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an unknown status, got %d", status)
	}
}

func TestForbiddenClearsAdminSession(t *testing.T) {
	api := fiber.New()
	api.Delete("/users/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "You are not allowed to access this route"})
	})
	f := newAdminFixture(t, api)

	status, body := f.do(t, httptest.NewRequest(http.MethodDelete, "/bff/admin/users/u1", nil))
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
	if body["redirect"] != "/admin/login" {
		t.Fatalf("expected redirect to admin login, got %v", body["redirect"])
	}
	if _, err := f.sessions.Get(context.Background(), "s-admin-tok"); err == nil {
		t.Fatalf("expected the session to be removed")
	}
}

func TestDashboardRoute(t *testing.T) {
	api := fiber.New()
	api.Get("/admin/dashboard/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"totalRevenue": 1250, "totalOrders": 3})
	})
	api.Get("/orders", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []fiber.Map{{"_id": "abc", "status": "delivered", "totalOrderPrice": 1250}}})
	})
	api.Get("/products", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []fiber.Map{}})
	})
	f := newAdminFixture(t, api)

	status, body := f.do(t, httptest.NewRequest(http.MethodGet, "/bff/admin/dashboard", nil))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	stats, _ := body["stats"].(map[string]any)
	if stats["totalRevenue"] != 1250.0 {
		t.Fatalf("unexpected stats %v", stats)
	}
	recent, _ := body["recentOrders"].([]any)
	if len(recent) != 1 {
		t.Fatalf("expected one recent order, got %v", body["recentOrders"])
	}
	if body["dir"] != "rtl" {
		t.Fatalf("expected rtl page metadata, got %v", body["dir"])
	}
}
