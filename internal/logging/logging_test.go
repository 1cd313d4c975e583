package logging

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMiddleware_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		Ctx(c).Debug().Msg("inside handler")
		return c.SendString("pong")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.Header.Get(RequestIDHeader) == "" {
		t.Fatalf("expected %s header to be set", RequestIDHeader)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	res, _ = app.Test(req)
	if got := res.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming request id to be kept, got %q", got)
	}
}
