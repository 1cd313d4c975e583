package user

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

// bootstrap middleware: X-Session-Token stands in for a signed-in browser.
func makeAppWithUserHandler(repo Repository) (*fiber.App, *session.InMemoryRepository) {
	sessions := session.NewInMemoryRepository()
	mgr := session.NewManager(sessions, session.Options{})
	h := NewHandler(NewService(repo), mgr, web.NewResponder(mgr))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Get("X-Session-Token"); tok != "" {
			s := &session.Session{ID: "s-" + tok, Token: tok}
			_ = sessions.Save(c.UserContext(), *s)
			session.Put(c, s)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app, sessions
}

func seedRepo() *InMemoryRepository {
	return NewInMemoryRepository(map[string]User{
		"tok-7": {ID: "u7", Name: "Jenny", Email: "j@example.com", Phone: "0100", Role: RoleUser},
	})
}

func TestAccountRoutes_RegistrationAndAuth(t *testing.T) {
	app, _ := makeAppWithUserHandler(seedRepo())

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{"GET /bff/account", "PUT /bff/account", "PUT /bff/account/password", "DELETE /bff/account"} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}

	res, err := app.Test(httptest.NewRequest("GET", "/bff/account", nil))
	if err != nil {
		t.Fatalf("account request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected unauthorized status, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/bff/account", nil)
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 OK for account, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "j@example.com") {
		t.Fatalf("response body does not contain expected email, got %s", b)
	}
}

func TestAccount_UpdateMe(t *testing.T) {
	app, sessions := makeAppWithUserHandler(seedRepo())

	req := httptest.NewRequest("PUT", "/bff/account", strings.NewReader(`{"name":"  Jenny B "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res.StatusCode)
	}
	s, err := sessions.Get(req.Context(), "s-tok-7")
	if err != nil || s.User == nil || s.User.Name != "Jenny B" {
		t.Fatalf("expected cached profile to be refreshed, got %+v (%v)", s.User, err)
	}

	req = httptest.NewRequest("PUT", "/bff/account", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty update, got %d", res.StatusCode)
	}
}

func TestAccount_ChangePasswordSwapsToken(t *testing.T) {
	repo := seedRepo()
	repo.SetPassword("tok-7", "old-pass")
	app, sessions := makeAppWithUserHandler(repo)

	req := httptest.NewRequest("PUT", "/bff/account/password", strings.NewReader(`{"currentPassword":"old-pass","password":"n","passwordConfirm":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on confirmation mismatch, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("PUT", "/bff/account/password", strings.NewReader(`{"currentPassword":"old-pass","password":"new-pass","passwordConfirm":"new-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for password change, got %d", res.StatusCode)
	}
	s, _ := sessions.Get(req.Context(), "s-tok-7")
	if s.Token != "tok-7-r1" {
		t.Fatalf("expected rotated token on the session, got %q", s.Token)
	}
	foundCookie := false
	for _, ck := range res.Cookies() {
		if ck.Name == session.CookieToken && ck.Value == "tok-7-r1" {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Fatalf("expected token cookie to carry the rotated token")
	}
}

func TestAccount_DeleteMeClearsSession(t *testing.T) {
	app, sessions := makeAppWithUserHandler(seedRepo())

	req := httptest.NewRequest("DELETE", "/bff/account", nil)
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res.StatusCode)
	}
	if _, err := sessions.Get(req.Context(), "s-tok-7"); err != session.ErrNotFound {
		t.Fatalf("expected session to be removed, got %v", err)
	}

	// the account is gone upstream, so the old token now fails with 401
	req = httptest.NewRequest("GET", "/bff/account", nil)
	req.Header.Set("X-Session-Token", "tok-7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", res.StatusCode)
	}
}
