package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

func makeApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Post("/login", func(c *fiber.Ctx) error {
		_, err := m.Start(c, c.Query("token"), &Profile{ID: "u1", Name: "Mona", Role: c.Query("role")})
		if err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		s, err := Require(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.JSON(fiber.Map{
			"token": apiclient.TokenFrom(c.UserContext()),
			"admin": s.IsAdmin(),
			"lang":  Lang(c),
		})
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		return m.Clear(c)
	})
	app.Put("/lang/:lang", func(c *fiber.Ctx) error {
		if err := m.SetLang(c, c.Params("lang")); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{"lang": Lang(c)})
	})
	return app
}

func cookiesFrom(res *http.Response) []*http.Cookie {
	return res.Cookies()
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, ck := range cookies {
		if ck.Value != "" {
			req.AddCookie(ck)
		}
	}
	return req
}

func TestManager_StartLoadClear(t *testing.T) {
	repo := NewInMemoryRepository()
	m := NewManager(repo, Options{TTL: time.Hour, DefaultLang: "ar"})
	app := makeApp(m)

	res, err := app.Test(httptest.NewRequest("POST", "/login?token=tok-1&role=admin", nil))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	cookies := cookiesFrom(res)
	if len(cookies) < 2 {
		t.Fatalf("expected token and sid cookies, got %d", len(cookies))
	}

	req := withCookies(httptest.NewRequest("GET", "/whoami", nil), cookies)
	req.Header.Set("Accept-Language", "en-US")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for whoami, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"token":"tok-1"`) || !strings.Contains(body, `"admin":true`) || !strings.Contains(body, `"lang":"en"`) {
		t.Fatalf("unexpected whoami body %s", body)
	}

	res, _ = app.Test(withCookies(httptest.NewRequest("POST", "/logout", nil), cookies))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for logout, got %d", res.StatusCode)
	}
	for _, ck := range res.Cookies() {
		if (ck.Name == CookieToken || ck.Name == CookieSession) && ck.Value != "" {
			t.Fatalf("cookie %s should be cleared", ck.Name)
		}
	}

	// the old sid no longer resolves; only the sid cookie is replayed
	var sidOnly []*http.Cookie
	for _, ck := range cookies {
		if ck.Name == CookieSession {
			sidOnly = append(sidOnly, ck)
		}
	}
	res, _ = app.Test(withCookies(httptest.NewRequest("GET", "/whoami", nil), sidOnly))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", res.StatusCode)
	}
}

func TestManager_AdoptsTokenCookie(t *testing.T) {
	m := NewManager(NewInMemoryRepository(), Options{})
	app := makeApp(m)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "tok-cookie"})
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected token cookie to authenticate, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"admin":false`) {
		t.Fatalf("profile-less session must not be admin: %s", b)
	}
}

func TestManager_AdoptedTokenSurvivesLaterRequests(t *testing.T) {
	repo := NewInMemoryRepository()
	m := NewManager(repo, Options{})
	app := makeApp(m)

	first := strings.Repeat("A", 48)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: first})
	req.AddCookie(&http.Cookie{Name: CookieLang, Value: "en"})
	res, err := app.Test(req)
	if err != nil || res.StatusCode != fiber.StatusOK {
		t.Fatalf("adopt failed: %v %v", err, res)
	}
	var sid string
	for _, ck := range res.Cookies() {
		if ck.Name == CookieSession {
			sid = ck.Value
		}
	}
	if sid == "" {
		t.Fatalf("expected a sid cookie")
	}

	for i := 0; i < 20; i++ {
		other := httptest.NewRequest("GET", "/whoami", nil)
		other.AddCookie(&http.Cookie{Name: CookieToken, Value: strings.Repeat("Z", 48)})
		other.AddCookie(&http.Cookie{Name: CookieLang, Value: "ar"})
		if _, err := app.Test(other); err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
	}

	s, err := repo.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("session lost: %v", err)
	}
	if s.Token != first || s.Lang != "en" {
		t.Fatalf("stored session changed: token=%q lang=%q", s.Token, s.Lang)
	}

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieSession, Value: sid})
	res, _ = app.Test(req)
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), fmt.Sprintf(`"token":"%s"`, first)) {
		t.Fatalf("expected the adopted token as bearer, got %s", b)
	}
}

func TestManager_OnEndRunsOnLogoutAndRelogin(t *testing.T) {
	m := NewManager(NewInMemoryRepository(), Options{})
	var ended []string
	m.OnEnd(func(id string) { ended = append(ended, id) })
	app := makeApp(m)

	res, err := app.Test(httptest.NewRequest("POST", "/login?token=tok-1", nil))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	first := cookiesFrom(res)

	res, err = app.Test(withCookies(httptest.NewRequest("POST", "/login?token=tok-2", nil), first))
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if len(ended) != 1 {
		t.Fatalf("expected the replaced session to end, got %v", ended)
	}
	second := cookiesFrom(res)

	if _, err := app.Test(withCookies(httptest.NewRequest("POST", "/logout", nil), second)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(ended) != 2 || ended[0] == ended[1] {
		t.Fatalf("expected logout to end the second session, got %v", ended)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "u1", "exp": exp.Unix()})
	s, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestManager_ExpiredJWTIsDropped(t *testing.T) {
	m := NewManager(NewInMemoryRepository(), Options{})
	app := makeApp(m)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: signedToken(t, time.Now().Add(-time.Minute))})
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected expired token to be ignored, got %d", res.StatusCode)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(signedToken(t, exp))
	if !ok || !got.Equal(exp) {
		t.Fatalf("expected exp %v, got %v (ok=%v)", exp, got, ok)
	}
	if _, ok := TokenExpiry("opaque-token"); ok {
		t.Fatalf("opaque token should have no expiry")
	}
}

func TestManager_SetLang(t *testing.T) {
	m := NewManager(NewInMemoryRepository(), Options{DefaultLang: "ar"})
	app := makeApp(m)

	res, _ := app.Test(httptest.NewRequest("PUT", "/lang/en", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	found := false
	for _, ck := range res.Cookies() {
		if ck.Name == CookieLang && ck.Value == "en" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lang cookie to be set")
	}

	res, _ = app.Test(httptest.NewRequest("PUT", "/lang/fr", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported lang, got %d", res.StatusCode)
	}
}

func TestInMemoryRepository_DeleteExpired(t *testing.T) {
	repo := NewInMemoryRepository()
	now := time.Now()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_ = repo.Save(ctx, Session{ID: fmt.Sprint("s", i), Token: "t", ExpiresAt: now.Add(time.Duration(i-1) * time.Hour)})
	}
	n, err := repo.DeleteExpired(ctx, now)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 expired session removed, got %d (%v)", n, err)
	}
	if _, err := repo.Get(ctx, "s0"); err != ErrNotFound {
		t.Fatalf("expected s0 gone, got %v", err)
	}
}
