package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

const pagePrefix = "/bff/pages"

var (
	protectedPaths = []string{"/profile", "/cart", "/checkout", "/wishlist"}
	guestOnlyPaths = []string{"/login", "/signup"}
)

// PageGuard enforces the navigation rules: shopper pages need a token,
// admin pages need an admin session and the login screens bounce signed-in
// visitors home. Page data under /bff/pages answers with JSON, plain paths
// with a 302.
func PageGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		isData := strings.HasPrefix(path, pagePrefix+"/")
		if isData {
			path = strings.TrimPrefix(path, pagePrefix)
		} else if strings.HasPrefix(path, "/bff/") || path == "/metrics" {
			return c.Next()
		}

		target := redirectFor(path, session.FromCtx(c))
		if target == "" {
			return c.Next()
		}
		if isData {
			status := fiber.StatusUnauthorized
			if target == "/" {
				status = fiber.StatusOK
			}
			return c.Status(status).JSON(fiber.Map{"redirect": target})
		}
		return c.Redirect(target, fiber.StatusFound)
	}
}

func redirectFor(path string, s *session.Session) string {
	switch {
	case path == "/admin/login":
		return ""
	case matches(path, "/admin"):
		if !s.IsAdmin() {
			return "/admin/login"
		}
	case matchesAny(path, guestOnlyPaths):
		if s.Authenticated() {
			return "/"
		}
	case matchesAny(path, protectedPaths):
		if !s.Authenticated() {
			return "/login?callbackUrl=" + url.QueryEscape(path)
		}
	}
	return ""
}

func matches(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if matches(path, p) {
			return true
		}
	}
	return false
}

// AdminGuard protects the back-office API. When a secret is configured the
// token signature is verified too.
func AdminGuard(resp *web.Responder, jwtSecret string) fiber.Handler {
	var verify fiber.Handler
	if jwtSecret != "" {
		verify = jwtware.New(jwtware.Config{
			SigningKey:  []byte(jwtSecret),
			TokenLookup: "cookie:" + session.CookieToken,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return resp.Fail(c, errs.ErrUnauthorized, "")
			},
		})
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/bff/admin/login" {
			return c.Next()
		}
		s, err := session.Require(c)
		if err != nil {
			return resp.Fail(c, err, "")
		}
		if !s.IsAdmin() {
			return resp.Fail(c, ErrNotAdmin, "adminOnly")
		}
		if verify != nil {
			return verify(c)
		}
		return c.Next()
	}
}

// SafeCallback only allows same-site relative targets.
func SafeCallback(raw, def string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return def
	}
	return raw
}
