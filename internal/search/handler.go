package search

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service *Service
	resp    *web.Responder
}

func NewHandler(s *Service, resp *web.Responder) *Handler {
	return &Handler{service: s, resp: resp}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/bff/search/suggest", h.suggest)
	r.Get("/bff/search", h.submit)
}

func (h *Handler) suggest(c *fiber.Ctx) error {
	res, err := h.service.Suggest(c.UserContext(), session.Key(c), c.Query("q"))
	if err != nil {
		return h.resp.Fail(c, err, "searchFailed")
	}
	return c.JSON(res)
}

// submit answers the enter key: the shop page filtered by the query.
func (h *Handler) submit(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	target := "/shop"
	if q != "" {
		target += "?search=" + url.QueryEscape(q)
	}
	return c.JSON(fiber.Map{"redirect": target})
}
