package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/bff/pages/home", h.homePage)
}

func (h *Handler) homePage(c *fiber.Ctx) error {
	page := h.service.Build(c.UserContext(), session.Lang(c))
	return web.Page(c, fiber.Map{
		"slides":   page.Slides,
		"circles":  page.Circles,
		"sections": page.Sections,
	})
}
