package banner

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/session"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/bff/banners", h.getBanners)
}

func (h *Handler) getBanners(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": Slides(session.Lang(c), c.QueryInt("limit", 0))})
}
