package category

import (
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
	r.Get("/bff/categories", h.getCategories)
	r.Get("/bff/categories/circles", h.getCircles)
	r.Get("/bff/categories/:id", h.getCategory)
	r.Get("/bff/subcategories", h.getSubcategories)
	r.Get("/bff/brands", h.getBrands)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	items, err := h.service.Categories(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "categoriesLoadFailed")
	}
	return c.JSON(fiber.Map{"data": items})
}

func (h *Handler) getCircles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": Circles(session.Lang(c))})
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	cat, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "categoriesLoadFailed")
	}
	subs, err := h.service.Subcategories(c.UserContext(), cat.ID)
	if err != nil {
		// subcategories are decoration on this screen
		subs = []Subcategory{}
	}
	return c.JSON(fiber.Map{"data": cat, "subcategories": subs})
}

func (h *Handler) getSubcategories(c *fiber.Ctx) error {
	subs, err := h.service.Subcategories(c.UserContext(), c.Query("category"))
	if err != nil {
		return h.resp.Fail(c, err, "categoriesLoadFailed")
	}
	return c.JSON(fiber.Map{"data": subs})
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	items, err := h.service.Brands(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "brandsLoadFailed")
	}
	return c.JSON(fiber.Map{"data": items})
}
