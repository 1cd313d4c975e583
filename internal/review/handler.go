package review

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
	r.Get("/bff/products/:id/reviews", h.list)
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Post("/bff/products/:id/reviews", h.create)
	r.Put("/bff/reviews/:id", h.update)
	r.Delete("/bff/reviews/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	reviews, summary := h.service.ForProduct(c.UserContext(), c.Params("id"))
	return c.JSON(fiber.Map{"data": reviews, "summary": summary})
}

func (h *Handler) create(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(Input)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.Product = c.Params("id")
	rv, err := h.service.Create(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "reviewFailed")
	}
	return h.resp.OK(c, fiber.StatusCreated, fiber.Map{"data": rv}, "reviewSaved")
}

func (h *Handler) update(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(Input)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	rv, err := h.service.Update(c.UserContext(), c.Params("id"), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "reviewFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": rv}, "reviewSaved")
}

func (h *Handler) delete(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "reviewFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "reviewDeleted")
}
