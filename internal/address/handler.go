package address

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

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/bff/addresses", h.getAddresses)
	r.Post("/bff/addresses", h.addAddress)
	r.Put("/bff/addresses/:id", h.updateAddress)
	r.Delete("/bff/addresses/:id", h.deleteAddress)
}

func (h *Handler) getAddresses(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	addrs, err := h.service.List(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "addressFailed")
	}
	return c.JSON(fiber.Map{"data": addrs})
}

func (h *Handler) addAddress(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(Input)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	a, err := h.service.Add(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "addressFailed")
	}
	return h.resp.OK(c, fiber.StatusCreated, fiber.Map{"data": a}, "addressSaved")
}

func (h *Handler) updateAddress(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(Input)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	a, err := h.service.Update(c.UserContext(), c.Params("id"), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "addressFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"data": a}, "addressSaved")
}

func (h *Handler) deleteAddress(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.resp.Fail(c, err, "addressFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, nil, "addressDeleted")
}
