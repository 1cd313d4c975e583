package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service  *Service
	sessions *session.Manager
	resp     *web.Responder
}

func NewHandler(service *Service, sessions *session.Manager, resp *web.Responder) *Handler {
	return &Handler{service: service, sessions: sessions, resp: resp}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/bff/account", h.getMe)
	r.Put("/bff/account", h.updateMe)
	r.Put("/bff/account/password", h.changePassword)
	r.Delete("/bff/account", h.deleteMe)
}

func (h *Handler) getMe(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	u, err := h.service.GetMe(c.UserContext())
	if err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	// keep the cached header profile in step with the API
	if err := h.sessions.SetUser(c, u.Profile()); err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	return web.Page(c, fiber.Map{"user": u})
}

func (h *Handler) updateMe(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(UpdateInput)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	u, err := h.service.UpdateMe(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	if err := h.sessions.SetUser(c, u.Profile()); err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"user": u}, "profileUpdated")
}

func (h *Handler) changePassword(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(PasswordInput)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	u, token, err := h.service.ChangePassword(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "passwordFailed")
	}
	if token != "" {
		if err := h.sessions.SetToken(c, token); err != nil {
			return h.resp.Fail(c, err, "passwordFailed")
		}
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"user": u}, "passwordChanged")
}

func (h *Handler) deleteMe(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	if err := h.service.DeleteMe(c.UserContext()); err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	if err := h.sessions.Clear(c); err != nil {
		return h.resp.Fail(c, err, "profileFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"redirect": "/"}, "accountDeleted")
}
