package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service  *Service
	sessions *session.Manager
	resp     *web.Responder
	admin    *web.Responder
}

func NewHandler(service *Service, sessions *session.Manager) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		resp:     web.NewResponder(sessions),
		admin:    web.NewAdminResponder(sessions),
	}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/bff/auth/login", h.login)
	r.Post("/bff/auth/signup", h.signup)
	r.Post("/bff/auth/logout", h.logout)
	r.Post("/bff/admin/login", h.adminLogin)
	r.Get("/bff/session", h.current)
	r.Put("/bff/lang", h.setLang)
}

type loginRequest struct {
	Credentials
	CallbackURL string `json:"callbackUrl"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	res, err := h.service.Login(c.UserContext(), payload.Credentials)
	if err != nil {
		return h.resp.Fail(c, err, "loginFailed")
	}
	if _, err := h.sessions.Start(c, res.Token, res.User.Profile()); err != nil {
		return h.resp.Fail(c, err, "loginFailed")
	}
	callback := payload.CallbackURL
	if callback == "" {
		callback = c.Query("callbackUrl")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{
		"user":     res.User,
		"redirect": SafeCallback(callback, "/"),
	}, "loginSuccess")
}

func (h *Handler) signup(c *fiber.Ctx) error {
	payload := new(SignupInput)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	res, err := h.service.Signup(c.UserContext(), *payload)
	if err != nil {
		return h.resp.Fail(c, err, "signupFailed")
	}
	if res.Token != "" {
		if _, err := h.sessions.Start(c, res.Token, res.User.Profile()); err != nil {
			return h.resp.Fail(c, err, "signupFailed")
		}
	}
	redirect := "/"
	if res.Token == "" {
		redirect = "/login"
	}
	return h.resp.OK(c, fiber.StatusCreated, fiber.Map{"user": res.User, "redirect": redirect}, "signupSuccess")
}

func (h *Handler) logout(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"redirect": "/"}, "logoutSuccess")
}

func (h *Handler) adminLogin(c *fiber.Ctx) error {
	payload := new(Credentials)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	res, err := h.service.AdminLogin(c.UserContext(), *payload)
	if err != nil {
		return h.admin.Fail(c, err, "loginFailed")
	}
	if _, err := h.sessions.Start(c, res.Token, res.User.Profile()); err != nil {
		return h.admin.Fail(c, err, "loginFailed")
	}
	return h.admin.OK(c, fiber.StatusOK, fiber.Map{"user": res.User, "redirect": "/admin"}, "loginSuccess")
}

func (h *Handler) current(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	out := fiber.Map{"authenticated": s.Authenticated(), "admin": s.IsAdmin()}
	if s.Authenticated() {
		out["wishlistCount"] = len(s.Wishlist)
	}
	return web.Page(c, out)
}

func (h *Handler) setLang(c *fiber.Ctx) error {
	payload := new(struct {
		Lang string `json:"lang"`
	})
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.sessions.SetLang(c, payload.Lang); err != nil {
		return h.resp.Fail(c, err, "")
	}
	lang := session.Lang(c)
	return c.JSON(fiber.Map{"lang": lang, "dir": i18n.Dir(lang)})
}
