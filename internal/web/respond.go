// Package web renders action results and failures for the storefront UI:
// every answer carries a localized toast, and unauthorized answers tell the
// browser where to log in again.
package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/session"
)

type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"`
}

type Responder struct {
	sessions  *session.Manager
	loginPath string
	// admin screens also bounce on 403
	forbiddenLogsOut bool
}

func NewResponder(sessions *session.Manager) *Responder {
	return &Responder{sessions: sessions, loginPath: "/login"}
}

func NewAdminResponder(sessions *session.Manager) *Responder {
	return &Responder{sessions: sessions, loginPath: "/admin/login", forbiddenLogsOut: true}
}

// Fail answers with the status mapped from err and a destructive toast.
// fallbackKey is used when neither the API nor err carries a message.
func (r *Responder) Fail(c *fiber.Ctx, err error, fallbackKey string) error {
	lang := session.Lang(c)
	status := errs.GetErrorStatusCode(err)

	body := fiber.Map{}
	if errors.Is(err, errs.ErrUnauthorized) || (r.forbiddenLogsOut && errors.Is(err, errs.ErrForbidden)) {
		if clearErr := r.sessions.Clear(c); clearErr != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(clearErr).Msg("session clear failed")
		}
		body["redirect"] = r.loginPath
		if errors.Is(err, errs.ErrUnauthorized) {
			fallbackKey = "sessionExpired"
		}
	}

	msg := Message(lang, err, fallbackKey)
	if status >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	body["message"] = msg
	body["toast"] = Toast{Title: i18n.T(lang, "error"), Description: msg, Variant: "destructive"}
	return c.Status(status).JSON(body)
}

// OK wraps data with a success toast. An empty toastKey sends no toast.
func (r *Responder) OK(c *fiber.Ctx, status int, data fiber.Map, toastKey string) error {
	if data == nil {
		data = fiber.Map{}
	}
	if toastKey != "" {
		lang := session.Lang(c)
		data["toast"] = Toast{Title: i18n.T(lang, "success"), Description: i18n.T(lang, toastKey)}
	}
	return c.Status(status).JSON(data)
}

// Message picks the most specific text for err: the API's own message, then
// the key attached to err, then the fallback key.
func Message(lang string, err error, fallbackKey string) string {
	if m := apiclient.MessageOf(err); m != "" {
		return m
	}
	if k := errs.Key(err); k != "" {
		return i18n.T(lang, k)
	}
	if errors.Is(err, errs.ErrCircuitOpen) || errors.Is(err, errs.ErrUpstream) {
		return i18n.T(lang, "serviceUnavailable")
	}
	if fallbackKey == "" {
		fallbackKey = "error"
	}
	return i18n.T(lang, fallbackKey)
}

// Page wraps a page view model with the language metadata every screen needs.
func Page(c *fiber.Ctx, data fiber.Map) error {
	lang := session.Lang(c)
	data["lang"] = lang
	data["dir"] = i18n.Dir(lang)
	if s := session.FromCtx(c); s.Authenticated() {
		data["user"] = s.User
	}
	return c.JSON(data)
}
