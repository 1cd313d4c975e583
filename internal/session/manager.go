package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
)

const (
	CookieToken   = "token"
	CookieSession = "sid"
	CookieLang    = "lang"

	localsSession = "session"
	localsLang    = "lang"
)

type Options struct {
	TTL         time.Duration
	Secure      bool
	DefaultLang string
}

type Manager struct {
	repo        Repository
	ttl         time.Duration
	secure      bool
	defaultLang string
	now         func() time.Time
	onEnd       []func(sessionID string)
}

func NewManager(repo Repository, opts Options) *Manager {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Manager{
		repo:        repo,
		ttl:         ttl,
		secure:      opts.Secure,
		defaultLang: opts.DefaultLang,
		now:         time.Now,
	}
}

// Middleware resolves the session and display language for every request
// and exposes the token to API calls through the user context.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		now := m.now()

		var sess *Session
		if sid := c.Cookies(CookieSession); sid != "" {
			s, err := m.repo.Get(ctx, sid)
			switch {
			case err == nil && !s.Expired(now) && !tokenExpired(s.Token, now):
				sess = &s
			case err == nil:
				_ = m.repo.Delete(ctx, sid)
				m.expireCookies(c)
			case errors.Is(err, ErrNotFound):
				m.expireCookies(c)
			default:
				zerolog.Ctx(ctx).Warn().Err(err).Msg("session lookup failed")
			}
		}

		if sess == nil {
			if tok := c.Cookies(CookieToken); tok != "" && !tokenExpired(tok, now) {
				s, err := m.Start(c, tok, nil)
				if err != nil {
					zerolog.Ctx(ctx).Warn().Err(err).Msg("session adopt failed")
				} else {
					sess = s
				}
			}
		}

		explicit := c.Cookies(CookieLang)
		if sess != nil {
			Put(c, sess)
			if sess.Lang != "" {
				explicit = sess.Lang
			}
		}
		c.Locals(localsLang, i18n.Negotiate(explicit, c.Get(fiber.HeaderAcceptLanguage), m.defaultLang))

		return c.Next()
	}
}

// Start opens a new session for token and sets the token and sid cookies.
// token may point into the request buffer, so the session keeps a copy.
func (m *Manager) Start(c *fiber.Ctx, token string, user *Profile) (*Session, error) {
	token = utils.CopyString(token)
	now := m.now()
	expires := now.Add(m.ttl)
	if exp, ok := TokenExpiry(token); ok && exp.Before(expires) {
		expires = exp
	}

	// only an explicit choice sticks to the session
	lang := i18n.Normalize(c.Cookies(CookieLang))
	prev := FromCtx(c)
	if prev != nil && prev.Lang != "" {
		lang = prev.Lang
	}
	s := &Session{
		ID:        uuid.New().String(),
		Token:     token,
		User:      user,
		Lang:      lang,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	if prev != nil {
		_ = m.repo.Delete(c.UserContext(), prev.ID)
		m.ended(prev.ID)
	}
	if err := m.repo.Save(c.UserContext(), *s); err != nil {
		return nil, err
	}

	m.setCookie(c, CookieToken, token, expires)
	m.setCookie(c, CookieSession, s.ID, expires)
	Put(c, s)
	return s, nil
}

// Clear drops the server record and both auth cookies.
func (m *Manager) Clear(c *fiber.Ctx) error {
	var err error
	if s := FromCtx(c); s != nil && s.ID != "" {
		err = m.repo.Delete(c.UserContext(), s.ID)
		m.ended(s.ID)
	}
	m.expireCookies(c)
	c.Locals(localsSession, nil)
	c.SetUserContext(apiclient.WithToken(c.UserContext(), ""))
	return err
}

// SetToken swaps the bearer token, e.g. after a password change.
func (m *Manager) SetToken(c *fiber.Ctx, token string) error {
	s := FromCtx(c)
	if s == nil {
		_, err := m.Start(c, token, nil)
		return err
	}
	token = utils.CopyString(token)
	s.Token = token
	if exp, ok := TokenExpiry(token); ok {
		s.ExpiresAt = exp
	}
	if err := m.repo.Save(c.UserContext(), *s); err != nil {
		return err
	}
	m.setCookie(c, CookieToken, token, s.ExpiresAt)
	Put(c, s)
	return nil
}

func (m *Manager) SetUser(c *fiber.Ctx, user *Profile) error {
	return m.update(c, func(s *Session) { s.User = user })
}

func (m *Manager) SetWishlist(c *fiber.Ctx, productIDs []string) error {
	return m.update(c, func(s *Session) { s.Wishlist = productIDs })
}

// SetLang persists the language choice in a cookie and, when signed in, on
// the session.
func (m *Manager) SetLang(c *fiber.Ctx, lang string) error {
	lang = i18n.Normalize(lang)
	if lang == "" {
		return errs.WithKey(errs.ErrBadRequest, "error")
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieLang,
		Value:    lang,
		Path:     "/",
		Expires:  m.now().Add(365 * 24 * time.Hour),
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(localsLang, lang)
	if FromCtx(c) == nil {
		return nil
	}
	return m.update(c, func(s *Session) { s.Lang = lang })
}

// OnEnd registers fn to run when a session is cleared or replaced by a new
// one. Call it before serving requests.
func (m *Manager) OnEnd(fn func(sessionID string)) {
	m.onEnd = append(m.onEnd, fn)
}

func (m *Manager) ended(id string) {
	for _, fn := range m.onEnd {
		fn(id)
	}
}

func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	return m.repo.DeleteExpired(ctx, m.now())
}

func (m *Manager) update(c *fiber.Ctx, fn func(*Session)) error {
	s := FromCtx(c)
	if s == nil {
		return errs.ErrUnauthorized
	}
	fn(s)
	return m.repo.Save(c.UserContext(), *s)
}

func (m *Manager) setCookie(c *fiber.Ctx, name, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *Manager) expireCookies(c *fiber.Ctx) {
	for _, name := range []string{CookieToken, CookieSession} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

// Put attaches s to the request and forwards its token to API calls.
func Put(c *fiber.Ctx, s *Session) {
	c.Locals(localsSession, s)
	c.SetUserContext(apiclient.WithToken(c.UserContext(), s.Token))
}

func FromCtx(c *fiber.Ctx) *Session {
	s, _ := c.Locals(localsSession).(*Session)
	return s
}

// Require returns the signed-in session or errs.ErrUnauthorized.
func Require(c *fiber.Ctx) (*Session, error) {
	s := FromCtx(c)
	if !s.Authenticated() {
		return nil, errs.ErrUnauthorized
	}
	return s, nil
}

// Lang is the negotiated display language of the request.
func Lang(c *fiber.Ctx) string {
	if l, ok := c.Locals(localsLang).(string); ok && l != "" {
		return l
	}
	return i18n.Arabic
}

// Key identifies the browser for per-visitor state such as the search
// debouncer: the session id when there is one, else the client address.
func Key(c *fiber.Ctx) string {
	if s := FromCtx(c); s != nil && s.ID != "" {
		return s.ID
	}
	return "ip:" + c.IP()
}
