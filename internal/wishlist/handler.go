package wishlist

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/events"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service  *Service
	sessions *session.Manager
	events   events.Publisher
	resp     *web.Responder
}

func NewHandler(s *Service, sessions *session.Manager, publisher events.Publisher, resp *web.Responder) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handler{service: s, sessions: sessions, events: publisher, resp: resp}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/bff/wishlist", h.getWishlist)
	r.Post("/bff/wishlist", h.addItem)
	r.Delete("/bff/wishlist/:productId", h.removeItem)
	r.Post("/bff/wishlist/:productId/toggle", h.toggle)
	r.Get("/bff/pages/wishlist", h.wishlistPage)
}

// remember caches the ids on the session; a failure only costs the badge.
func (h *Handler) remember(c *fiber.Ctx, ids []string) {
	if err := h.sessions.SetWishlist(c, ids); err != nil {
		zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("wishlist ids not cached")
	}
}

func (h *Handler) load(c *fiber.Ctx) (fiber.Map, error) {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	h.remember(c, ids)
	return fiber.Map{"data": items, "ids": ids, "count": len(ids)}, nil
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	data, err := h.load(c)
	if err != nil {
		return h.resp.Fail(c, err, "wishlistFailed")
	}
	return c.JSON(data)
}

func (h *Handler) wishlistPage(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	data, err := h.load(c)
	if err != nil {
		return h.resp.Fail(c, err, "wishlistFailed")
	}
	return web.Page(c, data)
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil || payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}
	ids, err := h.service.Add(c.UserContext(), payload.ProductID)
	if err != nil {
		return h.resp.Fail(c, err, "wishlistFailed")
	}
	h.remember(c, ids)
	h.events.Publish(c.UserContext(), sess.ID, events.WishlistToggled, fiber.Map{"productId": payload.ProductID, "added": true})
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"ids": ids, "inWishlist": true}, "addedToWishlist")
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	id := c.Params("productId")
	ids, err := h.service.Remove(c.UserContext(), id)
	if err != nil {
		return h.resp.Fail(c, err, "wishlistFailed")
	}
	h.remember(c, ids)
	h.events.Publish(c.UserContext(), sess.ID, events.WishlistToggled, fiber.Map{"productId": id, "added": false})
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"ids": ids, "inWishlist": false}, "removedFromWishlist")
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	id := c.Params("productId")
	ids, added, err := h.service.Toggle(c.UserContext(), id)
	if err != nil {
		return h.resp.Fail(c, err, "wishlistFailed")
	}
	h.remember(c, ids)
	h.events.Publish(c.UserContext(), sess.ID, events.WishlistToggled, fiber.Map{"productId": id, "added": added})
	toast := "removedFromWishlist"
	if added {
		toast = "addedToWishlist"
	}
	return h.resp.OK(c, fiber.StatusOK, fiber.Map{"ids": ids, "inWishlist": added}, toast)
}
