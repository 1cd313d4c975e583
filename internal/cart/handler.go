package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/fashion-storefront/internal/events"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	store     *Store
	threshold float64
	events    events.Publisher
	resp      *web.Responder
}

func NewHandler(store *Store, threshold float64, publisher events.Publisher, resp *web.Responder) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handler{store: store, threshold: threshold, events: publisher, resp: resp}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/bff/cart", h.getCart)
	r.Post("/bff/cart", h.addItem)
	r.Delete("/bff/cart", h.clear)
	r.Put("/bff/cart/items/:id", h.updateQuantity)
	r.Delete("/bff/cart/items/:id", h.removeItem)
	r.Put("/bff/cart/coupon", h.applyCoupon)
	r.Get("/bff/pages/cart", h.cartPage)
}

func (h *Handler) view(c *fiber.Ctx, cart Cart) fiber.Map {
	lang := session.Lang(c)
	sum := Summarize(cart, h.threshold)
	return fiber.Map{
		"cart":    cart,
		"summary": sum,
		"labels": fiber.Map{
			"subtotal":             i18n.FormatPrice(lang, sum.Subtotal),
			"discount":             i18n.FormatPrice(lang, sum.Discount),
			"total":                i18n.FormatPrice(lang, sum.Total),
			"amountToFreeShipping": i18n.FormatPrice(lang, sum.FreeShipping.Remaining),
		},
	}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	cart, err := h.store.Load(c.UserContext(), sess.ID)
	if err != nil {
		return h.resp.Fail(c, err, "cartLoadFailed")
	}
	return c.JSON(h.view(c, cart))
}

func (h *Handler) cartPage(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	cart, err := h.store.Load(c.UserContext(), sess.ID)
	if err != nil {
		return h.resp.Fail(c, err, "cartLoadFailed")
	}
	return web.Page(c, h.view(c, cart))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(AddInput)
	if err := c.BodyParser(payload); err != nil || payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}
	cart, err := h.store.Add(c.UserContext(), sess.ID, *payload)
	if err != nil {
		return h.resp.Fail(c, err, "addToCartFailed")
	}
	h.events.Publish(c.UserContext(), sess.ID, events.CartItemAdded, payload)
	return h.resp.OK(c, fiber.StatusOK, h.view(c, cart), "addedToCart")
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cart, err := h.store.UpdateQuantity(c.UserContext(), sess.ID, c.Params("id"), payload.Quantity)
	if err != nil {
		return h.resp.Fail(c, err, "cartUpdateFailed")
	}
	h.events.Publish(c.UserContext(), sess.ID, events.CartUpdated, fiber.Map{"item": c.Params("id"), "quantity": payload.Quantity})
	return h.resp.OK(c, fiber.StatusOK, h.view(c, cart), "cartUpdated")
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	cart, err := h.store.Remove(c.UserContext(), sess.ID, c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "cartUpdateFailed")
	}
	return h.resp.OK(c, fiber.StatusOK, h.view(c, cart), "itemRemoved")
}

func (h *Handler) clear(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	cart, err := h.store.Clear(c.UserContext(), sess.ID)
	if err != nil {
		return h.resp.Fail(c, err, "cartUpdateFailed")
	}
	h.events.Publish(c.UserContext(), sess.ID, events.CartCleared, nil)
	return h.resp.OK(c, fiber.StatusOK, h.view(c, cart), "cartCleared")
}

type couponRequest struct {
	Coupon string `json:"coupon"`
}

func (h *Handler) applyCoupon(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(couponRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cart, err := h.store.ApplyCoupon(c.UserContext(), sess.ID, payload.Coupon)
	if err != nil {
		return h.resp.Fail(c, err, "couponInvalid")
	}
	h.events.Publish(c.UserContext(), sess.ID, events.CouponApplied, fiber.Map{"coupon": cart.Coupon})
	return h.resp.OK(c, fiber.StatusOK, h.view(c, cart), "couponApplied")
}
