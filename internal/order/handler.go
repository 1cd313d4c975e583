package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/address"
	"github.com/wichananm65/fashion-storefront/internal/cart"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service   *Service
	carts     *cart.Store
	addresses *address.Service
	threshold float64
	resp      *web.Responder
}

func NewHandler(s *Service, carts *cart.Store, addresses *address.Service, threshold float64, resp *web.Responder) *Handler {
	return &Handler{service: s, carts: carts, addresses: addresses, threshold: threshold, resp: resp}
}

func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Post("/bff/orders", h.createOrder)
	r.Get("/bff/orders", h.getOrders)
	r.Get("/bff/orders/:id", h.getOrder)
	r.Get("/bff/pages/checkout", h.checkoutPage)
	r.Get("/bff/pages/profile", h.profilePage)
}

type createOrderRequest struct {
	AddressID       string           `json:"addressId"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var addr ShippingAddress
	switch {
	case payload.ShippingAddress != nil:
		addr = *payload.ShippingAddress
	case payload.AddressID != "":
		saved, err := h.savedAddress(c, payload.AddressID)
		if err != nil {
			return h.resp.Fail(c, err, "orderFailed")
		}
		addr = saved
	default:
		return h.resp.Fail(c, ErrMissingFields, "orderFailed")
	}

	o, err := h.service.PlaceCash(c.UserContext(), sess.ID, addr)
	if err != nil {
		return h.resp.Fail(c, err, "orderFailed")
	}
	return h.resp.OK(c, fiber.StatusCreated, fiber.Map{
		"data":     NewView(o, session.Lang(c)),
		"redirect": "/profile/orders",
	}, "orderPlaced")
}

func (h *Handler) savedAddress(c *fiber.Ctx, id string) (ShippingAddress, error) {
	addrs, err := h.addresses.List(c.UserContext())
	if err != nil {
		return ShippingAddress{}, err
	}
	for _, a := range addrs {
		if a.ID == id {
			return ShippingAddress{Details: a.Details, Phone: a.Phone, City: a.City, PostalCode: a.PostalCode}, nil
		}
	}
	return ShippingAddress{}, ErrMissingFields
}

func views(orders []Order, lang string) []View {
	out := make([]View, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewView(o, lang))
	}
	return out
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	orders, err := h.service.ListMine(c.UserContext(), c.Query("search"))
	if err != nil {
		return h.resp.Fail(c, err, "ordersLoadFailed")
	}
	return c.JSON(fiber.Map{"data": views(orders, session.Lang(c))})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	o, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "ordersLoadFailed")
	}
	return c.JSON(fiber.Map{"data": NewView(o, session.Lang(c))})
}

// addressBook is decoration on the pages that show it.
func (h *Handler) addressBook(c *fiber.Ctx) []address.Address {
	addrs, err := h.addresses.List(c.UserContext())
	if err != nil {
		zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("address book unavailable")
		return []address.Address{}
	}
	return addrs
}

func (h *Handler) checkoutPage(c *fiber.Ctx) error {
	sess, err := session.Require(c)
	if err != nil {
		return h.resp.Fail(c, err, "")
	}
	current, err := h.carts.Load(c.UserContext(), sess.ID)
	if err != nil {
		return h.resp.Fail(c, err, "cartLoadFailed")
	}
	data := fiber.Map{
		"cart":      current,
		"summary":   cart.Summarize(current, h.threshold),
		"addresses": h.addressBook(c),
	}
	if current.Empty() {
		data["redirect"] = "/cart"
	}
	return web.Page(c, data)
}

func (h *Handler) profilePage(c *fiber.Ctx) error {
	if _, err := session.Require(c); err != nil {
		return h.resp.Fail(c, err, "")
	}
	orders, err := h.service.ListMine(c.UserContext(), c.Query("search"))
	if err != nil {
		return h.resp.Fail(c, err, "ordersLoadFailed")
	}
	return web.Page(c, fiber.Map{
		"orders":    views(orders, session.Lang(c)),
		"addresses": h.addressBook(c),
	})
}
