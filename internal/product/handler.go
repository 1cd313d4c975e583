package product

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/category"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/review"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/web"
)

type Handler struct {
	service    *Service
	categories *category.Service
	reviews    *review.Service
	resp       *web.Responder
}

func NewHandler(s *Service, categories *category.Service, reviews *review.Service, resp *web.Responder) *Handler {
	return &Handler{service: s, categories: categories, reviews: reviews, resp: resp}
}

func (h *Handler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/bff/products", h.getProducts)
	r.Get("/bff/products/:id", h.getProduct)
	r.Get("/bff/pages/shop", h.shopPage)
	r.Get("/bff/pages/product/:id", h.productPage)
}

func (h *Handler) params(c *fiber.Ctx) ListParams {
	p := ParamsFromRequest(c)
	p.Category = h.categories.ResolveID(c.UserContext(), p.Category)
	return p
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	res, err := h.service.List(c.UserContext(), h.params(c))
	if err != nil {
		return h.resp.Fail(c, err, "productsLoadFailed")
	}
	return c.JSON(res)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "productLoadFailed")
	}
	return c.JSON(fiber.Map{"data": p})
}

func (h *Handler) shopPage(c *fiber.Ctx) error {
	lang := session.Lang(c)
	params := h.params(c)

	res, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return h.resp.Fail(c, err, "productsLoadFailed")
	}
	cats, err := h.categories.Categories(c.UserContext())
	if err != nil {
		zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("shop page without categories")
		cats = []category.Category{}
	}

	title := i18n.T(lang, "shop")
	if params.Keyword != "" {
		title = i18n.T(lang, "searchResultsFor") + ": " + params.Keyword
	}
	return web.Page(c, fiber.Map{
		"title":      title,
		"products":   res.Data,
		"categories": cats,
		"sort":       params.SortBy,
		"pagination": fiber.Map{
			"currentPage": params.normalized().Page,
			"totalPages":  res.PaginationResult.TotalPages(),
		},
	})
}

func (h *Handler) productPage(c *fiber.Ctx) error {
	lang := session.Lang(c)
	p, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.resp.Fail(c, err, "productLoadFailed")
	}
	reviews, summary := h.reviews.ForProduct(c.UserContext(), p.ID)

	return web.Page(c, fiber.Map{
		"product":         p,
		"reviews":         reviews,
		"summary":         summary,
		"inStock":         p.InStock(),
		"discountPercent": p.DiscountPercent(),
		"finalPrice":      p.FinalPrice(),
		"priceLabel":      i18n.FormatPrice(lang, p.FinalPrice()),
		"inWishlist":      session.FromCtx(c).InWishlist(p.ID),
	})
}
