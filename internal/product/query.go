package product

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 12
	maxLimit     = 100
)

var sortFields = map[string]string{
	"newest":      "-createdAt",
	"oldest":      "createdAt",
	"price-low":   "price",
	"price-high":  "-price",
	"rating":      "-ratingsAverage",
	"bestsellers": "-sold",
	"name":        "title",
}

type ListParams struct {
	Page        int
	Limit       int
	SortBy      string
	Category    string
	Subcategory string
	Brand       string
	PriceMin    float64
	PriceMax    float64
	Keyword     string
	Sale        bool
}

// SortField maps a UI sort choice onto the API sort expression. Raw API
// expressions like "-sold" pass through.
func SortField(sortBy string) string {
	if f, ok := sortFields[sortBy]; ok {
		return f
	}
	if strings.HasPrefix(sortBy, "-") {
		return sortBy
	}
	for _, f := range sortFields {
		if f == sortBy {
			return f
		}
	}
	return ""
}

func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	p.Keyword = strings.TrimSpace(p.Keyword)
	return p
}

// Query renders the params as the API's query string.
func (p ListParams) Query() url.Values {
	p = p.normalized()
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if s := SortField(p.SortBy); s != "" {
		q.Set("sort", s)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Subcategory != "" {
		q.Set("subcategory", p.Subcategory)
	}
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.PriceMin > 0 {
		q.Set("price[gte]", strconv.FormatFloat(p.PriceMin, 'f', -1, 64))
	}
	if p.PriceMax > 0 {
		q.Set("price[lte]", strconv.FormatFloat(p.PriceMax, 'f', -1, 64))
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Sale {
		q.Set("priceAfterDiscount", "true")
	}
	return q
}

// ParamsFromRequest reads the shop page's query string. "search" and
// "keyword" are accepted for the search term.
func ParamsFromRequest(c *fiber.Ctx) ListParams {
	keyword := c.Query("search")
	if keyword == "" {
		keyword = c.Query("keyword")
	}
	sortBy := c.Query("sort", "newest")
	return ListParams{
		Page:        c.QueryInt("page", 1),
		Limit:       c.QueryInt("limit", DefaultLimit),
		SortBy:      sortBy,
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Brand:       c.Query("brand"),
		PriceMin:    c.QueryFloat("priceMin", 0),
		PriceMax:    c.QueryFloat("priceMax", 0),
		Keyword:     keyword,
		Sale:        c.QueryBool("sale", false),
	}
}
