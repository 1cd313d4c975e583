// Package home assembles the landing page: hero slides, category circles and
// the product strips.
package home

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/banner"
	"github.com/wichananm65/fashion-storefront/internal/category"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

const SectionLimit = 8

type Section struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Link     string            `json:"link"`
	Products []product.Product `json:"products"`
}

type Page struct {
	Slides   []banner.Slide    `json:"slides"`
	Circles  []category.Circle `json:"circles"`
	Sections []Section         `json:"sections"`
}

type sectionDef struct {
	key, sort, link string
	sale            bool
}

var sectionDefs = []sectionDef{
	{key: "bestSellers", sort: "bestsellers", link: "/shop?sort=bestsellers"},
	{key: "topRated", sort: "rating", link: "/shop?sort=rating"},
	{key: "newArrivals", sort: "newest", link: "/shop?sort=newest"},
	{key: "flashSale", sort: "newest", link: "/shop?sale=true", sale: true},
}

// Lister is the product lookup the sections need.
type Lister interface {
	Section(ctx context.Context, sortBy string, sale bool, limit int) ([]product.Product, error)
}

type Service struct {
	products Lister
}

func NewService(products Lister) *Service {
	return &Service{products: products}
}

// Build loads all sections concurrently. A failing section renders empty.
func (s *Service) Build(ctx context.Context, lang string) Page {
	sections := make([]Section, len(sectionDefs))
	var wg sync.WaitGroup
	for i, def := range sectionDefs {
		wg.Add(1)
		go func(i int, def sectionDef) {
			defer wg.Done()
			items, err := s.products.Section(ctx, def.sort, def.sale, SectionLimit)
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("section", def.key).Msg("home section unavailable")
				items = []product.Product{}
			}
			sections[i] = Section{Key: def.key, Title: i18n.T(lang, def.key), Link: def.link, Products: items}
		}(i, def)
	}
	wg.Wait()

	return Page{
		Slides:   banner.Slides(lang, 0),
		Circles:  category.Circles(lang),
		Sections: sections,
	}
}
