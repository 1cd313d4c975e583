package product

import (
	"math"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Product struct {
	ID                 string          `json:"_id"`
	Title              string          `json:"title"`
	Slug               string          `json:"slug,omitempty"`
	Description        string          `json:"description,omitempty"`
	Quantity           int             `json:"quantity"`
	Sold               int             `json:"sold,omitempty"`
	Price              float64         `json:"price"`
	PriceAfterDiscount float64         `json:"priceAfterDiscount,omitempty"`
	Colors             []string        `json:"colors,omitempty"`
	Sizes              []string        `json:"sizes,omitempty"`
	ImageCover         string          `json:"imageCover,omitempty"`
	Images             []string        `json:"images,omitempty"`
	Category           apiclient.Ref   `json:"category"`
	Subcategories      []apiclient.Ref `json:"subcategories,omitempty"`
	Brand              *apiclient.Ref  `json:"brand,omitempty"`
	RatingsAverage     float64         `json:"ratingsAverage,omitempty"`
	RatingsQuantity    int             `json:"ratingsQuantity,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
}

var ErrNotFound = errs.WithKey(errs.ErrNotFound, "productLoadFailed")

func (p Product) InStock() bool {
	return p.Quantity > 0
}

// OnSale is true when a discounted price below the list price is set.
func (p Product) OnSale() bool {
	return p.PriceAfterDiscount > 0 && p.PriceAfterDiscount < p.Price
}

// FinalPrice is what the shopper pays per unit.
func (p Product) FinalPrice() float64 {
	if p.OnSale() {
		return p.PriceAfterDiscount
	}
	return p.Price
}

// DiscountPercent is rounded to a whole percent; 0 when not on sale.
func (p Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	return int(math.Round((p.Price - p.PriceAfterDiscount) / p.Price * 100))
}
