// Package cart mirrors the signed-in shopper's server cart per session and
// applies quantity changes optimistically.
package cart

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/product"
)

const DefaultFreeShippingThreshold = 500

var (
	ErrOutOfStock      = errs.WithKey(errs.ErrConflict, "outOfStock")
	ErrInvalidQuantity = errs.WithKey(errs.ErrValidation, "invalidQuantity")
	ErrCouponRequired  = errs.WithKey(errs.ErrValidation, "couponRequired")
	ErrCouponInvalid   = errs.WithKey(errs.ErrBadRequest, "couponInvalid")
	ErrItemNotFound    = errs.WithKey(errs.ErrNotFound, "cartUpdateFailed")
)

type Cart struct {
	ID                      string     `json:"_id,omitempty"`
	CartItems               []CartItem `json:"cartItems"`
	TotalCartPrice          float64    `json:"totalCartPrice"`
	TotalPriceAfterDiscount float64    `json:"totalPriceAfterDiscount,omitempty"`
	Coupon                  string     `json:"coupon,omitempty"`
}

type CartItem struct {
	ID       string      `json:"_id"`
	Product  ItemProduct `json:"product"`
	Quantity int         `json:"quantity"`
	Color    string      `json:"color,omitempty"`
	Size     string      `json:"size,omitempty"`
	Price    float64     `json:"price"`
}

// ItemProduct is a cart line's product, sent by the API either as a bare id
// or as the populated product.
type ItemProduct struct {
	product.Product
	Populated bool `json:"-"`
}

func (p *ItemProduct) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*p = ItemProduct{Product: product.Product{ID: id}}
		return nil
	}
	if err := json.Unmarshal(b, &p.Product); err != nil {
		return err
	}
	p.Populated = p.Title != ""
	return nil
}

func (c Cart) Empty() bool {
	return len(c.CartItems) == 0
}

// Item finds a line by its cart item id.
func (c Cart) Item(itemID string) (CartItem, bool) {
	for _, it := range c.CartItems {
		if it.ID == itemID {
			return it, true
		}
	}
	return CartItem{}, false
}

// Line finds the line holding productID in the given variant.
func (c Cart) Line(productID, color, size string) (CartItem, bool) {
	for _, it := range c.CartItems {
		if it.Product.ID == productID && it.Color == color && it.Size == size {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c Cart) clone() Cart {
	c.CartItems = append([]CartItem(nil), c.CartItems...)
	return c
}

// withQuantity returns the cart as it will look once the server applies the
// change. Coupons are recomputed server side, so the discount is dropped.
func (c Cart) withQuantity(itemID string, qty int) Cart {
	out := c.clone()
	total := 0.0
	for i := range out.CartItems {
		if out.CartItems[i].ID == itemID {
			out.CartItems[i].Quantity = qty
		}
		total += out.CartItems[i].Price * float64(out.CartItems[i].Quantity)
	}
	out.TotalCartPrice = round2(total)
	out.TotalPriceAfterDiscount = 0
	return out
}

type FreeShipping struct {
	Threshold float64 `json:"threshold"`
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"amountToFreeShipping"`
	Qualifies bool    `json:"qualifies"`
}

type Summary struct {
	ItemsCount   int          `json:"itemsCount"`
	Subtotal     float64      `json:"subtotal"`
	Discount     float64      `json:"discount"`
	Total        float64      `json:"total"`
	Coupon       string       `json:"coupon,omitempty"`
	FreeShipping FreeShipping `json:"freeShipping"`
}

// Summarize derives the totals the cart and checkout screens show.
func Summarize(c Cart, threshold float64) Summary {
	if threshold <= 0 {
		threshold = DefaultFreeShippingThreshold
	}
	s := Summary{
		ItemsCount: len(c.CartItems),
		Subtotal:   c.TotalCartPrice,
		Total:      c.TotalCartPrice,
		Coupon:     c.Coupon,
	}
	if c.TotalPriceAfterDiscount > 0 {
		s.Total = c.TotalPriceAfterDiscount
		s.Discount = round2(s.Subtotal - s.Total)
	}
	remaining := math.Max(threshold-s.Total, 0)
	s.FreeShipping = FreeShipping{
		Threshold: threshold,
		Progress:  round2(math.Min(s.Total/threshold*100, 100)),
		Remaining: round2(remaining),
		Qualifies: remaining == 0,
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
