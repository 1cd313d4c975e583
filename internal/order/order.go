package order

import (
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/i18n"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var Statuses = []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

var (
	ErrCartMissing   = errs.WithKey(errs.ErrBadRequest, "cartMissing")
	ErrMissingFields = errs.WithKey(errs.ErrValidation, "requiredFields")
	ErrInvalidStatus = errs.WithKey(errs.ErrValidation, "invalidStatus")
)

type ShippingAddress struct {
	Details    string `json:"details"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

func (a *ShippingAddress) validate() error {
	a.Details = strings.TrimSpace(a.Details)
	a.Phone = strings.TrimSpace(a.Phone)
	a.City = strings.TrimSpace(a.City)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	if a.Details == "" || a.Phone == "" || a.City == "" {
		return ErrMissingFields
	}
	return nil
}

type Item struct {
	Product  apiclient.Ref `json:"product"`
	Quantity int           `json:"quantity"`
	Color    string        `json:"color,omitempty"`
	Size     string        `json:"size,omitempty"`
	Price    float64       `json:"price"`
}

type Order struct {
	ID                string           `json:"_id"`
	User              *apiclient.Ref   `json:"user,omitempty"`
	CartItems         []Item           `json:"cartItems"`
	TaxPrice          float64          `json:"taxPrice"`
	ShippingPrice     float64          `json:"shippingPrice"`
	TotalOrderPrice   float64          `json:"totalOrderPrice"`
	PaymentMethodType string           `json:"paymentMethodType"`
	IsPaid            bool             `json:"isPaid"`
	PaidAt            string           `json:"paidAt,omitempty"`
	IsDelivered       bool             `json:"isDelivered"`
	DeliveredAt       string           `json:"deliveredAt,omitempty"`
	Status            string           `json:"status,omitempty"`
	ShippingAddress   *ShippingAddress `json:"shippingAddress,omitempty"`
	CreatedAt         string           `json:"createdAt,omitempty"`
}

// StatusOf is the order's known status; anything else reads as pending.
func StatusOf(o Order) string {
	s := strings.ToLower(strings.TrimSpace(o.Status))
	if ValidStatus(s) {
		return s
	}
	return StatusPending
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Number is the short reference shown to shoppers: the id's last 8
// characters, upper-cased.
func Number(o Order) string {
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// View is an order decorated for display in lang.
type View struct {
	Order
	Number       string `json:"number"`
	StatusKey    string `json:"statusKey"`
	StatusLabel  string `json:"statusLabel"`
	PaymentLabel string `json:"paymentLabel"`
	TotalLabel   string `json:"totalLabel"`
}

func NewView(o Order, lang string) View {
	status := StatusOf(o)
	payment := "card"
	if o.PaymentMethodType == "" || o.PaymentMethodType == "cash" {
		payment = "cash"
	}
	return View{
		Order:        o,
		Number:       Number(o),
		StatusKey:    status,
		StatusLabel:  i18n.T(lang, status),
		PaymentLabel: i18n.T(lang, payment),
		TotalLabel:   i18n.FormatPrice(lang, o.TotalOrderPrice),
	}
}

// Filter keeps orders whose id contains term, case-insensitively.
func Filter(orders []Order, term string) []Order {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return orders
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), term) {
			out = append(out, o)
		}
	}
	return out
}
