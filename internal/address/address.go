package address

import (
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Address struct {
	ID         string `json:"_id"`
	Alias      string `json:"alias"`
	Details    string `json:"details"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
}

type Input struct {
	Alias      string `json:"alias"`
	Details    string `json:"details"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
}

var ErrMissingFields = errs.WithKey(errs.ErrValidation, "requiredFields")

func (in *Input) normalize() error {
	in.Alias = strings.TrimSpace(in.Alias)
	in.Details = strings.TrimSpace(in.Details)
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	if in.Alias == "" || in.Details == "" || in.Phone == "" || in.City == "" {
		return ErrMissingFields
	}
	return nil
}
