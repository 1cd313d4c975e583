package admin

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
)

const (
	BulkDelete      = "delete"
	BulkUpdatePrice = "updatePrice"
	BulkUpdateStock = "updateStock"
)

const (
	PriceIncrease = "increase"
	PriceDecrease = "decrease"
	PriceSet      = "set"
)

// PriceChange adjusts a price by a percentage or replaces it.
type PriceChange struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

func (p PriceChange) validate() error {
	switch p.Type {
	case PriceIncrease, PriceSet:
		if p.Value < 0 {
			return ErrInvalidBulk
		}
	case PriceDecrease:
		if p.Value < 0 || p.Value > 100 {
			return ErrInvalidBulk
		}
	default:
		return ErrInvalidBulk
	}
	return nil
}

func (p PriceChange) Apply(price float64) float64 {
	switch p.Type {
	case PriceIncrease:
		return round2(price * (1 + p.Value/100))
	case PriceDecrease:
		return round2(price * (1 - p.Value/100))
	}
	return round2(p.Value)
}

type BulkRequest struct {
	Action string       `json:"action"`
	IDs    []string     `json:"ids"`
	Price  *PriceChange `json:"price,omitempty"`
	Stock  *int         `json:"stock,omitempty"`
}

func (r BulkRequest) validate() error {
	if len(r.IDs) == 0 {
		return ErrMissingFields
	}
	switch r.Action {
	case BulkDelete:
		return nil
	case BulkUpdatePrice:
		if r.Price == nil {
			return ErrInvalidBulk
		}
		return r.Price.validate()
	case BulkUpdateStock:
		if r.Stock == nil || *r.Stock < 0 {
			return ErrInvalidBulk
		}
		return nil
	}
	return ErrInvalidBulk
}

type BulkFailure struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// Bulk applies one action to every selected product in turn. A product
// that fails does not stop the others; its error is reported in Failed.
func (s *Service) Bulk(ctx context.Context, req BulkRequest) (BulkResult, error) {
	if err := req.validate(); err != nil {
		return BulkResult{}, err
	}
	res := BulkResult{Succeeded: []string{}, Failed: []BulkFailure{}}
	for _, id := range req.IDs {
		var err error
		switch req.Action {
		case BulkDelete:
			err = s.DeleteProduct(ctx, id)
		case BulkUpdatePrice:
			err = s.reprice(ctx, id, *req.Price)
		case BulkUpdateStock:
			err = s.restock(ctx, id, *req.Stock)
		}
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("product", id).Str("action", req.Action).Msg("bulk action failed")
			res.Failed = append(res.Failed, BulkFailure{ID: id, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}
	return res, nil
}

// reprice scales the discounted price along with the list price for
// percentage changes. Setting a price leaves the discounted price alone.
func (s *Service) reprice(ctx context.Context, id string, change PriceChange) error {
	p, err := s.Product(ctx, id)
	if err != nil {
		return err
	}
	form := &apiclient.Multipart{}
	form.Add("price", formatFloat(change.Apply(p.Price)))
	if p.OnSale() && change.Type != PriceSet {
		form.Add("priceAfterDiscount", formatFloat(change.Apply(p.PriceAfterDiscount)))
	}
	return s.api.PutForm(ctx, "/products/"+id, form, nil)
}

func (s *Service) restock(ctx context.Context, id string, qty int) error {
	form := &apiclient.Multipart{}
	form.Add("quantity", strconv.Itoa(qty))
	return s.api.PutForm(ctx, "/products/"+id, form, nil)
}
