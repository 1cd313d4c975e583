package admin

import (
	"context"
	"net/url"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/order"
)

// Orders lists every customer's orders. The status filter is sent upstream
// and applied again locally since not every API honours it.
func (s *Service) Orders(ctx context.Context, q Query, status string) (apiclient.List[order.Order], error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !order.ValidStatus(status) {
		return apiclient.List[order.Order]{}, order.ErrInvalidStatus
	}
	if status != "" {
		if q.Extra == nil {
			q.Extra = url.Values{}
		}
		q.Extra.Set("status", status)
	}
	if q.Sort == "" {
		q.Sort = "-createdAt"
	}

	res, err := list[order.Order](ctx, s.api, "/orders", q.values())
	if err != nil {
		if apiclient.IsNotFound(err) {
			return apiclient.List[order.Order]{Data: []order.Order{}}, nil
		}
		return res, err
	}
	res.Data = order.Filter(withStatus(res.Data, status), q.Search)
	return res, nil
}

func withStatus(orders []order.Order, status string) []order.Order {
	if status == "" {
		return orders
	}
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if order.StatusOf(o) == status {
			out = append(out, o)
		}
	}
	return out
}

func (s *Service) Order(ctx context.Context, id string) (order.Order, error) {
	return one[order.Order](ctx, s.api, "/orders/"+id)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (order.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !order.ValidStatus(status) {
		return order.Order{}, order.ErrInvalidStatus
	}
	var out apiclient.Envelope[order.Order]
	err := s.api.Put(ctx, "/orders/"+id, map[string]string{"status": status}, &out)
	return out.Data, err
}

func (s *Service) MarkPaid(ctx context.Context, id string) (order.Order, error) {
	return s.orderAction(ctx, id, "pay")
}

func (s *Service) MarkDelivered(ctx context.Context, id string) (order.Order, error) {
	return s.orderAction(ctx, id, "deliver")
}

func (s *Service) orderAction(ctx context.Context, id, action string) (order.Order, error) {
	var out apiclient.Envelope[order.Order]
	err := s.api.Put(ctx, "/orders/"+id+"/"+action, nil, &out)
	return out.Data, err
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/orders/"+id, nil)
}
