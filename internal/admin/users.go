package admin

import (
	"context"
	"net/url"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/user"
)

// UserInput is what the back-office may change on a customer account.
type UserInput struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

func ValidRole(role string) bool {
	switch role {
	case user.RoleUser, user.RoleManager, user.RoleAdmin:
		return true
	}
	return false
}

// Users lists accounts, optionally narrowed to one role. The search term
// is passed upstream as keyword.
func (s *Service) Users(ctx context.Context, q Query, role string) (apiclient.List[user.User], error) {
	extra := url.Values{}
	for k, v := range q.Extra {
		extra[k] = v
	}
	if role != "" {
		if !ValidRole(role) {
			return apiclient.List[user.User]{}, ErrInvalidRole
		}
		extra.Set("role", role)
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		extra.Set("keyword", term)
	}
	q.Extra = extra
	return list[user.User](ctx, s.api, "/users", q.values())
}

func (s *Service) User(ctx context.Context, id string) (user.User, error) {
	return one[user.User](ctx, s.api, "/users/"+id)
}

func (s *Service) UpdateUser(ctx context.Context, id string, in UserInput) (user.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" && in.Email == "" && in.Phone == "" && in.Active == nil {
		return user.User{}, ErrMissingFields
	}
	var out apiclient.Envelope[user.User]
	err := s.api.Put(ctx, "/users/"+id, in, &out)
	return out.Data, err
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/users/"+id, nil)
}

func (s *Service) ChangeRole(ctx context.Context, id, role string) (user.User, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !ValidRole(role) {
		return user.User{}, ErrInvalidRole
	}
	var out apiclient.Envelope[user.User]
	err := s.api.Put(ctx, "/users/changeUserRole/"+id, map[string]string{"role": role}, &out)
	return out.Data, err
}
