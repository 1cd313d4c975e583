// Package session keeps the browser's API token and cached profile on the
// server side, keyed by the sid cookie.
package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Profile is the cached user object shown in the header and used for the
// admin role check.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      *Profile  `json:"user,omitempty"`
	Lang      string    `json:"lang,omitempty"`
	Wishlist  []string  `json:"wishlist,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

func (s *Session) IsAdmin() bool {
	if !s.Authenticated() || s.User == nil {
		return false
	}
	return s.User.Role == "admin" || s.User.Role == "manager"
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// InWishlist reports whether productID is in the cached wishlist ids.
func (s *Session) InWishlist(productID string) bool {
	if s == nil {
		return false
	}
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

func (s Session) clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Wishlist != nil {
		s.Wishlist = append([]string(nil), s.Wishlist...)
	}
	return s
}
