package user

import (
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/session"
)

// User is the account record returned by /users/getMe and /auth/*.
type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ProfileImg string `json:"profileImg,omitempty"`
	Role       string `json:"role,omitempty"`
	Active     *bool  `json:"active,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// Profile is the slice of the user kept in the session.
func (u User) Profile() *session.Profile {
	return &session.Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type UpdateInput struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

var (
	ErrNotFound         = errs.ErrNotFound
	ErrPasswordMismatch = errs.WithKey(errs.ErrValidation, "passwordMismatch")
	ErrMissingFields    = errs.WithKey(errs.ErrValidation, "requiredFields")
)
