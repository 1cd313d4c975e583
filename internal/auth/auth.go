package auth

import (
	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/user"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Phone           string `json:"phone,omitempty"`
}

// Result is what /auth/login and /auth/signup hand back.
type Result struct {
	Token string    `json:"token"`
	User  user.User `json:"data"`
}

var (
	ErrMissingFields    = errs.WithKey(errs.ErrValidation, "requiredFields")
	ErrPasswordMismatch = errs.WithKey(errs.ErrValidation, "passwordMismatch")
	ErrBadCredentials   = errs.WithKey(errs.ErrBadCredentials, "loginFailed")
	ErrNotAdmin         = errs.WithKey(errs.ErrForbidden, "adminOnly")
)
