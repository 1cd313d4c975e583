package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Login(ctx context.Context, in Credentials) (Result, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return Result{}, ErrMissingFields
	}
	// never forward a stale bearer token to the login endpoint
	res, err := s.repo.Login(apiclient.WithToken(ctx, ""), in)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return Result{}, ErrBadCredentials
		}
		return Result{}, err
	}
	if res.Token == "" {
		return Result{}, ErrBadCredentials
	}
	return res, nil
}

// AdminLogin only succeeds for admin and manager accounts.
func (s *Service) AdminLogin(ctx context.Context, in Credentials) (Result, error) {
	res, err := s.Login(ctx, in)
	if err != nil {
		return Result{}, err
	}
	if !res.User.IsAdmin() {
		return Result{}, ErrNotAdmin
	}
	return res, nil
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return Result{}, ErrMissingFields
	}
	if in.PasswordConfirm != "" && in.PasswordConfirm != in.Password {
		return Result{}, ErrPasswordMismatch
	}
	if in.PasswordConfirm == "" {
		in.PasswordConfirm = in.Password
	}
	return s.repo.Signup(apiclient.WithToken(ctx, ""), in)
}
