package user

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMe(ctx context.Context) (User, error) {
	return s.repo.GetMe(ctx)
}

func (s *Service) UpdateMe(ctx context.Context, in UpdateInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" && in.Email == "" && in.Phone == "" {
		return User{}, ErrMissingFields
	}
	return s.repo.UpdateMe(ctx, in)
}

func (s *Service) ChangePassword(ctx context.Context, in PasswordInput) (User, string, error) {
	if in.CurrentPassword == "" || in.Password == "" {
		return User{}, "", ErrMissingFields
	}
	if in.Password != in.PasswordConfirm {
		return User{}, "", ErrPasswordMismatch
	}
	return s.repo.ChangeMyPassword(ctx, in)
}

func (s *Service) DeleteMe(ctx context.Context) error {
	return s.repo.DeleteMe(ctx)
}
