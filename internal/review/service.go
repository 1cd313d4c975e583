package review

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ForProduct never fails: the product page renders without reviews when
// the API cannot list them.
func (s *Service) ForProduct(ctx context.Context, productID string) ([]Review, Summary) {
	reviews, err := s.repo.ListForProduct(ctx, productID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("product", productID).Msg("reviews unavailable")
		reviews = []Review{}
	}
	return reviews, Summarize(reviews)
}

func (s *Service) Create(ctx context.Context, in Input) (Review, error) {
	if err := validate(&in); err != nil {
		return Review{}, err
	}
	if in.Product == "" {
		return Review{}, ErrMissingFields
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Review, error) {
	if err := validate(&in); err != nil {
		return Review{}, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(in *Input) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ErrMissingFields
	}
	if in.Ratings < 1 || in.Ratings > 5 {
		return ErrInvalidRating
	}
	return nil
}
