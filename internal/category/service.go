package category

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/wichananm65/fashion-storefront/internal/i18n"
)

// Service serves the taxonomy from a snapshot refreshed in the background.
// A failed refresh keeps the previous snapshot.
type Service struct {
	repo Repository

	mu          sync.RWMutex
	categories  []Category
	brands      []Brand
	refreshedAt time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Refresh(ctx context.Context) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	brands, err := s.repo.ListBrands(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.brands = brands
	s.refreshedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Schedule registers the periodic refresh on the scheduler.
func (s *Service) Schedule(scheduler gocron.Scheduler, every time.Duration) error {
	_, err := scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("catalog refresh failed, serving stale snapshot")
			}
		}),
	)
	return err
}

func (s *Service) loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.refreshedAt.IsZero()
}

func (s *Service) ensure(ctx context.Context) error {
	if s.loaded() {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...), nil
}

func (s *Service) Brands(ctx context.Context) ([]Brand, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Brand(nil), s.brands...), nil
}

func (s *Service) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// Get looks a category up by id or slug, from the snapshot first.
func (s *Service) Get(ctx context.Context, idOrSlug string) (Category, error) {
	if s.loaded() {
		s.mu.RLock()
		for _, c := range s.categories {
			if c.ID == idOrSlug || c.Slug == idOrSlug {
				s.mu.RUnlock()
				return c, nil
			}
		}
		s.mu.RUnlock()
	}
	return s.repo.GetCategory(ctx, idOrSlug)
}

func (s *Service) Subcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	return s.repo.ListSubcategories(ctx, categoryID)
}

// ResolveID maps a slug from a shop link (?category=abayas) onto the API id.
// Unknown values are returned unchanged.
func (s *Service) ResolveID(ctx context.Context, idOrSlug string) string {
	if idOrSlug == "" {
		return ""
	}
	cats, err := s.Categories(ctx)
	if err != nil {
		return idOrSlug
	}
	for _, c := range cats {
		if c.Slug == idOrSlug || c.ID == idOrSlug {
			return c.ID
		}
	}
	return idOrSlug
}

// Circles are the home page shortcuts in lang.
func Circles(lang string) []Circle {
	out := make([]Circle, 0, len(circleSlugs))
	for _, c := range circleSlugs {
		out = append(out, Circle{
			Name:  i18n.T(lang, c.slug),
			Image: c.image,
			Slug:  c.slug,
			Href:  "/shop?category=" + c.slug,
		})
	}
	return out
}
