package address

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Address, error) {
	return s.repo.List(ctx)
}

func (s *Service) Add(ctx context.Context, in Input) (Address, error) {
	if err := in.normalize(); err != nil {
		return Address{}, err
	}
	return s.repo.Add(ctx, in)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Address, error) {
	if err := in.normalize(); err != nil {
		return Address{}, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
