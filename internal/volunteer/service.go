package volunteer

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	return s.repo.Create(ctx, volunteer)
}

func (s *Service) List(ctx context.Context) ([]Volunteer, error) {
	return s.repo.List(ctx)
}
