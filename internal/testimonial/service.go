package testimonial

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	return s.repo.Create(ctx, testimonial)
}

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx)
}
