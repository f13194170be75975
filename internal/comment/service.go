package comment

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, comment Comment) (Comment, error) {
	return s.repo.Create(ctx, comment)
}

func (s *Service) List(ctx context.Context) ([]Comment, error) {
	return s.repo.List(ctx)
}
