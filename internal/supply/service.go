package supply

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, supply Supply) (Supply, error) {
	return s.repo.Create(ctx, supply)
}

func (s *Service) List(ctx context.Context) ([]Supply, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*Supply, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial field replacement. The caller's map is passed
// through as-is apart from the identifier, which is never overwritten.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	delete(fields, "_id")
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
