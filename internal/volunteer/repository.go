package volunteer

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Create(ctx context.Context, volunteer Volunteer) (Volunteer, error)
	List(ctx context.Context) ([]Volunteer, error)
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	volunteers []Volunteer
}

func NewInMemoryRepository(seed []Volunteer) *InMemoryRepository {
	repo := &InMemoryRepository{volunteers: make([]Volunteer, 0, len(seed))}
	repo.volunteers = append(repo.volunteers, seed...)
	return repo
}

func (r *InMemoryRepository) Create(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if volunteer.ID.IsZero() {
		volunteer.ID = primitive.NewObjectID()
	}
	r.volunteers = append(r.volunteers, volunteer)
	return volunteer, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Volunteer, len(r.volunteers))
	copy(out, r.volunteers)
	return out, nil
}
