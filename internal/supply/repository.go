package supply

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmptyUpdate = errors.New("no fields to update provided")

// Repository stores supplies. GetByID returns (nil, nil) when no document
// matches; Update and Delete are no-ops for a missing id.
type Repository interface {
	Create(ctx context.Context, supply Supply) (Supply, error)
	List(ctx context.Context) ([]Supply, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Supply, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	supplies []Supply
}

func NewInMemoryRepository(seed []Supply) *InMemoryRepository {
	repo := &InMemoryRepository{supplies: make([]Supply, 0, len(seed))}
	for _, s := range seed {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		repo.supplies = append(repo.supplies, s)
	}
	return repo
}

func (r *InMemoryRepository) Create(ctx context.Context, supply Supply) (Supply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if supply.ID.IsZero() {
		supply.ID = primitive.NewObjectID()
	}
	r.supplies = append(r.supplies, supply)
	return supply, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Supply, len(r.supplies))
	copy(out, r.supplies)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.supplies {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.supplies {
		if s.ID != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "title":
				if v, ok := value.(string); ok {
					s.Title = v
				}
			case "category":
				if v, ok := value.(string); ok {
					s.Category = v
				}
			case "description":
				if v, ok := value.(string); ok {
					s.Description = v
				}
			case "amount":
				if v, ok := value.(float64); ok {
					s.Amount = v
				}
			case "image":
				if v, ok := value.(string); ok {
					s.Image = v
				}
			case "email":
				if v, ok := value.(string); ok {
					s.Email = v
				}
			}
		}
		r.supplies[i] = s
		return nil
	}

	// matching nothing is not an error
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.supplies {
		if s.ID == id {
			r.supplies = append(r.supplies[:i], r.supplies[i+1:]...)
			return nil
		}
	}
	return nil
}
