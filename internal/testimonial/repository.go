package testimonial

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Create(ctx context.Context, testimonial Testimonial) (Testimonial, error)
	List(ctx context.Context) ([]Testimonial, error)
}

type InMemoryRepository struct {
	mu           sync.RWMutex
	testimonials []Testimonial
}

func NewInMemoryRepository(seed []Testimonial) *InMemoryRepository {
	repo := &InMemoryRepository{testimonials: make([]Testimonial, 0, len(seed))}
	repo.testimonials = append(repo.testimonials, seed...)
	return repo
}

func (r *InMemoryRepository) Create(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if testimonial.ID.IsZero() {
		testimonial.ID = primitive.NewObjectID()
	}
	r.testimonials = append(r.testimonials, testimonial)
	return testimonial, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out, nil
}
