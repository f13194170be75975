package comment

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	List(ctx context.Context) ([]Comment, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	comments []Comment
}

func NewInMemoryRepository(seed []Comment) *InMemoryRepository {
	repo := &InMemoryRepository{comments: make([]Comment, 0, len(seed))}
	repo.comments = append(repo.comments, seed...)
	return repo
}

func (r *InMemoryRepository) Create(ctx context.Context, comment Comment) (Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	r.comments = append(r.comments, comment)
	return comment, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Comment, len(r.comments))
	copy(out, r.comments)
	return out, nil
}
