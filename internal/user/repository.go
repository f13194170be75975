package user

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repository stores accounts. Create must reject a duplicate email with
// ErrEmailExists; uniqueness is the store's job, not the caller's.
type Repository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts []Account
}

func NewInMemoryRepository(seed []Account) *InMemoryRepository {
	repo := &InMemoryRepository{accounts: make([]Account, 0, len(seed))}
	repo.accounts = append(repo.accounts, seed...)
	return repo
}

func (r *InMemoryRepository) Create(ctx context.Context, account Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return Account{}, ErrEmailExists
		}
	}

	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}

	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return Account{}, ErrNotFound
}

// Count reports how many accounts are stored; used by tests.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
