package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and persists the account. A duplicate email
// surfaces as ErrEmailExists from the repository's uniqueness constraint.
func (s *Service) Register(ctx context.Context, name, email, password string) (Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	return s.repo.Create(ctx, Account{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	})
}

// Authenticate returns ErrInvalidCredentials for an unknown email and for a
// wrong password alike; callers cannot tell the two apart.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Account{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}

	return account, nil
}
