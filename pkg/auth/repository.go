package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
)

//go:generate minimock -i UserRepository -o ./mocks/user_repository_mock.go -n UserRepositoryMock -p mocks

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations must enforce email uniqueness and report a duplicate
// as ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}
