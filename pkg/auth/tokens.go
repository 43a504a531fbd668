package auth

import (
	"context"

	"github.com/google/uuid"
)

//go:generate minimock -i TokenGenerator -o ./mocks/token_generator_mock.go -n TokenGeneratorMock -p mocks

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// TokenVerifier checks a presented token and returns the user id it carries.
// Any failure is reported as ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}
