package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Field rule messages, shared with request validation.
const (
	MsgNameRequired        = "Name is required"
	MsgEmailRequired       = "Email is required"
	MsgPasswordTooShort    = "Password is required and must be at least 6 characters"
	MsgCredentialsRequired = "Email and password are required"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Identify(ctx context.Context, userID uuid.UUID) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

// ErrValidation is returned when registration input breaks a field rule.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
	cost   int
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
}

// NewAuthServiceWithCost is NewAuthService with an explicit bcrypt cost.
// Tests use bcrypt.MinCost to keep hashing fast.
func NewAuthServiceWithCost(repo UserRepository, tokens TokenGenerator, cost int) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, cost: cost}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return AuthResult{}, ErrValidation(MsgNameRequired)
	case email == "":
		return AuthResult{}, ErrValidation(MsgEmailRequired)
	case len(password) < MinPasswordLength:
		return AuthResult{}, ErrValidation(MsgPasswordTooShort)
	}

	// If user exists, fail fast (best-effort check; the store's unique index is authoritative)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return AuthResult{}, ErrUserAlreadyExists
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Identify(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
