package jwt

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/taskmanager/pkg/auth"
)

// AccessError is an access-control rejection. It matches auth.ErrUnauthorized.
type AccessError struct {
	Reason string
}

func (e *AccessError) Error() string { return e.Reason }

func (e *AccessError) Is(target error) bool { return target == auth.ErrUnauthorized }

var (
	errNoToken      = &AccessError{Reason: "Not authorized, no token provided"}
	errBadScheme    = &AccessError{Reason: "Authorization header format must be Bearer <token>"}
	errInvalidToken = &AccessError{Reason: "Not authorized, token is invalid or expired"}
	errUnknownUser  = &AccessError{Reason: "Not authorized, user no longer exists"}
)

//go:generate minimock -i UserResolver -o ./mocks/user_resolver_mock.go -n UserResolverMock -p mocks

// UserResolver maps a verified user id back to a user record.
type UserResolver interface {
	Identify(ctx context.Context, userID uuid.UUID) (auth.User, error)
}

// Authenticator is the only authorization boundary for task routes.
type Authenticator struct {
	tokens auth.TokenVerifier
	users  UserResolver
}

func NewAuthenticator(tokens auth.TokenVerifier, users UserResolver) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate resolves the Authorization header value to a user.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (auth.User, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return auth.User{}, errNoToken
	}
	scheme, tokenStr, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return auth.User{}, errBadScheme
	}
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return auth.User{}, errNoToken
	}
	userID, err := a.tokens.Verify(tokenStr)
	if err != nil {
		return auth.User{}, errInvalidToken
	}
	user, err := a.users.Identify(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return auth.User{}, errUnknownUser
		}
		return auth.User{}, err
	}
	return user, nil
}

// AuthedHandler is a Fiber handler that receives the authenticated user.
type AuthedHandler func(c *fiber.Ctx, user auth.User) error

// Protect authenticates the request and passes the user to next. On failure
// the error goes to the app error handler and next never runs.
func (a *Authenticator) Protect(next AuthedHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		return next(c, user)
	}
}
