package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/artem13815/taskmanager/pkg/auth"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// ErrMissingSecret means the service was started without a signing secret.
var ErrMissingSecret = errors.New("jwt: signing secret is not configured")

// Generator issues and verifies HS256 identity tokens.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewGenerator returns a Generator signing with secret. An empty secret is
// ErrMissingSecret; a non-positive ttl falls back to DefaultTTL.
func NewGenerator(secret, issuer string, ttl time.Duration) (*Generator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Claims carries only the registered claims; the subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate issues a token for user with the user id as subject and the
// configured issuer and lifetime.
func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := g.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify validates signature, algorithm, issuer and expiry and returns the
// embedded user id. Every failure wraps auth.ErrInvalidToken.
func (g *Generator) Verify(tokenStr string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	}
	if g.issuer != "" {
		opts = append(opts, jwt.WithIssuer(g.issuer))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, auth.ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed subject", auth.ErrInvalidToken)
	}
	return id, nil
}
