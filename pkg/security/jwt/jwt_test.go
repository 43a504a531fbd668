package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/auth"
)

func newGenerator(t *testing.T, secret string, ttl time.Duration) *Generator {
	t.Helper()
	g, err := NewGenerator(secret, "task-manager", ttl)
	require.NoError(t, err)
	return g
}

func TestNewGenerator_RequiresSecret(t *testing.T) {
	_, err := NewGenerator("", "iss", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestNewGenerator_DefaultTTL(t *testing.T) {
	g := newGenerator(t, "s", 0)
	assert.Equal(t, DefaultTTL, g.ttl)
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	g := newGenerator(t, "super-secret", time.Hour)
	user := auth.User{ID: uuid.New()}

	tok, err := g.Generate(context.Background(), user)
	require.NoError(t, err)

	got, err := g.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got)
}

func TestVerify_Expired(t *testing.T) {
	g := newGenerator(t, "secret", time.Hour)
	tok, err := g.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	g.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = g.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := newGenerator(t, "right-secret", time.Hour).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = newGenerator(t, "wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_WrongIssuer(t *testing.T) {
	other, err := NewGenerator("secret", "someone-else", time.Hour)
	require.NoError(t, err)
	tok, err := other.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = newGenerator(t, "secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	g := newGenerator(t, "k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := g.Verify(tok)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	g := newGenerator(t, "k", time.Hour)
	claims := jwt.RegisteredClaims{
		Issuer:    "task-manager",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = g.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	g := newGenerator(t, "k", time.Hour)
	claims := jwt.RegisteredClaims{
		Issuer:    "task-manager",
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = g.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	g := newGenerator(t, "k", time.Hour)
	claims := jwt.RegisteredClaims{Issuer: "task-manager", Subject: uuid.NewString()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = g.Verify(tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
