package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/auth/mocks"
	"github.com/artem13815/taskmanager/pkg/repository/memory"
	"github.com/artem13815/taskmanager/pkg/security/jwt"
)

func newService(t *testing.T) (auth.AuthUseCase, *memory.UserRepository, *jwt.Generator) {
	t.Helper()
	repo := memory.NewUserRepository()
	gen, err := jwt.NewGenerator("test-secret", "task-manager", time.Hour)
	require.NoError(t, err)
	return auth.NewAuthServiceWithCost(repo, gen, bcrypt.MinCost), repo, gen
}

func TestRegister_TokenResolvesToCreatedUser(t *testing.T) {
	svc, repo, gen := newService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.User.ID)
	assert.NotEmpty(t, res.Token)

	id, err := gen.Verify(res.Token)
	require.NoError(t, err)
	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, "A", stored.Name)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_Duplicate(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "B", "a@x.com", "another1")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "A", "A@x.com", "secret1")
	assert.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newService(t)
	tests := []struct {
		name, email, password, msg string
	}{
		{"  ", "a@x.com", "secret1", "Name is required"},
		{"A", " ", "secret1", "Email is required"},
		{"A", "a@x.com", "12345", "Password is required and must be at least 6 characters"},
	}
	for _, tc := range tests {
		_, err := svc.Register(context.Background(), tc.name, tc.email, tc.password)
		var verr auth.ErrValidation
		require.True(t, errors.As(err, &verr), "got %v", err)
		assert.Equal(t, tc.msg, string(verr))
	}
}

func TestLogin(t *testing.T) {
	svc, _, gen := newService(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	id, err := gen.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, id)

	_, errWrong := svc.Login(ctx, "a@x.com", "wrong")
	_, errMissing := svc.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, errWrong, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, errMissing, auth.ErrInvalidCredentials)
	assert.Equal(t, errWrong, errMissing, "unknown user and wrong password must look the same")
}

func TestLogin_StoreFailureIsNotCredentialsError(t *testing.T) {
	mc := minimock.NewController(t)
	repo := mocks.NewUserRepositoryMock(mc)
	repo.GetByEmailMock.
		Inspect(func(_ context.Context, email string) {
			assert.Equal(t, "a@x.com", email)
		}).
		Return(auth.User{}, errors.New("connection refused"))
	svc := auth.NewAuthService(repo, mocks.NewTokenGeneratorMock(mc))

	_, err := svc.Login(context.Background(), " a@x.com ", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_LostRaceOnCreateIsDuplicate(t *testing.T) {
	mc := minimock.NewController(t)
	repo := mocks.NewUserRepositoryMock(mc)
	repo.GetByEmailMock.Return(auth.User{}, auth.ErrNotFound)
	repo.CreateMock.Return(auth.ErrUserAlreadyExists)
	tokens := mocks.NewTokenGeneratorMock(mc)
	svc := auth.NewAuthServiceWithCost(repo, tokens, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), "A", "a@x.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
	assert.Zero(t, tokens.GenerateBeforeCounter(), "no token for a user that was not created")
}

func TestRegister_TokenFailure(t *testing.T) {
	mc := minimock.NewController(t)
	var created auth.User
	repo := mocks.NewUserRepositoryMock(mc)
	repo.GetByEmailMock.Return(auth.User{}, auth.ErrNotFound)
	repo.CreateMock.Set(func(_ context.Context, user auth.User) error {
		created = user
		return nil
	})
	tokens := mocks.NewTokenGeneratorMock(mc)
	tokens.GenerateMock.Set(func(_ context.Context, user auth.User) (string, error) {
		assert.Equal(t, created.ID, user.ID)
		return "", errors.New("signer unavailable")
	})
	svc := auth.NewAuthServiceWithCost(repo, tokens, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), " A ", " a@x.com ", "secret1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue token")
	assert.Equal(t, "A", created.Name)
	assert.Equal(t, "a@x.com", created.Email)
}

func TestIdentify(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	require.NoError(t, err)

	u, err := svc.Identify(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.User.Email, u.Email)

	_, err = svc.Identify(ctx, uuid.New())
	assert.ErrorIs(t, err, auth.ErrNotFound)
}
