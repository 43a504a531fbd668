package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/logging"
	"github.com/artem13815/taskmanager/pkg/repository/memory"
)

type countingRepo struct {
	*memory.UserRepository
	byID int
}

func (r *countingRepo) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	r.byID++
	return r.UserRepository.GetByID(ctx, id)
}

func setup(t *testing.T) (*UserCache, *countingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := &countingRepo{UserRepository: memory.NewUserRepository()}
	return NewUserCache(repo, client, time.Minute, logging.Nop()), repo, mr
}

func TestGetByID_ReadThrough(t *testing.T) {
	c, repo, mr := setup(t)
	ctx := context.Background()
	u := auth.User{ID: uuid.New(), Name: "A", Email: "a@x.com", PasswordHash: "hash", CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, c.Create(ctx, u))

	first, err := c.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, first)
	assert.True(t, mr.Exists("user:"+u.ID.String()))

	second, err := c.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.byID, "second lookup must be served from redis")
	assert.Equal(t, u.Email, second.Email)
	assert.Empty(t, second.PasswordHash, "hashes are never cached")

	raw, err := mr.Get("user:" + u.ID.String())
	require.NoError(t, err)
	assert.NotContains(t, raw, "hash")
}

func TestGetByID_ExpiresWithTTL(t *testing.T) {
	c, repo, mr := setup(t)
	ctx := context.Background()
	u := auth.User{ID: uuid.New(), Email: "a@x.com"}
	require.NoError(t, c.Create(ctx, u))

	_, err := c.GetByID(ctx, u.ID)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = c.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.byID)
}

func TestGetByID_NotFoundIsNotCached(t *testing.T) {
	c, _, mr := setup(t)
	id := uuid.New()

	_, err := c.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, auth.ErrNotFound)
	assert.False(t, mr.Exists("user:"+id.String()))
}

func TestGetByID_FallsBackWhenRedisIsDown(t *testing.T) {
	c, repo, mr := setup(t)
	ctx := context.Background()
	u := auth.User{ID: uuid.New(), Email: "a@x.com"}
	require.NoError(t, c.Create(ctx, u))
	mr.Close()

	got, err := c.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, 1, repo.byID)
}
