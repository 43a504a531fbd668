package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gojuno/minimock/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/health"
	"github.com/artem13815/taskmanager/pkg/health/checkers"
	"github.com/artem13815/taskmanager/pkg/health/checkers/mocks"
)

func TestReady_NoCheckers(t *testing.T) {
	require.NoError(t, health.NewService().Ready(context.Background()))
}

func TestReady_AllHealthy(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	pg := mocks.NewPingerMock(minimock.NewController(t))
	pg.PingMock.
		Inspect(func(ctx context.Context) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "ping runs under a timeout")
		}).
		Return(nil)

	svc := health.NewService(checkers.NewPostgresChecker(pg), checkers.NewRedisChecker(rdb))
	require.NoError(t, svc.Ready(context.Background()))
}

func TestReady_ReportsFailingDependency(t *testing.T) {
	down := errors.New("connection refused")
	pg := mocks.NewPingerMock(minimock.NewController(t))
	pg.PingMock.Return(down)
	svc := health.NewService(checkers.NewPostgresChecker(pg))

	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "postgres: ")
}

func TestReady_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	err := health.NewService(checkers.NewRedisChecker(rdb)).Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ")
}
