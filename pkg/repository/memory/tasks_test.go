package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/task"
)

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, auth.User{ID: uuid.New(), Email: "a@x.com"}))
	assert.ErrorIs(t, repo.Create(ctx, auth.User{ID: uuid.New(), Email: "a@x.com"}), auth.ErrUserAlreadyExists)

	_, err := repo.GetByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestTaskRepository_ConcurrentWritesAreSafe(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	owner := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, task.Task{ID: uuid.New(), OwnerID: owner, Title: "t", DueDate: time.Now()})
		}()
	}
	wg.Wait()

	n, err := repo.Count(ctx, task.Query{OwnerID: owner})
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func TestTaskRepository_UpdateKeepsOwner(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	tk := task.Task{ID: uuid.New(), OwnerID: uuid.New(), Title: "a", Status: task.StatusPending}
	require.NoError(t, repo.Create(ctx, tk))

	title := "b"
	got, err := repo.UpdateForOwner(ctx, tk.OwnerID, tk.ID, task.Patch{Title: &title}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)
	assert.Equal(t, tk.OwnerID, got.OwnerID)
	assert.Equal(t, task.StatusPending, got.Status)
}
