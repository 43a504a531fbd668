package task_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/repository/memory"
	"github.com/artem13815/taskmanager/pkg/task"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := task.ParseDate(s)
	require.True(t, ok, "parse %q", s)
	return d
}

func newTask(t *testing.T, svc task.UseCase, owner uuid.UUID, title, due string) task.Task {
	t.Helper()
	created, err := svc.Create(context.Background(), owner, task.Draft{Title: title, DueDate: mustDate(t, due)})
	require.NoError(t, err)
	return created
}

func TestCreate_Defaults(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	owner := uuid.New()

	got := newTask(t, svc, owner, "  Write report ", "2024-03-15")
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Equal(t, owner, got.OwnerID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	due := time.Now()
	tests := []task.Draft{
		{Title: " ", DueDate: due},
		{Title: "x", Status: "done", DueDate: due},
		{Title: "x"},
	}
	for _, d := range tests {
		_, err := svc.Create(context.Background(), uuid.New(), d)
		var verr task.ErrValidation
		assert.True(t, errors.As(err, &verr), "draft %+v: got %v", d, err)
	}
}

func TestOtherOwnerAlwaysGetsNotFound(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	tk := newTask(t, svc, alice, "private", "2024-03-15")
	id := tk.ID.String()

	_, err := svc.Get(ctx, bob, id)
	assert.ErrorIs(t, err, task.ErrNotFound)

	title := "hijacked"
	_, err = svc.Update(ctx, bob, id, task.Patch{Title: &title})
	assert.ErrorIs(t, err, task.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, id), task.ErrNotFound)

	still, err := svc.Get(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, "private", still.Title)
}

func TestMalformedID(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.Get(ctx, owner, "not-a-uuid")
	assert.ErrorIs(t, err, task.ErrInvalidID)
	_, err = svc.Update(ctx, owner, "123", task.Patch{})
	assert.ErrorIs(t, err, task.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, owner, ""), task.ErrInvalidID)
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	created, err := svc.Create(ctx, owner, task.Draft{
		Title:       "Original",
		Description: "keep me",
		DueDate:     mustDate(t, "2024-03-15T10:00:00Z"),
	})
	require.NoError(t, err)

	status := task.StatusCompleted
	updated, err := svc.Update(ctx, owner, created.ID.String(), task.Patch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, task.StatusCompleted, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, created.DueDate.Equal(updated.DueDate))
	assert.Equal(t, owner, updated.OwnerID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	back := task.StatusPending
	again, err := svc.Update(ctx, owner, created.ID.String(), task.Patch{Status: &back})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, again.Status, "any status may follow any other")
}

func TestUpdate_Validation(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	tk := newTask(t, svc, owner, "t", "2024-03-15")

	blank := "  "
	bad := task.Status("done")
	for _, p := range []task.Patch{{Title: &blank}, {Status: &bad}, {DueDate: &time.Time{}}} {
		_, err := svc.Update(ctx, owner, tk.ID.String(), p)
		var verr task.ErrValidation
		assert.True(t, errors.As(err, &verr), "patch %+v: got %v", p, err)
	}
}

func TestDelete_SecondCallIsNotFound(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	tk := newTask(t, svc, owner, "t", "2024-03-15")

	require.NoError(t, svc.Delete(ctx, owner, tk.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, owner, tk.ID.String()), task.ErrNotFound)
}

func TestList_Pagination(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	base := mustDate(t, "2024-01-01")
	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, owner, task.Draft{Title: fmt.Sprintf("t%02d", i), DueDate: base.AddDate(0, 0, 24-i)})
		require.NoError(t, err)
	}
	newTask(t, svc, uuid.New(), "someone else's", "2024-01-01")

	first, err := svc.List(ctx, owner, task.Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, first.Total)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Tasks, 10)
	assert.Equal(t, "t24", first.Tasks[0].Title, "sorted by dueDate ascending")
	for i := 1; i < len(first.Tasks); i++ {
		assert.False(t, first.Tasks[i].DueDate.Before(first.Tasks[i-1].DueDate))
	}

	last, err := svc.List(ctx, owner, task.Filter{}, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Tasks, 5)

	beyond, err := svc.List(ctx, owner, task.Filter{}, 7, 10)
	require.NoError(t, err)
	assert.NotNil(t, beyond.Tasks)
	assert.Empty(t, beyond.Tasks)
	assert.Equal(t, 25, beyond.Total)
}

func TestList_ClampsPageAndLimit(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	owner := uuid.New()
	newTask(t, svc, owner, "t", "2024-03-15")

	page, err := svc.List(context.Background(), owner, task.Filter{}, -4, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Limit)
	assert.Len(t, page.Tasks, 1)
}

func TestList_LimitIsCapped(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	owner := uuid.New()
	newTask(t, svc, owner, "t", "2024-03-15")

	page, err := svc.List(context.Background(), owner, task.Filter{}, 3, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, task.MaxLimit, page.Limit)
	assert.Equal(t, 3, page.Page)
	assert.NotNil(t, page.Tasks)
	assert.Empty(t, page.Tasks)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestList_PageTooLargeForAnOffset(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	owner := uuid.New()
	newTask(t, svc, owner, "t", "2024-03-15")

	page, err := svc.List(context.Background(), owner, task.Filter{}, math.MaxInt, task.MaxLimit)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, page.Page)
	assert.NotNil(t, page.Tasks)
	assert.Empty(t, page.Tasks)
	assert.Equal(t, 1, page.Total)
}

func TestList_DueDateMatchesWholeDay(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	newTask(t, svc, owner, "late", "2024-03-15T23:59:00")
	newTask(t, svc, owner, "early", "2024-03-15T00:00:00")
	newTask(t, svc, owner, "next", "2024-03-16T00:00:00")

	same, err := svc.List(ctx, owner, task.Filter{DueDate: "2024-03-15"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, same.Tasks, 2)
	assert.Equal(t, "early", same.Tasks[0].Title)
	assert.Equal(t, "late", same.Tasks[1].Title)

	next, err := svc.List(ctx, owner, task.Filter{DueDate: "2024-03-16"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, next.Tasks, 1)
	assert.Equal(t, "next", next.Tasks[0].Title)

	_, err = svc.List(ctx, owner, task.Filter{DueDate: "someday"}, 1, 10)
	assert.ErrorIs(t, err, task.ErrInvalidDueDate)
}

func TestList_StatusFilter(t *testing.T) {
	svc := task.NewService(memory.NewTaskRepository())
	ctx := context.Background()
	owner := uuid.New()
	_, err := svc.Create(ctx, owner, task.Draft{Title: "a", Status: task.StatusCompleted, DueDate: mustDate(t, "2024-03-15")})
	require.NoError(t, err)
	newTask(t, svc, owner, "b", "2024-03-15")

	page, err := svc.List(ctx, owner, task.Filter{Status: task.StatusCompleted}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, "a", page.Tasks[0].Title)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, task.TotalPages(25, 10))
	assert.Equal(t, 2, task.TotalPages(20, 10))
	assert.Equal(t, 0, task.TotalPages(0, 10))
	assert.Equal(t, 25, task.TotalPages(25, 1))
	assert.Equal(t, 1, task.TotalPages(25, math.MaxInt))
	assert.Equal(t, math.MaxInt, task.TotalPages(math.MaxInt, 1))
}
