package validate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/repository/memory"
	"github.com/artem13815/taskmanager/pkg/task"
)

func ptr[T any](v T) *T { return &v }

func message(t *testing.T, err error) string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validate.Error, got %v", err)
	return verr.Message
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register(RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}))

	tests := []struct {
		req  RegisterRequest
		want string
	}{
		{RegisterRequest{Email: "a@x.com", Password: "secret1"}, "Name is required"},
		{RegisterRequest{Name: "  ", Email: "a@x.com", Password: "secret1"}, "Name is required"},
		{RegisterRequest{Name: "A", Email: "\t", Password: "secret1"}, "Email is required"},
		{RegisterRequest{Name: "A", Email: "a@x.com", Password: "12345"}, "Password is required and must be at least 6 characters"},
		{RegisterRequest{Name: "A", Email: "a@x.com"}, "Password is required and must be at least 6 characters"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, message(t, Register(tc.req)))
	}
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login(LoginRequest{Email: "a@x.com", Password: "x"}))
	assert.Equal(t, "Email and password are required", message(t, Login(LoginRequest{Email: "a@x.com"})))
	assert.Equal(t, "Email and password are required", message(t, Login(LoginRequest{Password: "x"})))
}

func TestTaskCreate(t *testing.T) {
	d, err := TaskCreate(TaskCreateRequest{Title: " Plan ", Description: "d", DueDate: "2024-03-15"})
	require.NoError(t, err)
	assert.Equal(t, "Plan", d.Title)
	assert.Equal(t, "d", d.Description)
	assert.Equal(t, task.Status(""), d.Status, "status defaults later, in the use case")
	assert.True(t, d.DueDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	d, err = TaskCreate(TaskCreateRequest{Title: "x", Status: "in-progress", DueDate: "2024-03-15T09:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, d.Status)

	tests := []struct {
		req  TaskCreateRequest
		want string
	}{
		{TaskCreateRequest{DueDate: "2024-03-15"}, "Title is required"},
		{TaskCreateRequest{Title: "x", Status: "done", DueDate: "2024-03-15"}, "Status must be one of pending, in-progress, completed"},
		{TaskCreateRequest{Title: "x"}, "A valid dueDate is required"},
		{TaskCreateRequest{Title: "x", DueDate: "soon"}, "A valid dueDate is required"},
	}
	for _, tc := range tests {
		_, err := TaskCreate(tc.req)
		assert.Equal(t, tc.want, message(t, err))
	}
}

func TestTaskUpdate(t *testing.T) {
	p, err := TaskUpdate(TaskUpdateRequest{})
	require.NoError(t, err)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Status)
	assert.Nil(t, p.DueDate)

	p, err = TaskUpdate(TaskUpdateRequest{
		Title:       ptr(" New "),
		Description: ptr(""),
		Status:      ptr("completed"),
		DueDate:     ptr("2024-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", *p.Title)
	assert.Equal(t, "", *p.Description)
	assert.Equal(t, task.StatusCompleted, *p.Status)
	assert.Equal(t, 1, p.DueDate.Day())

	tests := []struct {
		req  TaskUpdateRequest
		want string
	}{
		{TaskUpdateRequest{Title: ptr("")}, "Title, if provided, cannot be empty"},
		{TaskUpdateRequest{Status: ptr("done")}, "Status must be one of pending, in-progress, completed"},
		{TaskUpdateRequest{Status: ptr("")}, "Status must be one of pending, in-progress, completed"},
		{TaskUpdateRequest{DueDate: ptr("nope")}, "dueDate must be a valid date"},
	}
	for _, tc := range tests {
		_, err := TaskUpdate(tc.req)
		assert.Equal(t, tc.want, message(t, err))
	}
}

// Request validation and the use cases reject the same input with the same text.
func TestMessagesAgreeWithUseCases(t *testing.T) {
	ctx := context.Background()
	tasks := task.NewService(memory.NewTaskRepository())
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := TaskCreate(TaskCreateRequest{Title: "x", Status: "done", DueDate: "2024-03-15"})
	_, ucErr := tasks.Create(ctx, uuid.New(), task.Draft{Title: "x", Status: "done", DueDate: due})
	assert.Equal(t, task.MsgStatusInvalid, message(t, err))
	assert.EqualError(t, ucErr, task.MsgStatusInvalid)

	_, err = TaskCreate(TaskCreateRequest{Title: " ", DueDate: "2024-03-15"})
	_, ucErr = tasks.Create(ctx, uuid.New(), task.Draft{Title: " ", DueDate: due})
	assert.Equal(t, task.MsgTitleRequired, message(t, err))
	assert.EqualError(t, ucErr, task.MsgTitleRequired)

	_, err = TaskUpdate(TaskUpdateRequest{Title: ptr(" ")})
	_, ucErr = tasks.Update(ctx, uuid.New(), uuid.NewString(), task.Patch{Title: ptr(" ")})
	assert.Equal(t, task.MsgTitleEmpty, message(t, err))
	assert.EqualError(t, ucErr, task.MsgTitleEmpty)

	users := auth.NewAuthService(memory.NewUserRepository(), nil)
	err = Register(RegisterRequest{Name: "A", Email: "a@x.com", Password: "123"})
	_, ucErr = users.Register(ctx, "A", "a@x.com", "123")
	assert.Equal(t, auth.MsgPasswordTooShort, message(t, err))
	assert.EqualError(t, ucErr, auth.MsgPasswordTooShort)
}
