// Package validate turns raw request payloads into typed domain inputs.
// Every function is pure: it either returns the typed value or an *Error
// carrying the message shown to the client.
package validate

import (
	"strings"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/task"
)

// Error is a client-facing validation failure.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(msg string) *Error { return &Error{Message: msg} }

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(req RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fail(auth.MsgNameRequired)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fail(auth.MsgEmailRequired)
	}
	if len(req.Password) < auth.MinPasswordLength {
		return fail(auth.MsgPasswordTooShort)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(req LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fail(auth.MsgCredentialsRequired)
	}
	return nil
}

type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

func TaskCreate(req TaskCreateRequest) (task.Draft, error) {
	if strings.TrimSpace(req.Title) == "" {
		return task.Draft{}, fail(task.MsgTitleRequired)
	}
	status := task.Status(req.Status)
	if status != "" && !status.Valid() {
		return task.Draft{}, fail(task.MsgStatusInvalid)
	}
	due, ok := task.ParseDate(req.DueDate)
	if !ok {
		return task.Draft{}, fail(task.MsgDueDateRequired)
	}
	return task.Draft{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
		DueDate:     due,
	}, nil
}

// TaskUpdateRequest uses pointers so absent fields can be told apart from
// empty ones.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

func TaskUpdate(req TaskUpdateRequest) (task.Patch, error) {
	var p task.Patch
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return task.Patch{}, fail(task.MsgTitleEmpty)
		}
		p.Title = &title
	}
	if req.Status != nil {
		status := task.Status(*req.Status)
		if !status.Valid() {
			return task.Patch{}, fail(task.MsgStatusInvalid)
		}
		p.Status = &status
	}
	if req.DueDate != nil {
		due, ok := task.ParseDate(*req.DueDate)
		if !ok {
			return task.Patch{}, fail(task.MsgDueDateInvalid)
		}
		p.DueDate = &due
	}
	p.Description = req.Description
	return p, nil
}

// ErrMalformedBody is returned by handlers when the payload is not valid JSON.
var ErrMalformedBody = &Error{Message: "Invalid JSON payload"}
