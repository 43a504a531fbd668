package presenter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/security/jwt"
	"github.com/artem13815/taskmanager/pkg/task"
	"github.com/artem13815/taskmanager/pkg/validate"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &validate.Error{Message: "Title is required"}, http.StatusBadRequest, "Title is required"},
		{"auth validation", auth.ErrValidation("Name is required"), http.StatusBadRequest, "Name is required"},
		{"task validation", fmt.Errorf("create: %w", task.ErrValidation("Invalid status")), http.StatusBadRequest, "Invalid status"},
		{"bad id", task.ErrInvalidID, http.StatusBadRequest, "Invalid task id"},
		{"bad due date filter", task.ErrInvalidDueDate, http.StatusBadRequest, "Invalid dueDate query parameter"},
		{"missing task", fmt.Errorf("get: %w", task.ErrNotFound), http.StatusNotFound, "Task not found"},
		{"access", &jwt.AccessError{Reason: "Not authorized, no token provided"}, http.StatusUnauthorized, "Not authorized, no token provided"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "Not authorized"},
		{"duplicate", auth.ErrUserAlreadyExists, http.StatusConflict, "User already exists"},
		{"fiber client error", fiber.NewError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"fiber server error", fiber.NewError(http.StatusBadGateway, "upstream said no"), http.StatusBadGateway, "Internal server error"},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message)
		})
	}
}
