package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/logging"
	"github.com/artem13815/taskmanager/pkg/security/jwt"
	"github.com/artem13815/taskmanager/pkg/task"
	"github.com/artem13815/taskmanager/pkg/validate"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Success: false, Message: message})
}

func Success(c *fiber.Ctx, status int, message string, data any) error {
	return JSON(c, status, SuccessResponse{Success: true, Message: message, Data: data})
}

func Paginated(c *fiber.Ctx, data any, p Pagination) error {
	return JSON(c, http.StatusOK, SuccessResponse{Success: true, Data: data, Pagination: &p})
}

const internalMessage = "Internal server error"

// Classify maps an error to its HTTP status and client-facing message.
// Unknown errors become a 500 with a generic message.
func Classify(err error) (int, string) {
	var (
		verr      *validate.Error
		authVerr  auth.ErrValidation
		taskVerr  task.ErrValidation
		accessErr *jwt.AccessError
		fiberErr  *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.As(err, &authVerr):
		return http.StatusBadRequest, string(authVerr)
	case errors.As(err, &taskVerr):
		return http.StatusBadRequest, string(taskVerr)
	case errors.Is(err, task.ErrInvalidID):
		return http.StatusBadRequest, "Invalid task id"
	case errors.Is(err, task.ErrInvalidDueDate):
		return http.StatusBadRequest, "Invalid dueDate query parameter"
	case errors.Is(err, task.ErrNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.As(err, &accessErr):
		return http.StatusUnauthorized, accessErr.Reason
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Not authorized"
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return http.StatusConflict, "User already exists"
	case errors.As(err, &fiberErr):
		if fiberErr.Code >= http.StatusInternalServerError {
			return fiberErr.Code, internalMessage
		}
		return fiberErr.Code, fiberErr.Message
	}
	return http.StatusInternalServerError, internalMessage
}

// ErrorHandler is the app-wide fiber.Config.ErrorHandler. It is the single
// place where errors returned by handlers become responses.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error(c.UserContext(), "request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
				"err", err,
			)
		}
		return Error(c, status, message)
	}
}

// NotFound answers any request that matched no route.
func NotFound(c *fiber.Ctx) error {
	return Error(c, http.StatusNotFound, "Route not found: "+c.OriginalURL())
}
