package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/taskmanager/api/http/presenter"
	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/validate"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{
		User: userResponse{
			ID:        r.User.ID.String(),
			Name:      r.User.Name,
			Email:     r.User.Email,
			CreatedAt: r.User.CreatedAt,
		},
		Token: r.Token,
	}
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body validate.RegisterRequest true "registration payload"
// @Success 201 {object} presenter.SuccessResponse{data=authResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req validate.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return validate.ErrMalformedBody
	}
	if err := validate.Register(req); err != nil {
		return err
	}

	result, err := h.useCase.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return presenter.Success(c, http.StatusCreated, "User registered successfully", toAuthResponse(result))
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body validate.LoginRequest true "login payload"
// @Success 200 {object} presenter.SuccessResponse{data=authResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validate.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return validate.ErrMalformedBody
	}
	if err := validate.Login(req); err != nil {
		return err
	}

	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return presenter.Success(c, http.StatusOK, "Login successful", toAuthResponse(result))
}
