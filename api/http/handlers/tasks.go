package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/taskmanager/api/http/presenter"
	"github.com/artem13815/taskmanager/pkg/auth"
	"github.com/artem13815/taskmanager/pkg/task"
	"github.com/artem13815/taskmanager/pkg/validate"
)

// TaskHandler serves the task routes. Every method receives the user
// resolved by the access-control middleware.
type TaskHandler struct {
	uc task.UseCase
}

func NewTaskHandler(uc task.UseCase) *TaskHandler { return &TaskHandler{uc: uc} }

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		User:        t.OwnerID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   input body validate.TaskCreateRequest true "task payload"
// @Security BearerAuth
// @Success 201 {object} presenter.SuccessResponse{data=taskResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx, user auth.User) error {
	var req validate.TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return validate.ErrMalformedBody
	}
	draft, err := validate.TaskCreate(req)
	if err != nil {
		return err
	}
	t, err := h.uc.Create(c.UserContext(), user.ID, draft)
	if err != nil {
		return err
	}
	return presenter.Success(c, http.StatusCreated, "Task created successfully", toTaskResponse(t))
}

// @Summary List tasks
// @Description Tasks of the caller sorted by due date. dueDate matches the whole calendar day.
// @Tags    tasks
// @Produce json
// @Param   status  query string false "pending | in-progress | completed"
// @Param   dueDate query string false "date, e.g. 2024-03-15"
// @Param   page    query int    false "page number (default 1)"
// @Param   limit   query int    false "page size (default 10)"
// @Security BearerAuth
// @Success 200 {object} presenter.SuccessResponse{data=[]taskResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx, user auth.User) error {
	page, limit := parsePageLimit(c)
	filter := task.Filter{
		Status:  task.Status(c.Query("status")),
		DueDate: c.Query("dueDate"),
	}
	res, err := h.uc.List(c.UserContext(), user.ID, filter, page, limit)
	if err != nil {
		return err
	}
	items := make([]taskResponse, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		items = append(items, toTaskResponse(t))
	}
	return presenter.Paginated(c, items, presenter.Pagination{
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

// @Summary Get task by ID
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.SuccessResponse{data=taskResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx, user auth.User) error {
	t, err := h.uc.Get(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return presenter.Success(c, http.StatusOK, "", toTaskResponse(t))
}

// @Summary Update task
// @Description Only the fields present in the body are changed.
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id    path string true "task ID (UUID)"
// @Param   input body validate.TaskUpdateRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} presenter.SuccessResponse{data=taskResponse}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx, user auth.User) error {
	// Reject a bad id before the body is read; the use case parses it again.
	if _, err := task.ParseID(c.Params("id")); err != nil {
		return err
	}
	var req validate.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return validate.ErrMalformedBody
	}
	patch, err := validate.TaskUpdate(req)
	if err != nil {
		return err
	}
	t, err := h.uc.Update(c.UserContext(), user.ID, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return presenter.Success(c, http.StatusOK, "Task updated successfully", toTaskResponse(t))
}

// @Summary Delete task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.SuccessResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx, user auth.User) error {
	if err := h.uc.Delete(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return presenter.Success(c, http.StatusOK, "Task deleted successfully", nil)
}
