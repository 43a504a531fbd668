package task

import (
	"time"

	"github.com/google/uuid"
)

// Status is a free-form progress label. Any status may follow any other.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft carries validated fields for a new task.
type Draft struct {
	Title       string
	Description string
	Status      Status
	DueDate     time.Time
}

// Patch carries the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     *time.Time
}

// Filter narrows a task listing. Zero values mean "no filter".
type Filter struct {
	Status  Status
	DueDate string
}

// Page is one slice of an owner's task list.
type Page struct {
	Tasks      []Task
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
