package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("task not found")
	ErrInvalidID      = errors.New("invalid task id")
	ErrInvalidDueDate = errors.New("invalid dueDate query parameter")
)

// Query is an owner-scoped lookup built by the use case.
// DueFrom and DueTo are inclusive bounds.
type Query struct {
	OwnerID uuid.UUID
	Status  Status
	DueFrom *time.Time
	DueTo   *time.Time
	Limit   int
	Offset  int
}

// Repository is the task store port. Every method that addresses a single
// task takes the owner id and must report tasks of other owners as ErrNotFound.
type Repository interface {
	Create(ctx context.Context, t Task) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	List(ctx context.Context, q Query) ([]Task, error)
	Count(ctx context.Context, q Query) (int, error)
	UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, p Patch, updatedAt time.Time) (Task, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
