package task

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 200
)

// Field rule messages, shared with request validation.
const (
	MsgTitleRequired   = "Title is required"
	MsgTitleEmpty      = "Title, if provided, cannot be empty"
	MsgStatusInvalid   = "Status must be one of pending, in-progress, completed"
	MsgDueDateRequired = "A valid dueDate is required"
	MsgDueDateInvalid  = "dueDate must be a valid date"
)

// UseCase exposes task operations scoped to an authenticated owner.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, d Draft) (Task, error)
	List(ctx context.Context, ownerID uuid.UUID, f Filter, page, limit int) (Page, error)
	Get(ctx context.Context, ownerID uuid.UUID, rawID string) (Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, rawID string, p Patch) (Task, error)
	Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error
}

// ErrValidation is returned when a draft or patch breaks a field rule.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, d Draft) (Task, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return Task{}, ErrValidation(MsgTitleRequired)
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	if !d.Status.Valid() {
		return Task{}, ErrValidation(MsgStatusInvalid)
	}
	if d.DueDate.IsZero() {
		return Task{}, ErrValidation(MsgDueDateRequired)
	}
	now := s.now()
	t := Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		DueDate:     d.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, f Filter, page, limit int) (Page, error) {
	page = max(page, 1)
	limit = min(max(limit, 1), MaxLimit)
	offset, inRange := pageOffset(page, limit)

	q := Query{
		OwnerID: ownerID,
		Status:  f.Status,
		Limit:   limit,
		Offset:  offset,
	}
	if strings.TrimSpace(f.DueDate) != "" {
		due, ok := ParseDate(f.DueDate)
		if !ok {
			return Page{}, ErrInvalidDueDate
		}
		from, to := DayBounds(due)
		q.DueFrom, q.DueTo = &from, &to
	}

	var tasks []Task
	if inRange {
		var err error
		if tasks, err = s.repo.List(ctx, q); err != nil {
			return Page{}, fmt.Errorf("list tasks: %w", err)
		}
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return Page{}, fmt.Errorf("count tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return Page{
		Tasks:      tasks,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

func (s *service) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (Task, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return Task{}, err
	}
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) Update(ctx context.Context, ownerID uuid.UUID, rawID string, p Patch) (Task, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return Task{}, err
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Task{}, ErrValidation(MsgTitleEmpty)
		}
		p.Title = &title
	}
	if p.Status != nil && !p.Status.Valid() {
		return Task{}, ErrValidation(MsgStatusInvalid)
	}
	if p.DueDate != nil && p.DueDate.IsZero() {
		return Task{}, ErrValidation(MsgDueDateInvalid)
	}
	return s.repo.UpdateForOwner(ctx, ownerID, id, p, s.now())
}

func (s *service) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

// ParseID parses a task identifier, reporting ErrInvalidID for malformed input.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// pageOffset returns the row offset of page. ok is false when the offset
// does not fit in an int; such a page is past any stored data.
func pageOffset(page, limit int) (offset int, ok bool) {
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
