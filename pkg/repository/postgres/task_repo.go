package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/taskmanager/pkg/task"
)

// TaskRepository stores tasks; every single-row statement filters by owner_id.
type TaskRepository struct {
	db DB
}

func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, owner_id, title, description, status, due_date, created_at, updated_at`

func (r *TaskRepository) Create(ctx context.Context, t task.Task) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO tasks (id, owner_id, title, description, status, due_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, t.ID, t.OwnerID, t.Title, t.Description, string(t.Status), t.DueDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	row := r.db.QueryRow(ctx, `
SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanTask(row)
}

func (r *TaskRepository) List(ctx context.Context, q task.Query) ([]task.Task, error) {
	where, args := whereClause(q)
	args = append(args, q.Limit, q.Offset)
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
SELECT %s FROM tasks
WHERE %s
ORDER BY due_date ASC, created_at ASC
LIMIT $%d OFFSET $%d
`, taskColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	res := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return res, nil
}

func (r *TaskRepository) Count(ctx context.Context, q task.Query) (int, error) {
	where, args := whereClause(q)
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

// UpdateForOwner applies the non-nil patch fields in a single statement;
// owner_id is never part of the SET list.
func (r *TaskRepository) UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, p task.Patch, updatedAt time.Time) (task.Task, error) {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	row := r.db.QueryRow(ctx, `
UPDATE tasks SET
	title       = COALESCE($3, title),
	description = COALESCE($4, description),
	status      = COALESCE($5, status),
	due_date    = COALESCE($6, due_date),
	updated_at  = $7
WHERE id = $1 AND owner_id = $2
RETURNING `+taskColumns, id, ownerID, p.Title, p.Description, status, p.DueDate, updatedAt)
	return scanTask(row)
}

func (r *TaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func whereClause(q task.Query) (string, []any) {
	conds := []string{"owner_id = $1"}
	args := []any{q.OwnerID}
	if q.Status != "" {
		args = append(args, string(q.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.DueFrom != nil {
		args = append(args, *q.DueFrom)
		conds = append(conds, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if q.DueTo != nil {
		args = append(args, *q.DueTo)
		conds = append(conds, fmt.Sprintf("due_date <= $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var status string
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, fmt.Errorf("scan task: %w", err)
	}
	t.Status = task.Status(status)
	t.DueDate = t.DueDate.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
