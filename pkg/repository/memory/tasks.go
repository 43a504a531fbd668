package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/taskmanager/pkg/task"
)

type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[uuid.UUID]task.Task)}
}

func (r *TaskRepository) Create(_ context.Context, t task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return nil
}

func (r *TaskRepository) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return task.Task{}, task.ErrNotFound
	}
	return t, nil
}

func (r *TaskRepository) List(_ context.Context, q task.Query) ([]task.Task, error) {
	matched := r.match(q)
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].DueDate.Equal(matched[j].DueDate) {
			return matched[i].DueDate.Before(matched[j].DueDate)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if q.Offset < 0 || q.Offset >= len(matched) {
		return []task.Task{}, nil
	}
	end := len(matched)
	if q.Limit > 0 && q.Limit < end-q.Offset {
		end = q.Offset + q.Limit
	}
	return matched[q.Offset:end], nil
}

func (r *TaskRepository) Count(_ context.Context, q task.Query) (int, error) {
	return len(r.match(q)), nil
}

func (r *TaskRepository) UpdateForOwner(_ context.Context, ownerID, id uuid.UUID, p task.Patch, updatedAt time.Time) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return task.Task{}, task.ErrNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	t.UpdatedAt = updatedAt
	r.tasks[id] = t
	return t, nil
}

func (r *TaskRepository) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return task.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *TaskRepository) match(q task.Query) []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []task.Task
	for _, t := range r.tasks {
		if t.OwnerID != q.OwnerID {
			continue
		}
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if q.DueFrom != nil && t.DueDate.Before(*q.DueFrom) {
			continue
		}
		if q.DueTo != nil && t.DueDate.After(*q.DueTo) {
			continue
		}
		res = append(res, t)
	}
	return res
}
