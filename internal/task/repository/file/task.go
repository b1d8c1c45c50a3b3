package file

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"classsync/internal/model"
	"classsync/internal/task/repository"
	"classsync/pkg/blobstore"
)

// loadTasks reads the persisted collection from the blob slot.
// Fail-soft: a slot that is missing or does not decode yields the seed set.
func (r *Repository) loadTasks(ctx context.Context) []model.Task {
	data, err := r.blobs.Get(TasksKey)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			r.l.Warnf(ctx, "file.loadTasks: read failed, starting from seed: %v", err)
		}
		return seedTasks()
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.l.Warnf(ctx, "file.loadTasks: malformed blob, starting from seed: %v", err)
		return seedTasks()
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks
}

// persist writes the whole collection back to the blob slot.
// A write failure is a warning, not an error: the in-memory collection
// remains the source of truth for the session.
func (r *Repository) persist(ctx context.Context) {
	data, err := json.Marshal(r.tasks)
	if err != nil {
		r.l.Warnf(ctx, "file.persist: marshal failed: %v", err)
		return
	}
	if err := r.blobs.Set(TasksKey, data); err != nil {
		r.l.Warnf(ctx, "file.persist: write failed, in-memory state kept: %v", err)
	}
}

// GetTasks returns a snapshot copy of the collection, newest-first.
func (r *Repository) GetTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// CreateTask assigns a fresh id and timestamp, prepends the task and persists.
func (r *Repository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opts.Title,
		Teacher:     opts.Teacher,
		Deadline:    opts.Deadline,
		Description: opts.Description,
		Priority:    opts.Priority,
		ImageURL:    opts.ImageURL,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	r.tasks = append([]model.Task{t}, r.tasks...)
	r.persist(ctx)
	return t, nil
}

// ToggleTask flips completed for the matching task. No-op when id is unknown.
func (r *Repository) ToggleTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Completed = !r.tasks[i].Completed
			r.persist(ctx)
			return nil
		}
	}
	return nil
}

// DeleteTask removes the matching task. No-op when id is unknown.
func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persist(ctx)
			return nil
		}
	}
	return nil
}
