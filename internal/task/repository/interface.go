package repository

import (
	"context"

	"classsync/internal/model"
)

// Repository owns the task collection and its persistence round-trip.
// Mutations persist the full collection as a side effect; a failed persist
// is reported through the logger only, the in-memory collection stays
// authoritative for the session.
type Repository interface {
	// GetTasks returns a snapshot of the collection, newest-first.
	GetTasks(ctx context.Context) ([]model.Task, error)

	// CreateTask assigns id/createdAt, prepends and persists.
	CreateTask(ctx context.Context, opts CreateTaskOptions) (model.Task, error)

	// ToggleTask flips completed for the matching task. No-op when absent.
	ToggleTask(ctx context.Context, id string) error

	// DeleteTask removes the matching task. No-op when absent.
	DeleteTask(ctx context.Context, id string) error
}
