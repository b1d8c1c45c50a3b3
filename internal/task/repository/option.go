package repository

import "classsync/internal/model"

// CreateTaskOptions carries the validated draft fields for a new task.
// Validation is the caller's responsibility; the repository trusts the shape.
type CreateTaskOptions struct {
	Title       string
	Teacher     string
	Deadline    string
	Description string
	Priority    model.Priority
	ImageURL    string
}
