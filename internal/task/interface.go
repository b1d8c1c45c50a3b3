package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List computes the visible task list from the full collection.
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)

	// Create validates a draft and adds it to the collection.
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// ToggleComplete flips the completed flag. No-op when id is unknown.
	ToggleComplete(ctx context.Context, id string) error

	// Delete removes a task. No-op when id is unknown.
	Delete(ctx context.Context, id string) error

	// Extract derives structured task fields from notes and/or an image
	// via the AI service.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
