package usecase

import (
	"context"
	"strings"

	"classsync/internal/task"
	"classsync/internal/task/repository"
	"classsync/pkg/dateutil"
)

// Create validates the draft and adds it to the collection.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	teacher := strings.TrimSpace(input.Teacher)

	if title == "" {
		return task.CreateTaskOutput{}, task.ErrMissingTitle
	}
	if teacher == "" {
		return task.CreateTaskOutput{}, task.ErrMissingTeacher
	}
	if !input.Priority.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}
	if _, err := dateutil.ParseDeadline(input.Deadline); err != nil {
		return task.CreateTaskOutput{}, task.ErrInvalidDeadline
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       title,
		Teacher:     teacher,
		Deadline:    strings.TrimSpace(input.Deadline),
		Description: input.Description,
		Priority:    input.Priority,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: created task %q id=%s", created.Title, created.ID)
	return task.CreateTaskOutput{Task: created}, nil
}
