package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"classsync/internal/model"
	"classsync/internal/task"
	"classsync/pkg/dateutil"
)

// List returns the visible task list for the given filter and search text.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if input.Status == "" {
		input.Status = task.StatusAll
	}

	tasks, err := uc.repo.GetTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List GetTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	visible := Visible(tasks, input.Status, input.Search)
	return task.ListTasksOutput{Tasks: visible, Total: len(visible)}, nil
}

// Visible computes the display list from the full collection: status filter,
// case-insensitive substring search over title/teacher/description, then
// incomplete-before-completed ordered by ascending deadline date. The sort is
// stable, so equal deadlines keep their collection order. Pure function.
func Visible(tasks []model.Task, status task.StatusFilter, search string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchStatus(t, status) {
			continue
		}
		if needle != "" && !matchSearch(t, needle) {
			continue
		}
		out = append(out, t)
	}

	// Parse each deadline once so the comparator never compares raw strings.
	type keyed struct {
		task     model.Task
		deadline time.Time
		valid    bool
	}
	items := make([]keyed, len(out))
	for i, t := range out {
		d, err := dateutil.ParseDeadline(t.Deadline)
		items[i] = keyed{task: t, deadline: d, valid: err == nil}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.task.Completed != b.task.Completed {
			return !a.task.Completed
		}
		if a.valid != b.valid {
			// Unparseable deadlines sort after dated ones within the group.
			return a.valid
		}
		if !a.valid {
			return false
		}
		return a.deadline.Before(b.deadline)
	})

	for i, it := range items {
		out[i] = it.task
	}
	return out
}

func matchStatus(t model.Task, status task.StatusFilter) bool {
	switch status {
	case task.StatusActive:
		return !t.Completed
	case task.StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func matchSearch(t model.Task, needle string) bool {
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Teacher), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}
