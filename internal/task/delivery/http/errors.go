package http

import (
	"errors"

	"classsync/internal/task"
)

// errTryAgain hides internal failures behind a retry-friendly message.
var errTryAgain = errors.New("something went wrong, please try again")

// mapError translates domain errors into user-facing ones. Validation and
// extraction errors carry safe messages already; anything else stays internal.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrMissingTitle),
		errors.Is(err, task.ErrMissingTeacher),
		errors.Is(err, task.ErrInvalidDeadline),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatusFilter),
		errors.Is(err, task.ErrNoExtractionInput):
		return err
	case errors.Is(err, task.ErrExtractionFailed):
		// Drop the wrapped cause: upstream API errors are logged, not shown.
		return task.ErrExtractionFailed
	default:
		return errTryAgain
	}
}
