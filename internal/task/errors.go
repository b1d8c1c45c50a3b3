package task

import "errors"

var (
	ErrMissingTitle        = errors.New("title is required")
	ErrMissingTeacher      = errors.New("teacher is required")
	ErrInvalidDeadline     = errors.New("deadline is not a valid date")
	ErrInvalidPriority     = errors.New("priority must be High, Medium or Low")
	ErrInvalidStatusFilter = errors.New("status filter must be all, active or completed")
	ErrNoExtractionInput   = errors.New("extraction requires note text or an image")
	ErrExtractionFailed    = errors.New("could not extract task details, please try again")
)
