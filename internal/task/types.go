package task

import (
	"classsync/internal/model"
)

// StatusFilter restricts a task listing by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter converts a raw query value into a StatusFilter.
// An empty value means no restriction.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusActive:
		return StatusActive, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatusFilter
}

// --- UseCase Inputs ---

type ListTasksInput struct {
	Status StatusFilter
	Search string
}

type CreateTaskInput struct {
	Title       string
	Teacher     string
	Deadline    string
	Description string
	Priority    model.Priority
	ImageURL    string
}

type ExtractInput struct {
	NoteText      string
	ImageData     string // base64 payload, data-URL prefix tolerated
	ImageMIMEType string // defaults to image/jpeg when an image is present
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type CreateTaskOutput struct {
	Task model.Task
}

// ExtractedTaskData is the structured task pulled out of free-form notes or
// an image by the AI service. It is a form pre-fill, never stored directly.
type ExtractedTaskData struct {
	Title       string
	Teacher     string
	Deadline    string // YYYY-MM-DD, empty when the service could not tell
	Description string
	Priority    model.Priority
}

type ExtractOutput struct {
	Data ExtractedTaskData
}
