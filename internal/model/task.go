package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority converts a raw string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.TrimSpace(s))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q", s)
	}
	return p, nil
}

// Task represents a single assignment tracked by the user.
//
// JSON tags match the persisted blob layout; blobs written by older builds
// may lack fields, which unmarshal as zero values.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Teacher     string    `json:"teacher"`
	Deadline    string    `json:"deadline"` // date string, YYYY-MM-DD or RFC3339
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	ImageURL    string    `json:"imageUrl,omitempty"` // data URI or external URL, never parsed
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
