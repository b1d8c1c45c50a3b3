// Package dateutil normalizes deadline values for comparison.
//
// Deadlines carry date-only semantics: a task is due on a calendar day, not
// at an instant. Values arrive either as plain YYYY-MM-DD strings or as full
// RFC3339 timestamps, and both must compare correctly, so everything is
// reduced to midnight UTC of the calendar day before any ordering decision.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical date-only layout.
const DateFormat = "2006-01-02"

// ParseDeadline parses a deadline string in YYYY-MM-DD or RFC3339 form and
// returns midnight UTC of that calendar day.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty deadline")
	}

	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized deadline format %q", s)
}

// IsDateOnly reports whether s is a plain YYYY-MM-DD date.
func IsDateOnly(s string) bool {
	_, err := time.Parse(DateFormat, strings.TrimSpace(s))
	return err == nil
}
