package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"classsync/internal/model"
	"classsync/internal/task"
	"classsync/pkg/dateutil"
	"classsync/pkg/gemini"
	pkgLog "classsync/pkg/log"
)

// extractedTaskSchema is the structured-output declaration sent with every
// extraction request. The reply must carry exactly these fields.
func extractedTaskSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: "OBJECT",
		Properties: map[string]*gemini.Schema{
			"title": {
				Type:        "STRING",
				Description: "A concise title for the task or assignment.",
			},
			"teacher": {
				Type:        "STRING",
				Description: "The name of the teacher or professor assigning the task.",
			},
			"deadline": {
				Type:        "STRING",
				Description: "The due date in YYYY-MM-DD format. Empty when not stated.",
			},
			"description": {
				Type:        "STRING",
				Description: "A short summary of what needs to be done.",
			},
			"priority": {
				Type:        "STRING",
				Enum:        []string{string(model.PriorityHigh), string(model.PriorityMedium), string(model.PriorityLow)},
				Description: "The estimated priority based on urgency and importance.",
			},
		},
		Required: []string{"title", "teacher", "description", "priority"},
	}
}

// decodeExtractedTask parses the model reply into ExtractedTaskData.
// Non-JSON replies, missing required fields and out-of-enum priorities are
// all ErrExtractionFailed; there is no partial result.
func decodeExtractedTask(ctx context.Context, l pkgLog.Logger, text string) (task.ExtractedTaskData, error) {
	cleaned := sanitizeJSONResponse(text)

	var raw struct {
		Title       *string `json:"title"`
		Teacher     *string `json:"teacher"`
		Deadline    *string `json:"deadline"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		l.Errorf(ctx, "decodeExtractedTask: non-JSON reply. Raw=%q Cleaned=%q", text, cleaned)
		return task.ExtractedTaskData{}, fmt.Errorf("%w: %w", task.ErrExtractionFailed, err)
	}

	for field, v := range map[string]*string{
		"title":       raw.Title,
		"teacher":     raw.Teacher,
		"description": raw.Description,
		"priority":    raw.Priority,
	} {
		if v == nil {
			return task.ExtractedTaskData{}, fmt.Errorf("%w: missing field %q", task.ErrExtractionFailed, field)
		}
	}

	priority, err := model.ParsePriority(*raw.Priority)
	if err != nil {
		return task.ExtractedTaskData{}, fmt.Errorf("%w: %w", task.ErrExtractionFailed, err)
	}

	// Deadline is optional. A present but unparseable value is dropped as a
	// rejected field, not a call failure.
	deadline := ""
	if raw.Deadline != nil {
		deadline = strings.TrimSpace(*raw.Deadline)
		if deadline != "" && !dateutil.IsDateOnly(deadline) {
			l.Warnf(ctx, "decodeExtractedTask: dropping malformed deadline %q", deadline)
			deadline = ""
		}
	}

	return task.ExtractedTaskData{
		Title:       strings.TrimSpace(*raw.Title),
		Teacher:     strings.TrimSpace(*raw.Teacher),
		Deadline:    deadline,
		Description: strings.TrimSpace(*raw.Description),
		Priority:    priority,
	}, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs sometimes add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// stripDataURL removes a data-URL prefix ("data:image/png;base64,...") from
// an image payload, leaving the bare base64 body.
func stripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, ','); i >= 0 && strings.HasPrefix(s, "data:") {
		return s[i+1:]
	}
	return s
}
