package usecase

import (
	"context"
	"fmt"
	"strings"

	"classsync/internal/task"
	"classsync/pkg/gemini"
)

const (
	// extractSystemInstruction pins the assistant behavior: never guess a
	// missing date, placeholder for other unknowns.
	extractSystemInstruction = "You are a helpful student assistant. Extract assignment details accurately. " +
		"If a date is missing, leave deadline empty. If specific details are missing, use 'Unknown'."

	extractPromptPrefix = "Analyze this input (which may be a photo of a board, a syllabus, or messy notes) " +
		"and extract the task details.\nInput text context: "

	defaultImageMIMEType = "image/jpeg"
)

// Extract sends notes and/or an image to the AI service and decodes the
// structured task fields out of the reply. One blocking request, no retries.
func (uc *implUseCase) Extract(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	note := strings.TrimSpace(input.NoteText)
	image := stripDataURL(input.ImageData)

	if note == "" && image == "" {
		return task.ExtractOutput{}, task.ErrNoExtractionInput
	}

	var parts []gemini.Part
	if image != "" {
		mime := input.ImageMIMEType
		if mime == "" {
			mime = defaultImageMIMEType
		}
		parts = append(parts, gemini.Part{
			InlineData: &gemini.InlineData{MIMEType: mime, Data: image},
		})
	}
	if note != "" {
		parts = append(parts, gemini.Part{Text: extractPromptPrefix + note})
	} else {
		parts = append(parts, gemini.Part{Text: extractPromptPrefix + "(image only)"})
	}

	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: extractSystemInstruction}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: parts},
		},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   extractedTaskSchema(),
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract GenerateContent: %v", err)
		return task.ExtractOutput{}, fmt.Errorf("%w: %w", task.ErrExtractionFailed, err)
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "uc.Extract: empty reply from model %s", uc.llm.Model())
		return task.ExtractOutput{}, fmt.Errorf("%w: empty reply", task.ErrExtractionFailed)
	}

	data, err := decodeExtractedTask(ctx, uc.l, text)
	if err != nil {
		return task.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Extract: extracted %q priority=%s deadline=%q", data.Title, data.Priority, data.Deadline)
	return task.ExtractOutput{Data: data}, nil
}
