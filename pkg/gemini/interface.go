package gemini

import "context"

// Generator defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type Generator interface {
	// GenerateContent sends a content generation request to the Gemini API
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string
}
