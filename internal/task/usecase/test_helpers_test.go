package usecase_test

import (
	"context"

	"classsync/internal/model"
	"classsync/internal/task/repository"
	"classsync/pkg/gemini"
)

// mockRepository is a hand-rolled repository.Repository for usecase tests.
type mockRepository struct {
	tasks      []model.Task
	getErr     error
	createFunc func(repository.CreateTaskOptions) (model.Task, error)
	toggled    []string
	deleted    []string
}

func (m *mockRepository) GetTasks(ctx context.Context) ([]model.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opts)
	}
	t := model.Task{
		ID:          "generated-id",
		Title:       opts.Title,
		Teacher:     opts.Teacher,
		Deadline:    opts.Deadline,
		Description: opts.Description,
		Priority:    opts.Priority,
		ImageURL:    opts.ImageURL,
	}
	m.tasks = append([]model.Task{t}, m.tasks...)
	return t, nil
}

func (m *mockRepository) ToggleTask(ctx context.Context, id string) error {
	m.toggled = append(m.toggled, id)
	return nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// mockGenerator is a hand-rolled gemini.Generator for usecase tests.
type mockGenerator struct {
	response *gemini.GenerateResponse
	err      error
	calls    int
	lastReq  gemini.GenerateRequest
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGenerator) Model() string {
	return "gemini-test"
}

// textResponse wraps a reply body the way the Gemini API does.
func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}
}
