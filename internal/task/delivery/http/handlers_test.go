package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"classsync/internal/middleware"
	"classsync/internal/model"
	"classsync/internal/task"
	taskHTTP "classsync/internal/task/delivery/http"
	"classsync/pkg/log"
	"classsync/pkg/response"
)

// mockUseCase is a hand-rolled task.UseCase for handler tests.
type mockUseCase struct {
	listFunc    func(task.ListTasksInput) (task.ListTasksOutput, error)
	createFunc  func(task.CreateTaskInput) (task.CreateTaskOutput, error)
	extractFunc func(task.ExtractInput) (task.ExtractOutput, error)
	toggled     []string
	deleted     []string
}

func (m *mockUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if m.listFunc != nil {
		return m.listFunc(input)
	}
	return task.ListTasksOutput{}, nil
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return task.CreateTaskOutput{}, nil
}

func (m *mockUseCase) ToggleComplete(ctx context.Context, id string) error {
	m.toggled = append(m.toggled, id)
	return nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUseCase) Extract(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	if m.extractFunc != nil {
		return m.extractFunc(input)
	}
	return task.ExtractOutput{}, nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := taskHTTP.New(log.NewNop(), uc)
	mw := middleware.New(log.NewNop(), 0)
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response envelope: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{
		listFunc: func(input task.ListTasksInput) (task.ListTasksOutput, error) {
			if input.Status != task.StatusActive || input.Search != "physics" {
				t.Errorf("query not forwarded: %+v", input)
			}
			return task.ListTasksOutput{
				Tasks: []model.Task{{ID: "1", Title: "Physics Lab", Priority: model.PriorityHigh}},
				Total: 1,
			}, nil
		},
	}
	r := newRouter(uc)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/tasks?status=active&search=physics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["total"].(float64) != 1 {
		t.Errorf("unexpected total: %v", data["total"])
	}

	t.Run("Bad Status Value", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/tasks?status=done", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for bad status, got %d", w.Code)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{
		createFunc: func(input task.CreateTaskInput) (task.CreateTaskOutput, error) {
			return task.CreateTaskOutput{Task: model.Task{ID: "new-id", Title: input.Title}}, nil
		},
	}
	r := newRouter(uc)

	t.Run("Success", func(t *testing.T) {
		body := `{"title":"Lab Report","teacher":"Mr. X","deadline":"2024-05-01","priority":"High"}`
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		data := resp.Data.(map[string]interface{})
		taskData := data["task"].(map[string]interface{})
		if taskData["id"] != "new-id" {
			t.Errorf("unexpected task payload: %v", taskData)
		}
	})

	t.Run("Missing Title Rejected By Binding", func(t *testing.T) {
		body := `{"teacher":"Mr. X","deadline":"2024-05-01","priority":"High"}`
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unknown Priority Rejected By Binding", func(t *testing.T) {
		body := `{"title":"a","teacher":"b","deadline":"2024-05-01","priority":"Urgent"}`
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestToggleAndDeleteHandlers(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks/abc/toggle", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for toggle, got %d", w.Code)
	}
	if len(uc.toggled) != 1 || uc.toggled[0] != "abc" {
		t.Errorf("toggle id not forwarded: %v", uc.toggled)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/abc", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for delete, got %d", w.Code)
	}
	if len(uc.deleted) != 1 || uc.deleted[0] != "abc" {
		t.Errorf("delete id not forwarded: %v", uc.deleted)
	}
}

func TestExtractHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			extractFunc: func(input task.ExtractInput) (task.ExtractOutput, error) {
				return task.ExtractOutput{Data: task.ExtractedTaskData{
					Title:    "Lab Report",
					Teacher:  "Mr. X",
					Priority: model.PriorityHigh,
				}}, nil
			},
		}
		r := newRouter(uc)

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks/extract", `{"note_text":"rough notes"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]interface{})
		if data["title"] != "Lab Report" || data["priority"] != "High" {
			t.Errorf("unexpected extract payload: %v", data)
		}
	})

	t.Run("No Input", func(t *testing.T) {
		uc := &mockUseCase{
			extractFunc: func(input task.ExtractInput) (task.ExtractOutput, error) {
				return task.ExtractOutput{}, task.ErrNoExtractionInput
			},
		}
		r := newRouter(uc)

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks/extract", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if resp.Message != task.ErrNoExtractionInput.Error() {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})

	t.Run("Extraction Failure Is Generic", func(t *testing.T) {
		uc := &mockUseCase{
			extractFunc: func(input task.ExtractInput) (task.ExtractOutput, error) {
				return task.ExtractOutput{}, task.ErrExtractionFailed
			},
		}
		r := newRouter(uc)

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks/extract", `{"note_text":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if resp.Message != task.ErrExtractionFailed.Error() {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})
}
