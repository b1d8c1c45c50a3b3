package http

import (
	"time"

	"classsync/internal/model"
	"classsync/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Teacher     string `json:"teacher"     binding:"required,min=1,max=255"`
	Deadline    string `json:"deadline"    binding:"required"`
	Description string `json:"description" binding:"max=2000"`
	Priority    string `json:"priority"    binding:"required,oneof=High Medium Low"`
	ImageURL    string `json:"imageUrl"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Teacher:     r.Teacher,
		Deadline:    r.Deadline,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		ImageURL:    r.ImageURL,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=all active completed"`
	Search string `form:"search" binding:"max=255"`
}

func (r listReq) toInput() (task.ListTasksInput, error) {
	status, err := task.ParseStatusFilter(r.Status)
	if err != nil {
		return task.ListTasksInput{}, err
	}
	return task.ListTasksInput{
		Status: status,
		Search: r.Search,
	}, nil
}

// ---

type extractReq struct {
	NoteText      string `json:"note_text"       binding:"max=10000"`
	ImageData     string `json:"image_data"`
	ImageMIMEType string `json:"image_mime_type" binding:"omitempty,max=64"`
}

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{
		NoteText:      r.NoteText,
		ImageData:     r.ImageData,
		ImageMIMEType: r.ImageMIMEType,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Teacher     string    `json:"teacher"`
	Deadline    string    `json:"deadline"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Teacher:     t.Teacher,
		Deadline:    t.Deadline,
		Description: t.Description,
		Priority:    string(t.Priority),
		ImageURL:    t.ImageURL,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Total: out.Total,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

// extractResp is a form pre-fill draft, so it mirrors the form field names.
type extractResp struct {
	Title       string `json:"title"`
	Teacher     string `json:"teacher"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	return extractResp{
		Title:       out.Data.Title,
		Teacher:     out.Data.Teacher,
		Deadline:    out.Data.Deadline,
		Description: out.Data.Description,
		Priority:    string(out.Data.Priority),
	}
}
