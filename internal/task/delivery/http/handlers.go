package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classsync/pkg/response"
)

// List godoc
// @Summary     List visible tasks
// @Description Returns tasks matching the status filter and search text, incomplete first, then by deadline.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status query string false "Status filter (all/active/completed)"
// @Param       search query string false "Case-insensitive substring over title, teacher and description"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a new assignment from a validated draft.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task draft"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ToggleComplete godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag. Unknown ids are a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.ToggleComplete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. Unknown ids are a no-op. Confirmation happens in the UI.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Extract godoc
// @Summary     AI auto-fill
// @Description Extracts structured task fields from free-text notes and/or an inline image via the AI service.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Notes and/or base64 image"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "No input, or the AI reply could not be used"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
