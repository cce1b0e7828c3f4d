package handlers

import (
	"net/http"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SelectionHandler handles HTTP requests for selection sessions
type SelectionHandler struct {
	selectionService service.SelectionServiceInterface
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selectionService service.SelectionServiceInterface) *SelectionHandler {
	return &SelectionHandler{
		selectionService: selectionService,
	}
}

// respondView writes the session view or the error of a session operation
func respondView(c *gin.Context, view *allocation.SessionView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// withBody parses the session id and binds the JSON body into req
func withBody(c *gin.Context, req interface{}) (uuid.UUID, bool) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return uuid.Nil, false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /selections
// @Summary Start a selection session
// @Tags selections
// @Accept json
// @Produce json
// @Param request body service.CreateSelectionRequest true "Allocation mode"
// @Success 201 {object} allocation.SessionView "New session"
// @Failure 400 {object} map[string]interface{} "Invalid or unknown mode"
// @Router /selections [post]
func (h *SelectionHandler) Create(c *gin.Context) {
	var req service.CreateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.selectionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Get handles GET /selections/:id
// @Summary Get a selection session
// @Tags selections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 404 {object} map[string]interface{} "Session not found or expired"
// @Router /selections/{id} [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}
	view, err := h.selectionService.Get(id)
	respondView(c, view, err)
}

// Delete handles DELETE /selections/:id
// @Summary Discard a selection session
// @Tags selections
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Session discarded"
// @Failure 404 {object} map[string]interface{} "Session not found or expired"
// @Router /selections/{id} [delete]
func (h *SelectionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}
	if err := h.selectionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleSource handles POST /selections/:id/sources/toggle
// @Summary Toggle a test case
// @Description In one-to-one mode selecting a second test case replaces the first
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.ToggleItemRequest true "Test case id"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/sources/toggle [post]
func (h *SelectionHandler) ToggleSource(c *gin.Context) {
	var req service.ToggleItemRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.ToggleSource(id, &req)
	respondView(c, view, err)
}

// ToggleTarget handles POST /selections/:id/targets/toggle
// @Summary Toggle a release
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.ToggleItemRequest true "Release id"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/targets/toggle [post]
func (h *SelectionHandler) ToggleTarget(c *gin.Context) {
	var req service.ToggleItemRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.ToggleTarget(id, &req)
	respondView(c, view, err)
}

// SelectAllSources handles POST /selections/:id/sources/select-all
// @Summary Select a list of test cases
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.SelectAllRequest true "Test case ids"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Selection violates the mode"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/sources/select-all [post]
func (h *SelectionHandler) SelectAllSources(c *gin.Context) {
	var req service.SelectAllRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.SelectAllSources(id, &req)
	respondView(c, view, err)
}

// SelectAllTargets handles POST /selections/:id/targets/select-all
// @Summary Select a list of releases
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.SelectAllRequest true "Release ids"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Selection violates the mode"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/targets/select-all [post]
func (h *SelectionHandler) SelectAllTargets(c *gin.Context) {
	var req service.SelectAllRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.SelectAllTargets(id, &req)
	respondView(c, view, err)
}

// SetMode handles PUT /selections/:id/mode
// @Summary Change the allocation mode
// @Description Changing the mode clears the selection
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.SetModeRequest true "Allocation mode"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Unknown mode"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/mode [put]
func (h *SelectionHandler) SetMode(c *gin.Context) {
	var req service.SetModeRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.SetMode(id, &req)
	respondView(c, view, err)
}

// SetTarget handles PUT /selections/:id/target
// @Summary Switch the release a QA selection applies to
// @Description Switching to another release clears the selection
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.SetTargetRequest true "Release id"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/target [put]
func (h *SelectionHandler) SetTarget(c *gin.Context) {
	var req service.SetTargetRequest
	id, ok := withBody(c, &req)
	if !ok {
		return
	}
	view, err := h.selectionService.SetTarget(id, &req)
	respondView(c, view, err)
}

// Clear handles DELETE /selections/:id/items
// @Summary Clear the selected test cases and releases
// @Tags selections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Router /selections/{id}/items [delete]
func (h *SelectionHandler) Clear(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}
	view, err := h.selectionService.Clear(id)
	respondView(c, view, err)
}

// ToggleModule handles POST /selections/:id/modules/:moduleId/toggle
// @Summary Toggle a module and all of its submodules
// @Tags selections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param moduleId path string true "Module ID (UUID)"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 404 {object} map[string]interface{} "Session or module not found"
// @Router /selections/{id}/modules/{moduleId}/toggle [post]
func (h *SelectionHandler) ToggleModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}
	moduleID, ok := parseIDParam(c, "moduleId", "module")
	if !ok {
		return
	}
	view, err := h.selectionService.ToggleModule(id, moduleID)
	respondView(c, view, err)
}

// ToggleSubmodule handles POST /selections/:id/modules/:moduleId/submodules/:submoduleId/toggle
// @Summary Toggle one submodule
// @Description Deselecting a submodule of a selected module deselects the module
// @Tags selections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param moduleId path string true "Module ID (UUID)"
// @Param submoduleId path string true "Submodule ID (UUID)"
// @Success 200 {object} allocation.SessionView "Session"
// @Failure 404 {object} map[string]interface{} "Session, module or submodule not found"
// @Router /selections/{id}/modules/{moduleId}/submodules/{submoduleId}/toggle [post]
func (h *SelectionHandler) ToggleSubmodule(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}
	moduleID, ok := parseIDParam(c, "moduleId", "module")
	if !ok {
		return
	}
	submoduleID, ok := parseIDParam(c, "submoduleId", "submodule")
	if !ok {
		return
	}
	view, err := h.selectionService.ToggleSubmodule(id, moduleID, submoduleID)
	respondView(c, view, err)
}

// Submit handles POST /selections/:id/submit
// @Summary Allocate the session's selection
// @Description Runs the allocation batch and clears the selection when every request succeeded
// @Tags selections
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SubmitSelectionResponse "Every request succeeded"
// @Success 207 {object} service.SubmitSelectionResponse "Some requests failed, selection kept"
// @Failure 400 {object} map[string]interface{} "Empty or invalid selection"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 409 {object} service.SubmitSelectionResponse "Cancelled before anything was allocated"
// @Failure 502 {object} service.SubmitSelectionResponse "No request succeeded"
// @Router /selections/{id}/submit [post]
func (h *SelectionHandler) Submit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}

	resp, err := h.selectionService.Submit(c.Request.Context(), id)
	if resp != nil && resp.Batch != nil {
		c.JSON(batchStatus(resp.Batch, err), resp)
		return
	}
	respondError(c, err)
}

// SubmitQA handles POST /selections/:id/qa-submit
// @Summary Assign the selected test cases to a QA engineer
// @Description Allocates the session's selected test cases within its target release and clears them when any was accepted
// @Tags selections
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.QASubmitSelectionRequest true "QA engineer"
// @Success 200 {object} service.QASubmitSelectionResponse "Accepted and rejected test cases"
// @Failure 400 {object} map[string]interface{} "No target release, empty selection or no test case accepted"
// @Failure 404 {object} map[string]interface{} "Session, release or employee not found"
// @Router /selections/{id}/qa-submit [post]
func (h *SelectionHandler) SubmitQA(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "selection")
	if !ok {
		return
	}

	var req service.QASubmitSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.selectionService.SubmitQA(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
