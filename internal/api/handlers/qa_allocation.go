package handlers

import (
	"net/http"

	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QAAllocationHandler handles HTTP requests for QA allocation (stage Q)
type QAAllocationHandler struct {
	qaService service.QAAllocationServiceInterface
}

// NewQAAllocationHandler creates a new QA allocation handler
func NewQAAllocationHandler(qaService service.QAAllocationServiceInterface) *QAAllocationHandler {
	return &QAAllocationHandler{
		qaService: qaService,
	}
}

// GetStatus handles GET /releases/:id/qa-allocations
// @Summary Get QA allocation status of a release
// @Description Allocated and remaining test cases, per-QA assignments and the stage of the release
// @Tags qa-allocations
// @Produce json
// @Param id path string true "Release ID (UUID)"
// @Success 200 {object} service.QAAllocationStatusResponse "Release status"
// @Failure 400 {object} map[string]interface{} "Invalid release ID"
// @Failure 404 {object} map[string]interface{} "Release not found"
// @Router /releases/{id}/qa-allocations [get]
func (h *QAAllocationHandler) GetStatus(c *gin.Context) {
	releaseID, ok := parseIDParam(c, "id", "release")
	if !ok {
		return
	}

	status, err := h.qaService.GetStatus(releaseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Allocate handles POST /releases/:id/qa-allocations
// @Summary Assign remaining test cases to a QA engineer
// @Description Test cases not in the remaining pool are rejected individually
// @Tags qa-allocations
// @Accept json
// @Produce json
// @Param id path string true "Release ID (UUID)"
// @Param request body service.QAAllocateRequest true "QA engineer and test case ids"
// @Success 200 {object} service.QAAllocateResponse "Accepted and rejected test cases"
// @Failure 400 {object} map[string]interface{} "Invalid request or no test case accepted"
// @Failure 404 {object} map[string]interface{} "Release or employee not found"
// @Router /releases/{id}/qa-allocations [post]
func (h *QAAllocationHandler) Allocate(c *gin.Context) {
	releaseID, ok := parseIDParam(c, "id", "release")
	if !ok {
		return
	}

	var req service.QAAllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.qaService.Allocate(c.Request.Context(), releaseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Remove handles DELETE /releases/:id/qa-allocations/:qaId/test-cases/:testCaseId
// @Summary Return a test case to the remaining pool
// @Tags qa-allocations
// @Param id path string true "Release ID (UUID)"
// @Param qaId path string true "QA engineer ID (UUID)"
// @Param testCaseId path string true "Test case ID (UUID)"
// @Success 204 "Assignment removed"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Router /releases/{id}/qa-allocations/{qaId}/test-cases/{testCaseId} [delete]
func (h *QAAllocationHandler) Remove(c *gin.Context) {
	releaseID, ok := parseIDParam(c, "id", "release")
	if !ok {
		return
	}
	qaID, ok := parseIDParam(c, "qaId", "QA")
	if !ok {
		return
	}
	testCaseID, ok := parseIDParam(c, "testCaseId", "test case")
	if !ok {
		return
	}

	if err := h.qaService.Remove(c.Request.Context(), releaseID, qaID, testCaseID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
