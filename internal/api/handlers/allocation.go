package handlers

import (
	"net/http"

	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AllocationHandler handles HTTP requests for release allocation (stage R)
type AllocationHandler struct {
	allocationService service.ReleaseAllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService service.ReleaseAllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// Allocate handles POST /allocations
// @Summary Allocate test cases to releases
// @Description Expand the selection according to the mode and issue every allocation request in order. A failed request does not stop the batch.
// @Tags allocations
// @Accept json
// @Produce json
// @Param request body service.AllocateRequest true "Mode, test case ids and release ids"
// @Success 200 {object} service.AllocationBatchResponse "Every request succeeded"
// @Success 207 {object} service.AllocationBatchResponse "Some requests failed"
// @Failure 400 {object} map[string]interface{} "Invalid request or selection"
// @Failure 404 {object} map[string]interface{} "Test case or release not found"
// @Failure 409 {object} service.AllocationBatchResponse "Batch cancelled before anything was allocated"
// @Failure 502 {object} service.AllocationBatchResponse "No request succeeded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /allocations [post]
func (h *AllocationHandler) Allocate(c *gin.Context) {
	var req service.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := h.allocationService.Allocate(c.Request.Context(), &req)
	if batch != nil {
		c.JSON(batchStatus(batch, err), batch)
		return
	}
	respondError(c, err)
}

// Preview handles POST /allocations/preview
// @Summary Preview an allocation
// @Description Expand the selection into allocation requests without calling the allocation service
// @Tags allocations
// @Accept json
// @Produce json
// @Param request body service.AllocateRequest true "Mode, test case ids and release ids"
// @Success 200 {object} service.AllocationPreviewResponse "Expanded requests"
// @Failure 400 {object} map[string]interface{} "Invalid request or selection"
// @Failure 404 {object} map[string]interface{} "Test case or release not found"
// @Router /allocations/preview [post]
func (h *AllocationHandler) Preview(c *gin.Context) {
	var req service.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.allocationService.Preview(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// GetReleaseAllocations handles GET /releases/:id/allocations
// @Summary List the test cases allocated to a release
// @Tags allocations
// @Produce json
// @Param id path string true "Release ID (UUID)"
// @Success 200 {object} service.ReleaseAllocationsResponse "Test case ids in allocation order"
// @Failure 400 {object} map[string]interface{} "Invalid release ID"
// @Failure 404 {object} map[string]interface{} "Release not found"
// @Router /releases/{id}/allocations [get]
func (h *AllocationHandler) GetReleaseAllocations(c *gin.Context) {
	releaseID, ok := parseIDParam(c, "id", "release")
	if !ok {
		return
	}

	allocations, err := h.allocationService.GetReleaseAllocations(releaseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocations)
}
