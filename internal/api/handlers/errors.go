package handlers

import (
	"net/http"

	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError writes err with the status of its kind
func respondError(c *gin.Context, err error) {
	if err == nil {
		err = apperrors.NewAllocationError(apperrors.KindInternal, "empty response")
	}
	kind := apperrors.KindOf(err)
	status := apperrors.HTTPStatus(kind)
	if apperrors.IsAlreadyExists(err) {
		status = http.StatusConflict
	}
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}

// parseIDParam parses a uuid path parameter, answering 400 when malformed
func parseIDParam(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parseIDQuery parses an optional uuid query parameter
func parseIDQuery(c *gin.Context, param, label string) (*uuid.UUID, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return nil, false
	}
	return &id, true
}

// batchStatus is 200 when every request succeeded, 502 when none did and 207
// otherwise. An error of another kind than PartialBatchFailure, such as a
// cancelled batch that allocated nothing, answers with the status of its kind.
func batchStatus(batch *service.AllocationBatchResponse, err error) int {
	if kind := apperrors.KindOf(err); kind != "" && kind != apperrors.KindPartialBatchFailure {
		return apperrors.HTTPStatus(kind)
	}
	switch {
	case batch.Failed == 0 && !batch.Cancelled:
		return http.StatusOK
	case batch.Succeeded == 0 && batch.Failed > 0:
		return http.StatusBadGateway
	}
	return http.StatusMultiStatus
}
