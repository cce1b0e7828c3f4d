// Package client talks to a remote Allocation Service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"allocation-engine-backend/internal/allocation"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/logger"

	"github.com/google/uuid"
)

// Endpoint paths relative to the service base URL
const (
	PathAllocateOne       = "/allocations/one"
	PathAllocateOneToMany = "/allocations/one-to-many"
	PathAllocateBulk      = "/allocations/bulk"
)

// maxErrorBody bounds how much of a failed response is read into an error message
const maxErrorBody = 4096

// AllocateOneRequest is the body of POST /allocations/one
type AllocateOneRequest struct {
	ReleaseID  uuid.UUID `json:"release_id"`
	TestCaseID uuid.UUID `json:"test_case_id"`
}

// AllocateOneToManyRequest is the body of POST /allocations/one-to-many
type AllocateOneToManyRequest struct {
	TestCaseID uuid.UUID   `json:"test_case_id"`
	ReleaseIDs []uuid.UUID `json:"release_ids"`
}

// AllocateBulkRequest is the body of POST /allocations/bulk
type AllocateBulkRequest struct {
	Pairs []allocation.Pair `json:"pairs"`
}

// AllocationClient implements allocation.Service against a remote HTTP service
type AllocationClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ allocation.Service = (*AllocationClient)(nil)

// NewAllocationClient creates a client for baseURL. Per-request deadlines come
// from the caller's context; httpClient may be nil.
func NewAllocationClient(baseURL string, httpClient *http.Client) (*AllocationClient, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, apperrors.ErrAllocationServiceURLMissing
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid allocation service URL '%s': %v", base, err))
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &AllocationClient{baseURL: base, httpClient: httpClient}, nil
}

// AllocateOne allocates one test case to one release
func (c *AllocationClient) AllocateOne(ctx context.Context, releaseID, testCaseID uuid.UUID) (allocation.ServiceResponse, error) {
	return c.post(ctx, PathAllocateOne, AllocateOneRequest{ReleaseID: releaseID, TestCaseID: testCaseID})
}

// AllocateOneToMany allocates one test case to several releases
func (c *AllocationClient) AllocateOneToMany(ctx context.Context, testCaseID uuid.UUID, releaseIDs []uuid.UUID) (allocation.ServiceResponse, error) {
	return c.post(ctx, PathAllocateOneToMany, AllocateOneToManyRequest{TestCaseID: testCaseID, ReleaseIDs: releaseIDs})
}

// AllocateBulk allocates every pair in one call
func (c *AllocationClient) AllocateBulk(ctx context.Context, pairs []allocation.Pair) (allocation.ServiceResponse, error) {
	return c.post(ctx, PathAllocateBulk, AllocateBulkRequest{Pairs: pairs})
}

// post sends body as JSON and decodes the {status, message} answer
func (c *AllocationClient) post(ctx context.Context, path string, body interface{}) (allocation.ServiceResponse, error) {
	var out allocation.ServiceResponse

	payload, err := json.Marshal(body)
	if err != nil {
		return out, apperrors.NewAllocationError(apperrors.KindInvalidInput, "failed to encode request: %v", err)
	}

	fullURL := c.baseURL + path
	logger.WithContext(ctx).Debugf("Invoking allocation service POST %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(payload))
	if err != nil {
		return out, apperrors.NewAllocationError(apperrors.KindTransportFailure, "failed to create HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return out, apperrors.NewAllocationError(apperrors.KindTimeout, "allocation service did not answer %s in time", path)
		}
		if errors.Is(err, context.Canceled) {
			return out, apperrors.NewAllocationError(apperrors.KindCancelled, "allocation request %s cancelled", path)
		}
		return out, apperrors.NewAllocationError(apperrors.KindTransportFailure, "allocation service request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var failure allocation.ServiceResponse
		if json.Unmarshal(data, &failure) == nil && failure.Message != "" {
			return out, apperrors.NewAllocationError(apperrors.KindTransportFailure,
				"allocation service returned %d: %s", resp.StatusCode, failure.Message)
		}
		return out, apperrors.NewAllocationError(apperrors.KindTransportFailure,
			"allocation service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return allocation.ServiceResponse{}, apperrors.NewAllocationError(apperrors.KindTransportFailure,
			"failed to decode allocation service response: %v", err)
	}
	return out, nil
}
