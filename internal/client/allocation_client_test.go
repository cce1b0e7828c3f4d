package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"allocation-engine-backend/internal/allocation"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AllocationClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewAllocationClient(srv.URL+"/", nil)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewAllocationClient(t *testing.T) {
	_, err := NewAllocationClient("  ", nil)
	assert.ErrorIs(t, err, apperrors.ErrAllocationServiceURLMissing)

	c, err := NewAllocationClient("alloc.example.com/", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://alloc.example.com", c.baseURL)
}

func TestAllocationClient_AllocateOne(t *testing.T) {
	releaseID, testCaseID := uuid.New(), uuid.New()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathAllocateOne, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))

		var body AllocateOneRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, releaseID, body.ReleaseID)
		assert.Equal(t, testCaseID, body.TestCaseID)

		writeJSON(w, http.StatusOK, allocation.ServiceResponse{Status: "success", Message: "allocated"})
	})

	ctx := logger.ContextWithRequestID(context.Background(), "req-42")
	resp, err := c.AllocateOne(ctx, releaseID, testCaseID)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "allocated", resp.Message)
}

func TestAllocationClient_AllocateOneToMany(t *testing.T) {
	testCaseID := uuid.New()
	releases := []uuid.UUID{uuid.New(), uuid.New()}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathAllocateOneToMany, r.URL.Path)

		var body AllocateOneToManyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testCaseID, body.TestCaseID)
		assert.Equal(t, releases, body.ReleaseIDs)

		writeJSON(w, http.StatusOK, allocation.ServiceResponse{Status: "failure", Message: "release locked"})
	})

	resp, err := c.AllocateOneToMany(context.Background(), testCaseID, releases)
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, "release locked", resp.Message)
}

func TestAllocationClient_AllocateBulk(t *testing.T) {
	pairs := []allocation.Pair{
		{TestCaseID: uuid.New(), ReleaseID: uuid.New()},
		{TestCaseID: uuid.New(), ReleaseID: uuid.New()},
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathAllocateBulk, r.URL.Path)

		var body AllocateBulkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, pairs, body.Pairs)

		writeJSON(w, http.StatusOK, allocation.ServiceResponse{Status: "success", Message: "2 pairs allocated"})
	})

	resp, err := c.AllocateBulk(context.Background(), pairs)
	require.NoError(t, err)
	assert.True(t, resp.OK())
}

func TestAllocationClient_Failures(t *testing.T) {
	t.Run("non-2xx with message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, allocation.ServiceResponse{Status: "error", Message: "db down"})
		})

		_, err := c.AllocateOne(context.Background(), uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindTransportFailure, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("non-2xx with plain body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := c.AllocateOne(context.Background(), uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindTransportFailure, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("undecodable body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("not json"))
		})

		_, err := c.AllocateBulk(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindTransportFailure, apperrors.KindOf(err))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		release := make(chan struct{})
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := c.AllocateOne(ctx, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
	})

	t.Run("caller cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			cancel()
			<-r.Context().Done()
		})

		_, err := c.AllocateOne(ctx, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindCancelled, apperrors.KindOf(err))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c, err := NewAllocationClient(url, nil)
		require.NoError(t, err)

		_, err = c.AllocateOne(context.Background(), uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindTransportFailure, apperrors.KindOf(err))
	})
}
