package service

import (
	"context"
	"fmt"
	"time"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/repository"

	"github.com/google/uuid"
)

// LocalAllocationBackend is the in-process allocation service: it records
// allocations straight into allocation_records
type LocalAllocationBackend struct {
	recordRepo repository.AllocationRecordRepositoryInterface
	now        func() time.Time
}

var _ allocation.Service = (*LocalAllocationBackend)(nil)

// NewLocalAllocationBackend creates a local allocation backend
func NewLocalAllocationBackend(recordRepo repository.AllocationRecordRepositoryInterface) *LocalAllocationBackend {
	return &LocalAllocationBackend{recordRepo: recordRepo, now: time.Now}
}

// AllocateOne allocates one test case to one release
func (b *LocalAllocationBackend) AllocateOne(ctx context.Context, releaseID, testCaseID uuid.UUID) (allocation.ServiceResponse, error) {
	return b.allocate(ctx, []allocation.Pair{{TestCaseID: testCaseID, ReleaseID: releaseID}})
}

// AllocateOneToMany allocates one test case to several releases
func (b *LocalAllocationBackend) AllocateOneToMany(ctx context.Context, testCaseID uuid.UUID, releaseIDs []uuid.UUID) (allocation.ServiceResponse, error) {
	pairs := make([]allocation.Pair, 0, len(releaseIDs))
	for _, releaseID := range releaseIDs {
		pairs = append(pairs, allocation.Pair{TestCaseID: testCaseID, ReleaseID: releaseID})
	}
	return b.allocate(ctx, pairs)
}

// AllocateBulk allocates every given pair in one transaction
func (b *LocalAllocationBackend) AllocateBulk(ctx context.Context, pairs []allocation.Pair) (allocation.ServiceResponse, error) {
	return b.allocate(ctx, pairs)
}

// allocate inserts the pairs, skipping those already allocated. Creation
// timestamps are spaced one microsecond apart so allocation order survives a
// reload ordered by created_at.
func (b *LocalAllocationBackend) allocate(ctx context.Context, pairs []allocation.Pair) (allocation.ServiceResponse, error) {
	if err := ctx.Err(); err != nil {
		return allocation.ServiceResponse{}, err
	}
	if len(pairs) == 0 {
		return allocation.ServiceResponse{Status: "failure", Message: "no test case/release pair given"}, nil
	}

	base := b.now()
	records := make([]models.AllocationRecord, 0, len(pairs))
	for i, p := range pairs {
		record := models.AllocationRecord{TestCaseID: p.TestCaseID, ReleaseID: p.ReleaseID}
		record.CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
		record.UpdatedAt = record.CreatedAt
		records = append(records, record)
	}

	created, err := b.recordRepo.CreateIfMissing(ctx, records)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return allocation.ServiceResponse{}, ctxErr
		}
		logger.WithContext(ctx).WithError(err).WithField("pairs", len(pairs)).Error("Failed to record allocations")
		return allocation.ServiceResponse{
			Status:  "failure",
			Message: fmt.Sprintf("failed to record allocations: %v", err),
		}, nil
	}

	message := fmt.Sprintf("%d allocation(s) recorded", created)
	if skipped := int64(len(pairs)) - created; skipped > 0 {
		message = fmt.Sprintf("%s, %d already present", message, skipped)
	}
	return allocation.ServiceResponse{Status: allocation.StatusSuccess, Message: message}, nil
}
