package service

import (
	"fmt"
	"sync"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	"allocation-engine-backend/internal/repository"

	"github.com/google/uuid"
)

// ReleaseTracker is the process-wide stage tracker. A release is loaded from
// allocation_records and qa_assignments the first time it is touched; after
// that the in-memory state is authoritative and every change is written
// through by the services.
type ReleaseTracker struct {
	mu         sync.Mutex
	tracker    *allocation.StageTracker
	recordRepo repository.AllocationRecordRepositoryInterface
	qaRepo     repository.QAAssignmentRepositoryInterface
}

var _ allocation.Recorder = (*ReleaseTracker)(nil)

// NewReleaseTracker creates a tracker backed by the given repositories
func NewReleaseTracker(recordRepo repository.AllocationRecordRepositoryInterface, qaRepo repository.QAAssignmentRepositoryInterface) *ReleaseTracker {
	return &ReleaseTracker{
		tracker:    allocation.NewStageTracker(),
		recordRepo: recordRepo,
		qaRepo:     qaRepo,
	}
}

// Tracker returns the underlying stage tracker
func (t *ReleaseTracker) Tracker() *allocation.StageTracker {
	return t.tracker
}

// Ensure loads the release into the tracker unless it is already known
func (t *ReleaseTracker) Ensure(releaseID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracker.Known(releaseID) {
		return nil
	}
	allocated, err := t.recordRepo.GetTestCaseIDsByReleaseID(releaseID)
	if err != nil {
		return fmt.Errorf("failed to load release allocations: %w", err)
	}
	assignments, err := t.qaRepo.GetByReleaseID(releaseID)
	if err != nil {
		return fmt.Errorf("failed to load qa assignments: %w", err)
	}
	t.tracker.Load(releaseID, allocated, groupAssignments(assignments))
	return nil
}

// RecordAllocations registers pairs confirmed by the allocation service
func (t *ReleaseTracker) RecordAllocations(pairs []allocation.Pair) {
	t.tracker.RecordAllocations(pairs)
}

// groupAssignments groups persisted assignments by QA owner, owners in order
// of their first assignment
func groupAssignments(assignments []models.QAAssignment) []allocation.QAAllocation {
	var out []allocation.QAAllocation
	index := make(map[uuid.UUID]int)
	for _, a := range assignments {
		i, ok := index[a.QAEmployeeID]
		if !ok {
			i = len(out)
			index[a.QAEmployeeID] = i
			out = append(out, allocation.QAAllocation{QAID: a.QAEmployeeID})
		}
		out[i].TestCaseIDs = append(out[i].TestCaseIDs, a.TestCaseID)
	}
	return out
}
