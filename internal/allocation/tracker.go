package allocation

import (
	"sync"

	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// Stage of a release in the two-stage workflow
type Stage string

const (
	// StageRelease: no test case has been allocated to the release yet
	StageRelease Stage = "release_allocation"
	// StageQA: allocated test cases remain without a QA owner
	StageQA Stage = "qa_allocation"
	// StageComplete: every allocated test case has a QA owner
	StageComplete Stage = "complete"
)

// Rejection reasons returned by StageTracker.Allocate
const (
	ReasonNotAllocated    = "not allocated to release"
	ReasonAlreadyAssigned = "already assigned to a QA owner"
)

// QAAllocation lists the test cases owned by one QA engineer
type QAAllocation struct {
	QAID        uuid.UUID   `json:"qa_id"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids"`
}

// Rejection explains why a test case could not be handed to a QA owner
type Rejection struct {
	TestCaseID uuid.UUID `json:"test_case_id"`
	Reason     string    `json:"reason"`
}

// QAAllocationResult is the outcome of StageTracker.Allocate
type QAAllocationResult struct {
	Accepted []uuid.UUID `json:"accepted"`
	Rejected []Rejection `json:"rejected"`
}

// ReleaseStatus is a point-in-time view of one release
type ReleaseStatus struct {
	ReleaseID   uuid.UUID      `json:"release_id"`
	Allocated   []uuid.UUID    `json:"allocated"`
	Remaining   []uuid.UUID    `json:"remaining"`
	Assignments []QAAllocation `json:"assignments"`
	Stage       Stage          `json:"stage"`
	Complete    bool           `json:"complete"`
}

type releaseState struct {
	allocated    []uuid.UUID
	allocatedIdx map[uuid.UUID]struct{}
	owners       map[uuid.UUID]uuid.UUID
	byQA         map[uuid.UUID][]uuid.UUID
	qaOrder      []uuid.UUID
}

func newReleaseState() *releaseState {
	return &releaseState{
		allocatedIdx: make(map[uuid.UUID]struct{}),
		owners:       make(map[uuid.UUID]uuid.UUID),
		byQA:         make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *releaseState) allocate(tc uuid.UUID) {
	if _, ok := r.allocatedIdx[tc]; ok {
		return
	}
	r.allocatedIdx[tc] = struct{}{}
	r.allocated = append(r.allocated, tc)
}

func (r *releaseState) assign(qa, tc uuid.UUID) {
	r.owners[tc] = qa
	if _, ok := r.byQA[qa]; !ok {
		r.qaOrder = append(r.qaOrder, qa)
	}
	r.byQA[qa] = append(r.byQA[qa], tc)
}

func (r *releaseState) remaining() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.allocated))
	for _, tc := range r.allocated {
		if _, owned := r.owners[tc]; !owned {
			out = append(out, tc)
		}
	}
	return out
}

// StageTracker tracks, per release, which test cases are allocated to it
// (stage R) and which of those are owned by a QA engineer (stage Q).
// Stage R only grows. A test case has at most one QA owner per release.
type StageTracker struct {
	mu       sync.Mutex
	releases map[uuid.UUID]*releaseState
}

// NewStageTracker creates an empty tracker
func NewStageTracker() *StageTracker {
	return &StageTracker{releases: make(map[uuid.UUID]*releaseState)}
}

// RecordAllocations adds confirmed pairs to stage R
func (t *StageTracker) RecordAllocations(pairs []Pair) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range pairs {
		t.state(p.ReleaseID).allocate(p.TestCaseID)
	}
}

// RecordReleaseAllocation adds test cases to the release's stage R
func (t *StageTracker) RecordReleaseAllocation(releaseID uuid.UUID, testCaseIDs ...uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.state(releaseID)
	for _, tc := range testCaseIDs {
		st.allocate(tc)
	}
}

// Load replaces the release's state with persisted data. Assignments whose
// test case is missing from allocated are treated as allocated; a second owner
// for the same test case is ignored.
func (t *StageTracker) Load(releaseID uuid.UUID, allocated []uuid.UUID, assignments []QAAllocation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := newReleaseState()
	for _, tc := range allocated {
		st.allocate(tc)
	}
	for _, a := range assignments {
		for _, tc := range a.TestCaseIDs {
			if _, owned := st.owners[tc]; owned {
				continue
			}
			st.allocate(tc)
			st.assign(a.QAID, tc)
		}
	}
	t.releases[releaseID] = st
}

// Known reports whether the release has any state
func (t *StageTracker) Known(releaseID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.releases[releaseID]
	return ok
}

// Allocated returns stage R of the release in allocation order
func (t *StageTracker) Allocated(releaseID uuid.UUID) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.releases[releaseID]
	if !ok {
		return []uuid.UUID{}
	}
	return cloneIDs(st.allocated)
}

// Allocate hands test cases to a QA owner. Availability is checked and the
// assignment made under one lock, so two owners can never claim the same test
// case. Test cases outside the remaining pool are rejected individually; an
// error is returned only when nothing could be accepted.
func (t *StageTracker) Allocate(releaseID, qaID uuid.UUID, testCaseIDs []uuid.UUID) (QAAllocationResult, error) {
	if qaID == uuid.Nil {
		return QAAllocationResult{}, apperrors.NewAllocationError(apperrors.KindInvalidInput, "qa id is required")
	}
	if len(testCaseIDs) == 0 {
		return QAAllocationResult{}, apperrors.NewAllocationError(apperrors.KindInvalidInput, "at least one test case must be selected")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.state(releaseID)
	result := QAAllocationResult{Accepted: []uuid.UUID{}, Rejected: []Rejection{}}
	for _, tc := range uniqueIDs(testCaseIDs) {
		if _, ok := st.allocatedIdx[tc]; !ok {
			result.Rejected = append(result.Rejected, Rejection{TestCaseID: tc, Reason: ReasonNotAllocated})
			continue
		}
		if _, owned := st.owners[tc]; owned {
			result.Rejected = append(result.Rejected, Rejection{TestCaseID: tc, Reason: ReasonAlreadyAssigned})
			continue
		}
		st.assign(qaID, tc)
		result.Accepted = append(result.Accepted, tc)
	}

	if len(result.Accepted) == 0 {
		return result, apperrors.NewAllocationError(apperrors.KindInvalidSelection,
			"none of the %d test case(s) are available for QA allocation", len(result.Rejected))
	}
	return result, nil
}

// Remove takes a test case away from its QA owner and returns it to the pool
func (t *StageTracker) Remove(releaseID, qaID, testCaseID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.releases[releaseID]
	if !ok {
		return apperrors.NewAllocationError(apperrors.KindNotFound, "release %s has no allocations", releaseID)
	}
	if owner, owned := st.owners[testCaseID]; !owned || owner != qaID {
		return apperrors.NewAllocationError(apperrors.KindNotFound,
			"test case %s is not allocated to qa %s", testCaseID, qaID)
	}

	delete(st.owners, testCaseID)
	owned := st.byQA[qaID]
	for i, tc := range owned {
		if tc == testCaseID {
			st.byQA[qaID] = append(owned[:i:i], owned[i+1:]...)
			break
		}
	}
	return nil
}

// Remaining returns stage R minus every QA-owned test case, in allocation order
func (t *StageTracker) Remaining(releaseID uuid.UUID) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.releases[releaseID]
	if !ok {
		return []uuid.UUID{}
	}
	return st.remaining()
}

// Unallocated filters candidates down to the test cases not yet allocated to
// the release, keeping their order. It is the source pool of release
// allocation.
func (t *StageTracker) Unallocated(releaseID uuid.UUID, candidates []uuid.UUID) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.releases[releaseID]
	out := make([]uuid.UUID, 0, len(candidates))
	for _, tc := range candidates {
		if st != nil {
			if _, ok := st.allocatedIdx[tc]; ok {
				continue
			}
		}
		out = append(out, tc)
	}
	return out
}

// Assignments returns the QA owners of the release and their test cases.
// Owners left with no test case after removals are omitted.
func (t *StageTracker) Assignments(releaseID uuid.UUID) []QAAllocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.releases[releaseID]
	if !ok {
		return []QAAllocation{}
	}
	return st.assignments()
}

// IsComplete reports whether the release has allocated test cases and all of
// them have a QA owner
func (t *StageTracker) IsComplete(releaseID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.releases[releaseID]
	return ok && len(st.allocated) > 0 && len(st.remaining()) == 0
}

// Status returns a consistent snapshot of the release
func (t *StageTracker) Status(releaseID uuid.UUID) ReleaseStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := ReleaseStatus{
		ReleaseID:   releaseID,
		Allocated:   []uuid.UUID{},
		Remaining:   []uuid.UUID{},
		Assignments: []QAAllocation{},
		Stage:       StageRelease,
	}
	st, ok := t.releases[releaseID]
	if !ok || len(st.allocated) == 0 {
		return status
	}
	status.Allocated = cloneIDs(st.allocated)
	status.Remaining = st.remaining()
	status.Assignments = st.assignments()
	status.Stage = StageQA
	if len(status.Remaining) == 0 {
		status.Stage = StageComplete
		status.Complete = true
	}
	return status
}

func (r *releaseState) assignments() []QAAllocation {
	out := make([]QAAllocation, 0, len(r.qaOrder))
	for _, qa := range r.qaOrder {
		if len(r.byQA[qa]) == 0 {
			continue
		}
		out = append(out, QAAllocation{QAID: qa, TestCaseIDs: cloneIDs(r.byQA[qa])})
	}
	return out
}

func (t *StageTracker) state(releaseID uuid.UUID) *releaseState {
	st, ok := t.releases[releaseID]
	if !ok {
		st = newReleaseState()
		t.releases[releaseID] = st
	}
	return st
}
