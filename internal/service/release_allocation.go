package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/events"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReleaseAllocationService allocates test cases to releases (stage R)
type ReleaseAllocationService struct {
	testCaseRepo repository.TestCaseRepositoryInterface
	releaseRepo  repository.ReleaseRepositoryInterface
	recordRepo   repository.AllocationRecordRepositoryInterface
	tracker      *ReleaseTracker
	executor     *allocation.Executor
	publisher    events.Publisher
	validator    *validator.Validate
}

// NewReleaseAllocationService creates a new release allocation service. The
// executor should record into tracker so confirmed pairs reach stage R.
func NewReleaseAllocationService(
	testCaseRepo repository.TestCaseRepositoryInterface,
	releaseRepo repository.ReleaseRepositoryInterface,
	recordRepo repository.AllocationRecordRepositoryInterface,
	tracker *ReleaseTracker,
	executor *allocation.Executor,
	publisher events.Publisher,
	validator *validator.Validate,
) *ReleaseAllocationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ReleaseAllocationService{
		testCaseRepo: testCaseRepo,
		releaseRepo:  releaseRepo,
		recordRepo:   recordRepo,
		tracker:      tracker,
		executor:     executor,
		publisher:    publisher,
		validator:    validator,
	}
}

// AllocateRequest represents a request to allocate test cases to releases
type AllocateRequest struct {
	Mode        string      `json:"mode" validate:"required" example:"bulk"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids" validate:"required,min=1,dive,required"`
	ReleaseIDs  []uuid.UUID `json:"release_ids" validate:"required,min=1,dive,required"`
}

// AllocationPreviewResponse lists the requests a submit would issue
type AllocationPreviewResponse struct {
	Mode      allocation.Mode      `json:"mode"`
	Requests  []allocation.Request `json:"requests"`
	PairCount int                  `json:"pair_count"`
	// AlreadyAllocated are expanded pairs that stage R already holds
	AlreadyAllocated []allocation.Pair `json:"already_allocated"`
}

// AllocationBatchResponse summarizes an executed allocation batch
type AllocationBatchResponse struct {
	Mode            allocation.Mode     `json:"mode"`
	Result          string              `json:"result" example:"complete"`
	Total           int                 `json:"total"`
	Succeeded       int                 `json:"succeeded"`
	Failed          int                 `json:"failed"`
	Cancelled       bool                `json:"cancelled"`
	FirstMessage    string              `json:"first_message"`
	FailureMessages []string            `json:"failure_messages"`
	Results         []allocation.Result `json:"results"`
}

// ReleaseAllocationsResponse lists the test cases allocated to a release
type ReleaseAllocationsResponse struct {
	ReleaseID   uuid.UUID   `json:"release_id"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids"`
	Count       int         `json:"count"`
}

// Preview validates the selection and returns its expansion without calling
// the allocation service
func (s *ReleaseAllocationService) Preview(req *AllocateRequest) (*AllocationPreviewResponse, error) {
	mode, requests, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	var (
		pairCount int
		releases  []uuid.UUID
	)
	byRelease := make(map[uuid.UUID][]uuid.UUID)
	for _, r := range requests {
		for _, p := range r.Pairs() {
			pairCount++
			if _, ok := byRelease[p.ReleaseID]; !ok {
				releases = append(releases, p.ReleaseID)
			}
			byRelease[p.ReleaseID] = append(byRelease[p.ReleaseID], p.TestCaseID)
		}
	}

	already := make([]allocation.Pair, 0)
	for _, releaseID := range releases {
		if err := s.tracker.Ensure(releaseID); err != nil {
			return nil, err
		}
		candidates := byRelease[releaseID]
		fresh := make(map[uuid.UUID]struct{}, len(candidates))
		for _, tc := range s.tracker.Tracker().Unallocated(releaseID, candidates) {
			fresh[tc] = struct{}{}
		}
		for _, tc := range candidates {
			if _, ok := fresh[tc]; !ok {
				already = append(already, allocation.Pair{TestCaseID: tc, ReleaseID: releaseID})
			}
		}
	}

	return &AllocationPreviewResponse{
		Mode:             mode,
		Requests:         requests,
		PairCount:        pairCount,
		AlreadyAllocated: already,
	}, nil
}

// Allocate expands the selection, runs the batch and records every confirmed
// pair. A non-nil response is returned whenever the batch ran; the error is
// then a PartialBatchFailure when any request failed, or KindCancelled when
// the batch was cancelled before allocating anything.
func (s *ReleaseAllocationService) Allocate(ctx context.Context, req *AllocateRequest) (*AllocationBatchResponse, error) {
	mode, requests, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	for _, releaseID := range uniqueIDs(req.ReleaseIDs) {
		if err := s.tracker.Ensure(releaseID); err != nil {
			return nil, err
		}
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"mode":     mode,
		"requests": len(requests),
	})
	log.Info("Starting allocation batch")

	summary := s.executor.Execute(ctx, requests, func(p allocation.Progress) {
		log.Debugf("Allocation progress %d/%d", p.Completed, p.Total)
	})

	pairs := summary.AllocatedPairs()
	s.persist(ctx, pairs)
	s.publish(ctx, pairs)

	return toBatchResponse(mode, summary), summary.Err()
}

// GetReleaseAllocations returns stage R of a release in allocation order
func (s *ReleaseAllocationService) GetReleaseAllocations(releaseID uuid.UUID) (*ReleaseAllocationsResponse, error) {
	if _, err := s.releaseRepo.GetByID(releaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReleaseNotFound
		}
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	if err := s.tracker.Ensure(releaseID); err != nil {
		return nil, err
	}

	ids := s.tracker.Tracker().Allocated(releaseID)
	return &ReleaseAllocationsResponse{ReleaseID: releaseID, TestCaseIDs: ids, Count: len(ids)}, nil
}

func (s *ReleaseAllocationService) prepare(req *AllocateRequest) (allocation.Mode, []allocation.Request, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return "", nil, err
	}
	mode, err := allocation.ParseMode(req.Mode)
	if err != nil {
		return "", nil, err
	}
	requests, err := allocation.Expand(mode, req.TestCaseIDs, req.ReleaseIDs)
	if err != nil {
		return "", nil, err
	}
	if err := s.verifyExistence(req.TestCaseIDs, req.ReleaseIDs); err != nil {
		return "", nil, err
	}
	return mode, requests, nil
}

// verifyExistence fails with a NotFound error naming the first unknown id
func (s *ReleaseAllocationService) verifyExistence(testCaseIDs, releaseIDs []uuid.UUID) error {
	testCaseIDs = uniqueIDs(testCaseIDs)
	testCases, err := s.testCaseRepo.GetByIDs(testCaseIDs)
	if err != nil {
		return fmt.Errorf("failed to verify test cases: %w", err)
	}
	found := make(map[uuid.UUID]struct{}, len(testCases))
	for _, tc := range testCases {
		found[tc.ID] = struct{}{}
	}
	if missing := missingIDs(testCaseIDs, found); len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrTestCaseNotFound, missing[0])
	}

	releaseIDs = uniqueIDs(releaseIDs)
	releases, err := s.releaseRepo.GetByIDs(releaseIDs)
	if err != nil {
		return fmt.Errorf("failed to verify releases: %w", err)
	}
	found = make(map[uuid.UUID]struct{}, len(releases))
	for _, r := range releases {
		found[r.ID] = struct{}{}
	}
	if missing := missingIDs(releaseIDs, found); len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrReleaseNotFound, missing[0])
	}
	return nil
}

// persist stores confirmed pairs; storage failures are logged only. The
// backend already accepted the pairs, so the write outlives a cancelled caller.
func (s *ReleaseAllocationService) persist(ctx context.Context, pairs []allocation.Pair) {
	if len(pairs) == 0 {
		return
	}
	base := time.Now()
	records := make([]models.AllocationRecord, 0, len(pairs))
	for i, p := range pairs {
		record := models.AllocationRecord{TestCaseID: p.TestCaseID, ReleaseID: p.ReleaseID}
		record.CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
		record.UpdatedAt = record.CreatedAt
		records = append(records, record)
	}
	if _, err := s.recordRepo.CreateIfMissing(context.WithoutCancel(ctx), records); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("pairs", len(pairs)).
			Error("Failed to persist confirmed allocations")
	}
}

// publish emits one release.allocated event per release
func (s *ReleaseAllocationService) publish(ctx context.Context, pairs []allocation.Pair) {
	var order []uuid.UUID
	byRelease := make(map[uuid.UUID][]uuid.UUID)
	for _, p := range pairs {
		if _, ok := byRelease[p.ReleaseID]; !ok {
			order = append(order, p.ReleaseID)
		}
		byRelease[p.ReleaseID] = append(byRelease[p.ReleaseID], p.TestCaseID)
	}
	for _, releaseID := range order {
		event := events.NewEvent(events.ReleaseAllocated, releaseID, byRelease[releaseID])
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("release_id", releaseID).
				Warn("Failed to publish release allocation event")
		}
	}
}

func toBatchResponse(mode allocation.Mode, summary *allocation.BatchSummary) *AllocationBatchResponse {
	resp := &AllocationBatchResponse{
		Mode:            mode,
		Result:          summary.Result(),
		Total:           summary.Total,
		Succeeded:       summary.Succeeded,
		Failed:          summary.Failed,
		Cancelled:       summary.Cancelled,
		FirstMessage:    summary.FirstMessage,
		FailureMessages: summary.FailureMessages,
		Results:         summary.Results,
	}
	if resp.FailureMessages == nil {
		resp.FailureMessages = []string{}
	}
	if resp.Results == nil {
		resp.Results = []allocation.Result{}
	}
	return resp
}
