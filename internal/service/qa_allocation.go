package service

import (
	"context"
	"errors"
	"fmt"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/events"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/metrics"
	"allocation-engine-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QAAllocationService hands release test cases to QA owners (stage Q)
type QAAllocationService struct {
	releaseRepo  repository.ReleaseRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	qaRepo       repository.QAAssignmentRepositoryInterface
	tracker      *ReleaseTracker
	publisher    events.Publisher
	metrics      metrics.Collector
	validator    *validator.Validate
}

// NewQAAllocationService creates a new QA allocation service
func NewQAAllocationService(
	releaseRepo repository.ReleaseRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	qaRepo repository.QAAssignmentRepositoryInterface,
	tracker *ReleaseTracker,
	publisher events.Publisher,
	collector metrics.Collector,
	validator *validator.Validate,
) *QAAllocationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if collector == nil {
		collector = metrics.NewNop()
	}
	return &QAAllocationService{
		releaseRepo:  releaseRepo,
		employeeRepo: employeeRepo,
		qaRepo:       qaRepo,
		tracker:      tracker,
		publisher:    publisher,
		metrics:      collector,
		validator:    validator,
	}
}

// QAAllocateRequest represents a request to hand test cases to a QA owner
type QAAllocateRequest struct {
	QAID        uuid.UUID   `json:"qa_id" validate:"required"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids" validate:"required,min=1,dive,required"`
}

// QAAllocationStatusResponse is the stage view of a release
type QAAllocationStatusResponse struct {
	allocation.ReleaseStatus
	ReleaseName string `json:"release_name"`
	Version     string `json:"version"`
}

// QAAllocateResponse reports which test cases the QA owner received
type QAAllocateResponse struct {
	ReleaseID uuid.UUID              `json:"release_id"`
	QAID      uuid.UUID              `json:"qa_id"`
	Accepted  []uuid.UUID            `json:"accepted"`
	Rejected  []allocation.Rejection `json:"rejected"`
	Remaining int                    `json:"remaining"`
	Complete  bool                   `json:"complete"`
}

// GetStatus returns the allocated, remaining and assigned test cases of a release
func (s *QAAllocationService) GetStatus(releaseID uuid.UUID) (*QAAllocationStatusResponse, error) {
	release, err := s.getRelease(releaseID)
	if err != nil {
		return nil, err
	}
	if err := s.tracker.Ensure(releaseID); err != nil {
		return nil, err
	}
	return &QAAllocationStatusResponse{
		ReleaseStatus: s.tracker.Tracker().Status(releaseID),
		ReleaseName:   release.Name,
		Version:       release.Version,
	}, nil
}

// Allocate hands the available test cases of req to the QA owner. Test cases
// that are not allocated to the release or already owned are rejected
// individually; the call fails only when none could be accepted.
func (s *QAAllocationService) Allocate(ctx context.Context, releaseID uuid.UUID, req *QAAllocateRequest) (*QAAllocateResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.getRelease(releaseID); err != nil {
		return nil, err
	}
	if err := s.verifyQA(req.QAID); err != nil {
		return nil, err
	}
	if err := s.tracker.Ensure(releaseID); err != nil {
		return nil, err
	}

	tracker := s.tracker.Tracker()
	result, err := tracker.Allocate(releaseID, req.QAID, req.TestCaseIDs)
	s.metrics.RecordQAAllocation(len(result.Accepted), len(result.Rejected))
	resp := &QAAllocateResponse{
		ReleaseID: releaseID,
		QAID:      req.QAID,
		Accepted:  result.Accepted,
		Rejected:  result.Rejected,
	}
	if err != nil {
		return resp, err
	}

	assignments := make([]models.QAAssignment, 0, len(result.Accepted))
	for _, tc := range result.Accepted {
		assignments = append(assignments, models.QAAssignment{
			ReleaseID:    releaseID,
			TestCaseID:   tc,
			QAEmployeeID: req.QAID,
		})
	}
	if err := s.qaRepo.CreateBatch(assignments); err != nil {
		for _, tc := range result.Accepted {
			_ = tracker.Remove(releaseID, req.QAID, tc)
		}
		if errors.Is(err, apperrors.ErrQAAssignmentExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save qa assignments: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"release_id": releaseID,
		"qa_id":      req.QAID,
		"accepted":   len(result.Accepted),
		"rejected":   len(result.Rejected),
	})
	log.Info("Test cases allocated to QA")

	s.publish(ctx, events.NewEvent(events.QAAllocated, releaseID, result.Accepted).WithQA(req.QAID))

	resp.Remaining = len(tracker.Remaining(releaseID))
	resp.Complete = tracker.IsComplete(releaseID)
	if resp.Complete {
		log.Info("Release fully allocated to QA")
		s.publish(ctx, events.NewEvent(events.ReleaseCompleted, releaseID, tracker.Allocated(releaseID)))
	}
	return resp, nil
}

// Remove takes a test case away from its QA owner and returns it to the
// remaining pool
func (s *QAAllocationService) Remove(ctx context.Context, releaseID, qaID, testCaseID uuid.UUID) error {
	if _, err := s.getRelease(releaseID); err != nil {
		return err
	}
	if err := s.tracker.Ensure(releaseID); err != nil {
		return err
	}

	tracker := s.tracker.Tracker()
	if err := tracker.Remove(releaseID, qaID, testCaseID); err != nil {
		return err
	}
	if err := s.qaRepo.Delete(releaseID, qaID, testCaseID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		// restore the in-memory owner so memory and storage agree
		_, _ = tracker.Allocate(releaseID, qaID, []uuid.UUID{testCaseID})
		return fmt.Errorf("failed to delete qa assignment: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"release_id":   releaseID,
		"qa_id":        qaID,
		"test_case_id": testCaseID,
	}).Info("Test case removed from QA")

	s.publish(ctx, events.NewEvent(events.QARemoved, releaseID, []uuid.UUID{testCaseID}).WithQA(qaID))
	return nil
}

func (s *QAAllocationService) getRelease(releaseID uuid.UUID) (*models.Release, error) {
	release, err := s.releaseRepo.GetByID(releaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReleaseNotFound
		}
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	return release, nil
}

func (s *QAAllocationService) verifyQA(qaID uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(qaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if employee.Designation != models.DesignationQA {
		return fmt.Errorf("%w: %s", apperrors.ErrEmployeeNotQA, employee.FullName)
	}
	return nil
}

func (s *QAAllocationService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", event.Type).
			Warn("Failed to publish qa allocation event")
	}
}
