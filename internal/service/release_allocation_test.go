package service_test

import (
	"context"
	"errors"
	"testing"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/events"
	"allocation-engine-backend/internal/metrics"
	"allocation-engine-backend/internal/mocks"
	"allocation-engine-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReleaseAllocationServiceTestSuite defines the test suite for ReleaseAllocationService
type ReleaseAllocationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	testCaseRepo *mocks.MockTestCaseRepositoryInterface
	releaseRepo  *mocks.MockReleaseRepositoryInterface
	recordRepo   *mocks.MockAllocationRecordRepositoryInterface
	qaRepo       *mocks.MockQAAssignmentRepositoryInterface
	backend      *mocks.MockService
	publisher    *mocks.MockPublisher
	tracker      *service.ReleaseTracker
	service      *service.ReleaseAllocationService
	published    []events.Event
	testCaseIDs  []uuid.UUID
	releaseIDs   []uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ReleaseAllocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.testCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.releaseRepo = mocks.NewMockReleaseRepositoryInterface(suite.ctrl)
	suite.recordRepo = mocks.NewMockAllocationRecordRepositoryInterface(suite.ctrl)
	suite.qaRepo = mocks.NewMockQAAssignmentRepositoryInterface(suite.ctrl)
	suite.backend = mocks.NewMockService(suite.ctrl)
	suite.publisher = mocks.NewMockPublisher(suite.ctrl)
	suite.published = nil

	suite.tracker = service.NewReleaseTracker(suite.recordRepo, suite.qaRepo)
	executor := allocation.NewExecutor(suite.backend,
		allocation.WithRecorder(suite.tracker),
		allocation.WithMetrics(metrics.NewNop()),
	)
	suite.service = service.NewReleaseAllocationService(
		suite.testCaseRepo, suite.releaseRepo, suite.recordRepo,
		suite.tracker, executor, suite.publisher, validator.New(),
	)

	suite.testCaseIDs = []uuid.UUID{uuid.New(), uuid.New()}
	suite.releaseIDs = []uuid.UUID{uuid.New(), uuid.New()}
}

// TearDownTest cleans up after each test
func (suite *ReleaseAllocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReleaseAllocationServiceTestSuite) expectExisting(testCaseIDs, releaseIDs []uuid.UUID) {
	testCases := make([]models.TestCase, 0, len(testCaseIDs))
	for _, id := range testCaseIDs {
		tc := models.TestCase{Code: "TC-" + id.String()[:4]}
		tc.ID = id
		testCases = append(testCases, tc)
	}
	releases := make([]models.Release, 0, len(releaseIDs))
	for _, id := range releaseIDs {
		r := models.Release{Name: "release"}
		r.ID = id
		releases = append(releases, r)
	}
	suite.testCaseRepo.EXPECT().GetByIDs(gomock.Any()).Return(testCases, nil)
	suite.releaseRepo.EXPECT().GetByIDs(gomock.Any()).Return(releases, nil)
}

func (suite *ReleaseAllocationServiceTestSuite) expectEmptyHydration(releaseIDs ...uuid.UUID) {
	for _, id := range releaseIDs {
		suite.recordRepo.EXPECT().GetTestCaseIDsByReleaseID(id).Return([]uuid.UUID{}, nil)
		suite.qaRepo.EXPECT().GetByReleaseID(id).Return([]models.QAAssignment{}, nil)
	}
}

func (suite *ReleaseAllocationServiceTestSuite) capturePublished() {
	suite.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			suite.published = append(suite.published, e)
			return nil
		}).AnyTimes()
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateOneToOneSinglePair() {
	tc, rel := suite.testCaseIDs[0], suite.releaseIDs[0]
	suite.expectExisting([]uuid.UUID{tc}, []uuid.UUID{rel})
	suite.expectEmptyHydration(rel)
	suite.backend.EXPECT().AllocateOne(gomock.Any(), rel, tc).
		Return(allocation.ServiceResponse{Status: "success", Message: "Allocated"}, nil)
	suite.recordRepo.EXPECT().CreateIfMissing(gomock.Any(), gomock.Len(1)).Return(int64(1), nil)
	suite.capturePublished()

	resp, err := suite.service.Allocate(context.Background(), &service.AllocateRequest{
		Mode:        "one-to-one",
		TestCaseIDs: []uuid.UUID{tc},
		ReleaseIDs:  []uuid.UUID{rel},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), allocation.BatchComplete, resp.Result)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), 1, resp.Succeeded)
	assert.Equal(suite.T(), "Allocated", resp.FirstMessage)
	assert.Empty(suite.T(), resp.FailureMessages)
	assert.Equal(suite.T(), []uuid.UUID{tc}, suite.tracker.Tracker().Allocated(rel))

	require.Len(suite.T(), suite.published, 1)
	assert.Equal(suite.T(), events.ReleaseAllocated, suite.published[0].Type)
	assert.Equal(suite.T(), rel, suite.published[0].ReleaseID)
	assert.Equal(suite.T(), []uuid.UUID{tc}, suite.published[0].TestCaseIDs)
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocatePartialFailure() {
	rel := suite.releaseIDs[0]
	suite.expectExisting(suite.testCaseIDs, []uuid.UUID{rel})
	suite.expectEmptyHydration(rel)
	gomock.InOrder(
		suite.backend.EXPECT().AllocateOne(gomock.Any(), rel, suite.testCaseIDs[0]).
			Return(allocation.ServiceResponse{Status: "success", Message: "ok"}, nil),
		suite.backend.EXPECT().AllocateOne(gomock.Any(), rel, suite.testCaseIDs[1]).
			Return(allocation.ServiceResponse{Status: "failure", Message: "release is frozen"}, nil),
	)
	suite.recordRepo.EXPECT().CreateIfMissing(gomock.Any(), gomock.Len(1)).Return(int64(1), nil)
	suite.capturePublished()

	resp, err := suite.service.Allocate(context.Background(), &service.AllocateRequest{
		Mode:        "one-to-one",
		TestCaseIDs: suite.testCaseIDs,
		ReleaseIDs:  []uuid.UUID{rel},
	})

	require.Error(suite.T(), err)
	var allocErr *apperrors.AllocationError
	require.True(suite.T(), errors.As(err, &allocErr))
	assert.Equal(suite.T(), apperrors.KindPartialBatchFailure, allocErr.Kind)
	assert.Equal(suite.T(), 1, allocErr.Succeeded)
	assert.Equal(suite.T(), 1, allocErr.Failed)

	require.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), allocation.BatchPartial, resp.Result)
	assert.Equal(suite.T(), []string{"release is frozen"}, resp.FailureMessages)
	assert.Equal(suite.T(), []uuid.UUID{suite.testCaseIDs[0]}, suite.tracker.Tracker().Allocated(rel))
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateBulkIssuesSingleRequest() {
	suite.expectExisting(suite.testCaseIDs, suite.releaseIDs)
	suite.expectEmptyHydration(suite.releaseIDs...)
	suite.backend.EXPECT().AllocateBulk(gomock.Any(), gomock.Len(4)).
		Return(allocation.ServiceResponse{Status: "success"}, nil)
	suite.recordRepo.EXPECT().CreateIfMissing(gomock.Any(), gomock.Len(4)).Return(int64(4), nil)
	suite.capturePublished()

	resp, err := suite.service.Allocate(context.Background(), &service.AllocateRequest{
		Mode:        "bulk",
		TestCaseIDs: suite.testCaseIDs,
		ReleaseIDs:  suite.releaseIDs,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Len(suite.T(), suite.published, 2)
	for _, rel := range suite.releaseIDs {
		assert.Equal(suite.T(), suite.testCaseIDs, suite.tracker.Tracker().Allocated(rel))
	}
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocatePersistsAfterCallerCancels() {
	tc, rel := suite.testCaseIDs[0], suite.releaseIDs[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	suite.expectExisting([]uuid.UUID{tc}, []uuid.UUID{rel})
	suite.expectEmptyHydration(rel)
	suite.backend.EXPECT().AllocateOne(gomock.Any(), rel, tc).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (allocation.ServiceResponse, error) {
			cancel()
			return allocation.ServiceResponse{Status: "success"}, nil
		})
	suite.recordRepo.EXPECT().CreateIfMissing(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(writeCtx context.Context, _ []models.AllocationRecord) (int64, error) {
			assert.NoError(suite.T(), writeCtx.Err())
			return 1, nil
		})
	suite.capturePublished()

	resp, err := suite.service.Allocate(ctx, &service.AllocateRequest{
		Mode:        "one-to-one",
		TestCaseIDs: []uuid.UUID{tc},
		ReleaseIDs:  []uuid.UUID{rel},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Succeeded)
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateCancelledBeforeAnyRequest() {
	tc, rel := suite.testCaseIDs[0], suite.releaseIDs[0]
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.expectExisting([]uuid.UUID{tc}, []uuid.UUID{rel})
	suite.expectEmptyHydration(rel)

	resp, err := suite.service.Allocate(ctx, &service.AllocateRequest{
		Mode:        "one-to-one",
		TestCaseIDs: []uuid.UUID{tc},
		ReleaseIDs:  []uuid.UUID{rel},
	})

	assert.Equal(suite.T(), apperrors.KindCancelled, apperrors.KindOf(err))
	require.NotNil(suite.T(), resp)
	assert.True(suite.T(), resp.Cancelled)
	assert.Equal(suite.T(), allocation.BatchCancelled, resp.Result)
	assert.Empty(suite.T(), suite.tracker.Tracker().Allocated(rel))
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateTransportFailure() {
	tc, rel := suite.testCaseIDs[0], suite.releaseIDs[0]
	suite.expectExisting([]uuid.UUID{tc}, []uuid.UUID{rel})
	suite.expectEmptyHydration(rel)
	suite.backend.EXPECT().AllocateOne(gomock.Any(), rel, tc).
		Return(allocation.ServiceResponse{}, errors.New("connection refused"))

	resp, err := suite.service.Allocate(context.Background(), &service.AllocateRequest{
		Mode:        "one-to-one",
		TestCaseIDs: []uuid.UUID{tc},
		ReleaseIDs:  []uuid.UUID{rel},
	})

	assert.Equal(suite.T(), apperrors.KindPartialBatchFailure, apperrors.KindOf(err))
	require.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), allocation.BatchFailed, resp.Result)
	require.Len(suite.T(), resp.Results, 1)
	assert.Equal(suite.T(), apperrors.KindTransportFailure, resp.Results[0].Kind)
	assert.Empty(suite.T(), suite.tracker.Tracker().Allocated(rel))
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateUnknownTestCase() {
	suite.testCaseRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.TestCase{}, nil)

	resp, err := suite.service.Allocate(context.Background(), &service.AllocateRequest{
		Mode:        "bulk",
		TestCaseIDs: suite.testCaseIDs,
		ReleaseIDs:  suite.releaseIDs,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTestCaseNotFound)
	assert.Equal(suite.T(), apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *ReleaseAllocationServiceTestSuite) TestAllocateRejectsBadInput() {
	testCases := []struct {
		name string
		req  *service.AllocateRequest
	}{
		{name: "unknown mode", req: &service.AllocateRequest{Mode: "round-robin", TestCaseIDs: suite.testCaseIDs, ReleaseIDs: suite.releaseIDs}},
		{name: "missing mode", req: &service.AllocateRequest{TestCaseIDs: suite.testCaseIDs, ReleaseIDs: suite.releaseIDs}},
		{name: "no test cases", req: &service.AllocateRequest{Mode: "bulk", ReleaseIDs: suite.releaseIDs}},
		{name: "no releases", req: &service.AllocateRequest{Mode: "bulk", TestCaseIDs: suite.testCaseIDs}},
		{name: "nil test case id", req: &service.AllocateRequest{Mode: "bulk", TestCaseIDs: []uuid.UUID{uuid.Nil}, ReleaseIDs: suite.releaseIDs}},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			resp, err := suite.service.Allocate(context.Background(), tc.req)
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
		})
	}
}

func (suite *ReleaseAllocationServiceTestSuite) TestPreviewOneToMany() {
	suite.expectExisting(suite.testCaseIDs, suite.releaseIDs)
	suite.expectEmptyHydration(suite.releaseIDs...)

	resp, err := suite.service.Preview(&service.AllocateRequest{
		Mode:        "one_to_many",
		TestCaseIDs: suite.testCaseIDs,
		ReleaseIDs:  suite.releaseIDs,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), allocation.ModeOneToMany, resp.Mode)
	require.Len(suite.T(), resp.Requests, 1)
	assert.Equal(suite.T(), []uuid.UUID{suite.testCaseIDs[0]}, resp.Requests[0].TestCaseIDs)
	assert.Equal(suite.T(), suite.releaseIDs, resp.Requests[0].ReleaseIDs)
	assert.Equal(suite.T(), 2, resp.PairCount)
	assert.Empty(suite.T(), resp.AlreadyAllocated)
}

func (suite *ReleaseAllocationServiceTestSuite) TestPreviewReportsAlreadyAllocatedPairs() {
	tc1, tc2 := suite.testCaseIDs[0], suite.testCaseIDs[1]
	rel := suite.releaseIDs[0]
	suite.expectExisting(suite.testCaseIDs, []uuid.UUID{rel})
	suite.recordRepo.EXPECT().GetTestCaseIDsByReleaseID(rel).Return([]uuid.UUID{tc2}, nil)
	suite.qaRepo.EXPECT().GetByReleaseID(rel).Return([]models.QAAssignment{}, nil)

	resp, err := suite.service.Preview(&service.AllocateRequest{
		Mode:        "bulk",
		TestCaseIDs: suite.testCaseIDs,
		ReleaseIDs:  []uuid.UUID{rel},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.PairCount)
	assert.Equal(suite.T(), []allocation.Pair{{TestCaseID: tc2, ReleaseID: rel}}, resp.AlreadyAllocated)
	assert.NotContains(suite.T(), resp.AlreadyAllocated, allocation.Pair{TestCaseID: tc1, ReleaseID: rel})
}

func (suite *ReleaseAllocationServiceTestSuite) TestGetReleaseAllocationsHydratesOnce() {
	rel := suite.releaseIDs[0]
	release := &models.Release{Name: "R1"}
	release.ID = rel
	suite.releaseRepo.EXPECT().GetByID(rel).Return(release, nil).Times(2)
	suite.recordRepo.EXPECT().GetTestCaseIDsByReleaseID(rel).Return(suite.testCaseIDs, nil).Times(1)
	suite.qaRepo.EXPECT().GetByReleaseID(rel).Return([]models.QAAssignment{}, nil).Times(1)

	for i := 0; i < 2; i++ {
		resp, err := suite.service.GetReleaseAllocations(rel)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), suite.testCaseIDs, resp.TestCaseIDs)
		assert.Equal(suite.T(), 2, resp.Count)
	}
}

func (suite *ReleaseAllocationServiceTestSuite) TestGetReleaseAllocationsNotFound() {
	suite.releaseRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetReleaseAllocations(uuid.New())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReleaseNotFound)
}

// TestReleaseAllocationServiceTestSuite runs the test suite
func TestReleaseAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReleaseAllocationServiceTestSuite))
}
