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

// QAAllocationServiceTestSuite defines the test suite for QAAllocationService
type QAAllocationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	releaseRepo  *mocks.MockReleaseRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	recordRepo   *mocks.MockAllocationRecordRepositoryInterface
	qaRepo       *mocks.MockQAAssignmentRepositoryInterface
	publisher    *mocks.MockPublisher
	tracker      *service.ReleaseTracker
	service      *service.QAAllocationService
	published    []events.Event

	release *models.Release
	qa1     *models.Employee
	qa2     *models.Employee
	t1      uuid.UUID
	t2      uuid.UUID
	t3      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *QAAllocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.releaseRepo = mocks.NewMockReleaseRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.recordRepo = mocks.NewMockAllocationRecordRepositoryInterface(suite.ctrl)
	suite.qaRepo = mocks.NewMockQAAssignmentRepositoryInterface(suite.ctrl)
	suite.publisher = mocks.NewMockPublisher(suite.ctrl)
	suite.published = nil

	suite.tracker = service.NewReleaseTracker(suite.recordRepo, suite.qaRepo)
	suite.service = service.NewQAAllocationService(
		suite.releaseRepo, suite.employeeRepo, suite.qaRepo,
		suite.tracker, suite.publisher, metrics.NewNop(), validator.New(),
	)

	suite.release = &models.Release{Name: "R1", Version: "1.0.0"}
	suite.release.ID = uuid.New()
	suite.qa1 = &models.Employee{FullName: "QA One", Designation: models.DesignationQA}
	suite.qa1.ID = uuid.New()
	suite.qa2 = &models.Employee{FullName: "QA Two", Designation: models.DesignationQA}
	suite.qa2.ID = uuid.New()
	suite.t1, suite.t2, suite.t3 = uuid.New(), uuid.New(), uuid.New()

	suite.releaseRepo.EXPECT().GetByID(suite.release.ID).Return(suite.release, nil).AnyTimes()
	suite.employeeRepo.EXPECT().GetByID(suite.qa1.ID).Return(suite.qa1, nil).AnyTimes()
	suite.employeeRepo.EXPECT().GetByID(suite.qa2.ID).Return(suite.qa2, nil).AnyTimes()
	suite.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			suite.published = append(suite.published, e)
			return nil
		}).AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *QAAllocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// hydrate makes the release load t1..t3 as allocated with the given assignments
func (suite *QAAllocationServiceTestSuite) hydrate(assignments ...models.QAAssignment) {
	suite.recordRepo.EXPECT().GetTestCaseIDsByReleaseID(suite.release.ID).
		Return([]uuid.UUID{suite.t1, suite.t2, suite.t3}, nil)
	suite.qaRepo.EXPECT().GetByReleaseID(suite.release.ID).Return(assignments, nil)
}

func (suite *QAAllocationServiceTestSuite) publishedTypes() []events.Type {
	types := make([]events.Type, 0, len(suite.published))
	for _, e := range suite.published {
		types = append(types, e.Type)
	}
	return types
}

func (suite *QAAllocationServiceTestSuite) TestAllocateUntilComplete() {
	suite.hydrate()
	suite.qaRepo.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)
	suite.qaRepo.EXPECT().CreateBatch(gomock.Len(1)).Return(nil)

	first, err := suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        suite.qa1.ID,
		TestCaseIDs: []uuid.UUID{suite.t1, suite.t2},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{suite.t1, suite.t2}, first.Accepted)
	assert.Empty(suite.T(), first.Rejected)
	assert.Equal(suite.T(), 1, first.Remaining)
	assert.False(suite.T(), first.Complete)

	second, err := suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        suite.qa2.ID,
		TestCaseIDs: []uuid.UUID{suite.t2, suite.t3},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{suite.t3}, second.Accepted)
	require.Len(suite.T(), second.Rejected, 1)
	assert.Equal(suite.T(), suite.t2, second.Rejected[0].TestCaseID)
	assert.Equal(suite.T(), allocation.ReasonAlreadyAssigned, second.Rejected[0].Reason)
	assert.True(suite.T(), second.Complete)

	assert.Equal(suite.T(),
		[]events.Type{events.QAAllocated, events.QAAllocated, events.ReleaseCompleted},
		suite.publishedTypes())

	status, err := suite.service.GetStatus(suite.release.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), allocation.StageComplete, status.Stage)
	assert.Equal(suite.T(), "R1", status.ReleaseName)
	assert.Empty(suite.T(), status.Remaining)
	require.Len(suite.T(), status.Assignments, 2)
	assert.Equal(suite.T(), suite.qa1.ID, status.Assignments[0].QAID)
}

func (suite *QAAllocationServiceTestSuite) TestGetStatusFromPersistedAssignments() {
	suite.hydrate(models.QAAssignment{ReleaseID: suite.release.ID, TestCaseID: suite.t2, QAEmployeeID: suite.qa1.ID})

	status, err := suite.service.GetStatus(suite.release.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), allocation.StageQA, status.Stage)
	assert.Equal(suite.T(), []uuid.UUID{suite.t1, suite.t2, suite.t3}, status.Allocated)
	assert.Equal(suite.T(), []uuid.UUID{suite.t1, suite.t3}, status.Remaining)
	assert.False(suite.T(), status.Complete)
}

func (suite *QAAllocationServiceTestSuite) TestAllocateNothingAvailable() {
	suite.hydrate(models.QAAssignment{ReleaseID: suite.release.ID, TestCaseID: suite.t1, QAEmployeeID: suite.qa1.ID})

	resp, err := suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        suite.qa2.ID,
		TestCaseIDs: []uuid.UUID{suite.t1, uuid.New()},
	})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.KindInvalidSelection, apperrors.KindOf(err))
	require.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp.Accepted)
	require.Len(suite.T(), resp.Rejected, 2)
	assert.Equal(suite.T(), allocation.ReasonNotAllocated, resp.Rejected[1].Reason)
	assert.Empty(suite.T(), suite.published)
}

func (suite *QAAllocationServiceTestSuite) TestAllocateRollsBackWhenPersistFails() {
	suite.hydrate()
	suite.qaRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("connection reset"))

	resp, err := suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        suite.qa1.ID,
		TestCaseIDs: []uuid.UUID{suite.t1},
	})

	assert.Nil(suite.T(), resp)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to save qa assignments")
	assert.Equal(suite.T(),
		[]uuid.UUID{suite.t1, suite.t2, suite.t3},
		suite.tracker.Tracker().Remaining(suite.release.ID))
}

func (suite *QAAllocationServiceTestSuite) TestAllocateRequiresQAEmployee() {
	dev := &models.Employee{FullName: "Dev", Designation: models.DesignationDeveloper}
	dev.ID = uuid.New()
	suite.employeeRepo.EXPECT().GetByID(dev.ID).Return(dev, nil)

	resp, err := suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        dev.ID,
		TestCaseIDs: []uuid.UUID{suite.t1},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotQA)
	assert.Equal(suite.T(), apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func (suite *QAAllocationServiceTestSuite) TestAllocateUnknownEntities() {
	missing := uuid.New()
	suite.releaseRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	suite.employeeRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Allocate(context.Background(), missing, &service.QAAllocateRequest{
		QAID:        suite.qa1.ID,
		TestCaseIDs: []uuid.UUID{suite.t1},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrReleaseNotFound)

	_, err = suite.service.Allocate(context.Background(), suite.release.ID, &service.QAAllocateRequest{
		QAID:        missing,
		TestCaseIDs: []uuid.UUID{suite.t1},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

func (suite *QAAllocationServiceTestSuite) TestAllocateValidation() {
	testCases := []struct {
		name string
		req  *service.QAAllocateRequest
	}{
		{name: "missing qa", req: &service.QAAllocateRequest{TestCaseIDs: []uuid.UUID{uuid.New()}}},
		{name: "no test cases", req: &service.QAAllocateRequest{QAID: uuid.New()}},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, err := suite.service.Allocate(context.Background(), suite.release.ID, tc.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func (suite *QAAllocationServiceTestSuite) TestRemoveReturnsTestCaseToPool() {
	suite.hydrate(models.QAAssignment{ReleaseID: suite.release.ID, TestCaseID: suite.t1, QAEmployeeID: suite.qa1.ID})
	suite.qaRepo.EXPECT().Delete(suite.release.ID, suite.qa1.ID, suite.t1).Return(nil)

	err := suite.service.Remove(context.Background(), suite.release.ID, suite.qa1.ID, suite.t1)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		[]uuid.UUID{suite.t1, suite.t2, suite.t3},
		suite.tracker.Tracker().Remaining(suite.release.ID))
	require.Len(suite.T(), suite.published, 1)
	assert.Equal(suite.T(), events.QARemoved, suite.published[0].Type)
	require.NotNil(suite.T(), suite.published[0].QAID)
	assert.Equal(suite.T(), suite.qa1.ID, *suite.published[0].QAID)
}

func (suite *QAAllocationServiceTestSuite) TestRemoveNotOwned() {
	suite.hydrate(models.QAAssignment{ReleaseID: suite.release.ID, TestCaseID: suite.t1, QAEmployeeID: suite.qa1.ID})

	err := suite.service.Remove(context.Background(), suite.release.ID, suite.qa2.ID, suite.t1)

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Empty(suite.T(), suite.published)
}

func (suite *QAAllocationServiceTestSuite) TestRemoveRestoresOwnerWhenDeleteFails() {
	suite.hydrate(models.QAAssignment{ReleaseID: suite.release.ID, TestCaseID: suite.t1, QAEmployeeID: suite.qa1.ID})
	suite.qaRepo.EXPECT().Delete(suite.release.ID, suite.qa1.ID, suite.t1).Return(errors.New("deadlock"))

	err := suite.service.Remove(context.Background(), suite.release.ID, suite.qa1.ID, suite.t1)

	require.Error(suite.T(), err)
	assert.Equal(suite.T(),
		[]uuid.UUID{suite.t2, suite.t3},
		suite.tracker.Tracker().Remaining(suite.release.ID))
}

// TestQAAllocationServiceTestSuite runs the test suite
func TestQAAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QAAllocationServiceTestSuite))
}
