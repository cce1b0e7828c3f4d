package service_test

import (
	"errors"
	"testing"

	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/mocks"
	"allocation-engine-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DirectoryServiceTestSuite defines the test suite for DirectoryService
type DirectoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	projectRepo  *mocks.MockProjectRepositoryInterface
	moduleRepo   *mocks.MockModuleRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	releaseRepo  *mocks.MockReleaseRepositoryInterface
	testCaseRepo *mocks.MockTestCaseRepositoryInterface
	service      *service.DirectoryService
}

// SetupTest sets up the test suite
func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.projectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.moduleRepo = mocks.NewMockModuleRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.releaseRepo = mocks.NewMockReleaseRepositoryInterface(suite.ctrl)
	suite.testCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.service = service.NewDirectoryService(suite.projectRepo, suite.moduleRepo, suite.employeeRepo, suite.releaseRepo, suite.testCaseRepo)
}

// TearDownTest cleans up after each test
func (suite *DirectoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DirectoryServiceTestSuite) TestListProjects() {
	project := models.Project{Name: "Payments", Description: "Card rails"}
	project.ID = uuid.New()
	suite.projectRepo.EXPECT().GetAll(-1, 0).Return([]models.Project{project}, int64(1), nil)

	projects, err := suite.service.ListProjects()

	require.NoError(suite.T(), err)
	require.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), project.ID, projects[0].ID)
	assert.Equal(suite.T(), "Payments", projects[0].Name)
	assert.Equal(suite.T(), "Card rails", projects[0].Description)
}

func (suite *DirectoryServiceTestSuite) TestListProjectsError() {
	suite.projectRepo.EXPECT().GetAll(-1, 0).Return(nil, int64(0), errors.New("connection reset"))

	_, err := suite.service.ListProjects()

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to list projects")
}

func (suite *DirectoryServiceTestSuite) TestListSubmodules() {
	moduleID := uuid.New()
	sub := models.Submodule{ModuleID: moduleID, Name: "Refunds", SortOrder: 1, Overridden: true}
	sub.ID = uuid.New()
	suite.moduleRepo.EXPECT().GetByID(moduleID).Return(&models.Module{Name: "Checkout"}, nil)
	suite.moduleRepo.EXPECT().GetSubmodulesByModuleID(moduleID).Return([]models.Submodule{sub}, nil)

	subs, err := suite.service.ListSubmodules(moduleID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), subs, 1)
	assert.Equal(suite.T(), sub.ID, subs[0].ID)
	assert.Equal(suite.T(), moduleID, subs[0].ModuleID)
	assert.Equal(suite.T(), 1, subs[0].SortOrder)
	assert.True(suite.T(), subs[0].Overridden)
}

func (suite *DirectoryServiceTestSuite) TestListSubmodulesUnknownModule() {
	moduleID := uuid.New()
	suite.moduleRepo.EXPECT().GetByID(moduleID).Return(nil, gorm.ErrRecordNotFound)

	subs, err := suite.service.ListSubmodules(moduleID)

	assert.Nil(suite.T(), subs)
	assert.ErrorIs(suite.T(), err, apperrors.ErrModuleNotFound)
}

func (suite *DirectoryServiceTestSuite) TestListEmployees() {
	qa := models.Employee{FullName: "Quinn", Email: "quinn@test.com", Designation: models.DesignationQA}
	qa.ID = uuid.New()
	suite.employeeRepo.EXPECT().GetAll(models.DesignationQA, 20, 0).Return([]models.Employee{qa}, int64(1), nil)

	resp, err := suite.service.ListEmployees(" QA ", 0, -5)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), 20, resp.Limit)
	assert.Equal(suite.T(), 0, resp.Offset)
	require.Len(suite.T(), resp.Employees, 1)
	assert.Equal(suite.T(), qa.ID, resp.Employees[0].ID)
	assert.Equal(suite.T(), models.DesignationQA, resp.Employees[0].Designation)
}

func (suite *DirectoryServiceTestSuite) TestListEmployeesCapsLimit() {
	suite.employeeRepo.EXPECT().GetAll(models.Designation(""), 100, 40).Return([]models.Employee{}, int64(0), nil)

	resp, err := suite.service.ListEmployees("", 500, 40)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, resp.Limit)
	assert.Empty(suite.T(), resp.Employees)
}

func (suite *DirectoryServiceTestSuite) TestListEmployeesUnknownDesignation() {
	resp, err := suite.service.ListEmployees("astronaut", 10, 0)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *DirectoryServiceTestSuite) TestListReleases() {
	projectID := uuid.New()
	release := models.Release{ProjectID: projectID, Name: "Spring", Version: "1.4.0", Status: models.ReleaseStatusPlanned}
	release.ID = uuid.New()

	suite.releaseRepo.EXPECT().GetByProjectID(projectID).Return([]models.Release{release}, nil)
	filtered, err := suite.service.ListReleases(&projectID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), filtered, 1)
	assert.Equal(suite.T(), "1.4.0", filtered[0].Version)

	suite.releaseRepo.EXPECT().GetAll(-1, 0).Return([]models.Release{release, release}, int64(2), nil)
	all, err := suite.service.ListReleases(nil)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 2)
}

func (suite *DirectoryServiceTestSuite) TestListTestCases() {
	moduleID := uuid.New()
	tc := models.TestCase{Code: "TC-001", ModuleID: moduleID, Severity: models.SeverityHigh, Type: models.TestCaseTypeSmoke}
	tc.ID = uuid.New()

	suite.testCaseRepo.EXPECT().GetByModuleID(moduleID).Return([]models.TestCase{tc}, nil)
	filtered, err := suite.service.ListTestCases(&moduleID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), filtered, 1)
	assert.Equal(suite.T(), "TC-001", filtered[0].Code)
	assert.Nil(suite.T(), filtered[0].SubmoduleID)

	suite.testCaseRepo.EXPECT().GetAll(-1, 0).Return(nil, int64(0), errors.New("connection reset"))
	_, err = suite.service.ListTestCases(nil)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to list test cases")
}

// TestDirectoryServiceTestSuite runs the test suite
func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
