package service_test

import (
	"context"
	"testing"

	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
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

// ModuleAssignmentServiceTestSuite defines the test suite for ModuleAssignmentService
type ModuleAssignmentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	projectRepo  *mocks.MockProjectRepositoryInterface
	moduleRepo   *mocks.MockModuleRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	service      *service.ModuleAssignmentService

	module *models.Module
	dev1   models.Employee
	dev2   models.Employee
}

// SetupTest sets up the test suite
func (suite *ModuleAssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.projectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.moduleRepo = mocks.NewMockModuleRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewModuleAssignmentService(suite.projectRepo, suite.moduleRepo, suite.employeeRepo, validator.New())

	suite.dev1 = models.Employee{FullName: "Dev One", Email: "dev1@test.com", Designation: models.DesignationDeveloper}
	suite.dev1.ID = uuid.New()
	suite.dev2 = models.Employee{FullName: "Dev Two", Email: "dev2@test.com", Designation: models.DesignationDeveloper}
	suite.dev2.ID = uuid.New()

	// Payments has Cards and Wallets; Cards is owned by dev2 alone
	suite.module = &models.Module{Name: "Payments", ProjectID: uuid.New()}
	suite.module.ID = uuid.New()
	cards := models.Submodule{ModuleID: suite.module.ID, Name: "Cards", Overridden: true}
	cards.ID = uuid.New()
	wallets := models.Submodule{ModuleID: suite.module.ID, Name: "Wallets", SortOrder: 1}
	wallets.ID = uuid.New()
	suite.module.Submodules = []models.Submodule{cards, wallets}
	suite.module.Developers = []models.ModuleDeveloper{
		{ModuleID: suite.module.ID, EmployeeID: suite.dev1.ID},
		{ModuleID: suite.module.ID, SubmoduleID: &cards.ID, EmployeeID: suite.dev2.ID},
		{ModuleID: suite.module.ID, SubmoduleID: &wallets.ID, EmployeeID: suite.dev1.ID},
	}
}

// TearDownTest cleans up after each test
func (suite *ModuleAssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ModuleAssignmentServiceTestSuite) TestGetProjectModules() {
	projectID := suite.module.ProjectID
	suite.projectRepo.EXPECT().GetByID(projectID).Return(&models.Project{Name: "Shop"}, nil)
	suite.moduleRepo.EXPECT().GetByProjectID(projectID).Return([]models.Module{*suite.module}, nil)

	modules, err := suite.service.GetProjectModules(projectID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), modules, 1)
	m := modules[0]
	assert.Equal(suite.T(), []uuid.UUID{suite.dev1.ID}, m.AssignedDevs)
	assert.Equal(suite.T(), []uuid.UUID{suite.dev1.ID, suite.dev2.ID}, m.EffectiveTeam)
	require.Len(suite.T(), m.Submodules, 2)
	assert.Equal(suite.T(), []uuid.UUID{suite.dev2.ID}, m.Submodules[0].AssignedDevs)
	assert.True(suite.T(), m.Submodules[0].Overridden)
}

func (suite *ModuleAssignmentServiceTestSuite) TestGetProjectModulesUnknownProject() {
	suite.projectRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	modules, err := suite.service.GetProjectModules(uuid.New())

	assert.Nil(suite.T(), modules)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignModulePropagatesToEverySubmodule() {
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Employee{suite.dev1, suite.dev2}, nil)

	var saved *models.Module
	suite.moduleRepo.EXPECT().SaveAssignments(gomock.Any()).DoAndReturn(func(m *models.Module) error {
		saved = m
		return nil
	})

	resp, err := suite.service.AssignModule(context.Background(), suite.module.ID, &service.AssignDevelopersRequest{
		DeveloperIDs: []uuid.UUID{suite.dev2.ID, suite.dev1.ID, suite.dev2.ID},
	})

	require.NoError(suite.T(), err)
	want := []uuid.UUID{suite.dev2.ID, suite.dev1.ID}
	assert.Equal(suite.T(), want, resp.AssignedDevs)
	for _, sub := range resp.Submodules {
		assert.Equal(suite.T(), want, sub.AssignedDevs)
		assert.False(suite.T(), sub.Overridden)
	}

	require.NotNil(suite.T(), saved)
	assert.Len(suite.T(), saved.Developers, 6)
	for _, sub := range saved.Submodules {
		assert.False(suite.T(), sub.Overridden)
	}
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignSubmoduleLeavesSiblingsUntouched() {
	wallets := suite.module.Submodules[1]
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Employee{suite.dev2}, nil)
	suite.moduleRepo.EXPECT().SaveAssignments(gomock.Any()).Return(nil)

	resp, err := suite.service.AssignSubmodule(context.Background(), suite.module.ID, wallets.ID, &service.AssignDevelopersRequest{
		DeveloperIDs: []uuid.UUID{suite.dev2.ID},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{suite.dev1.ID}, resp.AssignedDevs)
	assert.Equal(suite.T(), []uuid.UUID{suite.dev2.ID}, resp.Submodules[0].AssignedDevs)
	assert.Equal(suite.T(), []uuid.UUID{suite.dev2.ID}, resp.Submodules[1].AssignedDevs)
	assert.True(suite.T(), resp.Submodules[1].Overridden)
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignSubmoduleUnknownSubmodule() {
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Employee{suite.dev1}, nil)
	suite.moduleRepo.EXPECT().SaveAssignments(gomock.Any()).Times(0)

	resp, err := suite.service.AssignSubmodule(context.Background(), suite.module.ID, uuid.New(), &service.AssignDevelopersRequest{
		DeveloperIDs: []uuid.UUID{suite.dev1.ID},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubmoduleNotFound)
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignRejectsNonDevelopers() {
	qa := models.Employee{FullName: "QA", Designation: models.DesignationQA}
	qa.ID = uuid.New()
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Employee{qa}, nil)

	_, err := suite.service.AssignModule(context.Background(), suite.module.ID, &service.AssignDevelopersRequest{
		DeveloperIDs: []uuid.UUID{qa.ID},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotDeveloper)
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignUnknownDeveloper() {
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Employee{}, nil)

	_, err := suite.service.AssignModule(context.Background(), suite.module.ID, &service.AssignDevelopersRequest{
		DeveloperIDs: []uuid.UUID{uuid.New()},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
}

func (suite *ModuleAssignmentServiceTestSuite) TestAssignModuleUnknownModule() {
	suite.moduleRepo.EXPECT().GetWithHierarchy(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.AssignModule(context.Background(), uuid.New(), &service.AssignDevelopersRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrModuleNotFound)
	assert.Equal(suite.T(), apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *ModuleAssignmentServiceTestSuite) TestGetTeam() {
	suite.moduleRepo.EXPECT().GetWithHierarchy(suite.module.ID).Return(suite.module, nil)
	suite.employeeRepo.EXPECT().GetByIDs([]uuid.UUID{suite.dev1.ID, suite.dev2.ID}).
		Return([]models.Employee{suite.dev2, suite.dev1}, nil)

	team, err := suite.service.GetTeam(suite.module.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), team.Members, 2)
	assert.Equal(suite.T(), "Dev One", team.Members[0].FullName)
	assert.Equal(suite.T(), "Dev Two", team.Members[1].FullName)
}

func (suite *ModuleAssignmentServiceTestSuite) TestModuleNodeRoundTrip() {
	node := service.ToModuleNode(suite.module)
	clone := *suite.module
	clone.Submodules = append([]models.Submodule(nil), suite.module.Submodules...)
	service.ApplyModuleNode(&clone, node)

	assert.Equal(suite.T(), node, service.ToModuleNode(&clone))
}

// TestModuleAssignmentServiceTestSuite runs the test suite
func TestModuleAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleAssignmentServiceTestSuite))
}
