//go:build integration
// +build integration

package repository

import (
	"testing"

	"allocation-engine-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
	suite.NotZero(project.CreatedAt)
}

// TestCreateDuplicateName tests that project names are unique
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.Project.WithName("insurance")))

	err := suite.repo.Create(suite.factories.Project.WithName("insurance"))

	suite.Error(err)
	suite.True(isUniqueViolation(err))
}

// TestGetByIDAndName tests retrieving a project by ID and by name
func (suite *ProjectRepositoryTestSuite) TestGetByIDAndName() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	byID, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal(project.Name, byID.Name)

	byName, err := suite.repo.GetByName(project.Name)
	suite.NoError(err)
	suite.Equal(project.ID, byName.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent project
func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	project, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(project)
}

// TestGetAllWithPagination tests listing projects page by page
func (suite *ProjectRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Project.Create()))
	}

	page, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)

	rest, _, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(rest, 1)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
