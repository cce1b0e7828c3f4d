//go:build integration
// +build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"allocation-engine-backend/internal/database/models"
	"allocation-engine-backend/internal/repository"
	"allocation-engine-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

const seedEmployees = `employees:
  - full_name: Grace Hopper
    email: grace@example.com
    designation: QA
  - full_name: Linus Torvalds
    email: linus@example.com
    designation: developer
`

const seedProjects = `projects:
  - name: Payments
    description: Card rails
    modules:
      - name: Checkout
        submodules:
          - name: Cart
          - name: Refunds
    releases:
      - name: Spring
        version: 1.0.0
    test_cases:
      - code: TC-001
        module: Checkout
        submodule: Refunds
        severity: high
        type: smoke
      - code: TC-002
        module: Checkout
        severity: bogus
`

// SeedTestSuite loads fixtures through the repositories
type SeedTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	dataDir       string
}

func (suite *SeedTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

func (suite *SeedTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SeedTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.dataDir = suite.T().TempDir()
	suite.write("employees.yaml", seedEmployees)
	suite.write("projects.yaml", seedProjects)
}

func (suite *SeedTestSuite) write(name, content string) {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dataDir, name), []byte(content), 0o600))
}

func (suite *SeedTestSuite) TestLoadCreatesHierarchy() {
	db := suite.baseTestSuite.DB

	suite.Require().NoError(loadDataFromYAMLFiles(db, suite.dataDir))

	project, err := repository.NewProjectRepository(db).GetByName("Payments")
	suite.Require().NoError(err)
	modules, err := repository.NewModuleRepository(db).GetByProjectID(project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(modules, 1)
	subs, err := repository.NewModuleRepository(db).GetSubmodulesByModuleID(modules[0].ID)
	suite.Require().NoError(err)
	suite.Require().Len(subs, 2)
	suite.Equal("Refunds", subs[1].Name)

	tc, err := repository.NewTestCaseRepository(db).GetByCode("TC-001")
	suite.Require().NoError(err)
	suite.Require().NotNil(tc.SubmoduleID)
	suite.Equal(subs[1].ID, *tc.SubmoduleID)

	fallback, err := repository.NewTestCaseRepository(db).GetByCode("TC-002")
	suite.Require().NoError(err)
	suite.Equal(models.SeverityMedium, fallback.Severity)
	suite.Equal(models.TestCaseTypeFunctional, fallback.Type)

	grace, err := repository.NewEmployeeRepository(db).GetByEmail("grace@example.com")
	suite.Require().NoError(err)
	suite.Equal(models.DesignationQA, grace.Designation)
}

func (suite *SeedTestSuite) TestLoadTwiceKeepsRows() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(loadDataFromYAMLFiles(db, suite.dataDir))

	seed := newSeeder(db)
	counts, err := seed.project(ProjectData{
		Name: "Payments",
		Modules: []ModuleData{{Name: "Checkout", Submodules: []SubmoduleData{
			{Name: "Cart"}, {Name: "Refunds"}, {Name: "Vouchers"},
		}}},
		Releases: []ReleaseData{{Name: "Spring", Version: "1.0.0"}, {Name: "Summer", Version: "1.1.0"}},
	})

	suite.Require().NoError(err)
	suite.Equal(projectCounts{releases: 1}, counts)
	created, err := seed.employee(EmployeeData{FullName: "Grace Hopper", Email: "grace@example.com", Designation: "qa"})
	suite.Require().NoError(err)
	suite.False(created)

	projects, total, err := repository.NewProjectRepository(db).GetAll(-1, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	modules, err := repository.NewModuleRepository(db).GetByProjectID(projects[0].ID)
	suite.Require().NoError(err)
	subs, err := repository.NewModuleRepository(db).GetSubmodulesByModuleID(modules[0].ID)
	suite.Require().NoError(err)
	suite.Len(subs, 3)
}

func (suite *SeedTestSuite) TestUnknownDesignation() {
	_, err := newSeeder(suite.baseTestSuite.DB).employee(EmployeeData{Email: "x@example.com", Designation: "pilot"})

	suite.ErrorContains(err, "unknown designation")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
