//go:build integration
// +build integration

package routes_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/api/routes"
	"allocation-engine-backend/internal/database/models"
	"allocation-engine-backend/internal/metrics"
	"allocation-engine-backend/internal/repository"
	"allocation-engine-backend/internal/service"
	"allocation-engine-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite exercises the API end to end against Postgres with the local allocation backend
type RoutesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	http          *testutils.HTTPTestSuite
	registry      *prometheus.Registry

	module     *models.Module
	testCases  []*models.TestCase
	releases   []*models.Release
	qa         *models.Employee
	developers []*models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *RoutesTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RoutesTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds one project and builds a fresh router
func (suite *RoutesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB
	require := suite.Require()

	project := suite.factories.Project.Create()
	require.NoError(repository.NewProjectRepository(db).Create(project))

	suite.module = suite.factories.Module.WithSubmodules(project.ID, 2)
	require.NoError(repository.NewModuleRepository(db).Create(suite.module))

	testCaseRepo := repository.NewTestCaseRepository(db)
	suite.testCases = nil
	for i := 0; i < 3; i++ {
		tc := suite.factories.TestCase.Create(suite.module.ID)
		require.NoError(testCaseRepo.Create(tc))
		suite.testCases = append(suite.testCases, tc)
	}

	releaseRepo := repository.NewReleaseRepository(db)
	suite.releases = nil
	for i := 0; i < 2; i++ {
		release := suite.factories.Release.Create(project.ID)
		require.NoError(releaseRepo.Create(release))
		suite.releases = append(suite.releases, release)
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	suite.qa = suite.factories.Employee.WithDesignation(models.DesignationQA)
	require.NoError(employeeRepo.Create(suite.qa))
	suite.developers = nil
	for i := 0; i < 3; i++ {
		dev := suite.factories.Employee.WithDesignation(models.DesignationDeveloper)
		require.NoError(employeeRepo.Create(dev))
		suite.developers = append(suite.developers, dev)
	}

	suite.registry = prometheus.NewRegistry()
	router := routes.SetupRoutes(db, suite.baseTestSuite.Config, routes.Dependencies{
		Metrics:  metrics.NewPrometheus(suite.registry, ""),
		Gatherer: suite.registry,
	})
	suite.http = testutils.NewHTTPTestSuite(router)
}

// TearDownTest runs after each test
func (suite *RoutesTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RoutesTestSuite) tc(i int) uuid.UUID      { return suite.testCases[i].ID }
func (suite *RoutesTestSuite) release(i int) uuid.UUID { return suite.releases[i].ID }

// TestHealth tests the health endpoints against the live database
func (suite *RoutesTestSuite) TestHealth() {
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, nil)

	var health struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &health)
	suite.Equal("healthy", health.Status)
	suite.Equal("healthy", health.Services["database"])
}

// TestReleaseAndQAAllocation walks a release from stage R to completion
func (suite *RoutesTestSuite) TestReleaseAndQAAllocation() {
	r := suite.release(0)
	qaPath := fmt.Sprintf("/api/v1/releases/%s/qa-allocations", r)

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "bulk allocation",
			Method: http.MethodPost,
			URL:    "/api/v1/allocations",
			Body: service.AllocateRequest{
				Mode:        "bulk",
				TestCaseIDs: []uuid.UUID{suite.tc(0), suite.tc(1)},
				ReleaseIDs:  []uuid.UUID{r},
			},
			ExpectedStatus: http.StatusOK,
			Check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var batch service.AllocationBatchResponse
				testutils.AssertJSONResponse(t, w, http.StatusOK, &batch)
				assert.Equal(t, 1, batch.Total)
				assert.Equal(t, 1, batch.Succeeded)
				assert.Equal(t, allocation.BatchComplete, batch.Result)
			},
		},
		{
			Name:   "unknown mode",
			Method: http.MethodPost,
			URL:    "/api/v1/allocations",
			Body: service.AllocateRequest{
				Mode:        "many-to-many",
				TestCaseIDs: []uuid.UUID{suite.tc(0)},
				ReleaseIDs:  []uuid.UUID{r},
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:   "unknown release",
			Method: http.MethodPost,
			URL:    "/api/v1/allocations",
			Body: service.AllocateRequest{
				Mode:        "one-to-one",
				TestCaseIDs: []uuid.UUID{suite.tc(2)},
				ReleaseIDs:  []uuid.UUID{uuid.New()},
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:           "stage R",
			Method:         http.MethodGet,
			URL:            fmt.Sprintf("/api/v1/releases/%s/allocations", r),
			ExpectedStatus: http.StatusOK,
			Check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.ReleaseAllocationsResponse
				testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
				assert.ElementsMatch(t, []uuid.UUID{suite.tc(0), suite.tc(1)}, resp.TestCaseIDs)
			},
		},
		{
			Name:   "first QA allocation rejects unallocated test cases",
			Method: http.MethodPost,
			URL:    qaPath,
			Body: service.QAAllocateRequest{
				QAID:        suite.qa.ID,
				TestCaseIDs: []uuid.UUID{suite.tc(0), suite.tc(2)},
			},
			ExpectedStatus: http.StatusOK,
			Check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.QAAllocateResponse
				testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
				assert.Equal(t, []uuid.UUID{suite.tc(0)}, resp.Accepted)
				require.Len(t, resp.Rejected, 1)
				assert.Equal(t, allocation.ReasonNotAllocated, resp.Rejected[0].Reason)
				assert.Equal(t, 1, resp.Remaining)
				assert.False(t, resp.Complete)
			},
		},
		{
			Name:   "second QA allocation completes the release",
			Method: http.MethodPost,
			URL:    qaPath,
			Body: service.QAAllocateRequest{
				QAID:        suite.qa.ID,
				TestCaseIDs: []uuid.UUID{suite.tc(1)},
			},
			ExpectedStatus: http.StatusOK,
			Check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp service.QAAllocateResponse
				testutils.AssertJSONResponse(t, w, http.StatusOK, &resp)
				assert.True(t, resp.Complete)
			},
		},
		{
			Name:           "status is complete",
			Method:         http.MethodGet,
			URL:            qaPath,
			ExpectedStatus: http.StatusOK,
			Check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var status service.QAAllocationStatusResponse
				testutils.AssertJSONResponse(t, w, http.StatusOK, &status)
				assert.Equal(t, allocation.StageComplete, status.Stage)
				assert.Empty(t, status.Remaining)
			},
		},
		{
			Name:           "remove returns the test case to the pool",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("%s/%s/test-cases/%s", qaPath, suite.qa.ID, suite.tc(1)),
			ExpectedStatus: http.StatusNoContent,
		},
		{
			Name:           "removing twice is not found",
			Method:         http.MethodDelete,
			URL:            fmt.Sprintf("%s/%s/test-cases/%s", qaPath, suite.qa.ID, suite.tc(1)),
			ExpectedStatus: http.StatusNotFound,
		},
	})

	w := suite.http.MakeRequest(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "allocation_requests_total")
	suite.Contains(w.Body.String(), "allocation_qa_test_cases_total")
}

// TestModuleAssignment tests module and submodule developer assignment
func (suite *RoutesTestSuite) TestModuleAssignment() {
	moduleID := suite.module.ID
	submoduleID := suite.module.Submodules[0].ID
	dev := func(i int) uuid.UUID { return suite.developers[i].ID }

	var module service.ModuleResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/modules/%s/developers", moduleID),
		service.AssignDevelopersRequest{DeveloperIDs: []uuid.UUID{dev(0), dev(1)}}), http.StatusOK, &module)
	suite.Equal([]uuid.UUID{dev(0), dev(1)}, module.AssignedDevs)
	for _, sub := range module.Submodules {
		suite.Equal([]uuid.UUID{dev(0), dev(1)}, sub.AssignedDevs)
	}

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/modules/%s/submodules/%s/developers", moduleID, submoduleID),
		service.AssignDevelopersRequest{DeveloperIDs: []uuid.UUID{dev(2)}}), http.StatusOK, &module)
	suite.True(module.Submodules[0].Overridden)
	suite.ElementsMatch([]uuid.UUID{dev(0), dev(1)}, module.AssignedDevs)

	var team service.ModuleTeamResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/modules/%s/team", moduleID), nil), http.StatusOK, &team)
	suite.Len(team.Members, 3)

	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/modules/%s/developers", uuid.New()),
		service.AssignDevelopersRequest{DeveloperIDs: []uuid.UUID{dev(0)}}), http.StatusNotFound, "module not found")

	var modules []service.ModuleResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s/modules", suite.module.ProjectID), nil), http.StatusOK, &modules)
	suite.Require().Len(modules, 1)
	suite.True(modules[0].Submodules[0].Overridden)
}

// TestSelectionSubmit tests building a selection and submitting it
func (suite *RoutesTestSuite) TestSelectionSubmit() {
	var view allocation.SessionView
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, "/api/v1/selections",
		service.CreateSelectionRequest{Mode: "one-to-many"}), http.StatusCreated, &view)
	base := fmt.Sprintf("/api/v1/selections/%s", view.ID)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/sources/toggle",
		service.ToggleItemRequest{ID: suite.tc(2)}), http.StatusOK, &view)
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/targets/select-all",
		service.SelectAllRequest{IDs: []uuid.UUID{suite.release(0), suite.release(1)}}), http.StatusOK, &view)
	suite.Equal([]uuid.UUID{suite.tc(2)}, view.TestCaseIDs)
	suite.Len(view.ReleaseIDs, 2)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost,
		fmt.Sprintf("%s/modules/%s/toggle", base, suite.module.ID), nil), http.StatusOK, &view)
	suite.Equal([]uuid.UUID{suite.module.ID}, view.SelectedModules)
	suite.Len(view.SelectedSubmodules, 2)

	var submitted service.SubmitSelectionResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/submit", nil), http.StatusOK, &submitted)
	suite.Equal(1, submitted.Batch.Succeeded)
	suite.Empty(submitted.Session.TestCaseIDs)
	suite.Equal(allocation.ModeOneToMany, submitted.Session.Mode)

	for i := range suite.releases {
		var resp service.ReleaseAllocationsResponse
		testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
			fmt.Sprintf("/api/v1/releases/%s/allocations", suite.release(i)), nil), http.StatusOK, &resp)
		suite.Equal([]uuid.UUID{suite.tc(2)}, resp.TestCaseIDs)
	}

	suite.Equal(http.StatusNoContent, suite.http.MakeRequest(http.MethodDelete, base, nil).Code)
	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, base, nil), http.StatusNotFound, "selection session not found")
}

// TestSelectionQASubmit assigns a session's selection to a QA engineer in its target release
func (suite *RoutesTestSuite) TestSelectionQASubmit() {
	r := suite.release(0)
	var batch service.AllocationBatchResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, "/api/v1/allocations",
		service.AllocateRequest{Mode: "bulk", TestCaseIDs: []uuid.UUID{suite.tc(0), suite.tc(1)}, ReleaseIDs: []uuid.UUID{r}}), http.StatusOK, &batch)

	var view allocation.SessionView
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, "/api/v1/selections",
		service.CreateSelectionRequest{Mode: "bulk"}), http.StatusCreated, &view)
	base := fmt.Sprintf("/api/v1/selections/%s", view.ID)

	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/qa-submit",
		service.QASubmitSelectionRequest{QAID: suite.qa.ID}), http.StatusBadRequest, "no release targeted")

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPut, base+"/target",
		service.SetTargetRequest{ReleaseID: r}), http.StatusOK, &view)
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/sources/select-all",
		service.SelectAllRequest{IDs: []uuid.UUID{suite.tc(0), suite.tc(1)}}), http.StatusOK, &view)

	var submitted service.QASubmitSelectionResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/qa-submit",
		service.QASubmitSelectionRequest{QAID: suite.qa.ID}), http.StatusOK, &submitted)
	suite.ElementsMatch([]uuid.UUID{suite.tc(0), suite.tc(1)}, submitted.Allocation.Accepted)
	suite.Equal(0, submitted.Allocation.Remaining)
	suite.Empty(submitted.Session.TestCaseIDs)
	suite.Require().NotNil(submitted.Session.TargetReleaseID)
	suite.Equal(r, *submitted.Session.TargetReleaseID)

	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodPost, base+"/qa-submit",
		service.QASubmitSelectionRequest{QAID: suite.qa.ID}), http.StatusBadRequest, "no test case selected")
}

// TestDirectory tests the listing endpoints
func (suite *RoutesTestSuite) TestDirectory() {
	var employees service.EmployeeListResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/employees?designation=qa", nil), http.StatusOK, &employees)
	suite.Equal(int64(1), employees.Total)
	suite.Equal(suite.qa.ID, employees.Employees[0].ID)

	var testCases []service.TestCaseResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/test-cases?module_id=%s", suite.module.ID), nil), http.StatusOK, &testCases)
	suite.Len(testCases, 3)

	var releases []service.ReleaseResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/releases", nil), http.StatusOK, &releases)
	suite.Len(releases, 2)

	var projects []service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/api/v1/projects", nil), http.StatusOK, &projects)
	suite.Require().Len(projects, 1)
	suite.Equal(suite.module.ProjectID, projects[0].ID)

	var submodules []service.SubmoduleSummary
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/modules/%s/submodules", suite.module.ID), nil), http.StatusOK, &submodules)
	suite.Len(submodules, 2)
	testutils.AssertErrorResponse(suite.T(), suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/modules/%s/submodules", uuid.New()), nil), http.StatusNotFound, "module")
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
