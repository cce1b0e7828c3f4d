package handlers

import (
	"net/http"
	"strconv"

	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves project, submodule, employee, release and test case listings
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// ListProjects handles GET /projects
// @Summary List projects
// @Tags directory
// @Produce json
// @Success 200 {array} service.ProjectResponse "Projects"
// @Router /projects [get]
func (h *DirectoryHandler) ListProjects(c *gin.Context) {
	projects, err := h.directoryService.ListProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListSubmodules handles GET /modules/:id/submodules
// @Summary List the submodules of a module
// @Tags directory
// @Produce json
// @Param id path string true "Module ID (UUID)"
// @Success 200 {array} service.SubmoduleSummary "Submodules in display order"
// @Failure 400 {object} map[string]interface{} "Invalid module ID"
// @Failure 404 {object} map[string]interface{} "Module not found"
// @Router /modules/{id}/submodules [get]
func (h *DirectoryHandler) ListSubmodules(c *gin.Context) {
	moduleID, ok := parseIDParam(c, "id", "module")
	if !ok {
		return
	}

	submodules, err := h.directoryService.ListSubmodules(moduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submodules)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Tags directory
// @Produce json
// @Param designation query string false "developer, qa, lead or manager"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.EmployeeListResponse "Employees"
// @Failure 400 {object} map[string]interface{} "Unknown designation"
// @Router /employees [get]
func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	employees, err := h.directoryService.ListEmployees(c.Query("designation"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ListReleases handles GET /releases
// @Summary List releases
// @Tags directory
// @Produce json
// @Param project_id query string false "Project ID (UUID)"
// @Success 200 {array} service.ReleaseResponse "Releases"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Router /releases [get]
func (h *DirectoryHandler) ListReleases(c *gin.Context) {
	projectID, ok := parseIDQuery(c, "project_id", "project")
	if !ok {
		return
	}

	releases, err := h.directoryService.ListReleases(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, releases)
}

// ListTestCases handles GET /test-cases
// @Summary List test cases
// @Tags directory
// @Produce json
// @Param module_id query string false "Module ID (UUID)"
// @Success 200 {array} service.TestCaseResponse "Test cases"
// @Failure 400 {object} map[string]interface{} "Invalid module ID"
// @Router /test-cases [get]
func (h *DirectoryHandler) ListTestCases(c *gin.Context) {
	moduleID, ok := parseIDQuery(c, "module_id", "module")
	if !ok {
		return
	}

	testCases, err := h.directoryService.ListTestCases(moduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCases)
}
