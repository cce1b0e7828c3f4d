package handlers

import (
	"net/http"

	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ModuleHandler handles HTTP requests for module developer assignment
type ModuleHandler struct {
	moduleService service.ModuleAssignmentServiceInterface
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(moduleService service.ModuleAssignmentServiceInterface) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
	}
}

// GetProjectModules handles GET /projects/:id/modules
// @Summary List the modules of a project
// @Description Modules with their submodules, assigned developers and effective team
// @Tags modules
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.ModuleResponse "Module hierarchy"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/modules [get]
func (h *ModuleHandler) GetProjectModules(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id", "project")
	if !ok {
		return
	}

	modules, err := h.moduleService.GetProjectModules(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// AssignModule handles PUT /modules/:id/developers
// @Summary Assign developers to a module
// @Description Replaces the module's developers and overwrites every submodule with the same list
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID (UUID)"
// @Param request body service.AssignDevelopersRequest true "Developer ids"
// @Success 200 {object} service.ModuleResponse "Updated module"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Module or employee not found"
// @Router /modules/{id}/developers [put]
func (h *ModuleHandler) AssignModule(c *gin.Context) {
	moduleID, ok := parseIDParam(c, "id", "module")
	if !ok {
		return
	}

	var req service.AssignDevelopersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.moduleService.AssignModule(c.Request.Context(), moduleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// AssignSubmodule handles PUT /modules/:id/submodules/:submoduleId/developers
// @Summary Override the developers of one submodule
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID (UUID)"
// @Param submoduleId path string true "Submodule ID (UUID)"
// @Param request body service.AssignDevelopersRequest true "Developer ids"
// @Success 200 {object} service.ModuleResponse "Updated module"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Module, submodule or employee not found"
// @Router /modules/{id}/submodules/{submoduleId}/developers [put]
func (h *ModuleHandler) AssignSubmodule(c *gin.Context) {
	moduleID, ok := parseIDParam(c, "id", "module")
	if !ok {
		return
	}
	submoduleID, ok := parseIDParam(c, "submoduleId", "submodule")
	if !ok {
		return
	}

	var req service.AssignDevelopersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.moduleService.AssignSubmodule(c.Request.Context(), moduleID, submoduleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// GetTeam handles GET /modules/:id/team
// @Summary Get the effective team of a module
// @Tags modules
// @Produce json
// @Param id path string true "Module ID (UUID)"
// @Success 200 {object} service.ModuleTeamResponse "Distinct developers of the module and its submodules"
// @Failure 400 {object} map[string]interface{} "Invalid module ID"
// @Failure 404 {object} map[string]interface{} "Module not found"
// @Router /modules/{id}/team [get]
func (h *ModuleHandler) GetTeam(c *gin.Context) {
	moduleID, ok := parseIDParam(c, "id", "module")
	if !ok {
		return
	}

	team, err := h.moduleService.GetTeam(moduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
