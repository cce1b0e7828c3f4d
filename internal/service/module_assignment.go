package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleAssignmentService assigns developers to modules and submodules
type ModuleAssignmentService struct {
	projectRepo  repository.ProjectRepositoryInterface
	moduleRepo   repository.ModuleRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
}

// NewModuleAssignmentService creates a new module assignment service
func NewModuleAssignmentService(
	projectRepo repository.ProjectRepositoryInterface,
	moduleRepo repository.ModuleRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	validator *validator.Validate,
) *ModuleAssignmentService {
	return &ModuleAssignmentService{
		projectRepo:  projectRepo,
		moduleRepo:   moduleRepo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// AssignDevelopersRequest replaces the developers of a module or submodule.
// An empty list unassigns everyone.
type AssignDevelopersRequest struct {
	DeveloperIDs []uuid.UUID `json:"developer_ids" validate:"dive,required"`
}

// SubmoduleResponse represents a submodule with its assigned developers
type SubmoduleResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	AssignedDevs []uuid.UUID `json:"assigned_devs"`
	Overridden   bool        `json:"overridden"`
}

// ModuleResponse represents a module with its assignments and effective team
type ModuleResponse struct {
	ID            uuid.UUID           `json:"id"`
	ProjectID     uuid.UUID           `json:"project_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	AssignedDevs  []uuid.UUID         `json:"assigned_devs"`
	EffectiveTeam []uuid.UUID         `json:"effective_team"`
	Submodules    []SubmoduleResponse `json:"submodules"`
}

// TeamMember is a developer of a module's effective team
type TeamMember struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// ModuleTeamResponse is the effective team of a module
type ModuleTeamResponse struct {
	ModuleID uuid.UUID    `json:"module_id"`
	Members  []TeamMember `json:"members"`
}

// GetProjectModules returns the module hierarchy of a project
func (s *ModuleAssignmentService) GetProjectModules(projectID uuid.UUID) ([]ModuleResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	modules, err := s.moduleRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}

	responses := make([]ModuleResponse, 0, len(modules))
	for i := range modules {
		responses = append(responses, toModuleResponse(&modules[i], ToModuleNode(&modules[i])))
	}
	return responses, nil
}

// AssignModule sets the module's developers; every submodule inherits the same set
func (s *ModuleAssignmentService) AssignModule(ctx context.Context, moduleID uuid.UUID, req *AssignDevelopersRequest) (*ModuleResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	module, err := s.getModule(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyDevelopers(req.DeveloperIDs); err != nil {
		return nil, err
	}

	propagator := allocation.NewPropagator([]allocation.ModuleNode{ToModuleNode(module)})
	node, err := propagator.AssignModule(moduleID, req.DeveloperIDs)
	if err != nil {
		return nil, err
	}
	if err := s.save(module, node); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"module_id":  moduleID,
		"developers": len(node.AssignedDevs),
	}).Info("Module developers assigned")

	resp := toModuleResponse(module, node)
	return &resp, nil
}

// AssignSubmodule overrides the developers of one submodule, leaving the module
// and its other submodules untouched
func (s *ModuleAssignmentService) AssignSubmodule(ctx context.Context, moduleID, submoduleID uuid.UUID, req *AssignDevelopersRequest) (*ModuleResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	module, err := s.getModule(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyDevelopers(req.DeveloperIDs); err != nil {
		return nil, err
	}

	propagator := allocation.NewPropagator([]allocation.ModuleNode{ToModuleNode(module)})
	if _, err := propagator.AssignSubmodule(moduleID, submoduleID, req.DeveloperIDs); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSubmoduleNotFound, submoduleID)
		}
		return nil, err
	}
	node, err := propagator.Module(moduleID)
	if err != nil {
		return nil, err
	}
	if err := s.save(module, node); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"module_id":    moduleID,
		"submodule_id": submoduleID,
		"developers":   len(req.DeveloperIDs),
	}).Info("Submodule developers overridden")

	resp := toModuleResponse(module, node)
	return &resp, nil
}

// GetTeam returns the union of the module's and its submodules' developers
func (s *ModuleAssignmentService) GetTeam(moduleID uuid.UUID) (*ModuleTeamResponse, error) {
	module, err := s.getModule(moduleID)
	if err != nil {
		return nil, err
	}

	team := allocation.EffectiveTeam(ToModuleNode(module))
	members := make([]TeamMember, 0, len(team))
	if len(team) == 0 {
		return &ModuleTeamResponse{ModuleID: moduleID, Members: members}, nil
	}

	employees, err := s.employeeRepo.GetByIDs(team)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	byID := make(map[uuid.UUID]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	for _, id := range team {
		e, ok := byID[id]
		if !ok {
			continue
		}
		members = append(members, TeamMember{ID: e.ID, FullName: e.FullName, Email: e.Email})
	}
	return &ModuleTeamResponse{ModuleID: moduleID, Members: members}, nil
}

func (s *ModuleAssignmentService) getModule(moduleID uuid.UUID) (*models.Module, error) {
	module, err := s.moduleRepo.GetWithHierarchy(moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return module, nil
}

// verifyDevelopers fails unless every id names an existing developer
func (s *ModuleAssignmentService) verifyDevelopers(ids []uuid.UUID) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	employees, err := s.employeeRepo.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to verify developers: %w", err)
	}
	found := make(map[uuid.UUID]struct{}, len(employees))
	for _, e := range employees {
		if e.Designation != models.DesignationDeveloper {
			return fmt.Errorf("%w: %s", apperrors.ErrEmployeeNotDeveloper, e.FullName)
		}
		found[e.ID] = struct{}{}
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrEmployeeNotFound, missing[0])
	}
	return nil
}

func (s *ModuleAssignmentService) save(module *models.Module, node allocation.ModuleNode) error {
	ApplyModuleNode(module, node)
	if err := s.moduleRepo.SaveAssignments(module); err != nil {
		return fmt.Errorf("failed to save module assignments: %w", err)
	}
	return nil
}

// ToModuleNode converts a module loaded with its hierarchy into the node the
// propagator and hierarchy selection work on. Developers keep their stored order.
func ToModuleNode(module *models.Module) allocation.ModuleNode {
	devs := make([]models.ModuleDeveloper, len(module.Developers))
	copy(devs, module.Developers)
	sort.SliceStable(devs, func(i, j int) bool { return devs[i].Position < devs[j].Position })

	node := allocation.ModuleNode{ID: module.ID, Name: module.Name, AssignedDevs: []uuid.UUID{}}
	bySub := make(map[uuid.UUID][]uuid.UUID)
	for _, d := range devs {
		if d.SubmoduleID == nil {
			node.AssignedDevs = append(node.AssignedDevs, d.EmployeeID)
			continue
		}
		bySub[*d.SubmoduleID] = append(bySub[*d.SubmoduleID], d.EmployeeID)
	}
	for _, sub := range module.Submodules {
		assigned := bySub[sub.ID]
		if assigned == nil {
			assigned = []uuid.UUID{}
		}
		node.Submodules = append(node.Submodules, allocation.SubmoduleNode{
			ID:           sub.ID,
			Name:         sub.Name,
			AssignedDevs: assigned,
			Overridden:   sub.Overridden,
		})
	}
	return node
}

// ApplyModuleNode writes the node's assignments back into module.Developers
// and the submodules' override flags
func ApplyModuleNode(module *models.Module, node allocation.ModuleNode) {
	developers := make([]models.ModuleDeveloper, 0)
	for i, dev := range node.AssignedDevs {
		developers = append(developers, models.ModuleDeveloper{
			ModuleID:   module.ID,
			EmployeeID: dev,
			Position:   i,
		})
	}

	overridden := make(map[uuid.UUID]bool, len(node.Submodules))
	for _, sub := range node.Submodules {
		subID := sub.ID
		overridden[subID] = sub.Overridden
		for i, dev := range sub.AssignedDevs {
			developers = append(developers, models.ModuleDeveloper{
				ModuleID:    module.ID,
				SubmoduleID: &subID,
				EmployeeID:  dev,
				Position:    i,
			})
		}
	}

	module.Developers = developers
	for i := range module.Submodules {
		module.Submodules[i].Overridden = overridden[module.Submodules[i].ID]
	}
}

func toModuleResponse(module *models.Module, node allocation.ModuleNode) ModuleResponse {
	resp := ModuleResponse{
		ID:            module.ID,
		ProjectID:     module.ProjectID,
		Name:          module.Name,
		Description:   module.Description,
		AssignedDevs:  node.AssignedDevs,
		EffectiveTeam: allocation.EffectiveTeam(node),
		Submodules:    make([]SubmoduleResponse, 0, len(node.Submodules)),
	}
	descriptions := make(map[uuid.UUID]string, len(module.Submodules))
	for _, sub := range module.Submodules {
		descriptions[sub.ID] = sub.Description
	}
	for _, sub := range node.Submodules {
		resp.Submodules = append(resp.Submodules, SubmoduleResponse{
			ID:           sub.ID,
			Name:         sub.Name,
			Description:  descriptions[sub.ID],
			AssignedDevs: sub.AssignedDevs,
			Overridden:   sub.Overridden,
		})
	}
	return resp
}
