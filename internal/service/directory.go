package service

import (
	"errors"
	"fmt"
	"strings"

	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectoryService lists the projects, submodules, people, releases and test
// cases the allocation screens pick from
type DirectoryService struct {
	projectRepo  repository.ProjectRepositoryInterface
	moduleRepo   repository.ModuleRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	releaseRepo  repository.ReleaseRepositoryInterface
	testCaseRepo repository.TestCaseRepositoryInterface
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	projectRepo repository.ProjectRepositoryInterface,
	moduleRepo repository.ModuleRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	releaseRepo repository.ReleaseRepositoryInterface,
	testCaseRepo repository.TestCaseRepositoryInterface,
) *DirectoryService {
	return &DirectoryService{
		projectRepo:  projectRepo,
		moduleRepo:   moduleRepo,
		employeeRepo: employeeRepo,
		releaseRepo:  releaseRepo,
		testCaseRepo: testCaseRepo,
	}
}

// ProjectResponse represents a project
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// SubmoduleSummary is a submodule without its developer assignments
type SubmoduleSummary struct {
	ID          uuid.UUID `json:"id"`
	ModuleID    uuid.UUID `json:"module_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	Overridden  bool      `json:"overridden"`
}

// EmployeeResponse represents an employee
type EmployeeResponse struct {
	ID          uuid.UUID          `json:"id"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	Designation models.Designation `json:"designation"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// ReleaseResponse represents a release
type ReleaseResponse struct {
	ID        uuid.UUID            `json:"id"`
	ProjectID uuid.UUID            `json:"project_id"`
	Name      string               `json:"name"`
	Version   string               `json:"version"`
	Status    models.ReleaseStatus `json:"status"`
}

// TestCaseResponse represents a test case
type TestCaseResponse struct {
	ID          uuid.UUID           `json:"id"`
	Code        string              `json:"code"`
	ModuleID    uuid.UUID           `json:"module_id"`
	SubmoduleID *uuid.UUID          `json:"submodule_id,omitempty"`
	Description string              `json:"description"`
	Severity    models.Severity     `json:"severity"`
	Type        models.TestCaseType `json:"type"`
}

// ListProjects lists every project by name
func (s *DirectoryService) ListProjects() ([]ProjectResponse, error) {
	projects, _, err := s.projectRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ProjectResponse{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return responses, nil
}

// ListSubmodules lists the submodules of a module in display order
func (s *DirectoryService) ListSubmodules(moduleID uuid.UUID) ([]SubmoduleSummary, error) {
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}

	submodules, err := s.moduleRepo.GetSubmodulesByModuleID(moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submodules: %w", err)
	}

	responses := make([]SubmoduleSummary, 0, len(submodules))
	for _, sub := range submodules {
		responses = append(responses, SubmoduleSummary{
			ID:          sub.ID,
			ModuleID:    sub.ModuleID,
			Name:        sub.Name,
			Description: sub.Description,
			SortOrder:   sub.SortOrder,
			Overridden:  sub.Overridden,
		})
	}
	return responses, nil
}

// ListEmployees lists employees, optionally filtered by designation
func (s *DirectoryService) ListEmployees(designation string, limit, offset int) (*EmployeeListResponse, error) {
	d := models.Designation(strings.ToLower(strings.TrimSpace(designation)))
	if d != "" && !d.IsValid() {
		return nil, apperrors.NewValidationError("designation", fmt.Sprintf("unknown designation %q", designation))
	}
	limit, offset = normalizePage(limit, offset)

	employees, total, err := s.employeeRepo.GetAll(d, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, EmployeeResponse{
			ID:          e.ID,
			FullName:    e.FullName,
			Email:       e.Email,
			Designation: e.Designation,
		})
	}
	return &EmployeeListResponse{Employees: responses, Total: total, Limit: limit, Offset: offset}, nil
}

// ListReleases lists the releases of a project, or every release when
// projectID is nil
func (s *DirectoryService) ListReleases(projectID *uuid.UUID) ([]ReleaseResponse, error) {
	var (
		releases []models.Release
		err      error
	)
	if projectID != nil {
		releases, err = s.releaseRepo.GetByProjectID(*projectID)
	} else {
		releases, _, err = s.releaseRepo.GetAll(-1, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	responses := make([]ReleaseResponse, 0, len(releases))
	for _, r := range releases {
		responses = append(responses, ReleaseResponse{
			ID:        r.ID,
			ProjectID: r.ProjectID,
			Name:      r.Name,
			Version:   r.Version,
			Status:    r.Status,
		})
	}
	return responses, nil
}

// ListTestCases lists the test cases of a module, or every test case when
// moduleID is nil
func (s *DirectoryService) ListTestCases(moduleID *uuid.UUID) ([]TestCaseResponse, error) {
	var (
		testCases []models.TestCase
		err       error
	)
	if moduleID != nil {
		testCases, err = s.testCaseRepo.GetByModuleID(*moduleID)
	} else {
		testCases, _, err = s.testCaseRepo.GetAll(-1, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}

	responses := make([]TestCaseResponse, 0, len(testCases))
	for _, tc := range testCases {
		responses = append(responses, TestCaseResponse{
			ID:          tc.ID,
			Code:        tc.Code,
			ModuleID:    tc.ModuleID,
			SubmoduleID: tc.SubmoduleID,
			Description: tc.Description,
			Severity:    tc.Severity,
			Type:        tc.Type,
		})
	}
	return responses, nil
}

// normalizePage applies the default page size of 20 and caps it at 100
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
