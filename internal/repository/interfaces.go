package repository

import (
	"context"

	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
}

// ModuleRepositoryInterface defines the interface for module repository operations
type ModuleRepositoryInterface interface {
	Create(module *models.Module) error
	CreateSubmodule(submodule *models.Submodule) error
	GetByID(id uuid.UUID) (*models.Module, error)
	GetWithHierarchy(id uuid.UUID) (*models.Module, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Module, error)
	GetSubmodulesByModuleID(moduleID uuid.UUID) ([]models.Submodule, error)
	SaveAssignments(module *models.Module) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByIDs(ids []uuid.UUID) ([]models.Employee, error)
	GetAll(designation models.Designation, limit, offset int) ([]models.Employee, int64, error)
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	Create(testCase *models.TestCase) error
	GetByCode(code string) (*models.TestCase, error)
	GetByIDs(ids []uuid.UUID) ([]models.TestCase, error)
	GetByModuleID(moduleID uuid.UUID) ([]models.TestCase, error)
	GetAll(limit, offset int) ([]models.TestCase, int64, error)
}

// ReleaseRepositoryInterface defines the interface for release repository operations
type ReleaseRepositoryInterface interface {
	Create(release *models.Release) error
	GetByID(id uuid.UUID) (*models.Release, error)
	GetByIDs(ids []uuid.UUID) ([]models.Release, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Release, error)
	GetAll(limit, offset int) ([]models.Release, int64, error)
}

// AllocationRecordRepositoryInterface defines the interface for allocation record repository operations
type AllocationRecordRepositoryInterface interface {
	CreateIfMissing(ctx context.Context, records []models.AllocationRecord) (int64, error)
	GetTestCaseIDsByReleaseID(releaseID uuid.UUID) ([]uuid.UUID, error)
}

// QAAssignmentRepositoryInterface defines the interface for QA assignment repository operations
type QAAssignmentRepositoryInterface interface {
	CreateBatch(assignments []models.QAAssignment) error
	GetByReleaseID(releaseID uuid.UUID) ([]models.QAAssignment, error)
	Delete(releaseID, qaID, testCaseID uuid.UUID) error
}

// Ensure concrete types implement interfaces
var (
	_ ProjectRepositoryInterface          = (*ProjectRepository)(nil)
	_ ModuleRepositoryInterface           = (*ModuleRepository)(nil)
	_ EmployeeRepositoryInterface         = (*EmployeeRepository)(nil)
	_ TestCaseRepositoryInterface         = (*TestCaseRepository)(nil)
	_ ReleaseRepositoryInterface          = (*ReleaseRepository)(nil)
	_ AllocationRecordRepositoryInterface = (*AllocationRecordRepository)(nil)
	_ QAAssignmentRepositoryInterface     = (*QAAssignmentRepository)(nil)
)
