package service

import (
	"context"

	"allocation-engine-backend/internal/allocation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ReleaseAllocationServiceInterface defines the interface for release allocation (stage R)
type ReleaseAllocationServiceInterface interface {
	Allocate(ctx context.Context, req *AllocateRequest) (*AllocationBatchResponse, error)
	Preview(req *AllocateRequest) (*AllocationPreviewResponse, error)
	GetReleaseAllocations(releaseID uuid.UUID) (*ReleaseAllocationsResponse, error)
}

// QAAllocationServiceInterface defines the interface for QA allocation (stage Q)
type QAAllocationServiceInterface interface {
	GetStatus(releaseID uuid.UUID) (*QAAllocationStatusResponse, error)
	Allocate(ctx context.Context, releaseID uuid.UUID, req *QAAllocateRequest) (*QAAllocateResponse, error)
	Remove(ctx context.Context, releaseID, qaID, testCaseID uuid.UUID) error
}

// ModuleAssignmentServiceInterface defines the interface for module developer assignment
type ModuleAssignmentServiceInterface interface {
	GetProjectModules(projectID uuid.UUID) ([]ModuleResponse, error)
	AssignModule(ctx context.Context, moduleID uuid.UUID, req *AssignDevelopersRequest) (*ModuleResponse, error)
	AssignSubmodule(ctx context.Context, moduleID, submoduleID uuid.UUID, req *AssignDevelopersRequest) (*ModuleResponse, error)
	GetTeam(moduleID uuid.UUID) (*ModuleTeamResponse, error)
}

// SelectionServiceInterface defines the interface for selection sessions
type SelectionServiceInterface interface {
	Create(req *CreateSelectionRequest) (*allocation.SessionView, error)
	Get(id uuid.UUID) (*allocation.SessionView, error)
	Delete(id uuid.UUID) error
	ToggleSource(id uuid.UUID, req *ToggleItemRequest) (*allocation.SessionView, error)
	ToggleTarget(id uuid.UUID, req *ToggleItemRequest) (*allocation.SessionView, error)
	SelectAllSources(id uuid.UUID, req *SelectAllRequest) (*allocation.SessionView, error)
	SelectAllTargets(id uuid.UUID, req *SelectAllRequest) (*allocation.SessionView, error)
	SetMode(id uuid.UUID, req *SetModeRequest) (*allocation.SessionView, error)
	SetTarget(id uuid.UUID, req *SetTargetRequest) (*allocation.SessionView, error)
	Clear(id uuid.UUID) (*allocation.SessionView, error)
	ToggleModule(id, moduleID uuid.UUID) (*allocation.SessionView, error)
	ToggleSubmodule(id, moduleID, submoduleID uuid.UUID) (*allocation.SessionView, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitSelectionResponse, error)
	SubmitQA(ctx context.Context, id uuid.UUID, req *QASubmitSelectionRequest) (*QASubmitSelectionResponse, error)
}

// DirectoryServiceInterface defines the interface for directory listings
type DirectoryServiceInterface interface {
	ListProjects() ([]ProjectResponse, error)
	ListSubmodules(moduleID uuid.UUID) ([]SubmoduleSummary, error)
	ListEmployees(designation string, limit, offset int) (*EmployeeListResponse, error)
	ListReleases(projectID *uuid.UUID) ([]ReleaseResponse, error)
	ListTestCases(moduleID *uuid.UUID) ([]TestCaseResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ ReleaseAllocationServiceInterface = (*ReleaseAllocationService)(nil)
	_ QAAllocationServiceInterface      = (*QAAllocationService)(nil)
	_ ModuleAssignmentServiceInterface  = (*ModuleAssignmentService)(nil)
	_ SelectionServiceInterface         = (*SelectionService)(nil)
	_ DirectoryServiceInterface         = (*DirectoryService)(nil)
)
