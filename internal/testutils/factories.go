package testutils

import (
	"fmt"
	"time"

	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func shortID() string {
	return uuid.New().String()[:8]
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with a unique name
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel:   newBase(),
		Name:        "project-" + shortID(),
		Description: "A test project",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	p := f.Create()
	p.Name = name
	return p
}

// ModuleFactory provides methods to create test Module data
type ModuleFactory struct{}

// NewModuleFactory creates a new ModuleFactory
func NewModuleFactory() *ModuleFactory {
	return &ModuleFactory{}
}

// Create creates a test Module inside projectID
func (f *ModuleFactory) Create(projectID uuid.UUID) *models.Module {
	return &models.Module{
		BaseModel: newBase(),
		ProjectID: projectID,
		Name:      "module-" + shortID(),
	}
}

// WithSubmodules creates a module with n submodules, sorted in creation order
func (f *ModuleFactory) WithSubmodules(projectID uuid.UUID, n int) *models.Module {
	m := f.Create(projectID)
	for i := 0; i < n; i++ {
		m.Submodules = append(m.Submodules, models.Submodule{
			BaseModel: newBase(),
			ModuleID:  m.ID,
			Name:      fmt.Sprintf("%s-sub-%d", m.Name, i+1),
			SortOrder: i,
		})
	}
	return m
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a developer with a unique email
func (f *EmployeeFactory) Create() *models.Employee {
	id := shortID()
	return &models.Employee{
		BaseModel:   newBase(),
		FullName:    "Employee " + id,
		Email:       id + "@test.com",
		Designation: models.DesignationDeveloper,
	}
}

// WithDesignation creates an employee with the given designation
func (f *EmployeeFactory) WithDesignation(d models.Designation) *models.Employee {
	e := f.Create()
	e.Designation = d
	return e
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// NewTestCaseFactory creates a new TestCaseFactory
func NewTestCaseFactory() *TestCaseFactory {
	return &TestCaseFactory{}
}

// Create creates a test case of moduleID with a unique code
func (f *TestCaseFactory) Create(moduleID uuid.UUID) *models.TestCase {
	return &models.TestCase{
		BaseModel:   newBase(),
		Code:        "TC-" + shortID(),
		ModuleID:    moduleID,
		Description: "A test case",
		Severity:    models.SeverityMedium,
		Type:        models.TestCaseTypeFunctional,
	}
}

// WithCode creates a test case with a custom code
func (f *TestCaseFactory) WithCode(moduleID uuid.UUID, code string) *models.TestCase {
	tc := f.Create(moduleID)
	tc.Code = code
	return tc
}

// ReleaseFactory provides methods to create test Release data
type ReleaseFactory struct{}

// NewReleaseFactory creates a new ReleaseFactory
func NewReleaseFactory() *ReleaseFactory {
	return &ReleaseFactory{}
}

// Create creates a planned release of projectID
func (f *ReleaseFactory) Create(projectID uuid.UUID) *models.Release {
	return &models.Release{
		BaseModel: newBase(),
		ProjectID: projectID,
		Name:      "release-" + shortID(),
		Version:   "1.0.0",
		Status:    models.ReleaseStatusPlanned,
	}
}

// WithName creates a release with a custom name
func (f *ReleaseFactory) WithName(projectID uuid.UUID, name string) *models.Release {
	r := f.Create(projectID)
	r.Name = name
	return r
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project  *ProjectFactory
	Module   *ModuleFactory
	Employee *EmployeeFactory
	TestCase *TestCaseFactory
	Release  *ReleaseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:  NewProjectFactory(),
		Module:   NewModuleFactory(),
		Employee: NewEmployeeFactory(),
		TestCase: NewTestCaseFactory(),
		Release:  NewReleaseFactory(),
	}
}
