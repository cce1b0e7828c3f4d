package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"allocation-engine-backend/internal/config"
	"allocation-engine-backend/internal/database"
	"allocation-engine-backend/internal/database/models"
	"allocation-engine-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeData struct {
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	Designation string `yaml:"designation"`
}

type SubmoduleData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ModuleData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Submodules  []SubmoduleData `yaml:"submodules,omitempty"`
}

type ReleaseData struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Status  string `yaml:"status"`
}

type TestCaseData struct {
	Code        string `yaml:"code"`
	Module      string `yaml:"module"`
	Submodule   string `yaml:"submodule,omitempty"`
	Description string `yaml:"description"`
	Severity    string `yaml:"severity"`
	Type        string `yaml:"type"`
}

type ProjectData struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Modules     []ModuleData   `yaml:"modules"`
	Releases    []ReleaseData  `yaml:"releases"`
	TestCases   []TestCaseData `yaml:"test_cases"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed := newSeeder(db)

	var employees EmployeesFile
	if err := walkYAML(dataDir, "employees", func(data []byte) error {
		var file EmployeesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		employees.Employees = append(employees.Employees, file.Employees...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	var projects ProjectsFile
	if err := walkYAML(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		projects.Projects = append(projects.Projects, file.Projects...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	employeeCreated := 0
	for _, employeeData := range employees.Employees {
		created, err := seed.employee(employeeData)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Email, err)
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("Employees: %d created, %d total", employeeCreated, len(employees.Employees))

	for _, projectData := range projects.Projects {
		counts, err := seed.project(projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		log.Printf("Project %s: %d modules, %d releases, %d test cases created",
			projectData.Name, counts.modules, counts.releases, counts.testCases)
	}

	return nil
}

// walkYAML calls load with the contents of every .yaml file under dataDir whose path contains kind
func walkYAML(dataDir, kind string, load func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := load(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// seeder writes the YAML fixtures through the repositories. Existing rows are kept.
type seeder struct {
	projects  repository.ProjectRepositoryInterface
	modules   repository.ModuleRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	releases  repository.ReleaseRepositoryInterface
	testCases repository.TestCaseRepositoryInterface
}

func newSeeder(db *gorm.DB) *seeder {
	return &seeder{
		projects:  repository.NewProjectRepository(db),
		modules:   repository.NewModuleRepository(db),
		employees: repository.NewEmployeeRepository(db),
		releases:  repository.NewReleaseRepository(db),
		testCases: repository.NewTestCaseRepository(db),
	}
}

func (s *seeder) employee(employeeData EmployeeData) (bool, error) {
	designation := models.Designation(strings.ToLower(employeeData.Designation))
	if !designation.IsValid() {
		return false, fmt.Errorf("unknown designation %q", employeeData.Designation)
	}

	_, err := s.employees.GetByEmail(employeeData.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query employee: %w", err)
	}

	employee := &models.Employee{
		FullName:    employeeData.FullName,
		Email:       employeeData.Email,
		Designation: designation,
	}
	if err := s.employees.Create(employee); err != nil {
		return false, fmt.Errorf("failed to create employee: %w", err)
	}
	return true, nil
}

type projectCounts struct {
	modules, releases, testCases int
}

// project creates a project and everything below it
func (s *seeder) project(projectData ProjectData) (projectCounts, error) {
	var counts projectCounts

	project, err := s.projects.GetByName(projectData.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		project = &models.Project{Name: projectData.Name, Description: projectData.Description}
		err = s.projects.Create(project)
	}
	if err != nil {
		return counts, fmt.Errorf("failed to seed project: %w", err)
	}

	existingModules, err := s.modules.GetByProjectID(project.ID)
	if err != nil {
		return counts, fmt.Errorf("failed to load modules: %w", err)
	}
	modulesByName := make(map[string]models.Module, len(existingModules))
	for _, m := range existingModules {
		modulesByName[m.Name] = m
	}

	moduleIDs := make(map[string]uuid.UUID)
	submoduleIDs := make(map[string]uuid.UUID)
	for i, moduleData := range projectData.Modules {
		module, ok := modulesByName[moduleData.Name]
		if !ok {
			module = models.Module{ProjectID: project.ID, Name: moduleData.Name, Description: moduleData.Description, SortOrder: i}
			if err := s.modules.Create(&module); err != nil {
				return counts, fmt.Errorf("failed to create module %s: %w", moduleData.Name, err)
			}
			counts.modules++
		}
		moduleIDs[module.Name] = module.ID

		subs, err := s.submodules(module.ID, moduleData.Submodules)
		if err != nil {
			return counts, fmt.Errorf("module %s: %w", module.Name, err)
		}
		for _, sub := range subs {
			submoduleIDs[module.Name+"/"+sub.Name] = sub.ID
		}
	}

	releases, err := s.releases.GetByProjectID(project.ID)
	if err != nil {
		return counts, fmt.Errorf("failed to load releases: %w", err)
	}
	versions := make(map[string]struct{}, len(releases))
	for _, r := range releases {
		versions[r.Version] = struct{}{}
	}
	for _, releaseData := range projectData.Releases {
		if _, ok := versions[releaseData.Version]; ok {
			continue
		}
		status := models.ReleaseStatus(releaseData.Status)
		if status == "" {
			status = models.ReleaseStatusPlanned
		}
		release := &models.Release{ProjectID: project.ID, Name: releaseData.Name, Version: releaseData.Version, Status: status}
		if err := s.releases.Create(release); err != nil {
			return counts, fmt.Errorf("failed to create release %s: %w", releaseData.Version, err)
		}
		versions[releaseData.Version] = struct{}{}
		counts.releases++
	}

	for _, testCaseData := range projectData.TestCases {
		moduleID, ok := moduleIDs[testCaseData.Module]
		if !ok {
			return counts, fmt.Errorf("test case %s references unknown module %s", testCaseData.Code, testCaseData.Module)
		}
		var submoduleID *uuid.UUID
		if testCaseData.Submodule != "" {
			id, ok := submoduleIDs[testCaseData.Module+"/"+testCaseData.Submodule]
			if !ok {
				return counts, fmt.Errorf("test case %s references unknown submodule %s", testCaseData.Code, testCaseData.Submodule)
			}
			submoduleID = &id
		}

		_, err := s.testCases.GetByCode(testCaseData.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return counts, fmt.Errorf("failed to query test case %s: %w", testCaseData.Code, err)
		}
		testCase := &models.TestCase{
			Code:        testCaseData.Code,
			ModuleID:    moduleID,
			SubmoduleID: submoduleID,
			Description: testCaseData.Description,
			Severity:    models.Severity(testCaseData.Severity),
			Type:        models.TestCaseType(testCaseData.Type),
		}
		if !testCase.Severity.IsValid() {
			testCase.Severity = models.SeverityMedium
		}
		if !testCase.Type.IsValid() {
			testCase.Type = models.TestCaseTypeFunctional
		}
		if err := s.testCases.Create(testCase); err != nil {
			return counts, fmt.Errorf("failed to create test case %s: %w", testCaseData.Code, err)
		}
		counts.testCases++
	}

	return counts, nil
}

// submodules adds the submodules of want missing from the module and returns all of them
func (s *seeder) submodules(moduleID uuid.UUID, want []SubmoduleData) ([]models.Submodule, error) {
	existing, err := s.modules.GetSubmodulesByModuleID(moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submodules: %w", err)
	}
	names := make(map[string]struct{}, len(existing))
	for _, sub := range existing {
		names[sub.Name] = struct{}{}
	}
	for j, data := range want {
		if _, ok := names[data.Name]; ok {
			continue
		}
		sub := models.Submodule{ModuleID: moduleID, Name: data.Name, Description: data.Description, SortOrder: j}
		if err := s.modules.CreateSubmodule(&sub); err != nil {
			return nil, fmt.Errorf("failed to create submodule %s: %w", data.Name, err)
		}
		existing = append(existing, sub)
	}
	return existing, nil
}
