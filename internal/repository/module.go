package repository

import (
	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleRepository handles database operations for modules, submodules and
// their developer assignments
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func preloadHierarchy(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Submodules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		}).
		Preload("Developers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// Create creates a module together with any submodules set on it
func (r *ModuleRepository) Create(module *models.Module) error {
	return r.db.Create(module).Error
}

// CreateSubmodule adds a submodule to an existing module
func (r *ModuleRepository) CreateSubmodule(submodule *models.Submodule) error {
	return r.db.Create(submodule).Error
}

// GetByID retrieves a module by ID without relations
func (r *ModuleRepository) GetByID(id uuid.UUID) (*models.Module, error) {
	var module models.Module
	err := r.db.First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// GetWithHierarchy retrieves a module with its submodules and developer assignments
func (r *ModuleRepository) GetWithHierarchy(id uuid.UUID) (*models.Module, error) {
	var module models.Module
	err := preloadHierarchy(r.db).First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// GetByProjectID retrieves every module of a project with submodules and developer assignments
func (r *ModuleRepository) GetByProjectID(projectID uuid.UUID) ([]models.Module, error) {
	var modules []models.Module
	err := preloadHierarchy(r.db).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, name ASC").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// GetSubmodulesByModuleID retrieves the submodules of a module in display order
func (r *ModuleRepository) GetSubmodulesByModuleID(moduleID uuid.UUID) ([]models.Submodule, error) {
	var submodules []models.Submodule
	err := r.db.Where("module_id = ?", moduleID).Order("sort_order ASC, name ASC").Find(&submodules).Error
	if err != nil {
		return nil, err
	}
	return submodules, nil
}

// SaveAssignments replaces every developer assignment of the module with
// module.Developers and stores each submodule's override flag, atomically
func (r *ModuleRepository) SaveAssignments(module *models.Module) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.ModuleDeveloper{}).Error; err != nil {
			return err
		}
		if len(module.Developers) > 0 {
			for i := range module.Developers {
				module.Developers[i].ModuleID = module.ID
			}
			if err := tx.Omit("Employee").Create(&module.Developers).Error; err != nil {
				return err
			}
		}
		for _, sub := range module.Submodules {
			err := tx.Model(&models.Submodule{}).
				Where("id = ? AND module_id = ?", sub.ID, module.ID).
				Update("overridden", sub.Overridden).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
