package models

import (
	"github.com/google/uuid"
)

// Module is a functional area of a project
type Module struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`

	// Relationships
	Submodules []Submodule       `json:"submodules,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Developers []ModuleDeveloper `json:"developers,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Module
func (Module) TableName() string {
	return "modules"
}

// Submodule belongs to exactly one module. Overridden is set when its developers
// were assigned explicitly after the last module-level assignment.
type Submodule struct {
	BaseModel
	ModuleID    uuid.UUID `json:"module_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	Overridden  bool      `json:"overridden" gorm:"not null;default:false"`
}

// TableName returns the table name for Submodule
func (Submodule) TableName() string {
	return "submodules"
}

// ModuleDeveloper assigns a developer to a module (SubmoduleID nil) or to one
// of its submodules
type ModuleDeveloper struct {
	BaseModel
	ModuleID    uuid.UUID  `json:"module_id" gorm:"type:uuid;not null;index" validate:"required"`
	SubmoduleID *uuid.UUID `json:"submodule_id,omitempty" gorm:"type:uuid;index"`
	EmployeeID  uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position    int        `json:"position" gorm:"not null;default:0"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ModuleDeveloper
func (ModuleDeveloper) TableName() string {
	return "module_developers"
}
