package models

import (
	"github.com/google/uuid"
)

// TestCase is read-only for the allocation engine; only its id and module
// references matter there
type TestCase struct {
	BaseModel
	Code        string       `json:"code" gorm:"not null;size:40;uniqueIndex" validate:"required,min=1,max=40"` // e.g. TC-1
	ModuleID    uuid.UUID    `json:"module_id" gorm:"type:uuid;not null;index" validate:"required"`
	SubmoduleID *uuid.UUID   `json:"submodule_id,omitempty" gorm:"type:uuid;index"`
	Description string       `json:"description" gorm:"type:text"`
	Severity    Severity     `json:"severity" gorm:"type:varchar(20);not null;default:'medium'"`
	Type        TestCaseType `json:"type" gorm:"type:varchar(20);not null;default:'functional'"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}
