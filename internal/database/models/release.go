package models

import (
	"github.com/google/uuid"
)

// Release is a versioned delivery that test cases are allocated to
type Release struct {
	BaseModel
	ProjectID uuid.UUID     `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string        `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Version   string        `json:"version" gorm:"not null;size:40" validate:"required,max=40"`
	Status    ReleaseStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
}

// TableName returns the table name for Release
func (Release) TableName() string {
	return "releases"
}
