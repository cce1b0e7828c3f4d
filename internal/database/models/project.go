package models

// Project groups modules, test cases and releases
type Project struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Modules  []Module  `json:"modules,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Releases []Release `json:"releases,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
