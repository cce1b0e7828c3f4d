package models

// Employee is a person that can own modules or test cases
type Employee struct {
	BaseModel
	FullName    string      `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string      `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email,max=255"`
	Designation Designation `json:"designation" gorm:"type:varchar(20);not null;index" validate:"required"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
