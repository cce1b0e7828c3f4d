package models

import (
	"github.com/google/uuid"
)

// AllocationRecord is the fact that a test case is allocated to a release.
// Records are only ever inserted.
type AllocationRecord struct {
	BaseModel
	TestCaseID uuid.UUID `json:"test_case_id" gorm:"type:uuid;not null;uniqueIndex:idx_allocation_records_pair,priority:2" validate:"required"`
	ReleaseID  uuid.UUID `json:"release_id" gorm:"type:uuid;not null;uniqueIndex:idx_allocation_records_pair,priority:1" validate:"required"`

	// Relationships
	TestCase TestCase `json:"-" gorm:"foreignKey:TestCaseID;constraint:OnDelete:CASCADE"`
	Release  Release  `json:"-" gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AllocationRecord
func (AllocationRecord) TableName() string {
	return "allocation_records"
}

// QAAssignment hands an allocated test case to a QA owner within a release.
// A test case has at most one owner per release.
type QAAssignment struct {
	BaseModel
	ReleaseID    uuid.UUID `json:"release_id" gorm:"type:uuid;not null;uniqueIndex:idx_qa_assignments_release_test_case,priority:1" validate:"required"`
	TestCaseID   uuid.UUID `json:"test_case_id" gorm:"type:uuid;not null;uniqueIndex:idx_qa_assignments_release_test_case,priority:2" validate:"required"`
	QAEmployeeID uuid.UUID `json:"qa_employee_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	QAEmployee Employee `json:"-" gorm:"foreignKey:QAEmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for QAAssignment
func (QAAssignment) TableName() string {
	return "qa_assignments"
}
