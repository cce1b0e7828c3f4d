package repository

import (
	"allocation-engine-backend/internal/database/models"
	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QAAssignmentRepository handles database operations for QA assignments
type QAAssignmentRepository struct {
	db *gorm.DB
}

// NewQAAssignmentRepository creates a new QA assignment repository
func NewQAAssignmentRepository(db *gorm.DB) *QAAssignmentRepository {
	return &QAAssignmentRepository{db: db}
}

// CreateBatch inserts every assignment or none. A test case that already has a
// QA owner in the release fails the batch with ErrQAAssignmentExists.
func (r *QAAssignmentRepository) CreateBatch(assignments []models.QAAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("QAEmployee").Create(&assignments).Error
	})
	if isUniqueViolation(err) {
		return apperrors.ErrQAAssignmentExists
	}
	return err
}

// GetByReleaseID retrieves the assignments of a release in assignment order
func (r *QAAssignmentRepository) GetByReleaseID(releaseID uuid.UUID) ([]models.QAAssignment, error) {
	var assignments []models.QAAssignment
	err := r.db.Where("release_id = ?", releaseID).Order("created_at ASC, id ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes the assignment of testCaseID to qaID in the release.
// gorm.ErrRecordNotFound is returned when no such assignment exists.
func (r *QAAssignmentRepository) Delete(releaseID, qaID, testCaseID uuid.UUID) error {
	res := r.db.
		Where("release_id = ? AND qa_employee_id = ? AND test_case_id = ?", releaseID, qaID, testCaseID).
		Delete(&models.QAAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
