package repository

import (
	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// Create creates a new test case
func (r *TestCaseRepository) Create(testCase *models.TestCase) error {
	return r.db.Create(testCase).Error
}

// GetByCode retrieves a test case by its code
func (r *TestCaseRepository) GetByCode(code string) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.First(&testCase, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// GetByIDs retrieves the test cases with the given IDs; missing IDs are skipped
func (r *TestCaseRepository) GetByIDs(ids []uuid.UUID) ([]models.TestCase, error) {
	var testCases []models.TestCase
	if len(ids) == 0 {
		return testCases, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&testCases).Error
	if err != nil {
		return nil, err
	}
	return testCases, nil
}

// GetByModuleID retrieves the test cases of a module ordered by code
func (r *TestCaseRepository) GetByModuleID(moduleID uuid.UUID) ([]models.TestCase, error) {
	var testCases []models.TestCase
	err := r.db.Where("module_id = ?", moduleID).Order("code ASC").Find(&testCases).Error
	if err != nil {
		return nil, err
	}
	return testCases, nil
}

// GetAll retrieves all test cases with pagination
func (r *TestCaseRepository) GetAll(limit, offset int) ([]models.TestCase, int64, error) {
	var testCases []models.TestCase
	var total int64

	// Get total count
	if err := r.db.Model(&models.TestCase{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("code ASC").Limit(limit).Offset(offset).Find(&testCases).Error
	if err != nil {
		return nil, 0, err
	}

	return testCases, total, nil
}
