package repository

import (
	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReleaseRepository handles database operations for releases
type ReleaseRepository struct {
	db *gorm.DB
}

// NewReleaseRepository creates a new release repository
func NewReleaseRepository(db *gorm.DB) *ReleaseRepository {
	return &ReleaseRepository{db: db}
}

// Create creates a new release
func (r *ReleaseRepository) Create(release *models.Release) error {
	return r.db.Create(release).Error
}

// GetByID retrieves a release by ID
func (r *ReleaseRepository) GetByID(id uuid.UUID) (*models.Release, error) {
	var release models.Release
	err := r.db.First(&release, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// GetByIDs retrieves the releases with the given IDs; missing IDs are skipped
func (r *ReleaseRepository) GetByIDs(ids []uuid.UUID) ([]models.Release, error) {
	var releases []models.Release
	if len(ids) == 0 {
		return releases, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&releases).Error
	if err != nil {
		return nil, err
	}
	return releases, nil
}

// GetByProjectID retrieves the releases of a project, newest first
func (r *ReleaseRepository) GetByProjectID(projectID uuid.UUID) ([]models.Release, error) {
	var releases []models.Release
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&releases).Error
	if err != nil {
		return nil, err
	}
	return releases, nil
}

// GetAll retrieves all releases with pagination
func (r *ReleaseRepository) GetAll(limit, offset int) ([]models.Release, int64, error) {
	var releases []models.Release
	var total int64

	// Get total count
	if err := r.db.Model(&models.Release{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&releases).Error
	if err != nil {
		return nil, 0, err
	}

	return releases, total, nil
}
