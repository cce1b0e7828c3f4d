package repository

import (
	"context"

	"allocation-engine-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationRecordRepository handles database operations for release allocations
type AllocationRecordRepository struct {
	db *gorm.DB
}

// NewAllocationRecordRepository creates a new allocation record repository
func NewAllocationRecordRepository(db *gorm.DB) *AllocationRecordRepository {
	return &AllocationRecordRepository{db: db}
}

// CreateIfMissing inserts the records in one transaction, skipping pairs that
// are already allocated, and returns how many rows were inserted. The
// statement is bound to ctx so a cancelled caller aborts it.
func (r *AllocationRecordRepository) CreateIfMissing(ctx context.Context, records []models.AllocationRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	var created int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Omit("TestCase", "Release").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "release_id"}, {Name: "test_case_id"}},
				DoNothing: true,
			}).
			Create(&records)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// byReleaseID retrieves the allocations of a release in allocation order
func (r *AllocationRecordRepository) byReleaseID(releaseID uuid.UUID) ([]models.AllocationRecord, error) {
	var records []models.AllocationRecord
	err := r.db.Where("release_id = ?", releaseID).Order("created_at ASC, id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetTestCaseIDsByReleaseID returns the test cases allocated to a release in allocation order
func (r *AllocationRecordRepository) GetTestCaseIDsByReleaseID(releaseID uuid.UUID) ([]uuid.UUID, error) {
	records, err := r.byReleaseID(releaseID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.TestCaseID)
	}
	return ids, nil
}
