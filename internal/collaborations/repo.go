package collaborations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Repository exposes collaboration persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a collaborations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new collaboration row.
func (r *Repository) Create(ctx context.Context, collab *models.Collaboration) error {
	return r.db.WithContext(ctx).Create(collab).Error
}

// FindByID loads a collaboration by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Collaboration, error) {
	var collab models.Collaboration
	if err := r.db.WithContext(ctx).First(&collab, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

// ListForVendor returns collaborations touching the vendor on either side,
// newest first.
func (r *Repository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Collaboration, error) {
	var rows []models.Collaboration
	if err := r.db.WithContext(ctx).
		Where("vendor1_id = ? OR vendor2_id = ?", vendorID, vendorID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountForVendor counts collaborations touching the vendor on either side.
func (r *Repository) CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Collaboration{}).
		Where("vendor1_id = ? OR vendor2_id = ?", vendorID, vendorID).
		Count(&count).Error
	return count, err
}

// CompletionCounts returns total and completed collaboration counts for the
// vendor. Trust scoring re-reads these on every recomputation.
func (r *Repository) CompletionCounts(ctx context.Context, vendorID uuid.UUID) (total, completed int64, err error) {
	base := r.db.WithContext(ctx).
		Model(&models.Collaboration{}).
		Where("vendor1_id = ? OR vendor2_id = ?", vendorID, vendorID)

	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = base.Session(&gorm.Session{}).
		Where("status = ?", enums.CollaborationStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

// UpdateStatus transitions a collaboration to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CollaborationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Collaboration{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}
