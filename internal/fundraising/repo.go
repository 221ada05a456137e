package fundraising

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
)

// Repository exposes pitch and investor persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a fundraising repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePitch inserts a new pitch row.
func (r *Repository) CreatePitch(ctx context.Context, pitch *models.Pitch) error {
	return r.db.WithContext(ctx).Create(pitch).Error
}

// FindPitchByID loads a pitch by its UUID.
func (r *Repository) FindPitchByID(ctx context.Context, id uuid.UUID) (*models.Pitch, error) {
	var pitch models.Pitch
	if err := r.db.WithContext(ctx).First(&pitch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

// ListPitchesForVendor returns the vendor's pitches, newest first.
func (r *Repository) ListPitchesForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Pitch, error) {
	var rows []models.Pitch
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetInvestorInterest stores the one-time pitch quality score.
func (r *Repository) SetInvestorInterest(ctx context.Context, id uuid.UUID, score int) error {
	return r.db.WithContext(ctx).
		Model(&models.Pitch{}).
		Where("id = ?", id).
		UpdateColumn("investor_interest", score).Error
}

// ListInvestors returns all investors in insertion order.
func (r *Repository) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	var rows []models.Investor
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
