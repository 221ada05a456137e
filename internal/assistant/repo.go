package assistant

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
)

// Repository persists generated recommendation sets.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an assistant repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateRecommendation stores one recommendation set.
func (r *Repository) CreateRecommendation(ctx context.Context, rec *models.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListForVendor returns a vendor's stored recommendation sets, newest first.
func (r *Repository) ListForVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.Recommendation, error) {
	var rows []models.Recommendation
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CampaignCount tallies the vendor's campaigns for prompt context.
func (r *Repository) CampaignCount(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Where("vendor_id = ?", vendorID).
		Count(&total).Error
	return total, err
}

// ContentCount tallies the vendor's content items for prompt context.
func (r *Repository) ContentCount(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("vendor_id = ?", vendorID).
		Count(&total).Error
	return total, err
}
