package campaigns

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Repository exposes ad-campaign persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a campaigns repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new campaign row.
func (r *Repository) Create(ctx context.Context, campaign *models.AdCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// FindByID loads a campaign by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.AdCampaign, error) {
	var campaign models.AdCampaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListForVendor returns the vendor's campaigns, newest first.
func (r *Repository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.AdCampaign, error) {
	var rows []models.AdCampaign
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdatePerformanceMetrics overwrites a campaign's stored metrics payload.
func (r *Repository) UpdatePerformanceMetrics(ctx context.Context, id uuid.UUID, metrics dbtypes.JSONMap) error {
	return r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Where("id = ?", id).
		UpdateColumn("performance_metrics", metrics).Error
}

// UpdateStatus transitions a campaign to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CampaignStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}
