package automation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Repository exposes automation-setting persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an automation repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertSetting enables an automation for a vendor, replacing any prior
// configuration of the same type.
func (r *Repository) UpsertSetting(ctx context.Context, setting *models.AutomationSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "automation_type"}},
			UpdateAll: true,
		}).
		Create(setting).Error
}

// ListForVendor returns the vendor's automation settings.
func (r *Repository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.AutomationSetting, error) {
	var rows []models.AutomationSetting
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountActiveCampaigns tallies the vendor's campaigns in active or pending
// status.
func (r *Repository) CountActiveCampaigns(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Where("vendor_id = ? AND status IN ?", vendorID,
			[]enums.CampaignStatus{enums.CampaignStatusActive, enums.CampaignStatusPending}).
		Count(&total).Error
	return total, err
}

// CountScheduledContent tallies the vendor's content items still scheduled.
func (r *Repository) CountScheduledContent(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("vendor_id = ? AND status = ?", vendorID, enums.ContentStatusScheduled).
		Count(&total).Error
	return total, err
}
