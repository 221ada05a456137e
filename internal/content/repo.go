package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Repository exposes content-calendar persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a content repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new content item row.
func (r *Repository) Create(ctx context.Context, item *models.ContentItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID loads a content item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListForVendor returns the vendor's calendar ordered by scheduled time.
func (r *Repository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.ContentItem, error) {
	var rows []models.ContentItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("scheduled_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDue returns scheduled items whose posting time has arrived.
func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]models.ContentItem, error) {
	var rows []models.ContentItem
	if err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_time <= ?", enums.ContentStatusScheduled, now).
		Order("scheduled_time ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkPosting transitions a scheduled item into the posting state. The
// affected-row count lets the worker skip items another run already claimed.
func (r *Repository) MarkPosting(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("id = ? AND status = ?", id, enums.ContentStatusScheduled).
		UpdateColumn("status", enums.ContentStatusPosting)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkPosted finalizes a posting item, recording the posting timestamp.
func (r *Repository) MarkPosted(ctx context.Context, id uuid.UUID, postedAt time.Time) error {
	metrics := dbtypes.JSONMap{"posted_at": postedAt.Format(time.RFC3339)}
	return r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"status":              enums.ContentStatusPosted,
			"performance_metrics": metrics,
		}).Error
}

// MarkFailed moves an item into the failed state.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("id = ?", id).
		UpdateColumn("status", enums.ContentStatusFailed).Error
}

// CountByStatus tallies a vendor's content items per status.
func (r *Repository) CountByStatus(ctx context.Context, vendorID uuid.UUID) (map[enums.ContentStatus]int64, error) {
	type row struct {
		Status enums.ContentStatus
		Total  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Select("status, COUNT(*) AS total").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[enums.ContentStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}
