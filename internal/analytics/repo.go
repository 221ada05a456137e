package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
)

// CampaignStats is the raw campaign aggregate for a period.
type CampaignStats struct {
	Total      int64
	Active     int64
	Completed  int64
	TotalSpent float64
	AverageROI float64
}

// ContentTypeCount is one GROUP BY bucket of the content aggregate.
type ContentTypeCount struct {
	ContentType string
	Count       int64
}

// ContentStats is the raw content aggregate for a period.
type ContentStats struct {
	Total     int64
	Posted    int64
	Scheduled int64
	ByType    []ContentTypeCount
}

// CollaborationStats is the raw collaboration aggregate for a period.
type CollaborationStats struct {
	Total     int64
	Completed int64
	Active    int64
}

// PlatformStats is per-platform campaign performance.
type PlatformStats struct {
	Platform   string
	Campaigns  int64
	AverageROI float64
	TotalSpent float64
}

// ActivityWindow is campaign and content volume inside one time window.
type ActivityWindow struct {
	Campaigns int64
	Spending  float64
	Content   int64
}

// Repository runs the cross-table aggregate queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an analytics repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CampaignStats aggregates the vendor's campaigns created since the cutoff.
func (r *Repository) CampaignStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CampaignStats, error) {
	var stats CampaignStats
	err := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COALESCE(SUM(budget), 0) AS total_spent,
			COALESCE(AVG((performance_metrics::jsonb ->> 'estimated_roi')::numeric), 0) AS average_roi`).
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ContentStats aggregates the vendor's content items created since the
// cutoff, including per-type counts.
func (r *Repository) ContentStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*ContentStats, error) {
	var stats ContentStats
	err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'posted') AS posted,
			COUNT(*) FILTER (WHERE status = 'scheduled') AS scheduled`).
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Select("content_type, COUNT(*) AS count").
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Group("content_type").
		Order("count DESC").
		Find(&stats.ByType).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// CollaborationStats aggregates collaborations either side of which is the
// vendor.
func (r *Repository) CollaborationStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CollaborationStats, error) {
	var stats CollaborationStats
	err := r.db.WithContext(ctx).
		Model(&models.Collaboration{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'active') AS active`).
		Where("(vendor1_id = ? OR vendor2_id = ?) AND created_at >= ?", vendorID, vendorID, since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// PlatformPerformance groups campaign performance per platform, biggest
// spender first.
func (r *Repository) PlatformPerformance(ctx context.Context, vendorID uuid.UUID, since time.Time) ([]PlatformStats, error) {
	var rows []PlatformStats
	err := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Select(`platform,
			COUNT(*) AS campaigns,
			COALESCE(AVG((performance_metrics::jsonb ->> 'estimated_roi')::numeric), 0) AS average_roi,
			COALESCE(SUM(budget), 0) AS total_spent`).
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Group("platform").
		Order("total_spent DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PitchCount tallies the vendor's pitches since the cutoff.
func (r *Repository) PitchCount(ctx context.Context, vendorID uuid.UUID, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Pitch{}).
		Where("vendor_id = ? AND created_at >= ?", vendorID, since).
		Count(&total).Error
	return total, err
}

// TrustSnapshot loads the vendor's current trust row, if any.
func (r *Repository) TrustSnapshot(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error) {
	var score models.TrustScore
	if err := r.db.WithContext(ctx).First(&score, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

// ActivityBetween counts campaigns, spend, and content inside a window.
func (r *Repository) ActivityBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*ActivityWindow, error) {
	var window ActivityWindow
	err := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Select("COUNT(*) AS campaigns, COALESCE(SUM(budget), 0) AS spending").
		Where("vendor_id = ? AND created_at >= ? AND created_at < ?", vendorID, from, to).
		Scan(&window).Error
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("vendor_id = ? AND created_at >= ? AND created_at < ?", vendorID, from, to).
		Count(&window.Content).Error
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// VendorBudget loads the vendor's marketing budget for utilization checks.
func (r *Repository) VendorBudget(ctx context.Context, vendorID uuid.UUID) (float64, error) {
	var vendor models.VendorProfile
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", vendorID).Error; err != nil {
		return 0, err
	}
	budget, _ := vendor.Budget.Float64()
	return budget, nil
}
