package trust

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Repository exposes trust-score, review, and trust-event persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a trust repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertScore writes the recomputed trust row for a vendor, replacing any
// previous row. The store's per-row atomicity serializes concurrent
// recomputations for the same vendor.
func (r *Repository) UpsertScore(ctx context.Context, score *models.TrustScore) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}},
			UpdateAll: true,
		}).
		Create(score).Error
}

// FindScore loads the trust row for a vendor.
func (r *Repository) FindScore(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error) {
	var score models.TrustScore
	if err := r.db.WithContext(ctx).First(&score, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

// CreateReview appends a review row.
func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListRatings returns all ratings ever given to the vendor.
func (r *Repository) ListRatings(ctx context.Context, vendorID uuid.UUID) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("vendor_id = ?", vendorID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// ReviewWithReviewer joins a review with the reviewer's username.
type ReviewWithReviewer struct {
	models.Review
	ReviewerName string
}

// ListRecentReviews returns the vendor's newest reviews with reviewer names.
func (r *Repository) ListRecentReviews(ctx context.Context, vendorID uuid.UUID, limit int) ([]ReviewWithReviewer, error) {
	var rows []ReviewWithReviewer
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.username AS reviewer_name").
		Joins("JOIN users ON users.id = reviews.reviewer_id").
		Where("reviews.vendor_id = ?", vendorID).
		Order("reviews.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateEvent appends a trust event row.
func (r *Repository) CreateEvent(ctx context.Context, event *models.TrustEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListRecentEvents returns the vendor's newest trust events.
func (r *Repository) ListRecentEvents(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.TrustEvent, error) {
	var rows []models.TrustEvent
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CampaignCompletionCounts returns total and completed campaign counts for
// the vendor.
func (r *Repository) CampaignCompletionCounts(ctx context.Context, vendorID uuid.UUID) (total, completed int64, err error) {
	base := r.db.WithContext(ctx).
		Model(&models.AdCampaign{}).
		Where("vendor_id = ?", vendorID)

	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = base.Session(&gorm.Session{}).
		Where("status = ?", enums.CampaignStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
