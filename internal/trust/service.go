package trust

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// Report window sizes.
const (
	reportReviewLimit = 5
	reportEventLimit  = 10
)

// Defaults served when a vendor has no trust row yet.
const (
	defaultScore       = 50.0
	defaultReliability = 0.5
)

// Service defines the behavior needed by the trust controller.
type Service interface {
	CalculateTrustScore(ctx context.Context, vendorID uuid.UUID) (*ScoreDTO, error)
	AddReview(ctx context.Context, dto AddReviewDTO) (*ScoreDTO, error)
	AddEvent(ctx context.Context, dto AddEventDTO) (*ScoreDTO, error)
	Report(ctx context.Context, vendorID uuid.UUID) (*ReportDTO, error)
}

type trustRepository interface {
	UpsertScore(ctx context.Context, score *models.TrustScore) error
	FindScore(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error)
	CreateReview(ctx context.Context, review *models.Review) error
	ListRatings(ctx context.Context, vendorID uuid.UUID) ([]int, error)
	ListRecentReviews(ctx context.Context, vendorID uuid.UUID, limit int) ([]ReviewWithReviewer, error)
	CreateEvent(ctx context.Context, event *models.TrustEvent) error
	ListRecentEvents(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.TrustEvent, error)
	CampaignCompletionCounts(ctx context.Context, vendorID uuid.UUID) (total, completed int64, err error)
}

type collaborationCounts interface {
	CompletionCounts(ctx context.Context, vendorID uuid.UUID) (total, completed int64, err error)
}

type service struct {
	trust   trustRepository
	collabs collaborationCounts
	engine  *scoring.Engine
}

// ServiceParams bundles the dependencies required to build a trust service.
type ServiceParams struct {
	TrustRepo  trustRepository
	CollabRepo collaborationCounts
	Engine     *scoring.Engine
}

// NewService constructs a trust service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TrustRepo == nil {
		return nil, fmt.Errorf("trust repository is required")
	}
	if params.CollabRepo == nil {
		return nil, fmt.Errorf("collaboration repository is required")
	}
	if params.Engine == nil {
		return nil, fmt.Errorf("scoring engine is required")
	}
	return &service{
		trust:   params.TrustRepo,
		collabs: params.CollabRepo,
		engine:  params.Engine,
	}, nil
}

// CalculateTrustScore re-reads every underlying row, recomputes the score
// from scratch, and upserts the single trust row for the vendor.
func (s *service) CalculateTrustScore(ctx context.Context, vendorID uuid.UUID) (*ScoreDTO, error) {
	collabTotal, collabCompleted, err := s.collabs.CompletionCounts(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count collaborations")
	}
	campaignTotal, campaignCompleted, err := s.trust.CampaignCompletionCounts(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count campaigns")
	}
	ratings, err := s.trust.ListRatings(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list review ratings")
	}

	result := s.engine.TrustScore(scoring.TrustInputs{
		CollaborationsTotal:     int(collabTotal),
		CollaborationsCompleted: int(collabCompleted),
		CampaignsTotal:          int(campaignTotal),
		CampaignsCompleted:      int(campaignCompleted),
		ReviewRatings:           ratings,
	})

	score := &models.TrustScore{
		VendorID:       vendorID,
		Score:          result.Score,
		Reliability:    result.CollabRate,
		CompletionRate: result.CampaignRate,
	}
	if err := s.trust.UpsertScore(ctx, score); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store trust score")
	}

	return &ScoreDTO{
		VendorID:       vendorID,
		Score:          score.Score,
		Reliability:    score.Reliability,
		CompletionRate: score.CompletionRate,
		LastUpdated:    score.LastUpdated,
	}, nil
}

// AddReview validates and appends a review, then recomputes the score.
func (s *service) AddReview(ctx context.Context, dto AddReviewDTO) (*ScoreDTO, error) {
	if dto.Rating < 1 || dto.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	review := &models.Review{
		ReviewerID: dto.ReviewerID,
		VendorID:   dto.VendorID,
		Rating:     dto.Rating,
		Comment:    dto.Comment,
	}
	if err := s.trust.CreateReview(ctx, review); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
	}
	return s.CalculateTrustScore(ctx, dto.VendorID)
}

// AddEvent appends a trust event, then recomputes the score. The event's
// impact field is informational only.
func (s *service) AddEvent(ctx context.Context, dto AddEventDTO) (*ScoreDTO, error) {
	event := &models.TrustEvent{
		VendorID:    dto.VendorID,
		EventType:   dto.EventType,
		Impact:      dto.Impact,
		Description: dto.Description,
	}
	if err := s.trust.CreateEvent(ctx, event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create trust event")
	}
	return s.CalculateTrustScore(ctx, dto.VendorID)
}

// Report assembles the vendor's trust snapshot plus recent reviews and
// events. Vendors without a trust row get neutral defaults.
func (s *service) Report(ctx context.Context, vendorID uuid.UUID) (*ReportDTO, error) {
	report := &ReportDTO{
		TrustScore:  defaultScore,
		Reliability: defaultReliability,
	}

	score, err := s.trust.FindScore(ctx, vendorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load trust score")
	}
	if score != nil {
		report.TrustScore = score.Score
		report.Reliability = score.Reliability
	}

	reviews, err := s.trust.ListRecentReviews(ctx, vendorID, reportReviewLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	report.Reviews = make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		report.Reviews = append(report.Reviews, ReviewDTO{
			Rating:   r.Rating,
			Comment:  r.Comment,
			Reviewer: r.ReviewerName,
			Date:     r.CreatedAt,
		})
	}

	events, err := s.trust.ListRecentEvents(ctx, vendorID, reportEventLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list trust events")
	}
	report.RecentEvents = make([]EventDTO, 0, len(events))
	for _, e := range events {
		report.RecentEvents = append(report.RecentEvents, EventDTO{
			Type:        e.EventType,
			Impact:      e.Impact,
			Description: e.Description,
			Date:        e.CreatedAt,
		})
	}

	return report, nil
}
