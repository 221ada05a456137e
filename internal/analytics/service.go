package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// DefaultPeriodDays is the dashboard window when the caller does not ask for
// a specific one.
const DefaultPeriodDays = 30

// Insight thresholds.
const (
	lowROIThreshold          = 1.5
	highPlatformROIThreshold = 2.5
	lowContentFrequency      = 0.3
	lowCollaborationRate     = 0.1
	lowBudgetUtilization     = 30.0
)

// Defaults used when a vendor has no trust row yet.
const (
	defaultTrustScore  = 50
	defaultReliability = 0.5
)

// Service defines the behavior needed by the analytics controller.
type Service interface {
	Dashboard(ctx context.Context, vendorID uuid.UUID, periodDays int) (*DashboardDTO, error)
	Insights(ctx context.Context, vendorID uuid.UUID) ([]InsightDTO, error)
	Trends(ctx context.Context, vendorID uuid.UUID) (*TrendsDTO, error)
}

type analyticsRepository interface {
	CampaignStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CampaignStats, error)
	ContentStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*ContentStats, error)
	CollaborationStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CollaborationStats, error)
	PlatformPerformance(ctx context.Context, vendorID uuid.UUID, since time.Time) ([]PlatformStats, error)
	PitchCount(ctx context.Context, vendorID uuid.UUID, since time.Time) (int64, error)
	TrustSnapshot(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error)
	ActivityBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*ActivityWindow, error)
	VendorBudget(ctx context.Context, vendorID uuid.UUID) (float64, error)
}

type service struct {
	repo analyticsRepository
	now  func() time.Time
}

// ServiceParams bundles the dependencies required to build an analytics
// service.
type ServiceParams struct {
	Repo analyticsRepository
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewService constructs an analytics service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("analytics repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

// Dashboard assembles the aggregate view of a vendor's recent activity.
func (s *service) Dashboard(ctx context.Context, vendorID uuid.UUID, periodDays int) (*DashboardDTO, error) {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	since := s.now().AddDate(0, 0, -periodDays)

	campaigns, err := s.repo.CampaignStats(ctx, vendorID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate campaigns")
	}
	content, err := s.repo.ContentStats(ctx, vendorID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate content")
	}
	collabs, err := s.repo.CollaborationStats(ctx, vendorID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate collaborations")
	}
	platforms, err := s.repo.PlatformPerformance(ctx, vendorID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate platform performance")
	}
	pitches, err := s.repo.PitchCount(ctx, vendorID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count pitches")
	}

	trust := TrustSnapshotDTO{Score: defaultTrustScore, Reliability: defaultReliability}
	if row, err := s.repo.TrustSnapshot(ctx, vendorID); err == nil {
		trust = TrustSnapshotDTO{
			Score:          row.Score,
			Reliability:    row.Reliability,
			CompletionRate: row.CompletionRate,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load trust snapshot")
	}

	engagementRate := 0.1
	if campaigns.AverageROI > 0 {
		engagementRate = campaigns.AverageROI * 0.1
		if engagementRate > 0.5 {
			engagementRate = 0.5
		}
	}
	costPerCampaign := 0.0
	if campaigns.Total > 0 {
		costPerCampaign = campaigns.TotalSpent / float64(campaigns.Total)
	}

	byType := make([]ContentTypeCountDTO, 0, len(content.ByType))
	for _, bucket := range content.ByType {
		byType = append(byType, ContentTypeCountDTO{Type: bucket.ContentType, Count: bucket.Count})
	}
	platformDTOs := make([]PlatformPerformanceDTO, 0, len(platforms))
	for _, p := range platforms {
		platformDTOs = append(platformDTOs, PlatformPerformanceDTO{
			Platform:   p.Platform,
			Campaigns:  p.Campaigns,
			AverageROI: p.AverageROI,
			TotalSpent: p.TotalSpent,
		})
	}

	return &DashboardDTO{
		Period: fmt.Sprintf("Last %d days", periodDays),
		Campaigns: CampaignSummaryDTO{
			Total:      campaigns.Total,
			Active:     campaigns.Active,
			Completed:  campaigns.Completed,
			TotalSpent: campaigns.TotalSpent,
			AverageROI: campaigns.AverageROI,
		},
		Content: ContentSummaryDTO{
			Total:     content.Total,
			ByType:    byType,
			Posted:    content.Posted,
			Scheduled: content.Scheduled,
		},
		Collaborations: CollaborationSummaryDTO{
			Total:     collabs.Total,
			Completed: collabs.Completed,
			Active:    collabs.Active,
		},
		Pitches:             pitches,
		PlatformPerformance: platformDTOs,
		SummaryMetrics: SummaryMetricsDTO{
			EngagementRate:    engagementRate,
			CostPerCampaign:   costPerCampaign,
			ContentFrequency:  float64(content.Total) / float64(periodDays),
			CollaborationRate: float64(collabs.Completed) / float64(periodDays),
		},
		Trust: trust,
	}, nil
}

// Insights turns the dashboard aggregates into an ordered list of actionable
// observations.
func (s *service) Insights(ctx context.Context, vendorID uuid.UUID) ([]InsightDTO, error) {
	dashboard, err := s.Dashboard(ctx, vendorID, DefaultPeriodDays)
	if err != nil {
		return nil, err
	}

	insights := []InsightDTO{}

	if dashboard.Campaigns.Total > 0 {
		if dashboard.Campaigns.AverageROI < lowROIThreshold {
			insights = append(insights, InsightDTO{
				Type:           "warning",
				Category:       "advertising",
				Title:          "Low Campaign ROI",
				Description:    fmt.Sprintf("Average ROI is %.2fx", dashboard.Campaigns.AverageROI),
				Recommendation: "Optimize ad targeting and creative",
				Priority:       "high",
			})
		}
		for _, platform := range dashboard.PlatformPerformance {
			if platform.AverageROI > highPlatformROIThreshold {
				insights = append(insights, InsightDTO{
					Type:           "success",
					Category:       "advertising",
					Title:          "High Performing Platform",
					Description:    fmt.Sprintf("%s has %.2fx ROI", platform.Platform, platform.AverageROI),
					Recommendation: fmt.Sprintf("Increase budget allocation to %s", platform.Platform),
					Priority:       "medium",
				})
			}
		}
	}

	if dashboard.Content.Total > 0 && dashboard.SummaryMetrics.ContentFrequency < lowContentFrequency {
		insights = append(insights, InsightDTO{
			Type:           "info",
			Category:       "content",
			Title:          "Low Content Frequency",
			Description:    fmt.Sprintf("Only %.1f posts per day on average", dashboard.SummaryMetrics.ContentFrequency),
			Recommendation: "Increase posting frequency to 3-5 times per week",
			Priority:       "medium",
		})
	}

	if dashboard.SummaryMetrics.CollaborationRate < lowCollaborationRate {
		insights = append(insights, InsightDTO{
			Type:           "info",
			Category:       "collaboration",
			Title:          "Limited Collaborations",
			Description:    "Few collaboration activities detected",
			Recommendation: "Explore partnership opportunities with similar businesses",
			Priority:       "low",
		})
	}

	budget, err := s.repo.VendorBudget(ctx, vendorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor budget")
	}
	if budget > 0 {
		utilization := dashboard.Campaigns.TotalSpent / budget * 100
		if utilization < lowBudgetUtilization {
			insights = append(insights, InsightDTO{
				Type:           "warning",
				Category:       "budget",
				Title:          "Low Budget Utilization",
				Description:    fmt.Sprintf("Only %.1f%% of budget used", utilization),
				Recommendation: "Consider launching new campaigns or increasing existing ones",
				Priority:       "medium",
			})
		}
	}

	return insights, nil
}

// Trends builds the four-week activity series, oldest week first, with a
// growth comparison of the two most recent weeks.
func (s *service) Trends(ctx context.Context, vendorID uuid.UUID) (*TrendsDTO, error) {
	now := s.now()
	weeks := make([]WeekDTO, 0, 4)
	for i := 3; i >= 0; i-- {
		to := now.AddDate(0, 0, -7*i)
		from := to.AddDate(0, 0, -7)
		window, err := s.repo.ActivityBetween(ctx, vendorID, from, to)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate weekly activity")
		}
		weeks = append(weeks, WeekDTO{
			Week:      fmt.Sprintf("Week %d", 4-i),
			Campaigns: window.Campaigns,
			Spending:  window.Spending,
			Content:   window.Content,
		})
	}

	current, previous := weeks[3], weeks[2]
	growth := GrowthDTO{
		CampaignsGrowth: growthRate(float64(current.Campaigns), float64(previous.Campaigns)),
		SpendingGrowth:  growthRate(current.Spending, previous.Spending),
		ContentGrowth:   growthRate(float64(current.Content), float64(previous.Content)),
	}

	return &TrendsDTO{WeeklyData: weeks, CurrentVsPrevious: growth}, nil
}

func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
