package campaigns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// Performance prediction assumptions.
const (
	impressionsPerDollar = 1000
	clickThroughRate     = 0.02
	conversionRate       = 0.05
	averageOrderValue    = 50.0
)

var thirtyDays = decimal.NewFromInt(30)

// Service defines the behavior needed by the campaigns controller.
type Service interface {
	Create(ctx context.Context, dto CreateCampaignDTO) (*CampaignDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*CampaignDTO, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]CampaignDTO, error)
	Optimize(ctx context.Context, id uuid.UUID) (*OptimizationReportDTO, error)
	PlatformRecommendations(ctx context.Context, vendorID uuid.UUID) ([]PlatformRecommendationDTO, error)
}

type campaignRepository interface {
	Create(ctx context.Context, campaign *models.AdCampaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdCampaign, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.AdCampaign, error)
	UpdatePerformanceMetrics(ctx context.Context, id uuid.UUID, metrics dbtypes.JSONMap) error
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
}

type service struct {
	campaigns campaignRepository
	vendors   vendorRepository
	engine    *scoring.Engine
}

// ServiceParams bundles the dependencies required to build a campaigns
// service.
type ServiceParams struct {
	CampaignRepo campaignRepository
	VendorRepo   vendorRepository
	Engine       *scoring.Engine
}

// NewService constructs a campaigns service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CampaignRepo == nil {
		return nil, fmt.Errorf("campaign repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if params.Engine == nil {
		return nil, fmt.Errorf("scoring engine is required")
	}
	return &service{
		campaigns: params.CampaignRepo,
		vendors:   params.VendorRepo,
		engine:    params.Engine,
	}, nil
}

// Create inserts a pending campaign, defaulting the daily budget to a
// thirty-day spread, and stores a performance prediction alongside.
func (s *service) Create(ctx context.Context, dto CreateCampaignDTO) (*CampaignDTO, error) {
	if _, err := s.vendors.FindByID(ctx, dto.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}
	if dto.EndDate.Before(dto.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must not precede start date")
	}

	campaign := dto.ToModel()
	if campaign.DailyBudget.IsZero() {
		campaign.DailyBudget = campaign.Budget.Div(thirtyDays).Round(2)
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create campaign")
	}

	prediction := s.predictPerformance(campaign)
	if err := s.campaigns.UpdatePerformanceMetrics(ctx, campaign.ID, prediction); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store performance prediction")
	}
	campaign.PerformanceMetrics = prediction

	return FromModel(campaign), nil
}

// predictPerformance estimates reach from the budget spread over the
// campaign window, scaled by the platform multiplier table.
func (s *service) predictPerformance(campaign *models.AdCampaign) dbtypes.JSONMap {
	duration := int(campaign.EndDate.Sub(campaign.StartDate) / (24 * time.Hour))
	if duration == 0 {
		duration = 1
	}

	budget, _ := campaign.Budget.Float64()
	dailyBudget := budget / float64(duration)
	multiplier := s.engine.PlatformMultiplier(campaign.Platform.String())

	impressions := int(dailyBudget * impressionsPerDollar * multiplier)
	clicks := int(float64(impressions) * clickThroughRate)
	conversions := int(float64(clicks) * conversionRate)

	cpc := 0.0
	if clicks > 0 {
		cpc = dailyBudget / float64(clicks)
	}
	roi := 0.0
	if budget > 0 {
		roi = float64(conversions) * averageOrderValue / budget
	}

	return dbtypes.JSONMap{
		"estimated_impressions": impressions,
		"estimated_clicks":      clicks,
		"estimated_conversions": conversions,
		"estimated_cpc":         cpc,
		"estimated_roi":         roi,
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*CampaignDTO, error) {
	campaign, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "campaign not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load campaign")
	}
	return FromModel(campaign), nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]CampaignDTO, error) {
	rows, err := s.campaigns.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list campaigns")
	}
	out := make([]CampaignDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

var tenDollars = decimal.NewFromInt(10)

// Optimize inspects a campaign and suggests budget, keyword, copy, and
// duration improvements. A missing campaign yields an empty report.
func (s *service) Optimize(ctx context.Context, id uuid.UUID) (*OptimizationReportDTO, error) {
	campaign, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &OptimizationReportDTO{Optimizations: []OptimizationDTO{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load campaign")
	}

	optimizations := []OptimizationDTO{}

	if campaign.DailyBudget.LessThan(tenDollars) {
		optimizations = append(optimizations, OptimizationDTO{
			Area:           "budget",
			Suggestion:     "Increase daily budget to at least $10 for better reach",
			ExpectedImpact: "+25% impressions",
			Priority:       "high",
		})
	}
	if len(campaign.Keywords) < 5 {
		optimizations = append(optimizations, OptimizationDTO{
			Area:           "keywords",
			Suggestion:     "Add more specific keywords (5-15 recommended)",
			ExpectedImpact: "+15% CTR",
			Priority:       "medium",
		})
	}
	if len(campaign.AdCopy) < 50 {
		optimizations = append(optimizations, OptimizationDTO{
			Area:           "ad_copy",
			Suggestion:     "Make ad copy more descriptive (50-90 characters optimal)",
			ExpectedImpact: "+10% engagement",
			Priority:       "medium",
		})
	}
	if campaign.EndDate.Sub(campaign.StartDate) < 7*24*time.Hour {
		optimizations = append(optimizations, OptimizationDTO{
			Area:           "duration",
			Suggestion:     "Extend campaign to at least 7 days for better learning",
			ExpectedImpact: "+30% data quality",
			Priority:       "low",
		})
	}

	return &OptimizationReportDTO{
		Campaign:      campaign.CampaignName,
		CurrentStatus: campaign.Status.String(),
		Optimizations: optimizations,
	}, nil
}

// PlatformRecommendations suggests advertising platforms from the vendor's
// industry and location. Facebook is always recommended last as the broad
// default.
func (s *service) PlatformRecommendations(ctx context.Context, vendorID uuid.UUID) ([]PlatformRecommendationDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []PlatformRecommendationDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	recommendations := []PlatformRecommendationDTO{}

	switch vendor.Industry {
	case "technology", "consulting", "enterprise":
		recommendations = append(recommendations, PlatformRecommendationDTO{
			Platform:         "linkedin",
			Reason:           "Best for B2B and professional services",
			BudgetSuggestion: "$500-2000/month",
			Targeting:        "Job titles, industries, company size",
		})
	case "fashion", "food", "art", "home_decor":
		recommendations = append(recommendations, PlatformRecommendationDTO{
			Platform:         "instagram",
			Reason:           "Visual platform perfect for product showcase",
			BudgetSuggestion: "$300-1000/month",
			Targeting:        "Interests, demographics, lookalike audiences",
		})
	}

	if strings.Contains(strings.ToLower(vendor.Location), "local") {
		recommendations = append(recommendations, PlatformRecommendationDTO{
			Platform:         "google",
			Reason:           "Local search intent and Google Maps integration",
			BudgetSuggestion: "$200-800/month",
			Targeting:        "Location, search intent, keywords",
		})
	}

	recommendations = append(recommendations, PlatformRecommendationDTO{
		Platform:         "facebook",
		Reason:           "Broad reach and sophisticated targeting options",
		BudgetSuggestion: "$200-1000/month",
		Targeting:        "Demographics, interests, behaviors",
	})

	return recommendations, nil
}
