package vendors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

var lowBudgetThreshold = decimal.NewFromInt(1000)

// AnalyzeNeeds inspects the profile and flags gaps worth acting on: thin
// budgets, underdefined audiences, and goals the platform can serve.
func (s *service) AnalyzeNeeds(ctx context.Context, id uuid.UUID) ([]NeedDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []NeedDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	needs := []NeedDTO{}

	if vendor.Budget.LessThan(lowBudgetThreshold) {
		needs = append(needs, NeedDTO{
			Category:    "funding",
			Priority:    "high",
			Description: "Low budget detected. Consider fundraising options.",
			Actions:     []string{"explore_grants", "create_pitch", "seek_partnerships"},
		})
	}

	if len(vendor.TargetAudience) < 3 {
		needs = append(needs, NeedDTO{
			Category:    "marketing",
			Priority:    "medium",
			Description: "Target audience definition is limited.",
			Actions:     []string{"audience_research", "competitor_analysis", "create_buyer_personas"},
		})
	}

	if vendor.Goals.Contains("increase_sales") {
		needs = append(needs, NeedDTO{
			Category:    "advertising",
			Priority:    "high",
			Description: "Goal: Increase sales. Launch targeted ad campaigns.",
			Actions:     []string{"create_google_ads", "setup_facebook_ads", "optimize_landing_pages"},
		})
	}

	if vendor.Goals.Contains("brand_awareness") {
		needs = append(needs, NeedDTO{
			Category:    "content",
			Priority:    "medium",
			Description: "Goal: Brand awareness. Develop content strategy.",
			Actions:     []string{"content_calendar", "social_media_plan", "influencer_outreach"},
		})
	}

	return needs, nil
}
