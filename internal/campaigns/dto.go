package campaigns

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// CampaignDTO is the transport shape of an ad campaign.
type CampaignDTO struct {
	ID                 uuid.UUID            `json:"id"`
	VendorID           uuid.UUID            `json:"vendor_id"`
	CampaignName       string               `json:"campaign_name"`
	Platform           enums.Platform       `json:"platform"`
	AdType             string               `json:"ad_type,omitempty"`
	Budget             decimal.Decimal      `json:"budget"`
	DailyBudget        decimal.Decimal      `json:"daily_budget"`
	TargetAudience     []string             `json:"target_audience"`
	Keywords           []string             `json:"keywords"`
	AdCopy             string               `json:"ad_copy,omitempty"`
	LandingPage        string               `json:"landing_page,omitempty"`
	StartDate          time.Time            `json:"start_date"`
	EndDate            time.Time            `json:"end_date"`
	Status             enums.CampaignStatus `json:"status"`
	PerformanceMetrics map[string]any       `json:"performance_metrics"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// CreateCampaignDTO holds the data required to persist a new campaign.
type CreateCampaignDTO struct {
	VendorID       uuid.UUID
	CampaignName   string
	Platform       enums.Platform
	AdType         string
	Budget         decimal.Decimal
	DailyBudget    *decimal.Decimal
	TargetAudience []string
	Keywords       []string
	AdCopy         string
	LandingPage    string
	StartDate      time.Time
	EndDate        time.Time
}

// OptimizationDTO is one optimization suggestion for a campaign.
type OptimizationDTO struct {
	Area           string `json:"area"`
	Suggestion     string `json:"suggestion"`
	ExpectedImpact string `json:"expected_impact"`
	Priority       string `json:"priority"`
}

// OptimizationReportDTO bundles the suggestions for one campaign.
type OptimizationReportDTO struct {
	Campaign      string            `json:"campaign"`
	CurrentStatus string            `json:"current_status"`
	Optimizations []OptimizationDTO `json:"optimizations"`
}

// PlatformRecommendationDTO suggests an advertising platform for a vendor.
type PlatformRecommendationDTO struct {
	Platform         string `json:"platform"`
	Reason           string `json:"reason"`
	BudgetSuggestion string `json:"budget_suggestion"`
	Targeting        string `json:"targeting"`
}

func FromModel(c *models.AdCampaign) *CampaignDTO {
	if c == nil {
		return nil
	}
	return &CampaignDTO{
		ID:                 c.ID,
		VendorID:           c.VendorID,
		CampaignName:       c.CampaignName,
		Platform:           c.Platform,
		AdType:             c.AdType,
		Budget:             c.Budget,
		DailyBudget:        c.DailyBudget,
		TargetAudience:     append([]string(nil), c.TargetAudience...),
		Keywords:           append([]string(nil), c.Keywords...),
		AdCopy:             c.AdCopy,
		LandingPage:        c.LandingPage,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Status:             c.Status,
		PerformanceMetrics: map[string]any(c.PerformanceMetrics),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (c CreateCampaignDTO) ToModel() *models.AdCampaign {
	audience := c.TargetAudience
	if audience == nil {
		audience = []string{}
	}
	keywords := c.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	daily := decimal.Zero
	if c.DailyBudget != nil {
		daily = *c.DailyBudget
	}

	return &models.AdCampaign{
		VendorID:       c.VendorID,
		CampaignName:   c.CampaignName,
		Platform:       c.Platform,
		AdType:         c.AdType,
		Budget:         c.Budget,
		DailyBudget:    daily,
		TargetAudience: dbtypes.StringList(audience),
		Keywords:       dbtypes.StringList(keywords),
		AdCopy:         c.AdCopy,
		LandingPage:    c.LandingPage,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         enums.CampaignStatusPending,
	}
}
