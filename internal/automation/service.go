package automation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// Manual-versus-automated minutes per task used by the potential analysis.
const (
	postManualMinutes      = 15
	postAutomatedMinutes   = 2
	adManualMinutes        = 30
	adAutomatedMinutes     = 5
	reportManualMinutes    = 120
	reportAutomatedMinutes = 15
	hourlyRate             = 50.0
)

var adOptimizationBudgetFloor = decimal.NewFromInt(1000)

// Service defines the behavior needed by the automation controller.
type Service interface {
	AnalyzePotential(ctx context.Context, vendorID uuid.UUID) (*PotentialDTO, error)
	Setup(ctx context.Context, vendorID uuid.UUID, automationType enums.AutomationType) (*SettingDTO, error)
	ListSettings(ctx context.Context, vendorID uuid.UUID) ([]SettingDTO, error)
}

type automationRepository interface {
	UpsertSetting(ctx context.Context, setting *models.AutomationSetting) error
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.AutomationSetting, error)
	CountActiveCampaigns(ctx context.Context, vendorID uuid.UUID) (int64, error)
	CountScheduledContent(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
}

type service struct {
	automations automationRepository
	vendors     vendorRepository
}

// ServiceParams bundles the dependencies required to build an automation
// service.
type ServiceParams struct {
	AutomationRepo automationRepository
	VendorRepo     vendorRepository
}

// NewService constructs an automation service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.AutomationRepo == nil {
		return nil, fmt.Errorf("automation repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{automations: params.AutomationRepo, vendors: params.VendorRepo}, nil
}

// AnalyzePotential sizes the time and cost a vendor would save by automating
// posting, campaign monitoring, and reporting. A missing vendor yields an
// empty report rather than an error.
func (s *service) AnalyzePotential(ctx context.Context, vendorID uuid.UUID) (*PotentialDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PotentialDTO{
				Opportunities:          []OpportunityDTO{},
				RecommendedAutomations: []RecommendationDTO{},
			}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	adCount, err := s.automations.CountActiveCampaigns(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count active campaigns")
	}
	contentCount, err := s.automations.CountScheduledContent(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count scheduled content")
	}

	opportunities := []OpportunityDTO{}
	timeSavings := 0

	if contentCount > 0 {
		n := int(contentCount)
		opportunities = append(opportunities, OpportunityDTO{
			Task:             "social_media_posting",
			CurrentMinutes:   n * postManualMinutes,
			AutomatedMinutes: n * postAutomatedMinutes,
			AutomationLevel:  85,
			Tools:            []string{"content_calendar", "auto_scheduler"},
		})
		timeSavings += n * (postManualMinutes - postAutomatedMinutes)
	}

	if adCount > 0 {
		n := int(adCount)
		opportunities = append(opportunities, OpportunityDTO{
			Task:             "ad_monitoring",
			CurrentMinutes:   n * adManualMinutes,
			AutomatedMinutes: n * adAutomatedMinutes,
			AutomationLevel:  80,
			Tools:            []string{"performance_alerts", "auto_optimization"},
		})
		timeSavings += n * (adManualMinutes - adAutomatedMinutes)
	}

	if adCount > 0 || contentCount > 0 {
		opportunities = append(opportunities, OpportunityDTO{
			Task:             "reporting",
			CurrentMinutes:   reportManualMinutes,
			AutomatedMinutes: reportAutomatedMinutes,
			AutomationLevel:  90,
			Tools:            []string{"auto_reports", "dashboard"},
		})
		timeSavings += reportManualMinutes - reportAutomatedMinutes
	}

	hours := float64(timeSavings) / 60
	costSavings := hours * hourlyRate

	return &PotentialDTO{
		Vendor:                 vendor.BusinessName,
		Opportunities:          opportunities,
		TotalTimeSavingsHours:  math.Round(hours*10) / 10,
		EstimatedCostSavings:   math.Round(costSavings*100) / 100,
		RecommendedAutomations: recommendedAutomations(vendor),
	}, nil
}

// recommendedAutomations applies the profile rule table. The two base
// recommendations always lead; industry and budget rules append after.
func recommendedAutomations(vendor *models.VendorProfile) []RecommendationDTO {
	recs := []RecommendationDTO{
		{
			Automation:  "content_scheduling",
			Priority:    "high",
			Description: "Schedule social media posts in advance",
			TimeSaving:  "5-10 hours/week",
			ToolsNeeded: []string{"content_calendar", "social_media_api"},
			SetupTime:   "1-2 hours",
		},
		{
			Automation:  "performance_reporting",
			Priority:    "medium",
			Description: "Automated weekly performance reports",
			TimeSaving:  "2-3 hours/week",
			ToolsNeeded: []string{"analytics_dashboard", "auto_email"},
			SetupTime:   "30 minutes",
		},
	}

	switch vendor.Industry {
	case "restaurant", "retail":
		recs = append(recs, RecommendationDTO{
			Automation:  "inventory_posting",
			Priority:    "high",
			Description: "Automatically post new products/items",
			TimeSaving:  "3-5 hours/week",
			ToolsNeeded: []string{"inventory_system", "content_generator"},
			SetupTime:   "2-3 hours",
		})
	case "technology", "consulting":
		recs = append(recs, RecommendationDTO{
			Automation:  "lead_nurturing",
			Priority:    "medium",
			Description: "Automated email sequences for leads",
			TimeSaving:  "4-6 hours/week",
			ToolsNeeded: []string{"crm_integration", "email_automation"},
			SetupTime:   "1-2 hours",
		})
	}

	if vendor.Budget.GreaterThan(adOptimizationBudgetFloor) {
		recs = append(recs, RecommendationDTO{
			Automation:  "ad_optimization",
			Priority:    "high",
			Description: "Automatically optimize ad budgets and targeting",
			TimeSaving:  "5-8 hours/week",
			ToolsNeeded: []string{"ad_api", "ml_optimizer"},
			SetupTime:   "2-3 hours",
		})
	}

	return recs
}

// Setup enables a supported automation for the vendor, seeding its default
// configuration.
func (s *service) Setup(ctx context.Context, vendorID uuid.UUID, automationType enums.AutomationType) (*SettingDTO, error) {
	if !automationType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported automation type")
	}
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	setting := &models.AutomationSetting{
		VendorID:       vendorID,
		AutomationType: automationType,
		Settings:       defaultSettings(automationType),
		Enabled:        true,
	}
	if err := s.automations.UpsertSetting(ctx, setting); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store automation setting")
	}
	return settingFromModel(setting), nil
}

// defaultSettings mirrors the defaults a fresh enablement starts with.
func defaultSettings(automationType enums.AutomationType) dbtypes.JSONMap {
	switch automationType {
	case enums.AutomationTypeContentScheduling:
		return dbtypes.JSONMap{
			"post_times": []string{"09:00", "12:00", "17:00", "20:00"},
		}
	case enums.AutomationTypePerformanceReporting:
		return dbtypes.JSONMap{
			"frequency":  "weekly",
			"day":        "monday",
			"time":       "08:00",
			"recipients": []string{},
		}
	default:
		return dbtypes.JSONMap{}
	}
}

// ListSettings returns the vendor's enabled automations.
func (s *service) ListSettings(ctx context.Context, vendorID uuid.UUID) ([]SettingDTO, error) {
	rows, err := s.automations.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list automation settings")
	}
	out := make([]SettingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *settingFromModel(&rows[i]))
	}
	return out, nil
}
