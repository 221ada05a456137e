package automation

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// OpportunityDTO describes one task worth automating and the expected gain.
type OpportunityDTO struct {
	Task             string   `json:"task"`
	CurrentMinutes   int      `json:"current_minutes"`
	AutomatedMinutes int      `json:"automated_minutes"`
	AutomationLevel  int      `json:"automation_level"`
	Tools            []string `json:"tools"`
}

// RecommendationDTO is a suggested automation drawn from the profile rules.
type RecommendationDTO struct {
	Automation  string   `json:"automation"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	TimeSaving  string   `json:"time_saving"`
	ToolsNeeded []string `json:"tools_needed"`
	SetupTime   string   `json:"setup_time"`
}

// PotentialDTO is the full automation-potential analysis for a vendor.
type PotentialDTO struct {
	Vendor                 string              `json:"vendor"`
	Opportunities          []OpportunityDTO    `json:"automation_opportunities"`
	TotalTimeSavingsHours  float64             `json:"total_time_savings_hours"`
	EstimatedCostSavings   float64             `json:"estimated_cost_savings"`
	RecommendedAutomations []RecommendationDTO `json:"recommended_automations"`
}

// SettingDTO is the transport shape of an enabled automation.
type SettingDTO struct {
	ID             uuid.UUID            `json:"id"`
	VendorID       uuid.UUID            `json:"vendor_id"`
	AutomationType enums.AutomationType `json:"automation_type"`
	Settings       map[string]any       `json:"settings"`
	Enabled        bool                 `json:"enabled"`
	CreatedAt      time.Time            `json:"created_at"`
}

func settingFromModel(s *models.AutomationSetting) *SettingDTO {
	if s == nil {
		return nil
	}
	return &SettingDTO{
		ID:             s.ID,
		VendorID:       s.VendorID,
		AutomationType: s.AutomationType,
		Settings:       map[string]any(s.Settings),
		Enabled:        s.Enabled,
		CreatedAt:      s.CreatedAt,
	}
}
