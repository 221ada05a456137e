package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// AdCampaign represents an advertising campaign on a single platform.
type AdCampaign struct {
	ID                 uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID           uuid.UUID            `gorm:"column:vendor_id;type:uuid;not null;index"`
	CampaignName       string               `gorm:"column:campaign_name;not null"`
	Platform           enums.Platform       `gorm:"column:platform;type:platform;not null"`
	AdType             string               `gorm:"column:ad_type"`
	Budget             decimal.Decimal      `gorm:"column:budget;type:numeric(12,2);not null"`
	DailyBudget        decimal.Decimal      `gorm:"column:daily_budget;type:numeric(12,2);not null"`
	TargetAudience     dbtypes.StringList   `gorm:"column:target_audience;type:text;not null;default:'[]'"`
	Keywords           dbtypes.StringList   `gorm:"column:keywords;type:text;not null;default:'[]'"`
	AdCopy             string               `gorm:"column:ad_copy"`
	LandingPage        string               `gorm:"column:landing_page"`
	StartDate          time.Time            `gorm:"column:start_date;not null"`
	EndDate            time.Time            `gorm:"column:end_date;not null"`
	Status             enums.CampaignStatus `gorm:"column:status;type:campaign_status;not null;default:'pending'"`
	PerformanceMetrics dbtypes.JSONMap      `gorm:"column:performance_metrics;type:text;not null;default:'{}'"`
	CreatedAt          time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
