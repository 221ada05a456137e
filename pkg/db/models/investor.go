package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
)

// Investor is read-only reference data used by investor matching.
type Investor struct {
	ID                 uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string             `gorm:"column:name;not null"`
	Firm               string             `gorm:"column:firm"`
	Industries         dbtypes.StringList `gorm:"column:industries;type:text;not null;default:'[]'"`
	LocationPreference string             `gorm:"column:location_preference"`
	CheckSizeMin       decimal.Decimal    `gorm:"column:check_size_min;type:numeric(14,2);not null;default:0"`
	CheckSizeMax       decimal.Decimal    `gorm:"column:check_size_max;type:numeric(14,2);not null;default:0"`
	InvestmentStage    string             `gorm:"column:investment_stage"`
	ContactInfo        string             `gorm:"column:contact_info"`
	CreatedAt          time.Time          `gorm:"column:created_at;autoCreateTime"`
}
