package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// Pitch is a fundraising pitch. InvestorInterest is computed once at
// creation; later edits deliberately do not rescore.
type Pitch struct {
	ID               uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID         uuid.UUID         `gorm:"column:vendor_id;type:uuid;not null;index"`
	Title            string            `gorm:"column:title;not null"`
	ProblemStatement string            `gorm:"column:problem_statement;not null"`
	Solution         string            `gorm:"column:solution;not null"`
	MarketSize       string            `gorm:"column:market_size"`
	BusinessModel    string            `gorm:"column:business_model"`
	Traction         string            `gorm:"column:traction"`
	FundingAmount    string            `gorm:"column:funding_amount;not null"`
	EquityOffered    decimal.Decimal   `gorm:"column:equity_offered;type:numeric(5,2);not null;default:0"`
	Timeline         string            `gorm:"column:timeline"`
	PitchDeckURL     string            `gorm:"column:pitch_deck_url"`
	Status           enums.PitchStatus `gorm:"column:status;type:pitch_status;not null;default:'draft'"`
	InvestorInterest int               `gorm:"column:investor_interest;not null;default:0"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
