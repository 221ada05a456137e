package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
)

// VendorProfile is the canonical vendor entity. Collection fields are
// serialized JSON text columns; empty and absent normalize to empty
// collections on read.
type VendorProfile struct {
	ID             uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID          `gorm:"column:user_id;type:uuid;not null"`
	BusinessName   string             `gorm:"column:business_name;not null"`
	BusinessType   string             `gorm:"column:business_type"`
	Industry       string             `gorm:"column:industry"`
	Location       string             `gorm:"column:location"`
	Website        string             `gorm:"column:website"`
	Description    string             `gorm:"column:description"`
	TargetAudience dbtypes.StringList `gorm:"column:target_audience;type:text;not null;default:'[]'"`
	Budget         decimal.Decimal    `gorm:"column:budget;type:numeric(12,2);not null;default:0"`
	Goals          dbtypes.StringList `gorm:"column:goals;type:text;not null;default:'[]'"`
	Constraints    dbtypes.StringMap  `gorm:"column:constraints;type:text;not null;default:'{}'"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
