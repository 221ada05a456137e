package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// AutomationSetting records an automation a vendor has enabled.
type AutomationSetting struct {
	ID             uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID       uuid.UUID            `gorm:"column:vendor_id;type:uuid;not null;index"`
	AutomationType enums.AutomationType `gorm:"column:automation_type;type:automation_type;not null"`
	Settings       dbtypes.JSONMap      `gorm:"column:settings;type:text;not null;default:'{}'"`
	Enabled        bool                 `gorm:"column:enabled;not null;default:true"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// Recommendation is a persisted assistant recommendation set for a vendor.
type Recommendation struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID  uuid.UUID       `gorm:"column:vendor_id;type:uuid;not null;index"`
	Source    string          `gorm:"column:source;not null"`
	Payload   dbtypes.JSONMap `gorm:"column:payload;type:text;not null;default:'{}'"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
