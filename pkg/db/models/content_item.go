package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// ContentItem is a scheduled calendar entry the posting worker executes.
type ContentItem struct {
	ID                 uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID           uuid.UUID           `gorm:"column:vendor_id;type:uuid;not null;index"`
	Title              string              `gorm:"column:title;not null"`
	ContentType        string              `gorm:"column:content_type;not null"`
	Platforms          dbtypes.StringList  `gorm:"column:platforms;type:text;not null;default:'[]'"`
	ContentText        string              `gorm:"column:content_text"`
	MediaURL           string              `gorm:"column:media_url"`
	Hashtags           dbtypes.StringList  `gorm:"column:hashtags;type:text;not null;default:'[]'"`
	ScheduledTime      time.Time           `gorm:"column:scheduled_time;not null;index"`
	Status             enums.ContentStatus `gorm:"column:status;type:content_status;not null;default:'scheduled'"`
	PerformanceMetrics dbtypes.JSONMap     `gorm:"column:performance_metrics;type:text;not null;default:'{}'"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
