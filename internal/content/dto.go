package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// ItemDTO is the transport shape of a content calendar entry.
type ItemDTO struct {
	ID                 uuid.UUID           `json:"id"`
	VendorID           uuid.UUID           `json:"vendor_id"`
	Title              string              `json:"title"`
	ContentType        string              `json:"content_type"`
	Platforms          []string            `json:"platforms"`
	ContentText        string              `json:"content_text,omitempty"`
	MediaURL           string              `json:"media_url,omitempty"`
	Hashtags           []string            `json:"hashtags"`
	ScheduledTime      time.Time           `json:"scheduled_time"`
	Status             enums.ContentStatus `json:"status"`
	PerformanceMetrics map[string]any      `json:"performance_metrics"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// ScheduleDTO holds the data required to schedule a content item.
type ScheduleDTO struct {
	VendorID      uuid.UUID
	Title         string
	ContentType   string
	Platforms     []string
	ContentText   string
	MediaURL      string
	Hashtags      []string
	ScheduledTime time.Time
}

// IdeaDTO is one generated content idea.
type IdeaDTO struct {
	Title         string   `json:"title"`
	ContentType   string   `json:"content_type"`
	Platforms     []string `json:"platforms"`
	EstimatedTime int      `json:"estimated_time"`
	Difficulty    string   `json:"difficulty"`
}

func FromModel(c *models.ContentItem) *ItemDTO {
	if c == nil {
		return nil
	}
	return &ItemDTO{
		ID:                 c.ID,
		VendorID:           c.VendorID,
		Title:              c.Title,
		ContentType:        c.ContentType,
		Platforms:          append([]string(nil), c.Platforms...),
		ContentText:        c.ContentText,
		MediaURL:           c.MediaURL,
		Hashtags:           append([]string(nil), c.Hashtags...),
		ScheduledTime:      c.ScheduledTime,
		Status:             c.Status,
		PerformanceMetrics: map[string]any(c.PerformanceMetrics),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (d ScheduleDTO) ToModel() *models.ContentItem {
	platforms := d.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	hashtags := d.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return &models.ContentItem{
		VendorID:      d.VendorID,
		Title:         d.Title,
		ContentType:   d.ContentType,
		Platforms:     dbtypes.StringList(platforms),
		ContentText:   d.ContentText,
		MediaURL:      d.MediaURL,
		Hashtags:      dbtypes.StringList(hashtags),
		ScheduledTime: d.ScheduledTime,
		Status:        enums.ContentStatusScheduled,
	}
}
