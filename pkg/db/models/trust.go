package models

import (
	"time"

	"github.com/google/uuid"
)

// TrustScore is the single recomputed trust row per vendor (upsert semantics).
type TrustScore struct {
	VendorID       uuid.UUID `gorm:"column:vendor_id;type:uuid;primaryKey"`
	Score          float64   `gorm:"column:score;not null;default:50"`
	Reliability    float64   `gorm:"column:reliability;not null;default:0.5"`
	CompletionRate float64   `gorm:"column:completion_rate;not null;default:0"`
	LastUpdated    time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

// Review is an append-only vendor rating.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReviewerID uuid.UUID `gorm:"column:reviewer_id;type:uuid;not null"`
	VendorID   uuid.UUID `gorm:"column:vendor_id;type:uuid;not null;index"`
	Rating     int       `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TrustEvent is an append-only audit record. Impact is informational and is
// not summed into the score formula.
type TrustEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID    uuid.UUID `gorm:"column:vendor_id;type:uuid;not null;index"`
	EventType   string    `gorm:"column:event_type;not null"`
	Impact      int       `gorm:"column:impact;not null;default:0"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
