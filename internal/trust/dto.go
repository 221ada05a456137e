package trust

import (
	"time"

	"github.com/google/uuid"
)

// ScoreDTO is the recomputed trust score for a vendor.
type ScoreDTO struct {
	VendorID       uuid.UUID `json:"vendor_id"`
	Score          float64   `json:"score"`
	Reliability    float64   `json:"reliability"`
	CompletionRate float64   `json:"completion_rate"`
	LastUpdated    time.Time `json:"last_updated"`
}

// ReviewDTO is one vendor review in a trust report.
type ReviewDTO struct {
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment,omitempty"`
	Reviewer string    `json:"reviewer"`
	Date     time.Time `json:"date"`
}

// EventDTO is one trust event in a trust report.
type EventDTO struct {
	Type        string    `json:"type"`
	Impact      int       `json:"impact"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// ReportDTO is the full trust report for a vendor.
type ReportDTO struct {
	TrustScore   float64     `json:"trust_score"`
	Reliability  float64     `json:"reliability"`
	Reviews      []ReviewDTO `json:"reviews"`
	RecentEvents []EventDTO  `json:"recent_events"`
}

// AddReviewDTO holds the data required to record a review.
type AddReviewDTO struct {
	ReviewerID uuid.UUID
	VendorID   uuid.UUID
	Rating     int
	Comment    string
}

// AddEventDTO holds the data required to record a trust event.
type AddEventDTO struct {
	VendorID    uuid.UUID
	EventType   string
	Impact      int
	Description string
}
