package collaborations

import (
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// MatchDTO is one ranked collaboration candidate.
type MatchDTO struct {
	VendorID           uuid.UUID `json:"vendor_id"`
	BusinessName       string    `json:"business_name"`
	Industry           string    `json:"industry"`
	Location           string    `json:"location"`
	MatchScore         int       `json:"match_score"`
	CollaborationTypes []string  `json:"collaboration_types"`
	SynergyAreas       []string  `json:"synergy_areas"`
}

// CollaborationDTO is the transport shape of a collaboration record.
type CollaborationDTO struct {
	ID                uuid.UUID                 `json:"id"`
	Vendor1ID         uuid.UUID                 `json:"vendor1_id"`
	Vendor2ID         uuid.UUID                 `json:"vendor2_id"`
	CollaborationType string                    `json:"collaboration_type"`
	Status            enums.CollaborationStatus `json:"status"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func FromModel(c *models.Collaboration) *CollaborationDTO {
	if c == nil {
		return nil
	}
	return &CollaborationDTO{
		ID:                c.ID,
		Vendor1ID:         c.Vendor1ID,
		Vendor2ID:         c.Vendor2ID,
		CollaborationType: c.CollaborationType,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
