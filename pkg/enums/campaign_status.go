package enums

import "fmt"

// CampaignStatus captures the ad campaign lifecycle.
type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

var validCampaignStatuses = []CampaignStatus{
	CampaignStatusPending,
	CampaignStatusActive,
	CampaignStatusCompleted,
	CampaignStatusFailed,
}

// String implements fmt.Stringer.
func (s CampaignStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CampaignStatus.
func (s CampaignStatus) IsValid() bool {
	for _, candidate := range validCampaignStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCampaignStatus converts raw input into a CampaignStatus.
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	for _, candidate := range validCampaignStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid campaign status %q", value)
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignStatusPending:
		return next == CampaignStatusActive || next == CampaignStatusFailed
	case CampaignStatusActive:
		return next == CampaignStatusCompleted || next == CampaignStatusFailed
	default:
		return false
	}
}
