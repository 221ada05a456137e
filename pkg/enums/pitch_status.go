package enums

import "fmt"

// PitchStatus captures the fundraising pitch lifecycle.
type PitchStatus string

const (
	PitchStatusDraft  PitchStatus = "draft"
	PitchStatusActive PitchStatus = "active"
	PitchStatusClosed PitchStatus = "closed"
)

var validPitchStatuses = []PitchStatus{
	PitchStatusDraft,
	PitchStatusActive,
	PitchStatusClosed,
}

// String implements fmt.Stringer.
func (s PitchStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PitchStatus.
func (s PitchStatus) IsValid() bool {
	for _, candidate := range validPitchStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePitchStatus converts raw input into a PitchStatus.
func ParsePitchStatus(value string) (PitchStatus, error) {
	for _, candidate := range validPitchStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pitch status %q", value)
}
