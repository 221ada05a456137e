package enums

import "fmt"

// CollaborationStatus captures the collaboration lifecycle.
type CollaborationStatus string

const (
	CollaborationStatusProposed  CollaborationStatus = "proposed"
	CollaborationStatusActive    CollaborationStatus = "active"
	CollaborationStatusCompleted CollaborationStatus = "completed"
)

var validCollaborationStatuses = []CollaborationStatus{
	CollaborationStatusProposed,
	CollaborationStatusActive,
	CollaborationStatusCompleted,
}

// String implements fmt.Stringer.
func (s CollaborationStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CollaborationStatus.
func (s CollaborationStatus) IsValid() bool {
	for _, candidate := range validCollaborationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCollaborationStatus converts raw input into a CollaborationStatus.
func ParseCollaborationStatus(value string) (CollaborationStatus, error) {
	for _, candidate := range validCollaborationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid collaboration status %q", value)
}
