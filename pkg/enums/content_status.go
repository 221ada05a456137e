package enums

import "fmt"

// ContentStatus captures the content calendar lifecycle.
type ContentStatus string

const (
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPosting   ContentStatus = "posting"
	ContentStatusPosted    ContentStatus = "posted"
	ContentStatusFailed    ContentStatus = "failed"
)

var validContentStatuses = []ContentStatus{
	ContentStatusScheduled,
	ContentStatusPosting,
	ContentStatusPosted,
	ContentStatusFailed,
}

// String implements fmt.Stringer.
func (s ContentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ContentStatus.
func (s ContentStatus) IsValid() bool {
	for _, candidate := range validContentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseContentStatus converts raw input into a ContentStatus.
func ParseContentStatus(value string) (ContentStatus, error) {
	for _, candidate := range validContentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid content status %q", value)
}
