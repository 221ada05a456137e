package enums

import "fmt"

// AutomationType names the automations a vendor can enable.
type AutomationType string

const (
	AutomationTypeContentScheduling    AutomationType = "content_scheduling"
	AutomationTypePerformanceReporting AutomationType = "performance_reporting"
)

var validAutomationTypes = []AutomationType{
	AutomationTypeContentScheduling,
	AutomationTypePerformanceReporting,
}

// String implements fmt.Stringer.
func (a AutomationType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AutomationType.
func (a AutomationType) IsValid() bool {
	for _, candidate := range validAutomationTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAutomationType converts raw input into an AutomationType.
func ParseAutomationType(value string) (AutomationType, error) {
	for _, candidate := range validAutomationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid automation type %q", value)
}
