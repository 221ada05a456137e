package enums

import "fmt"

// Platform identifies an advertising or content channel.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformOther     Platform = "other"
)

var validPlatforms = []Platform{
	PlatformGoogle,
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformOther,
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Platform.
func (p Platform) IsValid() bool {
	for _, candidate := range validPlatforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlatform converts raw input into a Platform.
func ParsePlatform(value string) (Platform, error) {
	for _, candidate := range validPlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid platform %q", value)
}
