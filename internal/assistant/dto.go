package assistant

// RecommendationItemDTO is one suggestion inside a category.
type RecommendationItemDTO struct {
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	Actions     []string `json:"actions"`
}

// RecommendationsDTO groups suggestions by growth category. Source reports
// whether the advisor answered or the fallback rules did.
type RecommendationsDTO struct {
	Source     string                             `json:"source"`
	Categories map[string][]RecommendationItemDTO `json:"categories"`
}

// AdCopyRequestDTO describes the ad the caller wants copy for.
type AdCopyRequestDTO struct {
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	Platform           string `json:"platform"`
}

// AdCopyDTO is the generated ad creative.
type AdCopyDTO struct {
	Source   string   `json:"source"`
	Headline string   `json:"headline"`
	Text     string   `json:"text"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
	Angle    string   `json:"angle"`
}

// Source values reported on assistant payloads.
const (
	SourceAdvisor  = "advisor"
	SourceFallback = "fallback"
)
