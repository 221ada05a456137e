package scoring

// Config carries the fixed lookup tables the engine consults. Production
// wiring uses DefaultConfig; tests substitute their own tables.
type Config struct {
	// ComplementaryIndustries lists industry pairs that pair well for
	// collaborations. The check is symmetric.
	ComplementaryIndustries [][2]string
	// IndustrySkills maps an industry to its typical primary skills.
	IndustrySkills map[string][]string
	// PlatformMultipliers scale predicted ad reach per platform.
	PlatformMultipliers map[string]float64
}

// DefaultConfig returns the built-in lookup tables.
func DefaultConfig() Config {
	return Config{
		ComplementaryIndustries: [][2]string{
			{"restaurant", "food_delivery"},
			{"retail", "logistics"},
			{"software", "consulting"},
			{"photography", "real_estate"},
			{"event_planning", "catering"},
		},
		IndustrySkills: map[string][]string{
			"restaurant": {"culinary", "customer_service", "inventory_management"},
			"technology": {"programming", "product_development", "technical_support"},
			"retail":     {"sales", "merchandising", "customer_relations"},
			"consulting": {"strategy", "analysis", "client_management"},
			"creative":   {"design", "content_creation", "branding"},
		},
		PlatformMultipliers: map[string]float64{
			"google":    1.2,
			"facebook":  1.0,
			"instagram": 0.9,
			"linkedin":  1.5,
			"twitter":   0.8,
		},
	}
}

// PlatformMultiplier returns the reach multiplier for a platform, defaulting
// to 1.0 when the platform is not in the table.
func (e *Engine) PlatformMultiplier(platform string) float64 {
	if m, ok := e.cfg.PlatformMultipliers[platform]; ok {
		return m
	}
	return 1.0
}
