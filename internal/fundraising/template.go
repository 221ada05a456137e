package fundraising

var pitchTemplates = map[string]TemplateDTO{
	"technology": {
		Slides: []SlideDTO{
			{Title: "Problem", Content: "What problem are you solving?"},
			{Title: "Solution", Content: "Your innovative solution"},
			{Title: "Market Size", Content: "TAM, SAM, SOM analysis"},
			{Title: "Business Model", Content: "How you make money"},
			{Title: "Traction", Content: "Current achievements"},
			{Title: "Team", Content: "Founder backgrounds"},
			{Title: "Competition", Content: "Competitive landscape"},
			{Title: "Funding Ask", Content: "How much and for what"},
		},
		Tips: []string{
			"Focus on scalability",
			"Highlight tech differentiation",
			"Show user growth metrics",
		},
	},
	"restaurant": {
		Slides: []SlideDTO{
			{Title: "Concept", Content: "Restaurant vision and theme"},
			{Title: "Market Need", Content: "Local dining gap"},
			{Title: "Menu & Pricing", Content: "Signature dishes and pricing"},
			{Title: "Location Analysis", Content: "Site selection rationale"},
			{Title: "Operations Plan", Content: "Daily operations"},
			{Title: "Marketing Strategy", Content: "Customer acquisition"},
			{Title: "Financial Projections", Content: "3-year projections"},
			{Title: "Funding Use", Content: "Equipment, build-out, working capital"},
		},
		Tips: []string{
			"Emphasize unique dining experience",
			"Show local market research",
			"Include chef credentials",
		},
	},
}

// PitchTemplate returns the deck outline for an industry, falling back to
// the technology template when no industry-specific one exists.
func (s *service) PitchTemplate(industry string) TemplateDTO {
	if tpl, ok := pitchTemplates[industry]; ok {
		return tpl
	}
	return pitchTemplates["technology"]
}
