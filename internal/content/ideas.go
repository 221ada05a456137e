package content

// Idea templates keyed by industry. Industries without a dedicated list fall
// back to the services templates.
var industryTemplates = map[string][]string{
	"restaurant": {
		"Behind the scenes: How we make our signature dish",
		"Customer spotlight: Our favorite regulars",
		"New menu item announcement",
		"Cooking tips from our chef",
		"Local ingredient showcase",
	},
	"retail": {
		"Product highlight: {product}",
		"How to style: Fashion tips",
		"Customer reviews showcase",
		"Sale announcement",
		"New arrivals preview",
	},
	"services": {
		"Case study: How we helped {client_type}",
		"Industry insights: {topic}",
		"Team member spotlight",
		"FAQ: Answering common questions",
		"How-to guide: {task}",
	},
}

const fallbackTemplateIndustry = "services"

// Hashtag base tags keyed by industry.
var industryHashtags = map[string][]string{
	"restaurant": {"food", "foodie", "restaurant", "dining", "chef"},
	"retail":     {"shopping", "fashion", "style", "shoplocal", "retail"},
	"technology": {"tech", "innovation", "startup", "digital", "ai"},
	"services":   {"service", "professional", "business", "expert", "consulting"},
}

var (
	fallbackHashtags = []string{"business", "entrepreneur", "smallbusiness"}
	trendingHashtags = []string{"trending", "viral", "popular"}
)

const (
	maxHashtags        = 10
	maxContentTags     = 3
	contentTagMinRunes = 5
)
