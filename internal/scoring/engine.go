package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Acceptance thresholds applied by the matching services before ranking.
const (
	// SimilarityThreshold discards vendor pairs at or below this score.
	SimilarityThreshold = 0.3
	// CommunityThreshold is the stricter cutoff used when forming groups.
	CommunityThreshold = 0.5
	// CollabThreshold is the minimum collaboration match score reported.
	CollabThreshold = 40
	// InvestorThreshold is the minimum investor match score reported.
	InvestorThreshold = 50
)

// Similarity factor weights. Factors with missing data are excluded from
// both numerator and denominator, except location, whose weight is always
// counted (kept that way on purpose; changing it shifts every score).
const (
	weightIndustry     = 0.40
	weightLocation     = 0.20
	weightBusinessType = 0.15
	weightAudience     = 0.15
	weightBudget       = 0.10
)

// VendorFacts is the profile slice the engine scores on. Services build it
// from the persisted vendor profile.
type VendorFacts struct {
	ID             uuid.UUID
	BusinessName   string
	BusinessType   string
	Industry       string
	Location       string
	TargetAudience []string
	Budget         decimal.Decimal
	Goals          []string
}

// Engine computes compatibility and quality scores from injected lookup
// tables. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New constructs an engine around the provided tables. Zero-value tables
// fall back to the defaults.
func New(cfg Config) *Engine {
	if cfg.ComplementaryIndustries == nil {
		cfg.ComplementaryIndustries = DefaultConfig().ComplementaryIndustries
	}
	if cfg.IndustrySkills == nil {
		cfg.IndustrySkills = DefaultConfig().IndustrySkills
	}
	if cfg.PlatformMultipliers == nil {
		cfg.PlatformMultipliers = DefaultConfig().PlatformMultipliers
	}
	return &Engine{cfg: cfg}
}

// Similarity scores how alike two vendor profiles are, in [0,1]. The sum of
// the contributing factors is divided by the sum of the weights actually
// evaluated, so missing fields do not drag the score toward zero.
func (e *Engine) Similarity(a, b VendorFacts) float64 {
	score := 0.0
	weights := 0.0

	if a.Industry == b.Industry {
		score += weightIndustry
	}
	weights += weightIndustry

	// Location weight counts toward the denominator even when one side is
	// missing; only the contribution is gated.
	if a.Location != "" && b.Location != "" {
		if a.Location == b.Location {
			score += weightLocation
		} else if cityOf(a.Location) == cityOf(b.Location) {
			score += weightLocation / 2
		}
	}
	weights += weightLocation

	if a.BusinessType != "" && b.BusinessType != "" {
		if a.BusinessType == b.BusinessType {
			score += weightBusinessType
		}
		weights += weightBusinessType
	}

	if len(a.TargetAudience) > 0 && len(b.TargetAudience) > 0 {
		score += jaccard(a.TargetAudience, b.TargetAudience) * weightAudience
		weights += weightAudience
	}

	if a.Budget.IsPositive() && b.Budget.IsPositive() {
		score += budgetRatio(a.Budget, b.Budget) * weightBudget
		weights += weightBudget
	}

	if weights == 0 {
		return 0
	}
	return score / weights
}

// CommonFeatures lists the human-readable traits two vendors share.
func (e *Engine) CommonFeatures(a, b VendorFacts) []string {
	common := []string{}

	if a.Industry == b.Industry && a.Industry != "" {
		common = append(common, fmt.Sprintf("Same industry: %s", a.Industry))
	}
	if a.Location == b.Location && a.Location != "" {
		common = append(common, fmt.Sprintf("Same location: %s", a.Location))
	}
	if shared := sharedStrings(a.Goals, b.Goals); len(shared) > 0 {
		if len(shared) > 3 {
			shared = shared[:3]
		}
		common = append(common, fmt.Sprintf("Shared goals: %s", strings.Join(shared, ", ")))
	}
	if budgetsWithinHalf(a.Budget, b.Budget) {
		common = append(common, "Similar budget range")
	}

	return common
}

// cityOf returns the first comma-delimited token of a location string.
func cityOf(location string) string {
	if i := strings.Index(location, ","); i >= 0 {
		return location[:i]
	}
	return location
}

func jaccard(a, b []string) float64 {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	union := make(map[string]struct{}, len(a)+len(b))
	for k := range set {
		union[k] = struct{}{}
	}
	intersection := 0
	seen := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		union[v] = struct{}{}
		if _, ok := set[v]; ok {
			intersection++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func budgetRatio(a, b decimal.Decimal) float64 {
	lo, hi := a, b
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	if hi.IsZero() {
		return 0
	}
	ratio, _ := lo.Div(hi).Float64()
	return ratio
}

// budgetsWithinHalf reports whether the budgets differ by less than 50% of
// the larger one.
func budgetsWithinHalf(a, b decimal.Decimal) bool {
	hi := decimal.Max(a, b)
	diff := a.Sub(b).Abs()
	return diff.LessThan(hi.Div(decimal.NewFromInt(2)))
}

// sharedStrings returns the sorted intersection of two string slices.
func sharedStrings(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	shared := []string{}
	added := make(map[string]struct{})
	for _, v := range b {
		if _, ok := set[v]; !ok {
			continue
		}
		if _, dup := added[v]; dup {
			continue
		}
		added[v] = struct{}{}
		shared = append(shared, v)
	}
	sort.Strings(shared)
	return shared
}
