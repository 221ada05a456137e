package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// PitchFacts carries the pitch fields plus the owning vendor's industry and
// location, which investor matching scores against.
type PitchFacts struct {
	Industry      string
	Location      string
	FundingAmount string
}

// InvestorFacts is the investor slice used for match scoring.
type InvestorFacts struct {
	Industries         []string
	LocationPreference string
	CheckSizeMin       decimal.Decimal
	CheckSizeMax       decimal.Decimal
}

// PitchContent carries the free-text pitch fields the quality score reads.
type PitchContent struct {
	ProblemStatement string
	Solution         string
	MarketSize       string
	Traction         string
	FundingAmount    string
}

// Funding bands for pitch quality and the fallback for amounts that fail to
// parse. An unparsable amount degrades to the low-information bucket rather
// than erroring.
var (
	seedFloor   = decimal.NewFromInt(50000)
	seedCeiling = decimal.NewFromInt(500000)
	seriesACeil = decimal.NewFromInt(2000000)
)

// InvestorScore rates a pitch against a single investor, in [0,100].
func (e *Engine) InvestorScore(pitch PitchFacts, investor InvestorFacts) int {
	score := 0

	if containsString(investor.Industries, pitch.Industry) {
		score += 40
	}
	if investor.LocationPreference != "" &&
		strings.Contains(investor.LocationPreference, pitch.Location) {
		score += 30
	}

	amount, err := parseAmount(pitch.FundingAmount)
	switch {
	case err != nil:
		score += 10
	case amount.GreaterThanOrEqual(investor.CheckSizeMin) && amount.LessThanOrEqual(investor.CheckSizeMax):
		score += 30
	case amount.LessThan(investor.CheckSizeMin):
		score += 15
	default:
		score += 10
	}

	return score
}

// PitchScore rates pitch quality in [0,100] from content heuristics: how
// developed the problem and solution statements are, market-size language,
// traction signals, and whether the ask sits in a sensible funding band.
func (e *Engine) PitchScore(pitch PitchContent) int {
	score := 0

	if utf8.RuneCountInString(pitch.ProblemStatement) > 100 {
		score += 15
	}
	if strings.Contains(strings.ToLower(pitch.ProblemStatement), "pain") {
		score += 5
	}

	if utf8.RuneCountInString(pitch.Solution) > 50 {
		score += 20
	}

	market := strings.ToLower(pitch.MarketSize)
	switch {
	case strings.Contains(market, "billion"):
		score += 20
	case strings.Contains(market, "million"):
		score += 15
	default:
		score += 10
	}

	if pitch.Traction != "" {
		traction := strings.ToLower(pitch.Traction)
		if strings.Contains(traction, "revenue") {
			score += 15
		}
		if strings.Contains(traction, "users") {
			score += 5
		}
	}

	amount, err := parseAmount(pitch.FundingAmount)
	switch {
	case err != nil:
		score += 10
	case amount.GreaterThanOrEqual(seedFloor) && amount.LessThanOrEqual(seedCeiling):
		score += 20
	case amount.GreaterThan(seedCeiling) && amount.LessThanOrEqual(seriesACeil):
		score += 15
	default:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
