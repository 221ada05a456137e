package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testEngine() *Engine {
	return New(DefaultConfig())
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarityFullProfileScenario(t *testing.T) {
	e := testEngine()
	a := VendorFacts{
		Industry:       "technology",
		Location:       "San Francisco, CA",
		TargetAudience: []string{"startups", "entrepreneurs"},
		Budget:         decimal.NewFromInt(10000),
	}
	b := VendorFacts{
		Industry:       "technology",
		Location:       "San Francisco, CA",
		TargetAudience: []string{"startups"},
		Budget:         decimal.NewFromInt(8000),
	}

	// industry 0.40 + location 0.20 + jaccard 0.5*0.15 + ratio 0.8*0.10,
	// business_type absent on both so its weight drops out.
	want := (0.40 + 0.20 + 0.075 + 0.08) / (0.40 + 0.20 + 0.15 + 0.10)
	got := e.Similarity(a, b)
	if !approxEqual(got, want) {
		t.Fatalf("similarity = %f, want %f", got, want)
	}
	if got <= SimilarityThreshold {
		t.Fatalf("expected score %f above threshold", got)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	e := testEngine()
	a := VendorFacts{
		Industry:       "retail",
		BusinessType:   "b2c",
		Location:       "Austin, TX",
		TargetAudience: []string{"families", "students"},
		Budget:         decimal.NewFromInt(3000),
		Goals:          []string{"increase_sales"},
	}
	b := VendorFacts{
		Industry:       "retail",
		BusinessType:   "b2b",
		Location:       "Austin, TX",
		TargetAudience: []string{"families"},
		Budget:         decimal.NewFromInt(4500),
		Goals:          []string{"brand_awareness"},
	}

	if got, rev := e.Similarity(a, b), e.Similarity(b, a); !approxEqual(got, rev) {
		t.Fatalf("similarity not symmetric: %f vs %f", got, rev)
	}
}

func TestSimilarityCityPrefixMatch(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "retail", Location: "Austin, TX"}
	b := VendorFacts{Industry: "retail", Location: "Austin, Texas"}

	// industry 0.40 + city-level 0.10 over 0.60 counted weight.
	want := (0.40 + 0.10) / 0.60
	if got := e.Similarity(a, b); !approxEqual(got, want) {
		t.Fatalf("similarity = %f, want %f", got, want)
	}
}

func TestSimilarityMissingLocationWeightStillCounted(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "retail", Location: ""}
	b := VendorFacts{Industry: "retail", Location: "Austin, TX"}

	// Location contributes nothing but its 0.20 weight stays in the
	// denominator, unlike the other optional factors.
	want := 0.40 / 0.60
	if got := e.Similarity(a, b); !approxEqual(got, want) {
		t.Fatalf("similarity = %f, want %f", got, want)
	}
}

func TestSimilarityAudienceExcludedWhenEmpty(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "retail", Location: "Austin, TX", TargetAudience: []string{"families"}}
	b := VendorFacts{Industry: "retail", Location: "Austin, TX"}

	// Audience factor drops out of both numerator and denominator when one
	// side has no audience at all.
	want := (0.40 + 0.20) / 0.60
	if got := e.Similarity(a, b); !approxEqual(got, want) {
		t.Fatalf("similarity = %f, want %f", got, want)
	}
}

func TestSimilarityBudgetExcludedWhenZero(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "retail", Location: "Austin, TX", Budget: decimal.NewFromInt(1000)}
	b := VendorFacts{Industry: "retail", Location: "Austin, TX", Budget: decimal.Zero}

	want := (0.40 + 0.20) / 0.60
	if got := e.Similarity(a, b); !approxEqual(got, want) {
		t.Fatalf("similarity = %f, want %f", got, want)
	}
}

func TestSimilarityIdenticalProfiles(t *testing.T) {
	e := testEngine()
	v := VendorFacts{
		Industry:       "technology",
		BusinessType:   "b2b",
		Location:       "Denver, CO",
		TargetAudience: []string{"startups"},
		Budget:         decimal.NewFromInt(5000),
	}
	if got := e.Similarity(v, v); !approxEqual(got, 1.0) {
		t.Fatalf("identical profiles scored %f, want 1.0", got)
	}
}

func TestCommonFeatures(t *testing.T) {
	e := testEngine()
	a := VendorFacts{
		Industry: "retail",
		Location: "Austin, TX",
		Budget:   decimal.NewFromInt(4000),
		Goals:    []string{"increase_sales", "brand_awareness", "retention", "expansion"},
	}
	b := VendorFacts{
		Industry: "retail",
		Location: "Austin, TX",
		Budget:   decimal.NewFromInt(3000),
		Goals:    []string{"expansion", "increase_sales", "brand_awareness", "retention"},
	}

	features := e.CommonFeatures(a, b)
	if len(features) != 4 {
		t.Fatalf("expected 4 features, got %d: %v", len(features), features)
	}
	if features[0] != "Same industry: retail" {
		t.Fatalf("unexpected first feature: %s", features[0])
	}
	if features[1] != "Same location: Austin, TX" {
		t.Fatalf("unexpected second feature: %s", features[1])
	}
	// Shared-goal listing caps at three entries.
	if !strings.HasPrefix(features[2], "Shared goals: ") || strings.Count(features[2], ",") != 2 {
		t.Fatalf("unexpected goals feature: %s", features[2])
	}
	if features[3] != "Similar budget range" {
		t.Fatalf("unexpected budget feature: %s", features[3])
	}
}

func TestCommonFeaturesBudgetOutsideHalf(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Budget: decimal.NewFromInt(10000)}
	b := VendorFacts{Budget: decimal.NewFromInt(4000)}

	for _, f := range e.CommonFeatures(a, b) {
		if f == "Similar budget range" {
			t.Fatal("budgets differing by more than half should not match")
		}
	}
}
