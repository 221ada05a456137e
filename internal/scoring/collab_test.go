package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCollabScoreComplementaryPair(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "restaurant", Location: "Portland, OR", Budget: decimal.NewFromInt(8000)}
	b := VendorFacts{Industry: "food_delivery", Location: "Portland, OR", Budget: decimal.NewFromInt(9000)}

	res := e.CollabScore(a, b)
	// complementary 30 + location 20 + complementary skills 25
	// (food_delivery has no skill entry, so zero shared skills).
	if res.Score != 75 {
		t.Fatalf("score = %d, want 75", res.Score)
	}
	want := []string{"cross_promotion", "local_partnership", "skill_exchange"}
	if len(res.CollaborationTypes) != len(want) {
		t.Fatalf("types = %v, want %v", res.CollaborationTypes, want)
	}
	for i, typ := range want {
		if res.CollaborationTypes[i] != typ {
			t.Fatalf("types[%d] = %s, want %s", i, res.CollaborationTypes[i], typ)
		}
	}
}

func TestCollabScoreSymmetricComplementarity(t *testing.T) {
	e := testEngine()
	a := VendorFacts{Industry: "food_delivery"}
	b := VendorFacts{Industry: "restaurant"}

	// Pair table matches in either order.
	if got, rev := e.CollabScore(a, b).Score, e.CollabScore(b, a).Score; got != rev {
		t.Fatalf("scores differ by argument order: %d vs %d", got, rev)
	}
}

func TestCollabScoreSharedGoalCap(t *testing.T) {
	e := testEngine()
	goals := []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7"}
	a := VendorFacts{Industry: "retail", Goals: goals}
	b := VendorFacts{Industry: "retail", Goals: goals}

	res := e.CollabScore(a, b)
	// Same industry shares the full retail skill set, so no skill points;
	// seven shared goals would be 35 uncapped, held at 25.
	if res.Score != 25 {
		t.Fatalf("score = %d, want capped 25", res.Score)
	}
}

func TestCollabScoreThresholdBoundary(t *testing.T) {
	e := testEngine()
	// Location-only plus one shared goal: 20 + 5 = 25, below threshold.
	below := e.CollabScore(
		VendorFacts{Industry: "retail", Location: "Austin, TX", Goals: []string{"g1"}},
		VendorFacts{Industry: "retail", Location: "Austin, TX", Goals: []string{"g1"}},
	)
	if below.Score >= CollabThreshold {
		t.Fatalf("score %d unexpectedly at or above threshold", below.Score)
	}

	// Location plus four shared goals lands exactly on 40.
	at := e.CollabScore(
		VendorFacts{Industry: "retail", Location: "Austin, TX", Goals: []string{"g1", "g2", "g3", "g4"}},
		VendorFacts{Industry: "retail", Location: "Austin, TX", Goals: []string{"g1", "g2", "g3", "g4"}},
	)
	if at.Score != CollabThreshold {
		t.Fatalf("score = %d, want %d", at.Score, CollabThreshold)
	}
}

func TestCollabSynergyAreas(t *testing.T) {
	e := testEngine()
	a := VendorFacts{
		Industry:       "retail",
		Location:       "Boise, ID",
		TargetAudience: []string{"families"},
		Budget:         decimal.NewFromInt(2000),
		Goals:          []string{"increase_sales"},
	}
	b := VendorFacts{
		Industry:       "consulting",
		Location:       "Boise, ID",
		TargetAudience: []string{"families", "professionals"},
		Budget:         decimal.NewFromInt(20000),
		Goals:          []string{"increase_sales"},
	}

	res := e.CollabScore(a, b)
	want := []string{"shared_customer_base", "resource_pooling", "joint_marketing", "local_partnership"}
	if len(res.SynergyAreas) != len(want) {
		t.Fatalf("synergy = %v, want %v", res.SynergyAreas, want)
	}
	for i, area := range want {
		if res.SynergyAreas[i] != area {
			t.Fatalf("synergy[%d] = %s, want %s", i, res.SynergyAreas[i], area)
		}
	}
}

func TestCollabScoreInjectedTables(t *testing.T) {
	e := New(Config{
		ComplementaryIndustries: [][2]string{{"alpha", "beta"}},
		IndustrySkills: map[string][]string{
			"alpha": {"s1", "s2"},
			"beta":  {"s1", "s2"},
		},
		PlatformMultipliers: map[string]float64{},
	})

	res := e.CollabScore(VendorFacts{Industry: "alpha"}, VendorFacts{Industry: "beta"})
	// Complementary pair without skill points: the injected sets share two
	// skills, so only the 30-point industry bucket applies.
	if res.Score != 30 {
		t.Fatalf("score = %d, want 30", res.Score)
	}
}
