package scoring

import "testing"

func TestTrustScoreClampScenario(t *testing.T) {
	e := testEngine()
	res := e.TrustScore(TrustInputs{
		CollaborationsTotal:     3,
		CollaborationsCompleted: 2,
		CampaignsTotal:          5,
		CampaignsCompleted:      3,
		ReviewRatings:           []int{4, 4, 4, 4},
	})

	// 0.667*30 + 4.0*10 + 0.6*20 + 40 = 112, clamped.
	if res.Score != 100 {
		t.Fatalf("score = %f, want clamped 100", res.Score)
	}
	if res.AvgRating != 4.0 {
		t.Fatalf("avg rating = %f, want 4.0", res.AvgRating)
	}
}

func TestTrustScoreNoActivity(t *testing.T) {
	e := testEngine()
	res := e.TrustScore(TrustInputs{})

	// Rates default to 0, rating to 3.0: 0 + 30 + 0 + 40.
	if res.Score != 70 {
		t.Fatalf("score = %f, want 70", res.Score)
	}
	if res.CollabRate != 0 || res.CampaignRate != 0 {
		t.Fatalf("rates = %f/%f, want 0/0", res.CollabRate, res.CampaignRate)
	}
	if res.AvgRating != 3.0 {
		t.Fatalf("avg rating = %f, want default 3.0", res.AvgRating)
	}
}

func TestTrustScoreIdempotentRecompute(t *testing.T) {
	e := testEngine()
	in := TrustInputs{
		CollaborationsTotal:     4,
		CollaborationsCompleted: 1,
		CampaignsTotal:          2,
		CampaignsCompleted:      2,
		ReviewRatings:           []int{5, 1},
	}

	first := e.TrustScore(in)
	second := e.TrustScore(in)
	if first != second {
		t.Fatalf("recompute differs: %+v vs %+v", first, second)
	}
	// 0.25*30 + 3.0*10 + 1.0*20 + 40 = 97.5
	if first.Score != 97.5 {
		t.Fatalf("score = %f, want 97.5", first.Score)
	}
}

func TestTrustScoreLowRatings(t *testing.T) {
	e := testEngine()
	res := e.TrustScore(TrustInputs{ReviewRatings: []int{1}})

	// 1.0*10 + 40 = 50, inside bounds without clamping.
	if res.Score != 50 {
		t.Fatalf("score = %f, want 50", res.Score)
	}
}
