package scoring

// TrustInputs aggregates the raw counts the trust formula reads. The caller
// re-reads all underlying rows on every recomputation; nothing here is
// incremental.
type TrustInputs struct {
	CollaborationsTotal     int
	CollaborationsCompleted int
	CampaignsTotal          int
	CampaignsCompleted      int
	ReviewRatings           []int
}

// TrustResult is the recomputed trust score plus its component rates.
type TrustResult struct {
	Score        float64
	CollabRate   float64
	AvgRating    float64
	CampaignRate float64
}

const (
	trustBase          = 40.0
	defaultReviewScore = 3.0
)

// TrustScore computes the vendor trust score in [0,100]:
// collaboration completion weighted 30, average review rating weighted 10,
// campaign completion weighted 20, on top of a base of 40.
func (e *Engine) TrustScore(in TrustInputs) TrustResult {
	res := TrustResult{AvgRating: defaultReviewScore}

	if in.CollaborationsTotal > 0 {
		res.CollabRate = float64(in.CollaborationsCompleted) / float64(in.CollaborationsTotal)
	}
	if in.CampaignsTotal > 0 {
		res.CampaignRate = float64(in.CampaignsCompleted) / float64(in.CampaignsTotal)
	}
	if len(in.ReviewRatings) > 0 {
		sum := 0
		for _, r := range in.ReviewRatings {
			sum += r
		}
		res.AvgRating = float64(sum) / float64(len(in.ReviewRatings))
	}

	score := res.CollabRate*30 + res.AvgRating*10 + res.CampaignRate*20 + trustBase
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.Score = score
	return res
}
