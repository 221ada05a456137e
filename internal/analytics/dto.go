package analytics

// CampaignSummaryDTO aggregates a vendor's campaign activity for the period.
type CampaignSummaryDTO struct {
	Total      int64   `json:"total"`
	Active     int64   `json:"active"`
	Completed  int64   `json:"completed"`
	TotalSpent float64 `json:"total_spent"`
	AverageROI float64 `json:"average_roi"`
}

// ContentTypeCountDTO is one content-type bucket.
type ContentTypeCountDTO struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// ContentSummaryDTO aggregates a vendor's content activity for the period.
type ContentSummaryDTO struct {
	Total     int64                 `json:"total"`
	ByType    []ContentTypeCountDTO `json:"by_type"`
	Posted    int64                 `json:"posted"`
	Scheduled int64                 `json:"scheduled"`
}

// CollaborationSummaryDTO aggregates collaboration activity for the period.
type CollaborationSummaryDTO struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Active    int64 `json:"active"`
}

// PlatformPerformanceDTO is per-platform campaign performance, ordered by
// spend.
type PlatformPerformanceDTO struct {
	Platform   string  `json:"platform"`
	Campaigns  int64   `json:"campaigns"`
	AverageROI float64 `json:"avg_roi"`
	TotalSpent float64 `json:"total_spent"`
}

// SummaryMetricsDTO carries the derived period-level ratios.
type SummaryMetricsDTO struct {
	EngagementRate    float64 `json:"engagement_rate"`
	CostPerCampaign   float64 `json:"cost_per_campaign"`
	ContentFrequency  float64 `json:"content_frequency"`
	CollaborationRate float64 `json:"collaboration_rate"`
}

// TrustSnapshotDTO is the current trust standing attached to the dashboard.
type TrustSnapshotDTO struct {
	Score          float64 `json:"score"`
	Reliability    float64 `json:"reliability"`
	CompletionRate float64 `json:"completion_rate"`
}

// DashboardDTO is the full vendor analytics payload.
type DashboardDTO struct {
	Period              string                   `json:"period"`
	Campaigns           CampaignSummaryDTO       `json:"campaigns"`
	Content             ContentSummaryDTO        `json:"content"`
	Collaborations      CollaborationSummaryDTO  `json:"collaborations"`
	Pitches             int64                    `json:"pitches"`
	PlatformPerformance []PlatformPerformanceDTO `json:"platform_performance"`
	SummaryMetrics      SummaryMetricsDTO        `json:"summary_metrics"`
	Trust               TrustSnapshotDTO         `json:"trust"`
}

// InsightDTO is one actionable observation derived from the dashboard.
type InsightDTO struct {
	Type           string `json:"type"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

// WeekDTO is one bucket of the weekly trend series.
type WeekDTO struct {
	Week      string  `json:"week"`
	Campaigns int64   `json:"campaigns"`
	Spending  float64 `json:"spending"`
	Content   int64   `json:"content"`
}

// GrowthDTO compares the latest week against the one before it.
type GrowthDTO struct {
	CampaignsGrowth float64 `json:"campaigns_growth"`
	SpendingGrowth  float64 `json:"spending_growth"`
	ContentGrowth   float64 `json:"content_growth"`
}

// TrendsDTO is the four-week activity series with growth rates.
type TrendsDTO struct {
	WeeklyData        []WeekDTO `json:"weekly_data"`
	CurrentVsPrevious GrowthDTO `json:"current_vs_previous"`
}
