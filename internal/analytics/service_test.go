package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
)

type stubAnalyticsRepo struct {
	campaigns CampaignStats
	content   ContentStats
	collabs   CollaborationStats
	platforms []PlatformStats
	pitches   int64
	trust     *models.TrustScore
	windows   []ActivityWindow
	budget    float64

	windowCalls int
}

func (s *stubAnalyticsRepo) CampaignStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CampaignStats, error) {
	out := s.campaigns
	return &out, nil
}

func (s *stubAnalyticsRepo) ContentStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*ContentStats, error) {
	out := s.content
	return &out, nil
}

func (s *stubAnalyticsRepo) CollaborationStats(ctx context.Context, vendorID uuid.UUID, since time.Time) (*CollaborationStats, error) {
	out := s.collabs
	return &out, nil
}

func (s *stubAnalyticsRepo) PlatformPerformance(ctx context.Context, vendorID uuid.UUID, since time.Time) ([]PlatformStats, error) {
	return s.platforms, nil
}

func (s *stubAnalyticsRepo) PitchCount(ctx context.Context, vendorID uuid.UUID, since time.Time) (int64, error) {
	return s.pitches, nil
}

func (s *stubAnalyticsRepo) TrustSnapshot(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error) {
	if s.trust == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.trust, nil
}

func (s *stubAnalyticsRepo) ActivityBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*ActivityWindow, error) {
	window := ActivityWindow{}
	if s.windowCalls < len(s.windows) {
		window = s.windows[s.windowCalls]
	}
	s.windowCalls++
	return &window, nil
}

func (s *stubAnalyticsRepo) VendorBudget(ctx context.Context, vendorID uuid.UUID) (float64, error) {
	return s.budget, nil
}

func newTestService(t *testing.T, repo *stubAnalyticsRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestDashboardSummaryMetrics(t *testing.T) {
	repo := &stubAnalyticsRepo{
		campaigns: CampaignStats{Total: 4, Active: 2, Completed: 1, TotalSpent: 2000, AverageROI: 2.0},
		content:   ContentStats{Total: 15, Posted: 10, Scheduled: 5, ByType: []ContentTypeCount{{ContentType: "post", Count: 12}, {ContentType: "promotion", Count: 3}}},
		collabs:   CollaborationStats{Total: 6, Completed: 3, Active: 2},
		platforms: []PlatformStats{{Platform: "google", Campaigns: 3, AverageROI: 2.5, TotalSpent: 1500}},
		pitches:   2,
		trust:     &models.TrustScore{Score: 82, Reliability: 0.8, CompletionRate: 0.9},
	}
	svc := newTestService(t, repo)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), 30)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if dash.Period != "Last 30 days" {
		t.Errorf("period = %q", dash.Period)
	}
	if dash.Campaigns.Total != 4 || dash.Campaigns.TotalSpent != 2000 {
		t.Errorf("unexpected campaign summary %+v", dash.Campaigns)
	}
	if dash.SummaryMetrics.EngagementRate != 0.2 {
		t.Errorf("engagement rate = %v, want 0.2", dash.SummaryMetrics.EngagementRate)
	}
	if dash.SummaryMetrics.CostPerCampaign != 500 {
		t.Errorf("cost per campaign = %v, want 500", dash.SummaryMetrics.CostPerCampaign)
	}
	if dash.SummaryMetrics.ContentFrequency != 0.5 {
		t.Errorf("content frequency = %v, want 0.5", dash.SummaryMetrics.ContentFrequency)
	}
	if dash.SummaryMetrics.CollaborationRate != 0.1 {
		t.Errorf("collaboration rate = %v, want 0.1", dash.SummaryMetrics.CollaborationRate)
	}
	if dash.Trust.Score != 82 {
		t.Errorf("trust score = %v, want 82", dash.Trust.Score)
	}
	if dash.Pitches != 2 {
		t.Errorf("pitches = %d, want 2", dash.Pitches)
	}
}

func TestDashboardDefaults(t *testing.T) {
	svc := newTestService(t, &stubAnalyticsRepo{})

	dash, err := svc.Dashboard(context.Background(), uuid.New(), 0)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Period != "Last 30 days" {
		t.Errorf("period defaults to 30 days, got %q", dash.Period)
	}
	// No ROI data keeps the floor engagement rate; missing trust row falls
	// back to the neutral snapshot.
	if dash.SummaryMetrics.EngagementRate != 0.1 {
		t.Errorf("engagement rate = %v, want 0.1", dash.SummaryMetrics.EngagementRate)
	}
	if dash.SummaryMetrics.CostPerCampaign != 0 {
		t.Errorf("cost per campaign = %v, want 0", dash.SummaryMetrics.CostPerCampaign)
	}
	if dash.Trust.Score != 50 || dash.Trust.Reliability != 0.5 {
		t.Errorf("unexpected trust fallback %+v", dash.Trust)
	}
}

func TestDashboardEngagementRateCap(t *testing.T) {
	repo := &stubAnalyticsRepo{
		campaigns: CampaignStats{Total: 1, AverageROI: 8.0},
	}
	svc := newTestService(t, repo)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), 30)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.SummaryMetrics.EngagementRate != 0.5 {
		t.Errorf("engagement rate = %v, want cap 0.5", dash.SummaryMetrics.EngagementRate)
	}
}

func TestInsightsThresholds(t *testing.T) {
	repo := &stubAnalyticsRepo{
		campaigns: CampaignStats{Total: 3, TotalSpent: 200, AverageROI: 1.2},
		content:   ContentStats{Total: 3},
		collabs:   CollaborationStats{Total: 1, Completed: 1},
		platforms: []PlatformStats{
			{Platform: "linkedin", Campaigns: 1, AverageROI: 3.0, TotalSpent: 100},
			{Platform: "facebook", Campaigns: 2, AverageROI: 0.8, TotalSpent: 100},
		},
		budget: 5000,
	}
	svc := newTestService(t, repo)

	insights, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}

	titles := []string{}
	for _, insight := range insights {
		titles = append(titles, insight.Title)
	}
	want := []string{
		"Low Campaign ROI",
		"High Performing Platform",
		"Low Content Frequency",
		"Limited Collaborations",
		"Low Budget Utilization",
	}
	if len(titles) != len(want) {
		t.Fatalf("got insights %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("insight[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestInsightsQuietWhenHealthy(t *testing.T) {
	repo := &stubAnalyticsRepo{
		campaigns: CampaignStats{Total: 2, TotalSpent: 4000, AverageROI: 2.0},
		content:   ContentStats{Total: 20},
		collabs:   CollaborationStats{Total: 5, Completed: 4},
		budget:    5000,
	}
	svc := newTestService(t, repo)

	insights, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(insights) != 0 {
		t.Errorf("expected no insights, got %+v", insights)
	}
}

func TestTrendsGrowth(t *testing.T) {
	repo := &stubAnalyticsRepo{
		windows: []ActivityWindow{
			{Campaigns: 1, Spending: 100, Content: 2},
			{Campaigns: 1, Spending: 150, Content: 3},
			{Campaigns: 2, Spending: 200, Content: 4},
			{Campaigns: 3, Spending: 300, Content: 6},
		},
	}
	svc := newTestService(t, repo)

	trends, err := svc.Trends(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}
	if len(trends.WeeklyData) != 4 {
		t.Fatalf("got %d weeks, want 4", len(trends.WeeklyData))
	}
	if trends.WeeklyData[0].Week != "Week 1" || trends.WeeklyData[3].Week != "Week 4" {
		t.Errorf("unexpected week labels %+v", trends.WeeklyData)
	}
	if trends.CurrentVsPrevious.CampaignsGrowth != 50 {
		t.Errorf("campaigns growth = %v, want 50", trends.CurrentVsPrevious.CampaignsGrowth)
	}
	if trends.CurrentVsPrevious.SpendingGrowth != 50 {
		t.Errorf("spending growth = %v, want 50", trends.CurrentVsPrevious.SpendingGrowth)
	}
	if trends.CurrentVsPrevious.ContentGrowth != 50 {
		t.Errorf("content growth = %v, want 50", trends.CurrentVsPrevious.ContentGrowth)
	}
}

func TestTrendsZeroPreviousWeek(t *testing.T) {
	repo := &stubAnalyticsRepo{
		windows: []ActivityWindow{{}, {}, {}, {Campaigns: 5, Spending: 500, Content: 2}},
	}
	svc := newTestService(t, repo)

	trends, err := svc.Trends(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}
	if trends.CurrentVsPrevious.CampaignsGrowth != 0 {
		t.Errorf("growth against an empty week should be 0, got %v", trends.CurrentVsPrevious.CampaignsGrowth)
	}
}
