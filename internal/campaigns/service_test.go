package campaigns

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

type stubCampaignRepo struct {
	rows map[uuid.UUID]*models.AdCampaign
}

func newStubCampaignRepo() *stubCampaignRepo {
	return &stubCampaignRepo{rows: map[uuid.UUID]*models.AdCampaign{}}
}

func (s *stubCampaignRepo) Create(ctx context.Context, campaign *models.AdCampaign) error {
	campaign.ID = uuid.New()
	s.rows[campaign.ID] = campaign
	return nil
}

func (s *stubCampaignRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.AdCampaign, error) {
	if c, ok := s.rows[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCampaignRepo) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.AdCampaign, error) {
	out := []models.AdCampaign{}
	for _, c := range s.rows {
		if c.VendorID == vendorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubCampaignRepo) UpdatePerformanceMetrics(ctx context.Context, id uuid.UUID, metrics dbtypes.JSONMap) error {
	if c, ok := s.rows[id]; ok {
		c.PerformanceMetrics = metrics
	}
	return nil
}

type stubVendorRepo struct {
	rows map[uuid.UUID]*models.VendorProfile
}

func (s *stubVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error) {
	if v, ok := s.rows[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(t *testing.T, campaignRepo *stubCampaignRepo, vendorRepo *stubVendorRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		CampaignRepo: campaignRepo,
		VendorRepo:   vendorRepo,
		Engine:       scoring.New(scoring.DefaultConfig()),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func vendorFixture(industry, location string) (*stubVendorRepo, *models.VendorProfile) {
	vendor := &models.VendorProfile{ID: uuid.New(), Industry: industry, Location: location}
	return &stubVendorRepo{rows: map[uuid.UUID]*models.VendorProfile{vendor.ID: vendor}}, vendor
}

func TestCreateDefaultsDailyBudgetAndPredicts(t *testing.T) {
	campaignRepo := newStubCampaignRepo()
	vendorRepo, vendor := vendorFixture("retail", "Austin, TX")
	svc := newTestService(t, campaignRepo, vendorRepo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dto, err := svc.Create(context.Background(), CreateCampaignDTO{
		VendorID:     vendor.ID,
		CampaignName: "Spring push",
		Platform:     enums.PlatformGoogle,
		Budget:       decimal.NewFromInt(3000),
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.CampaignStatusPending {
		t.Fatalf("status = %s, want pending", dto.Status)
	}
	if !dto.DailyBudget.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("daily budget = %s, want 100 (budget/30)", dto.DailyBudget)
	}

	// 10-day window: daily 300 * 1000 * 1.2 google multiplier.
	if got := dto.PerformanceMetrics["estimated_impressions"]; got != 360000 {
		t.Fatalf("impressions = %v, want 360000", got)
	}
	if got := dto.PerformanceMetrics["estimated_clicks"]; got != 7200 {
		t.Fatalf("clicks = %v, want 7200", got)
	}
	if got := dto.PerformanceMetrics["estimated_conversions"]; got != 360 {
		t.Fatalf("conversions = %v, want 360", got)
	}
	if got := dto.PerformanceMetrics["estimated_roi"]; got != 6.0 {
		t.Fatalf("roi = %v, want 6.0", got)
	}
}

func TestCreateKeepsExplicitDailyBudget(t *testing.T) {
	campaignRepo := newStubCampaignRepo()
	vendorRepo, vendor := vendorFixture("retail", "")
	svc := newTestService(t, campaignRepo, vendorRepo)

	daily := decimal.NewFromInt(25)
	start := time.Now()
	dto, err := svc.Create(context.Background(), CreateCampaignDTO{
		VendorID:     vendor.ID,
		CampaignName: "Explicit",
		Platform:     enums.PlatformFacebook,
		Budget:       decimal.NewFromInt(900),
		DailyBudget:  &daily,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !dto.DailyBudget.Equal(daily) {
		t.Fatalf("daily budget = %s, want 25", dto.DailyBudget)
	}
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	campaignRepo := newStubCampaignRepo()
	vendorRepo, vendor := vendorFixture("retail", "")
	svc := newTestService(t, campaignRepo, vendorRepo)

	start := time.Now()
	_, err := svc.Create(context.Background(), CreateCampaignDTO{
		VendorID:     vendor.ID,
		CampaignName: "Backwards",
		Platform:     enums.PlatformGoogle,
		Budget:       decimal.NewFromInt(100),
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, -1),
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOptimizeSuggestions(t *testing.T) {
	campaignRepo := newStubCampaignRepo()
	vendorRepo, _ := vendorFixture("retail", "")
	svc := newTestService(t, campaignRepo, vendorRepo)

	start := time.Now()
	campaign := &models.AdCampaign{
		CampaignName: "Thin",
		Platform:     enums.PlatformTwitter,
		Budget:       decimal.NewFromInt(50),
		DailyBudget:  decimal.NewFromInt(2),
		Keywords:     dbtypes.StringList{"one"},
		AdCopy:       "short",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 3),
		Status:       enums.CampaignStatusActive,
	}
	_ = campaignRepo.Create(context.Background(), campaign)

	report, err := svc.Optimize(context.Background(), campaign.ID)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if len(report.Optimizations) != 4 {
		t.Fatalf("expected 4 suggestions, got %d: %+v", len(report.Optimizations), report.Optimizations)
	}
	areas := map[string]bool{}
	for _, o := range report.Optimizations {
		areas[o.Area] = true
	}
	for _, want := range []string{"budget", "keywords", "ad_copy", "duration"} {
		if !areas[want] {
			t.Fatalf("missing %q suggestion", want)
		}
	}
	if report.CurrentStatus != "active" {
		t.Fatalf("status = %s", report.CurrentStatus)
	}
}

func TestPlatformRecommendations(t *testing.T) {
	campaignRepo := newStubCampaignRepo()
	vendorRepo, vendor := vendorFixture("technology", "local downtown strip")
	svc := newTestService(t, campaignRepo, vendorRepo)

	recs, err := svc.PlatformRecommendations(context.Background(), vendor.ID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}

	platforms := make([]string, 0, len(recs))
	for _, r := range recs {
		platforms = append(platforms, r.Platform)
	}
	want := []string{"linkedin", "google", "facebook"}
	if len(platforms) != len(want) {
		t.Fatalf("platforms = %v, want %v", platforms, want)
	}
	for i := range want {
		if platforms[i] != want[i] {
			t.Fatalf("platforms = %v, want %v", platforms, want)
		}
	}
}

func TestPlatformRecommendationsMissingVendor(t *testing.T) {
	svc := newTestService(t, newStubCampaignRepo(), &stubVendorRepo{rows: map[uuid.UUID]*models.VendorProfile{}})
	recs, err := svc.PlatformRecommendations(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty slice, got %v", recs)
	}
}
