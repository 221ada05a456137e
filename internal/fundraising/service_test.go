package fundraising

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
)

type stubPitchRepo struct {
	pitches   map[uuid.UUID]*models.Pitch
	investors []models.Investor
	scoreSets int
}

func newStubPitchRepo() *stubPitchRepo {
	return &stubPitchRepo{pitches: map[uuid.UUID]*models.Pitch{}}
}

func (s *stubPitchRepo) CreatePitch(ctx context.Context, pitch *models.Pitch) error {
	pitch.ID = uuid.New()
	s.pitches[pitch.ID] = pitch
	return nil
}

func (s *stubPitchRepo) FindPitchByID(ctx context.Context, id uuid.UUID) (*models.Pitch, error) {
	if p, ok := s.pitches[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPitchRepo) ListPitchesForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Pitch, error) {
	out := []models.Pitch{}
	for _, p := range s.pitches {
		if p.VendorID == vendorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPitchRepo) SetInvestorInterest(ctx context.Context, id uuid.UUID, score int) error {
	s.scoreSets++
	if p, ok := s.pitches[id]; ok {
		p.InvestorInterest = score
	}
	return nil
}

func (s *stubPitchRepo) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	return s.investors, nil
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

func newTestService(t *testing.T, pitchRepo *stubPitchRepo, vendorRepo *stubVendorRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		PitchRepo:  pitchRepo,
		VendorRepo: vendorRepo,
		Engine:     scoring.New(scoring.DefaultConfig()),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func vendorFixture() (*stubVendorRepo, *models.VendorProfile) {
	vendor := &models.VendorProfile{
		ID:       uuid.New(),
		Industry: "technology",
		Location: "San Francisco",
	}
	return &stubVendorRepo{rows: map[uuid.UUID]*models.VendorProfile{vendor.ID: vendor}}, vendor
}

func TestCreatePitchScoresOnce(t *testing.T) {
	pitchRepo := newStubPitchRepo()
	vendorRepo, vendor := vendorFixture()
	svc := newTestService(t, pitchRepo, vendorRepo)

	dto, err := svc.CreatePitch(context.Background(), CreatePitchDTO{
		VendorID:         vendor.ID,
		Title:            "Fix onboarding",
		ProblemStatement: strings.Repeat("p", 150) + " pain",
		Solution:         strings.Repeat("s", 60),
		MarketSize:       "$10B total addressable market",
		Traction:         "100+ beta users, 95% satisfaction",
		FundingAmount:    "300000",
	})
	if err != nil {
		t.Fatalf("create pitch: %v", err)
	}
	if dto.InvestorInterest != 85 {
		t.Fatalf("investor interest = %d, want 85", dto.InvestorInterest)
	}
	if dto.Status != "draft" {
		t.Fatalf("status = %s, want draft", dto.Status)
	}
	if dto.Timeline != "6-12 months" {
		t.Fatalf("timeline default = %s", dto.Timeline)
	}
	if pitchRepo.scoreSets != 1 {
		t.Fatalf("expected exactly one score write, got %d", pitchRepo.scoreSets)
	}
}

func TestFindInvestorMatchesThresholdAndOrder(t *testing.T) {
	pitchRepo := newStubPitchRepo()
	vendorRepo, vendor := vendorFixture()
	svc := newTestService(t, pitchRepo, vendorRepo)

	created, err := svc.CreatePitch(context.Background(), CreatePitchDTO{
		VendorID:         vendor.ID,
		Title:            "Round",
		ProblemStatement: "short",
		Solution:         "short",
		MarketSize:       "niche",
		FundingAmount:    "250000",
	})
	if err != nil {
		t.Fatalf("create pitch: %v", err)
	}

	pitchRepo.investors = []models.Investor{
		{
			Name:               "Full Fit",
			Firm:               "Apex",
			Industries:         dbtypes.StringList{"technology"},
			LocationPreference: "San Francisco Bay Area",
			CheckSizeMin:       decimal.NewFromInt(100000),
			CheckSizeMax:       decimal.NewFromInt(1000000),
		},
		{
			Name:         "Industry Only",
			Industries:   dbtypes.StringList{"technology"},
			CheckSizeMin: decimal.NewFromInt(1000000),
			CheckSizeMax: decimal.NewFromInt(5000000),
		},
		{
			Name:         "No Fit",
			Industries:   dbtypes.StringList{"agriculture"},
			CheckSizeMin: decimal.NewFromInt(1000000),
			CheckSizeMax: decimal.NewFromInt(5000000),
		},
	}

	matches, err := svc.FindInvestorMatches(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find matches: %v", err)
	}
	// Full Fit scores 100; Industry Only scores 40+15=55; No Fit scores 15.
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].Investor != "Full Fit" || matches[0].MatchScore != 100 {
		t.Fatalf("unexpected top match: %+v", matches[0])
	}
	if matches[1].Investor != "Industry Only" || matches[1].MatchScore != 55 {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}
}

func TestFindInvestorMatchesMissingPitch(t *testing.T) {
	vendorRepo, _ := vendorFixture()
	svc := newTestService(t, newStubPitchRepo(), vendorRepo)

	matches, err := svc.FindInvestorMatches(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected nil error for missing pitch, got %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty slice, got %v", matches)
	}
}

func TestPitchTemplateFallback(t *testing.T) {
	vendorRepo, _ := vendorFixture()
	svc := newTestService(t, newStubPitchRepo(), vendorRepo)

	tech := svc.PitchTemplate("technology")
	if len(tech.Slides) != 8 || tech.Slides[0].Title != "Problem" {
		t.Fatalf("unexpected technology template: %+v", tech)
	}

	fallback := svc.PitchTemplate("carpentry")
	if fallback.Slides[0].Title != "Problem" {
		t.Fatalf("expected technology fallback, got %+v", fallback)
	}

	restaurant := svc.PitchTemplate("restaurant")
	if restaurant.Slides[0].Title != "Concept" {
		t.Fatalf("unexpected restaurant template: %+v", restaurant)
	}
}
