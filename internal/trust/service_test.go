package trust

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

type stubTrustRepo struct {
	scores    map[uuid.UUID]*models.TrustScore
	reviews   []*models.Review
	events    []*models.TrustEvent
	campaigns map[uuid.UUID][2]int64
	upserts   int
}

func newStubTrustRepo() *stubTrustRepo {
	return &stubTrustRepo{
		scores:    map[uuid.UUID]*models.TrustScore{},
		campaigns: map[uuid.UUID][2]int64{},
	}
}

func (s *stubTrustRepo) UpsertScore(ctx context.Context, score *models.TrustScore) error {
	s.upserts++
	s.scores[score.VendorID] = score
	return nil
}

func (s *stubTrustRepo) FindScore(ctx context.Context, vendorID uuid.UUID) (*models.TrustScore, error) {
	if score, ok := s.scores[vendorID]; ok {
		return score, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTrustRepo) CreateReview(ctx context.Context, review *models.Review) error {
	review.ID = uuid.New()
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *stubTrustRepo) ListRatings(ctx context.Context, vendorID uuid.UUID) ([]int, error) {
	ratings := []int{}
	for _, r := range s.reviews {
		if r.VendorID == vendorID {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

func (s *stubTrustRepo) ListRecentReviews(ctx context.Context, vendorID uuid.UUID, limit int) ([]ReviewWithReviewer, error) {
	out := []ReviewWithReviewer{}
	for i := len(s.reviews) - 1; i >= 0 && len(out) < limit; i-- {
		if s.reviews[i].VendorID == vendorID {
			out = append(out, ReviewWithReviewer{Review: *s.reviews[i], ReviewerName: "reviewer"})
		}
	}
	return out, nil
}

func (s *stubTrustRepo) CreateEvent(ctx context.Context, event *models.TrustEvent) error {
	event.ID = uuid.New()
	s.events = append(s.events, event)
	return nil
}

func (s *stubTrustRepo) ListRecentEvents(ctx context.Context, vendorID uuid.UUID, limit int) ([]models.TrustEvent, error) {
	out := []models.TrustEvent{}
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		if s.events[i].VendorID == vendorID {
			out = append(out, *s.events[i])
		}
	}
	return out, nil
}

func (s *stubTrustRepo) CampaignCompletionCounts(ctx context.Context, vendorID uuid.UUID) (int64, int64, error) {
	counts := s.campaigns[vendorID]
	return counts[0], counts[1], nil
}

type stubCollabCounts struct {
	counts map[uuid.UUID][2]int64
}

func (s *stubCollabCounts) CompletionCounts(ctx context.Context, vendorID uuid.UUID) (int64, int64, error) {
	counts := s.counts[vendorID]
	return counts[0], counts[1], nil
}

func newTestService(t *testing.T, repo *stubTrustRepo, collabs *stubCollabCounts) Service {
	t.Helper()
	if collabs == nil {
		collabs = &stubCollabCounts{counts: map[uuid.UUID][2]int64{}}
	}
	svc, err := NewService(ServiceParams{
		TrustRepo:  repo,
		CollabRepo: collabs,
		Engine:     scoring.New(scoring.DefaultConfig()),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCalculateTrustScoreClampedScenario(t *testing.T) {
	vendorID := uuid.New()
	repo := newStubTrustRepo()
	repo.campaigns[vendorID] = [2]int64{5, 3}
	for range [4]struct{}{} {
		repo.reviews = append(repo.reviews, &models.Review{VendorID: vendorID, Rating: 4})
	}
	collabs := &stubCollabCounts{counts: map[uuid.UUID][2]int64{vendorID: {3, 2}}}
	svc := newTestService(t, repo, collabs)

	dto, err := svc.CalculateTrustScore(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if dto.Score != 100 {
		t.Fatalf("score = %f, want clamped 100", dto.Score)
	}
	if repo.upserts != 1 {
		t.Fatalf("expected 1 upsert, got %d", repo.upserts)
	}
	if dto.CompletionRate != 0.6 {
		t.Fatalf("campaign completion = %f, want 0.6", dto.CompletionRate)
	}
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc := newTestService(t, newStubTrustRepo(), nil)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(context.Background(), AddReviewDTO{
			ReviewerID: uuid.New(),
			VendorID:   uuid.New(),
			Rating:     rating,
		})
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestAddReviewRecomputesScore(t *testing.T) {
	vendorID := uuid.New()
	repo := newStubTrustRepo()
	svc := newTestService(t, repo, nil)

	dto, err := svc.AddReview(context.Background(), AddReviewDTO{
		ReviewerID: uuid.New(),
		VendorID:   vendorID,
		Rating:     5,
	})
	if err != nil {
		t.Fatalf("add review: %v", err)
	}
	// No activity besides one 5-star review: 5*10 + 40.
	if dto.Score != 90 {
		t.Fatalf("score = %f, want 90", dto.Score)
	}
	if len(repo.reviews) != 1 || repo.upserts != 1 {
		t.Fatalf("expected review append plus one upsert, got %d reviews, %d upserts", len(repo.reviews), repo.upserts)
	}
}

func TestAddEventRecomputesScore(t *testing.T) {
	vendorID := uuid.New()
	repo := newStubTrustRepo()
	svc := newTestService(t, repo, nil)

	dto, err := svc.AddEvent(context.Background(), AddEventDTO{
		VendorID:  vendorID,
		EventType: "late_delivery",
		Impact:    -5,
	})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	// Impact is informational; the score comes from the formula alone:
	// default 3.0 rating * 10 + 40.
	if dto.Score != 70 {
		t.Fatalf("score = %f, want 70", dto.Score)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected event append, got %d", len(repo.events))
	}
}

func TestReportDefaultsWithoutScoreRow(t *testing.T) {
	svc := newTestService(t, newStubTrustRepo(), nil)

	report, err := svc.Report(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TrustScore != 50 || report.Reliability != 0.5 {
		t.Fatalf("defaults = %f/%f, want 50/0.5", report.TrustScore, report.Reliability)
	}
	if report.Reviews == nil || report.RecentEvents == nil {
		t.Fatal("expected empty slices, not nil")
	}
}

func TestReportWindows(t *testing.T) {
	vendorID := uuid.New()
	repo := newStubTrustRepo()
	for i := 0; i < 8; i++ {
		repo.reviews = append(repo.reviews, &models.Review{VendorID: vendorID, Rating: 4})
	}
	for i := 0; i < 12; i++ {
		repo.events = append(repo.events, &models.TrustEvent{VendorID: vendorID, EventType: "event"})
	}
	svc := newTestService(t, repo, nil)

	report, err := svc.Report(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Reviews) != 5 {
		t.Fatalf("reviews window = %d, want 5", len(report.Reviews))
	}
	if len(report.RecentEvents) != 10 {
		t.Fatalf("events window = %d, want 10", len(report.RecentEvents))
	}
}
