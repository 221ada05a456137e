package community

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
)

type stubVendorRepo struct {
	rows []models.VendorProfile
}

func (s *stubVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVendorRepo) ListOthers(ctx context.Context, excludeID uuid.UUID) ([]models.VendorProfile, error) {
	out := []models.VendorProfile{}
	for i := range s.rows {
		if s.rows[i].ID != excludeID {
			out = append(out, s.rows[i])
		}
	}
	return out, nil
}

func (s *stubVendorRepo) ListAll(ctx context.Context) ([]models.VendorProfile, error) {
	out := append([]models.VendorProfile(nil), s.rows...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

type stubCollabCounter struct {
	counts map[uuid.UUID]int64
}

func (s *stubCollabCounter) CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	return s.counts[vendorID], nil
}

// orderedID builds uuids whose lexical order follows n.
func orderedID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func techVendor(n int, name string) models.VendorProfile {
	return models.VendorProfile{
		ID:             orderedID(n),
		BusinessName:   name,
		BusinessType:   "b2b",
		Industry:       "technology",
		Location:       "Austin, TX",
		TargetAudience: dbtypes.StringList{"startups"},
		Budget:         decimal.NewFromInt(5000),
	}
}

func newTestService(t *testing.T, repo *stubVendorRepo, counter *stubCollabCounter) Service {
	t.Helper()
	if counter == nil {
		counter = &stubCollabCounter{counts: map[uuid.UUID]int64{}}
	}
	svc, err := NewService(ServiceParams{
		VendorRepo: repo,
		CollabRepo: counter,
		Engine:     scoring.New(scoring.DefaultConfig()),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestFindSimilarVendorsRankingAndThreshold(t *testing.T) {
	subject := techVendor(1, "Subject")
	twin := techVendor(2, "Twin")
	distant := models.VendorProfile{
		ID:           orderedID(3),
		BusinessName: "Distant",
		Industry:     "agriculture",
		Location:     "Lima, Peru",
	}
	repo := &stubVendorRepo{rows: []models.VendorProfile{subject, twin, distant}}
	svc := newTestService(t, repo, nil)

	matches, err := svc.FindSimilarVendors(context.Background(), subject.ID, 10)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].VendorID != twin.ID {
		t.Fatalf("expected twin first, got %s", matches[0].BusinessName)
	}
	if matches[0].SimilarityScore != 1.0 {
		t.Fatalf("twin score = %f, want 1.0", matches[0].SimilarityScore)
	}
	if len(matches[0].CommonFeatures) == 0 {
		t.Fatal("expected common features for twin")
	}
}

func TestFindSimilarVendorsThresholdIsStrict(t *testing.T) {
	subject := models.VendorProfile{ID: orderedID(1), Industry: "retail"}
	nothing := models.VendorProfile{ID: orderedID(2), Industry: "consulting"}
	repo := &stubVendorRepo{rows: []models.VendorProfile{subject, nothing}}
	svc := newTestService(t, repo, nil)

	matches, err := svc.FindSimilarVendors(context.Background(), subject.ID, 10)
	if err != nil {
		t.Fatalf("find similar: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %+v", matches)
	}
}

func TestFindSimilarVendorsMissingSubject(t *testing.T) {
	svc := newTestService(t, &stubVendorRepo{}, nil)

	matches, err := svc.FindSimilarVendors(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("expected nil error for missing subject, got %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty slice, got %v", matches)
	}
}

func TestCreateCommunityGroupsGreedyFirstClaim(t *testing.T) {
	// Vendors 1-3 are near-identical; vendor 4 shares nothing. The first
	// pass claims 1, 2 and 3 into one group; 4 stays ungrouped.
	repo := &stubVendorRepo{rows: []models.VendorProfile{
		techVendor(1, "A"),
		techVendor(2, "B"),
		techVendor(3, "C"),
		{ID: orderedID(4), BusinessName: "Loner", Industry: "agriculture", Location: "Remote"},
	}}
	svc := newTestService(t, repo, nil)

	groups, err := svc.CreateCommunityGroups(context.Background())
	if err != nil {
		t.Fatalf("create groups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %+v", len(groups), groups)
	}

	g := groups[0]
	if g.Name != "Community Group 1" {
		t.Fatalf("group name = %s", g.Name)
	}
	if g.Size != 3 || len(g.Members) != 3 {
		t.Fatalf("group size = %d, members %v", g.Size, g.Members)
	}
	if g.Members[0] != orderedID(1) {
		t.Fatalf("seed vendor should lead the member list, got %v", g.Members)
	}
	if g.CommonIndustry != "technology" {
		t.Fatalf("common industry = %s", g.CommonIndustry)
	}
}

func TestCreateCommunityGroupsNumbersSequentially(t *testing.T) {
	rows := []models.VendorProfile{
		techVendor(1, "A"), techVendor(2, "B"),
	}
	// Second cluster in a different city so it does not merge with the first.
	c := techVendor(3, "C")
	c.Location = "Denver, CO"
	c.Industry = "consulting"
	d := techVendor(4, "D")
	d.Location = "Denver, CO"
	d.Industry = "consulting"
	rows = append(rows, c, d)

	svc := newTestService(t, &stubVendorRepo{rows: rows}, nil)
	groups, err := svc.CreateCommunityGroups(context.Background())
	if err != nil {
		t.Fatalf("create groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(groups), groups)
	}
	if groups[0].Name != "Community Group 1" || groups[1].Name != "Community Group 2" {
		t.Fatalf("unexpected names: %s, %s", groups[0].Name, groups[1].Name)
	}
}

func TestRecommendCommunityActions(t *testing.T) {
	subject := techVendor(1, "Subject")
	twin := techVendor(2, "Twin")
	quiet := techVendor(3, "Quiet")
	busy := techVendor(4, "Busy")

	counter := &stubCollabCounter{counts: map[uuid.UUID]int64{
		twin.ID:  1,
		quiet.ID: 0,
		busy.ID:  7,
	}}
	repo := &stubVendorRepo{rows: []models.VendorProfile{subject, twin, quiet, busy}}
	svc := newTestService(t, repo, counter)

	actions, err := svc.RecommendCommunityActions(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(actions) == 0 || actions[0].Type != "connect" {
		t.Fatalf("expected leading connect action, got %+v", actions)
	}

	collaborate := []ActionDTO{}
	for _, a := range actions[1:] {
		if a.Type != "collaborate" {
			t.Fatalf("unexpected action type %s", a.Type)
		}
		collaborate = append(collaborate, a)
	}
	// Busy (7 collaborations) is filtered; quiet sorts before twin.
	if len(collaborate) != 2 {
		t.Fatalf("expected 2 collaborate actions, got %+v", collaborate)
	}
	if collaborate[0].Title != "Collaborate with Quiet" {
		t.Fatalf("expected least-connected vendor first, got %s", collaborate[0].Title)
	}
}
