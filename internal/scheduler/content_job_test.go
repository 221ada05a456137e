package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

type fakeContentRepo struct {
	due      []models.ContentItem
	claimed  map[uuid.UUID]bool
	posted   map[uuid.UUID]time.Time
	failed   map[uuid.UUID]bool
	claimErr error
}

func newFakeContentRepo(due ...models.ContentItem) *fakeContentRepo {
	return &fakeContentRepo{
		due:     due,
		claimed: map[uuid.UUID]bool{},
		posted:  map[uuid.UUID]time.Time{},
		failed:  map[uuid.UUID]bool{},
	}
}

func (f *fakeContentRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]models.ContentItem, error) {
	return f.due, nil
}

func (f *fakeContentRepo) MarkPosting(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.claimErr != nil {
		return false, f.claimErr
	}
	if f.claimed[id] {
		return false, nil
	}
	f.claimed[id] = true
	return true, nil
}

func (f *fakeContentRepo) MarkPosted(ctx context.Context, id uuid.UUID, postedAt time.Time) error {
	f.posted[id] = postedAt
	return nil
}

func (f *fakeContentRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	f.failed[id] = true
	return nil
}

func dueItem(title string) models.ContentItem {
	return models.ContentItem{
		ID:            uuid.New(),
		VendorID:      uuid.New(),
		Title:         title,
		Status:        enums.ContentStatusScheduled,
		ScheduledTime: time.Now().Add(-time.Minute),
	}
}

func newPostingJob(t *testing.T, repo *fakeContentRepo, poster Poster) Job {
	t.Helper()
	job, err := NewContentPostingJob(ContentPostingJobParams{
		Logger:     logger.New(logger.Options{ServiceName: "scheduler-test"}),
		Repository: repo,
		Poster:     poster,
	})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	return job
}

func TestContentPostingJobPostsDueItems(t *testing.T) {
	first := dueItem("morning post")
	second := dueItem("evening post")
	repo := newFakeContentRepo(first, second)
	job := newPostingJob(t, repo, PosterFunc(func(ctx context.Context, item *models.ContentItem) error {
		return nil
	}))

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(repo.posted) != 2 {
		t.Fatalf("expected 2 posted items, got %d", len(repo.posted))
	}
	if len(repo.failed) != 0 {
		t.Fatalf("expected no failures, got %d", len(repo.failed))
	}
}

func TestContentPostingJobMarksFailedAndContinues(t *testing.T) {
	bad := dueItem("broken post")
	good := dueItem("good post")
	repo := newFakeContentRepo(bad, good)
	job := newPostingJob(t, repo, PosterFunc(func(ctx context.Context, item *models.ContentItem) error {
		if item.ID == bad.ID {
			return errors.New("platform rejected the post")
		}
		return nil
	}))

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("poster failures are recorded per item, not returned: %v", err)
	}
	if !repo.failed[bad.ID] {
		t.Fatal("bad item should be marked failed")
	}
	if _, ok := repo.posted[good.ID]; !ok {
		t.Fatal("good item should still be posted")
	}
}

func TestContentPostingJobSkipsAlreadyClaimedItems(t *testing.T) {
	item := dueItem("contested post")
	repo := newFakeContentRepo(item)
	repo.claimed[item.ID] = true

	posts := 0
	job := newPostingJob(t, repo, PosterFunc(func(ctx context.Context, item *models.ContentItem) error {
		posts++
		return nil
	}))

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if posts != 0 {
		t.Fatalf("claimed item must not be posted again, posted %d", posts)
	}
}

func TestContentPostingJobAggregatesClaimErrors(t *testing.T) {
	repo := newFakeContentRepo(dueItem("one"), dueItem("two"))
	repo.claimErr = errors.New("db unavailable")
	job := newPostingJob(t, repo, PosterFunc(func(ctx context.Context, item *models.ContentItem) error {
		return nil
	}))

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected aggregated claim errors")
	}
}

func TestContentPostingJobNoDueItems(t *testing.T) {
	repo := newFakeContentRepo()
	job := newPostingJob(t, repo, PosterFunc(func(ctx context.Context, item *models.ContentItem) error {
		t.Fatal("poster must not run without due items")
		return nil
	}))

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}
