package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

const defaultPostingBatchSize = 50

// Poster is the boundary that delivers a content item to its platforms. The
// real integration is out of process; the worker only records the outcome.
type Poster interface {
	Post(ctx context.Context, item *models.ContentItem) error
}

// PosterFunc adapts a function to the Poster interface.
type PosterFunc func(ctx context.Context, item *models.ContentItem) error

// Post implements Poster.
func (f PosterFunc) Post(ctx context.Context, item *models.ContentItem) error {
	return f(ctx, item)
}

type contentPostingRepo interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.ContentItem, error)
	MarkPosting(ctx context.Context, id uuid.UUID) (bool, error)
	MarkPosted(ctx context.Context, id uuid.UUID, postedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

// ContentPostingJobParams configure the posting job.
type ContentPostingJobParams struct {
	Logger     *logger.Logger
	Repository contentPostingRepo
	Poster     Poster
	BatchSize  int
}

// NewContentPostingJob builds the job that publishes due content items.
func NewContentPostingJob(params ContentPostingJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("content repository required")
	}
	if params.Poster == nil {
		return nil, fmt.Errorf("poster required")
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultPostingBatchSize
	}
	return &contentPostingJob{
		logg:      params.Logger,
		repo:      params.Repository,
		poster:    params.Poster,
		batchSize: batchSize,
		now:       time.Now,
	}, nil
}

type contentPostingJob struct {
	logg      *logger.Logger
	repo      contentPostingRepo
	poster    Poster
	batchSize int
	now       func() time.Time
}

func (j *contentPostingJob) Name() string { return "content-posting" }

// Run publishes every due item, marking each posted or failed individually.
// One bad item does not stop the batch; errors are aggregated.
func (j *contentPostingJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	due, err := j.repo.ListDue(ctx, now, j.batchSize)
	if err != nil {
		return fmt.Errorf("list due content: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	var errs error
	posted := 0
	failed := 0
	for i := range due {
		item := &due[i]
		claimed, err := j.repo.MarkPosting(ctx, item.ID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("claim %s: %w", item.ID, err))
			continue
		}
		if !claimed {
			continue
		}

		if err := j.poster.Post(ctx, item); err != nil {
			failed++
			if markErr := j.repo.MarkFailed(ctx, item.ID); markErr != nil {
				errs = multierr.Append(errs, fmt.Errorf("mark failed %s: %w", item.ID, markErr))
			}
			logCtx := j.logg.WithFields(ctx, map[string]any{
				"content_id": item.ID.String(),
				"title":      item.Title,
			})
			j.logg.Error(logCtx, "content post failed", err)
			continue
		}

		if err := j.repo.MarkPosted(ctx, item.ID, j.now().UTC()); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("mark posted %s: %w", item.ID, err))
			continue
		}
		posted++
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"due":    len(due),
		"posted": posted,
		"failed": failed,
	})
	j.logg.Info(logCtx, "content posting cycle complete")
	return errs
}
