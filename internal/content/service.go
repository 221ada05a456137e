package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// Service defines the behavior needed by the content controller and the
// posting worker.
type Service interface {
	GenerateIdeas(ctx context.Context, vendorID uuid.UUID, count int) ([]IdeaDTO, error)
	Schedule(ctx context.Context, dto ScheduleDTO) (*ItemDTO, error)
	GenerateHashtags(industry, text string) []string
	Calendar(ctx context.Context, vendorID uuid.UUID) ([]ItemDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
}

type contentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ContentItem, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.ContentItem, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
}

type service struct {
	content contentRepository
	vendors vendorRepository
}

// ServiceParams bundles the dependencies required to build a content service.
type ServiceParams struct {
	ContentRepo contentRepository
	VendorRepo  vendorRepository
}

// NewService constructs a content service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ContentRepo == nil {
		return nil, fmt.Errorf("content repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{content: params.ContentRepo, vendors: params.VendorRepo}, nil
}

// GenerateIdeas builds a list of content ideas from the vendor's industry
// templates, closed out with a promotional and an educational entry. A
// missing vendor yields an empty list rather than an error.
func (s *service) GenerateIdeas(ctx context.Context, vendorID uuid.UUID, count int) ([]IdeaDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []IdeaDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	templates, ok := industryTemplates[vendor.Industry]
	if !ok {
		templates = industryTemplates[fallbackTemplateIndustry]
	}

	n := count
	if n > len(templates) {
		n = len(templates)
	}
	if n < 0 {
		n = 0
	}

	ideas := make([]IdeaDTO, 0, n+2)
	for _, title := range templates[:n] {
		ideas = append(ideas, IdeaDTO{
			Title:         title,
			ContentType:   "post",
			Platforms:     []string{"instagram", "facebook"},
			EstimatedTime: 30,
			Difficulty:    "easy",
		})
	}

	ideas = append(ideas, IdeaDTO{
		Title:         "Special offer: 20% off for new customers",
		ContentType:   "promotion",
		Platforms:     []string{"facebook", "instagram"},
		EstimatedTime: 15,
		Difficulty:    "easy",
	})
	ideas = append(ideas, IdeaDTO{
		Title:         fmt.Sprintf("5 things to know about %s", vendor.Industry),
		ContentType:   "educational",
		Platforms:     []string{"linkedin", "blog"},
		EstimatedTime: 45,
		Difficulty:    "medium",
	})

	return ideas, nil
}

// Schedule validates and inserts a scheduled calendar entry.
func (s *service) Schedule(ctx context.Context, dto ScheduleDTO) (*ItemDTO, error) {
	if _, err := s.vendors.FindByID(ctx, dto.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}
	if strings.TrimSpace(dto.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if dto.ScheduledTime.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "scheduled time is required")
	}

	item := dto.ToModel()
	if err := s.content.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "schedule content")
	}
	return FromModel(item), nil
}

// GenerateHashtags combines the industry base tags, a trending set, and the
// longer words of the content text into at most ten '#'-prefixed tags.
func (s *service) GenerateHashtags(industry, text string) []string {
	base, ok := industryHashtags[industry]
	if !ok {
		base = fallbackHashtags
	}

	contentTags := make([]string, 0, maxContentTags)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) < contentTagMinRunes {
			continue
		}
		contentTags = append(contentTags, word)
		if len(contentTags) == maxContentTags {
			break
		}
	}

	all := make([]string, 0, len(base)+len(trendingHashtags)+len(contentTags))
	all = append(all, base...)
	all = append(all, trendingHashtags...)
	all = append(all, contentTags...)
	if len(all) > maxHashtags {
		all = all[:maxHashtags]
	}

	tags := make([]string, len(all))
	for i, tag := range all {
		tags[i] = "#" + tag
	}
	return tags
}

// Calendar returns the vendor's content items ordered by scheduled time.
func (s *service) Calendar(ctx context.Context, vendorID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.content.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list content calendar")
	}
	items := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *FromModel(&rows[i]))
	}
	return items, nil
}

// Get loads one calendar entry.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.content.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "content item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load content item")
	}
	return FromModel(item), nil
}
