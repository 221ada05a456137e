package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/openai"
)

// Service defines the behavior needed by the assistant controller.
type Service interface {
	Recommendations(ctx context.Context, vendorID uuid.UUID) (*RecommendationsDTO, error)
	AdCopy(ctx context.Context, req AdCopyRequestDTO) (*AdCopyDTO, error)
}

type completer interface {
	Complete(ctx context.Context, req openai.CompletionRequest) (string, error)
}

type recommendationRepository interface {
	CreateRecommendation(ctx context.Context, rec *models.Recommendation) error
	CampaignCount(ctx context.Context, vendorID uuid.UUID) (int64, error)
	ContentCount(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
}

type service struct {
	advisor completer
	repo    recommendationRepository
	vendors vendorRepository
	logger  zerolog.Logger
}

// ServiceParams bundles the dependencies required to build an assistant
// service. Advisor may be nil, in which case every call answers from the
// fallback rules.
type ServiceParams struct {
	Advisor            completer
	RecommendationRepo recommendationRepository
	VendorRepo         vendorRepository
	Logger             zerolog.Logger
}

// NewService constructs an assistant service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.RecommendationRepo == nil {
		return nil, fmt.Errorf("recommendation repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	return &service{
		advisor: params.Advisor,
		repo:    params.RecommendationRepo,
		vendors: params.VendorRepo,
		logger:  params.Logger,
	}, nil
}

// Recommendations asks the advisor for growth suggestions grounded in the
// vendor's profile and activity. Any advisor failure degrades to the
// deterministic fallback set; the caller still gets a successful answer.
func (s *service) Recommendations(ctx context.Context, vendorID uuid.UUID) (*RecommendationsDTO, error) {
	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RecommendationsDTO{Source: SourceFallback, Categories: map[string][]RecommendationItemDTO{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	categories, source := s.adviseRecommendations(ctx, vendor)

	payload := dbtypes.JSONMap{}
	for category, items := range categories {
		payload[category] = items
	}
	rec := &models.Recommendation{
		VendorID: vendorID,
		Source:   source,
		Payload:  payload,
	}
	if err := s.repo.CreateRecommendation(ctx, rec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store recommendations")
	}

	return &RecommendationsDTO{Source: source, Categories: categories}, nil
}

func (s *service) adviseRecommendations(ctx context.Context, vendor *models.VendorProfile) (map[string][]RecommendationItemDTO, string) {
	if s.advisor == nil {
		return fallbackRecommendations(vendor), SourceFallback
	}

	campaignCount, err := s.repo.CampaignCount(ctx, vendor.ID)
	if err != nil {
		campaignCount = 0
	}
	contentCount, err := s.repo.ContentCount(ctx, vendor.ID)
	if err != nil {
		contentCount = 0
	}

	prompt := fmt.Sprintf(`As a business AI advisor, analyze this business profile and suggest actionable recommendations:

Business: %s
Industry: %s
Budget: $%s
Goals: %s

Recent Campaigns: %d
Recent Content: %d

Please provide:
1. Top 3 advertising opportunities
2. Content strategy suggestions
3. Funding/financing options
4. Potential partnerships
5. Quick wins (low cost, high impact)

Format as JSON with keys: advertising, content, funding, partnerships, quick_wins.`,
		vendor.BusinessName, vendor.Industry, vendor.Budget.String(),
		strings.Join(vendor.Goals, ", "), campaignCount, contentCount)

	answer, err := s.advisor.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: "You are a business growth advisor.",
		UserPrompt:   prompt,
		Temperature:  0.7,
		MaxTokens:    1000,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("vendor_id", vendor.ID.String()).Msg("advisor unavailable, using fallback recommendations")
		return fallbackRecommendations(vendor), SourceFallback
	}

	var categories map[string][]RecommendationItemDTO
	if err := json.Unmarshal([]byte(answer), &categories); err != nil {
		s.logger.Warn().Err(err).Str("vendor_id", vendor.ID.String()).Msg("advisor answer unparsable, using fallback recommendations")
		return fallbackRecommendations(vendor), SourceFallback
	}

	return categories, SourceAdvisor
}

// fallbackRecommendations is the deterministic answer used whenever the
// advisor cannot be reached.
func fallbackRecommendations(vendor *models.VendorProfile) map[string][]RecommendationItemDTO {
	return map[string][]RecommendationItemDTO{
		"advertising": {
			{
				Description: "Set up Google Ads with $10/day budget targeting local customers",
				Priority:    1,
				Actions:     []string{"create_google_account", "setup_keywords", "create_ad_copy"},
			},
		},
		"content": {
			{
				Description: "Post 3 times per week on Instagram showcasing products",
				Priority:    2,
				Actions:     []string{"create_content_calendar", "take_product_photos", "schedule_posts"},
			},
		},
	}
}

// AdCopy generates creative for one ad. Advisor failures degrade to a simple
// template built from the request.
func (s *service) AdCopy(ctx context.Context, req AdCopyRequestDTO) (*AdCopyDTO, error) {
	if strings.TrimSpace(req.ProductDescription) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product description is required")
	}

	if s.advisor == nil {
		return fallbackAdCopy(req), nil
	}

	prompt := fmt.Sprintf(`Generate compelling ad copy for:
Product: %s
Target Audience: %s
Platform: %s

Please provide:
1. A catchy headline (max 60 characters)
2. Primary ad text (max 125 characters)
3. Call-to-action button text
4. 3 relevant hashtags
5. Emotional appeal angle

Format as JSON with keys: headline, text, cta, hashtags, angle.`,
		req.ProductDescription, req.TargetAudience, req.Platform)

	answer, err := s.advisor.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: "You are a professional copywriter.",
		UserPrompt:   prompt,
		Temperature:  0.8,
		MaxTokens:    500,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("advisor unavailable, using fallback ad copy")
		return fallbackAdCopy(req), nil
	}

	var copyDTO AdCopyDTO
	if err := json.Unmarshal([]byte(answer), &copyDTO); err != nil {
		s.logger.Warn().Err(err).Msg("advisor answer unparsable, using fallback ad copy")
		return fallbackAdCopy(req), nil
	}
	copyDTO.Source = SourceAdvisor
	return &copyDTO, nil
}

func fallbackAdCopy(req AdCopyRequestDTO) *AdCopyDTO {
	snippet := req.ProductDescription
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}
	return &AdCopyDTO{
		Source:   SourceFallback,
		Headline: fmt.Sprintf("Amazing %s...", snippet),
		Text:     fmt.Sprintf("Discover our %s. Perfect for %s!", req.ProductDescription, req.TargetAudience),
		CTA:      "Learn More",
		Hashtags: []string{"#business", "#product", "#sale"},
		Angle:    "Value and convenience",
	}
}
