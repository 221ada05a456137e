package fundraising

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// matchLimit caps the investor match list.
const matchLimit = 10

// Service defines the behavior needed by the fundraising controller.
type Service interface {
	CreatePitch(ctx context.Context, dto CreatePitchDTO) (*PitchDTO, error)
	GetPitch(ctx context.Context, id uuid.UUID) (*PitchDTO, error)
	ListPitches(ctx context.Context, vendorID uuid.UUID) ([]PitchDTO, error)
	FindInvestorMatches(ctx context.Context, pitchID uuid.UUID) ([]InvestorMatchDTO, error)
	PitchTemplate(industry string) TemplateDTO
}

type pitchRepository interface {
	CreatePitch(ctx context.Context, pitch *models.Pitch) error
	FindPitchByID(ctx context.Context, id uuid.UUID) (*models.Pitch, error)
	ListPitchesForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Pitch, error)
	SetInvestorInterest(ctx context.Context, id uuid.UUID, score int) error
	ListInvestors(ctx context.Context) ([]models.Investor, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
}

type service struct {
	pitches pitchRepository
	vendors vendorRepository
	engine  *scoring.Engine
}

// ServiceParams bundles the dependencies required to build a fundraising
// service.
type ServiceParams struct {
	PitchRepo  pitchRepository
	VendorRepo vendorRepository
	Engine     *scoring.Engine
}

// NewService constructs a fundraising service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.PitchRepo == nil {
		return nil, fmt.Errorf("pitch repository is required")
	}
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if params.Engine == nil {
		return nil, fmt.Errorf("scoring engine is required")
	}
	return &service{
		pitches: params.PitchRepo,
		vendors: params.VendorRepo,
		engine:  params.Engine,
	}, nil
}

// CreatePitch inserts a draft pitch and scores its quality exactly once.
// The stored investor_interest never changes on later edits.
func (s *service) CreatePitch(ctx context.Context, dto CreatePitchDTO) (*PitchDTO, error) {
	if _, err := s.vendors.FindByID(ctx, dto.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	pitch := dto.ToModel()
	if err := s.pitches.CreatePitch(ctx, pitch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create pitch")
	}

	score := s.engine.PitchScore(scoring.PitchContent{
		ProblemStatement: pitch.ProblemStatement,
		Solution:         pitch.Solution,
		MarketSize:       pitch.MarketSize,
		Traction:         pitch.Traction,
		FundingAmount:    pitch.FundingAmount,
	})
	if err := s.pitches.SetInvestorInterest(ctx, pitch.ID, score); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store pitch score")
	}
	pitch.InvestorInterest = score

	return FromModel(pitch), nil
}

func (s *service) GetPitch(ctx context.Context, id uuid.UUID) (*PitchDTO, error) {
	pitch, err := s.pitches.FindPitchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pitch not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pitch")
	}
	return FromModel(pitch), nil
}

func (s *service) ListPitches(ctx context.Context, vendorID uuid.UUID) ([]PitchDTO, error) {
	rows, err := s.pitches.ListPitchesForVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pitches")
	}
	out := make([]PitchDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// FindInvestorMatches ranks all investors against a pitch. A missing pitch
// yields an empty list, not an error.
func (s *service) FindInvestorMatches(ctx context.Context, pitchID uuid.UUID) ([]InvestorMatchDTO, error) {
	pitch, err := s.pitches.FindPitchByID(ctx, pitchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []InvestorMatchDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load pitch")
	}

	vendor, err := s.vendors.FindByID(ctx, pitch.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []InvestorMatchDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	investors, err := s.pitches.ListInvestors(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list investors")
	}

	facts := scoring.PitchFacts{
		Industry:      vendor.Industry,
		Location:      vendor.Location,
		FundingAmount: pitch.FundingAmount,
	}

	matches := []InvestorMatchDTO{}
	for i := range investors {
		inv := investors[i]
		score := s.engine.InvestorScore(facts, scoring.InvestorFacts{
			Industries:         append([]string(nil), inv.Industries...),
			LocationPreference: inv.LocationPreference,
			CheckSizeMin:       inv.CheckSizeMin,
			CheckSizeMax:       inv.CheckSizeMax,
		})
		if score < scoring.InvestorThreshold {
			continue
		}
		matches = append(matches, InvestorMatchDTO{
			Investor:        inv.Name,
			Firm:            inv.Firm,
			MatchScore:      score,
			InvestmentStage: inv.InvestmentStage,
			ContactInfo:     inv.ContactInfo,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > matchLimit {
		matches = matches[:matchLimit]
	}
	return matches, nil
}
