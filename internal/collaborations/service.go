package collaborations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// matchLimit caps the collaboration match list.
const matchLimit = 10

// Service defines the behavior needed by the collaborations controller.
type Service interface {
	FindMatches(ctx context.Context, vendorID uuid.UUID) ([]MatchDTO, error)
	Initiate(ctx context.Context, vendor1, vendor2 uuid.UUID, collaborationType string) (*CollaborationDTO, error)
	Ideas(ctx context.Context, vendor1, vendor2 uuid.UUID) ([]string, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]CollaborationDTO, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	ListOthers(ctx context.Context, excludeID uuid.UUID) ([]models.VendorProfile, error)
}

type collabRepository interface {
	Create(ctx context.Context, collab *models.Collaboration) error
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Collaboration, error)
}

type service struct {
	vendors vendorRepository
	collabs collabRepository
	engine  *scoring.Engine
}

// ServiceParams bundles the dependencies required to build a collaborations
// service.
type ServiceParams struct {
	VendorRepo vendorRepository
	CollabRepo collabRepository
	Engine     *scoring.Engine
}

// NewService constructs a collaborations service with the provided
// dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.VendorRepo == nil {
		return nil, fmt.Errorf("vendor repository is required")
	}
	if params.CollabRepo == nil {
		return nil, fmt.Errorf("collaboration repository is required")
	}
	if params.Engine == nil {
		return nil, fmt.Errorf("scoring engine is required")
	}
	return &service{
		vendors: params.VendorRepo,
		collabs: params.CollabRepo,
		engine:  params.Engine,
	}, nil
}

// FindMatches ranks all other vendors as collaboration partners. A missing
// requester yields an empty list, not an error.
func (s *service) FindMatches(ctx context.Context, vendorID uuid.UUID) ([]MatchDTO, error) {
	requester, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []MatchDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	candidates, err := s.vendors.ListOthers(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor profiles")
	}

	requesterFacts := vendors.Facts(*requester)
	matches := []MatchDTO{}
	for i := range candidates {
		result := s.engine.CollabScore(requesterFacts, vendors.Facts(candidates[i]))
		if result.Score < scoring.CollabThreshold {
			continue
		}
		matches = append(matches, MatchDTO{
			VendorID:           candidates[i].ID,
			BusinessName:       candidates[i].BusinessName,
			Industry:           candidates[i].Industry,
			Location:           candidates[i].Location,
			MatchScore:         result.Score,
			CollaborationTypes: result.CollaborationTypes,
			SynergyAreas:       result.SynergyAreas,
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

// Initiate records a proposed collaboration between two distinct vendors.
func (s *service) Initiate(ctx context.Context, vendor1, vendor2 uuid.UUID, collaborationType string) (*CollaborationDTO, error) {
	if vendor1 == vendor2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a vendor cannot collaborate with itself")
	}
	for _, id := range []uuid.UUID{vendor1, vendor2} {
		if _, err := s.vendors.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
		}
	}

	collab := &models.Collaboration{
		Vendor1ID:         vendor1,
		Vendor2ID:         vendor2,
		CollaborationType: collaborationType,
		Status:            enums.CollaborationStatusProposed,
	}
	if err := s.collabs.Create(ctx, collab); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create collaboration")
	}
	return FromModel(collab), nil
}

// ListForVendor returns the vendor's collaborations, newest first.
func (s *service) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]CollaborationDTO, error) {
	rows, err := s.collabs.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list collaborations")
	}
	out := make([]CollaborationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
