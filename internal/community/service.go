package community

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
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

// DefaultMatchLimit caps similarity lists when the caller passes none.
const DefaultMatchLimit = 10

// groupSeedLimit is how many matches the clustering pass considers per seed
// vendor before applying the stricter membership threshold.
const groupSeedLimit = 5

// Service defines the behavior needed by the community controller.
type Service interface {
	FindSimilarVendors(ctx context.Context, vendorID uuid.UUID, limit int) ([]SimilarVendorDTO, error)
	CreateCommunityGroups(ctx context.Context) ([]GroupDTO, error)
	RecommendCommunityActions(ctx context.Context, vendorID uuid.UUID) ([]ActionDTO, error)
}

type vendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	ListOthers(ctx context.Context, excludeID uuid.UUID) ([]models.VendorProfile, error)
	ListAll(ctx context.Context) ([]models.VendorProfile, error)
}

type collaborationCounter interface {
	CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

type service struct {
	vendors vendorRepository
	collabs collaborationCounter
	engine  *scoring.Engine
}

// ServiceParams bundles the dependencies required to build a community
// service.
type ServiceParams struct {
	VendorRepo vendorRepository
	CollabRepo collaborationCounter
	Engine     *scoring.Engine
}

// NewService constructs a community service with the provided dependencies.
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

// FindSimilarVendors ranks all other vendors by similarity to the subject.
// A missing subject yields an empty list, not an error.
func (s *service) FindSimilarVendors(ctx context.Context, vendorID uuid.UUID, limit int) ([]SimilarVendorDTO, error) {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	subject, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []SimilarVendorDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	candidates, err := s.vendors.ListOthers(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor profiles")
	}

	return s.rankSimilar(*subject, candidates, limit), nil
}

func (s *service) rankSimilar(subject models.VendorProfile, candidates []models.VendorProfile, limit int) []SimilarVendorDTO {
	subjectFacts := vendors.Facts(subject)

	matches := []SimilarVendorDTO{}
	for i := range candidates {
		candidateFacts := vendors.Facts(candidates[i])
		score := s.engine.Similarity(subjectFacts, candidateFacts)
		if score <= scoring.SimilarityThreshold {
			continue
		}
		matches = append(matches, SimilarVendorDTO{
			VendorID:        candidates[i].ID,
			BusinessName:    candidates[i].BusinessName,
			Industry:        candidates[i].Industry,
			SimilarityScore: score,
			CommonFeatures:  s.engine.CommonFeatures(subjectFacts, candidateFacts),
		})
	}

	// Stable sort keeps enumeration order on ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// CreateCommunityGroups partitions the vendor universe with a greedy single
// pass in ascending id order. Each vendor is locked into the first group
// that claims it, even if a later group would fit better.
func (s *service) CreateCommunityGroups(ctx context.Context) ([]GroupDTO, error) {
	all, err := s.vendors.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor profiles")
	}

	byID := make(map[uuid.UUID]*models.VendorProfile, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	groups := []GroupDTO{}
	processed := map[uuid.UUID]struct{}{}

	for i := range all {
		seed := all[i]
		if _, done := processed[seed.ID]; done {
			continue
		}

		others := make([]models.VendorProfile, 0, len(all)-1)
		for j := range all {
			if all[j].ID != seed.ID {
				others = append(others, all[j])
			}
		}

		similar := s.rankSimilar(seed, others, groupSeedLimit)
		memberIDs := []uuid.UUID{}
		for _, match := range similar {
			if match.SimilarityScore > scoring.CommunityThreshold {
				memberIDs = append(memberIDs, match.VendorID)
			}
		}

		if len(memberIDs) == 0 {
			processed[seed.ID] = struct{}{}
			continue
		}

		members := append([]uuid.UUID{seed.ID}, memberIDs...)
		groups = append(groups, GroupDTO{
			Name:           fmt.Sprintf("Community Group %d", len(groups)+1),
			Members:        members,
			Size:           len(members),
			CommonIndustry: commonIndustry(members, byID),
		})
		for _, id := range members {
			processed[id] = struct{}{}
		}
	}

	return groups, nil
}

// commonIndustry returns the modal industry among members, first-seen order
// breaking ties.
func commonIndustry(members []uuid.UUID, byID map[uuid.UUID]*models.VendorProfile) string {
	counts := map[string]int{}
	order := []string{}
	for _, id := range members {
		v, ok := byID[id]
		if !ok || v.Industry == "" {
			continue
		}
		if counts[v.Industry] == 0 {
			order = append(order, v.Industry)
		}
		counts[v.Industry]++
	}

	best := ""
	bestCount := 0
	for _, industry := range order {
		if counts[industry] > bestCount {
			best = industry
			bestCount = counts[industry]
		}
	}
	if best == "" {
		return "Mixed"
	}
	return best
}

// RecommendCommunityActions suggests connecting with the top similarity
// match and collaborating with under-connected vendors.
func (s *service) RecommendCommunityActions(ctx context.Context, vendorID uuid.UUID) ([]ActionDTO, error) {
	recommendations := []ActionDTO{}

	similar, err := s.FindSimilarVendors(ctx, vendorID, groupSeedLimit)
	if err != nil {
		return nil, err
	}
	if len(similar) > 0 {
		top := similar[0]
		recommendations = append(recommendations, ActionDTO{
			Type:        "connect",
			Title:       fmt.Sprintf("Connect with %s", top.BusinessName),
			Description: fmt.Sprintf("Similar business in %s industry", top.Industry),
			Reason:      fmt.Sprintf("High similarity score: %.2f", top.SimilarityScore),
			Priority:    "high",
		})
	}

	candidates, err := s.vendors.ListOthers(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vendor profiles")
	}

	type partner struct {
		vendor models.VendorProfile
		count  int64
	}
	partners := []partner{}
	for i := range candidates {
		count, err := s.collabs.CountForVendor(ctx, candidates[i].ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count collaborations")
		}
		if count < 3 {
			partners = append(partners, partner{vendor: candidates[i], count: count})
		}
	}
	sort.SliceStable(partners, func(i, j int) bool {
		return partners[i].count < partners[j].count
	})
	if len(partners) > 3 {
		partners = partners[:3]
	}

	for _, p := range partners {
		recommendations = append(recommendations, ActionDTO{
			Type:        "collaborate",
			Title:       fmt.Sprintf("Collaborate with %s", p.vendor.BusinessName),
			Description: "They have few existing collaborations",
			Reason:      fmt.Sprintf("%s industry, only %d collaborations", p.vendor.Industry, p.count),
			Priority:    "medium",
		})
	}

	return recommendations, nil
}
