package collaborations

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
)

var genericIdeas = []string{
	"Social media shoutout exchange",
	"Co-created content (blog post, video)",
	"Referral program with incentives",
	"Shared workshop or webinar",
}

// Ideas suggests concrete collaboration ideas for a vendor pair. Pair-specific
// ideas come first, generic ones always close the list.
func (s *service) Ideas(ctx context.Context, vendor1, vendor2 uuid.UUID) ([]string, error) {
	a, err := s.vendors.FindByID(ctx, vendor1)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}
	b, err := s.vendors.FindByID(ctx, vendor2)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vendor profile")
	}

	ideas := []string{}

	if a.Industry == "restaurant" && b.Industry == "food_delivery" {
		ideas = append(ideas,
			"Joint promotion: Free delivery with restaurant purchase",
			"Co-branded marketing campaign",
			"Shared customer loyalty program",
		)
	}
	if a.Industry == "retail" && b.Industry == "retail" {
		ideas = append(ideas,
			"Cross-promotion in each other's stores",
			"Joint pop-up event",
			"Bundle deals combining products",
		)
	}
	if strings.Contains(a.Location, "local") && strings.Contains(b.Location, "local") {
		ideas = append(ideas,
			"Co-host local community event",
			"Joint advertisement in local newspaper",
			"Shared booth at local fair",
		)
	}

	return append(ideas, genericIdeas...), nil
}
