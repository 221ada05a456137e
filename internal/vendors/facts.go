package vendors

import (
	"github.com/mateoquintero/venturelink-backend/internal/scoring"
	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
)

// Facts projects a persisted profile into the slice the scoring engine
// consumes.
func Facts(v models.VendorProfile) scoring.VendorFacts {
	return scoring.VendorFacts{
		ID:             v.ID,
		BusinessName:   v.BusinessName,
		BusinessType:   v.BusinessType,
		Industry:       v.Industry,
		Location:       v.Location,
		TargetAudience: append([]string(nil), v.TargetAudience...),
		Budget:         v.Budget,
		Goals:          append([]string(nil), v.Goals...),
	}
}
