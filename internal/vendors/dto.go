package vendors

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	dbtypes "github.com/mateoquintero/venturelink-backend/pkg/db/types"
)

// VendorDTO is the transport shape of a vendor profile.
type VendorDTO struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	BusinessName   string            `json:"business_name"`
	BusinessType   string            `json:"business_type,omitempty"`
	Industry       string            `json:"industry,omitempty"`
	Location       string            `json:"location,omitempty"`
	Website        string            `json:"website,omitempty"`
	Description    string            `json:"description,omitempty"`
	TargetAudience []string          `json:"target_audience"`
	Budget         decimal.Decimal   `json:"budget"`
	Goals          []string          `json:"goals"`
	Constraints    map[string]string `json:"constraints"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateVendorDTO holds the data required to persist a new vendor profile.
type CreateVendorDTO struct {
	UserID         uuid.UUID
	BusinessName   string
	BusinessType   string
	Industry       string
	Location       string
	Website        string
	Description    string
	TargetAudience []string
	Budget         decimal.Decimal
	Goals          []string
	Constraints    map[string]string
}

// UpdateVendorDTO carries a partial profile update; nil fields are left
// untouched.
type UpdateVendorDTO struct {
	BusinessName   *string
	BusinessType   *string
	Industry       *string
	Location       *string
	Website        *string
	Description    *string
	TargetAudience *[]string
	Budget         *decimal.Decimal
	Goals          *[]string
	Constraints    *map[string]string
}

// NeedDTO describes one identified business need and suggested actions.
type NeedDTO struct {
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// ListResult is a page of vendors plus the cursor for the next page.
type ListResult struct {
	Vendors    []VendorDTO `json:"vendors"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

func FromModel(v *models.VendorProfile) *VendorDTO {
	if v == nil {
		return nil
	}

	return &VendorDTO{
		ID:             v.ID,
		UserID:         v.UserID,
		BusinessName:   v.BusinessName,
		BusinessType:   v.BusinessType,
		Industry:       v.Industry,
		Location:       v.Location,
		Website:        v.Website,
		Description:    v.Description,
		TargetAudience: append([]string(nil), v.TargetAudience...),
		Budget:         v.Budget,
		Goals:          append([]string(nil), v.Goals...),
		Constraints:    v.Constraints.Clone(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (c CreateVendorDTO) ToModel() *models.VendorProfile {
	audience := c.TargetAudience
	if audience == nil {
		audience = []string{}
	}
	goals := c.Goals
	if goals == nil {
		goals = []string{}
	}
	constraints := c.Constraints
	if constraints == nil {
		constraints = map[string]string{}
	}

	return &models.VendorProfile{
		UserID:         c.UserID,
		BusinessName:   c.BusinessName,
		BusinessType:   c.BusinessType,
		Industry:       c.Industry,
		Location:       c.Location,
		Website:        c.Website,
		Description:    c.Description,
		TargetAudience: dbtypes.StringList(audience),
		Budget:         c.Budget,
		Goals:          dbtypes.StringList(goals),
		Constraints:    dbtypes.StringMap(constraints),
	}
}
