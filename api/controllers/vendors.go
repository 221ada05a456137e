package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/api/middleware"
	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/vendors"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
	"github.com/mateoquintero/venturelink-backend/pkg/pagination"
)

type createVendorRequest struct {
	BusinessName   string            `json:"business_name" validate:"required"`
	BusinessType   string            `json:"business_type"`
	Industry       string            `json:"industry" validate:"required"`
	Location       string            `json:"location"`
	Website        string            `json:"website"`
	Description    string            `json:"description"`
	TargetAudience []string          `json:"target_audience"`
	Budget         decimal.Decimal   `json:"budget"`
	Goals          []string          `json:"goals"`
	Constraints    map[string]string `json:"constraints"`
}

func (req createVendorRequest) toDTO(userID uuid.UUID) vendors.CreateVendorDTO {
	return vendors.CreateVendorDTO{
		UserID:         userID,
		BusinessName:   req.BusinessName,
		BusinessType:   req.BusinessType,
		Industry:       req.Industry,
		Location:       req.Location,
		Website:        req.Website,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Goals:          req.Goals,
		Constraints:    req.Constraints,
	}
}

// VendorCreate creates the profile for the authenticated user.
func VendorCreate(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		uid, err := uuid.Parse(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "user context missing"))
			return
		}

		var body createVendorRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Create(r.Context(), body.toDTO(uid))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, profile)
	}
}

// VendorMe fetches the authenticated user's own profile.
func VendorMe(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		uid, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "user context missing"))
			return
		}

		profile, err := svc.GetByUser(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// VendorGet fetches a vendor profile by id.
func VendorGet(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

type updateVendorRequest struct {
	BusinessName   *string            `json:"business_name,omitempty" validate:"omitempty,min=1"`
	BusinessType   *string            `json:"business_type,omitempty"`
	Industry       *string            `json:"industry,omitempty" validate:"omitempty,min=1"`
	Location       *string            `json:"location,omitempty"`
	Website        *string            `json:"website,omitempty"`
	Description    *string            `json:"description,omitempty"`
	TargetAudience *[]string          `json:"target_audience,omitempty"`
	Budget         *decimal.Decimal   `json:"budget,omitempty"`
	Goals          *[]string          `json:"goals,omitempty"`
	Constraints    *map[string]string `json:"constraints,omitempty"`
}

func (req updateVendorRequest) toDTO() vendors.UpdateVendorDTO {
	return vendors.UpdateVendorDTO{
		BusinessName:   req.BusinessName,
		BusinessType:   req.BusinessType,
		Industry:       req.Industry,
		Location:       req.Location,
		Website:        req.Website,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Goals:          req.Goals,
		Constraints:    req.Constraints,
	}
}

// VendorUpdate applies a partial update to a vendor profile.
func VendorUpdate(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateVendorRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Update(r.Context(), id, body.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// VendorList pages through vendor profiles with a cursor.
func VendorList(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VendorNeeds surfaces the needs analysis for a vendor profile.
func VendorNeeds(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		needs, err := svc.AnalyzeNeeds(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, needs)
	}
}
