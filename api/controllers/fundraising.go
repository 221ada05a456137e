package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/fundraising"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

type createPitchRequest struct {
	VendorID         uuid.UUID       `json:"vendor_id" validate:"required"`
	Title            string          `json:"title" validate:"required"`
	ProblemStatement string          `json:"problem_statement"`
	Solution         string          `json:"solution"`
	MarketSize       string          `json:"market_size"`
	BusinessModel    string          `json:"business_model"`
	Traction         string          `json:"traction"`
	FundingAmount    string          `json:"funding_amount"`
	EquityOffered    decimal.Decimal `json:"equity_offered"`
	Timeline         string          `json:"timeline"`
	PitchDeckURL     string          `json:"pitch_deck_url"`
}

func (req createPitchRequest) toDTO() fundraising.CreatePitchDTO {
	return fundraising.CreatePitchDTO{
		VendorID:         req.VendorID,
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
		MarketSize:       req.MarketSize,
		BusinessModel:    req.BusinessModel,
		Traction:         req.Traction,
		FundingAmount:    req.FundingAmount,
		EquityOffered:    req.EquityOffered,
		Timeline:         req.Timeline,
		PitchDeckURL:     req.PitchDeckURL,
	}
}

// PitchCreate records a draft pitch and scores it once.
func PitchCreate(svc fundraising.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fundraising service unavailable"))
			return
		}

		var body createPitchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pitch, err := svc.CreatePitch(r.Context(), body.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, pitch)
	}
}

// PitchGet fetches a pitch by id.
func PitchGet(svc fundraising.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fundraising service unavailable"))
			return
		}

		id, err := pathUUID(r, "pitchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pitch, err := svc.GetPitch(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pitch)
	}
}

// PitchInvestorMatches ranks investors against a pitch.
func PitchInvestorMatches(svc fundraising.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fundraising service unavailable"))
			return
		}

		id, err := pathUUID(r, "pitchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matches, err := svc.FindInvestorMatches(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, matches)
	}
}

// PitchTemplate returns the deck outline for an industry.
func PitchTemplate(svc fundraising.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fundraising service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.PitchTemplate(chi.URLParam(r, "industry")))
	}
}

// PitchesByVendor lists a vendor's pitches.
func PitchesByVendor(svc fundraising.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "fundraising service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pitches, err := svc.ListPitches(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, pitches)
	}
}
