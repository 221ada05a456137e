package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/campaigns"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

type createCampaignRequest struct {
	VendorID       uuid.UUID        `json:"vendor_id" validate:"required"`
	CampaignName   string           `json:"campaign_name" validate:"required"`
	Platform       enums.Platform   `json:"platform" validate:"required"`
	AdType         string           `json:"ad_type"`
	Budget         decimal.Decimal  `json:"budget"`
	DailyBudget    *decimal.Decimal `json:"daily_budget,omitempty"`
	TargetAudience []string         `json:"target_audience"`
	Keywords       []string         `json:"keywords"`
	AdCopy         string           `json:"ad_copy"`
	LandingPage    string           `json:"landing_page"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
}

func (req createCampaignRequest) toDTO() campaigns.CreateCampaignDTO {
	return campaigns.CreateCampaignDTO{
		VendorID:       req.VendorID,
		CampaignName:   req.CampaignName,
		Platform:       req.Platform,
		AdType:         req.AdType,
		Budget:         req.Budget,
		DailyBudget:    req.DailyBudget,
		TargetAudience: req.TargetAudience,
		Keywords:       req.Keywords,
		AdCopy:         req.AdCopy,
		LandingPage:    req.LandingPage,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
}

// CampaignCreate registers a new ad campaign with predicted performance.
func CampaignCreate(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		var body createCampaignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Create(r.Context(), body.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, campaign)
	}
}

// CampaignGet fetches a campaign by id.
func CampaignGet(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "campaignId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaign)
	}
}

// CampaignOptimize runs the optimization rules against a campaign.
func CampaignOptimize(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "campaignId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Optimize(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// CampaignPlatformRecommendations suggests ad platforms for a vendor.
func CampaignPlatformRecommendations(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recs, err := svc.PlatformRecommendations(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

// CampaignsByVendor lists a vendor's campaigns.
func CampaignsByVendor(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForVendor(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}
