package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/automation"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// AutomationAnalyze estimates the time and cost savings automation offers.
func AutomationAnalyze(svc automation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "automation service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.AnalyzePotential(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

type setupAutomationRequest struct {
	VendorID       uuid.UUID `json:"vendor_id" validate:"required"`
	AutomationType string    `json:"automation_type" validate:"required"`
}

// AutomationSetup enables an automation for a vendor with default settings.
func AutomationSetup(svc automation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "automation service unavailable"))
			return
		}

		var body setupAutomationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setting, err := svc.Setup(r.Context(), body.VendorID, enums.AutomationType(body.AutomationType))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, setting)
	}
}

// AutomationSettings lists the automations a vendor has configured.
func AutomationSettings(svc automation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "automation service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		settings, err := svc.ListSettings(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, settings)
	}
}
