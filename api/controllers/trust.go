package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/trust"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// TrustScore recomputes and returns a vendor's trust score.
func TrustScore(svc trust.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trust service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		score, err := svc.CalculateTrustScore(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, score)
	}
}

// TrustReport returns the score with recent reviews and events.
func TrustReport(svc trust.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trust service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Report(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

type addReviewRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
	VendorID   uuid.UUID `json:"vendor_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
}

// TrustAddReview records a review and recomputes the score.
func TrustAddReview(svc trust.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trust service unavailable"))
			return
		}

		var body addReviewRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		score, err := svc.AddReview(r.Context(), trust.AddReviewDTO{
			ReviewerID: body.ReviewerID,
			VendorID:   body.VendorID,
			Rating:     body.Rating,
			Comment:    body.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, score)
	}
}

type addEventRequest struct {
	VendorID    uuid.UUID `json:"vendor_id" validate:"required"`
	EventType   string    `json:"event_type" validate:"required"`
	Impact      int       `json:"impact"`
	Description string    `json:"description"`
}

// TrustAddEvent records a trust event and recomputes the score.
func TrustAddEvent(svc trust.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trust service unavailable"))
			return
		}

		var body addEventRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		score, err := svc.AddEvent(r.Context(), trust.AddEventDTO{
			VendorID:    body.VendorID,
			EventType:   body.EventType,
			Impact:      body.Impact,
			Description: body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, score)
	}
}
