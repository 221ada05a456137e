package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/collaborations"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// CollaborationMatches ranks potential collaboration partners for a vendor.
func CollaborationMatches(svc collaborations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collaboration service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matches, err := svc.FindMatches(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, matches)
	}
}

type initiateCollaborationRequest struct {
	Vendor1ID         uuid.UUID `json:"vendor1_id" validate:"required"`
	Vendor2ID         uuid.UUID `json:"vendor2_id" validate:"required"`
	CollaborationType string    `json:"collaboration_type" validate:"required"`
}

type initiateCollaborationResponse struct {
	Collaboration *collaborations.CollaborationDTO `json:"collaboration"`
	Ideas         []string                         `json:"ideas"`
}

// CollaborationInitiate proposes a collaboration and suggests joint ideas.
func CollaborationInitiate(svc collaborations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collaboration service unavailable"))
			return
		}

		var body initiateCollaborationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		collab, err := svc.Initiate(r.Context(), body.Vendor1ID, body.Vendor2ID, body.CollaborationType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ideas, err := svc.Ideas(r.Context(), body.Vendor1ID, body.Vendor2ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, initiateCollaborationResponse{
			Collaboration: collab,
			Ideas:         ideas,
		})
	}
}

// CollaborationsByVendor lists a vendor's collaborations.
func CollaborationsByVendor(svc collaborations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "collaboration service unavailable"))
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
