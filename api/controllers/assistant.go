package controllers

import (
	"net/http"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/assistant"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// AssistantRecommendations returns growth recommendations for a vendor,
// degrading to the deterministic fallback when the advisor is unavailable.
func AssistantRecommendations(svc assistant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recs, err := svc.Recommendations(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

type adCopyRequest struct {
	ProductDescription string `json:"product_description" validate:"required"`
	TargetAudience     string `json:"target_audience"`
	Platform           string `json:"platform"`
}

// AssistantAdCopy generates ad creative for a product description.
func AssistantAdCopy(svc assistant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable"))
			return
		}

		var body adCopyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		copyResult, err := svc.AdCopy(r.Context(), assistant.AdCopyRequestDTO{
			ProductDescription: body.ProductDescription,
			TargetAudience:     body.TargetAudience,
			Platform:           body.Platform,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, copyResult)
	}
}
