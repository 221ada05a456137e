package controllers

import (
	"net/http"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/analytics"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

// AnalyticsDashboard aggregates a vendor's activity over a trailing window.
func AnalyticsDashboard(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		period, err := validators.ParseQueryInt(r, "period_days", analytics.DefaultPeriodDays, 1, 365)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), id, period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dashboard)
	}
}

// AnalyticsInsights surfaces threshold-driven performance insights.
func AnalyticsInsights(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		insights, err := svc.Insights(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, insights)
	}
}

// AnalyticsTrends reports four weeks of activity with growth rates.
func AnalyticsTrends(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		trends, err := svc.Trends(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, trends)
	}
}
