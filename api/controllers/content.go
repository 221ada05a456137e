package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/api/responses"
	"github.com/mateoquintero/venturelink-backend/api/validators"
	"github.com/mateoquintero/venturelink-backend/internal/content"
	pkgerrors "github.com/mateoquintero/venturelink-backend/pkg/errors"
	"github.com/mateoquintero/venturelink-backend/pkg/logger"
)

const defaultIdeaCount = 7

// ContentIdeas generates content ideas for a vendor.
func ContentIdeas(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		count, err := validators.ParseQueryInt(r, "count", defaultIdeaCount, 1, 50)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ideas, err := svc.GenerateIdeas(r.Context(), id, count)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, ideas)
	}
}

type scheduleContentRequest struct {
	VendorID      uuid.UUID `json:"vendor_id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	ContentType   string    `json:"content_type"`
	Platforms     []string  `json:"platforms"`
	ContentText   string    `json:"content_text"`
	MediaURL      string    `json:"media_url"`
	Hashtags      []string  `json:"hashtags"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
}

func (req scheduleContentRequest) toDTO() content.ScheduleDTO {
	return content.ScheduleDTO{
		VendorID:      req.VendorID,
		Title:         req.Title,
		ContentType:   req.ContentType,
		Platforms:     req.Platforms,
		ContentText:   req.ContentText,
		MediaURL:      req.MediaURL,
		Hashtags:      req.Hashtags,
		ScheduledTime: req.ScheduledTime,
	}
}

// ContentSchedule queues a content item for posting.
func ContentSchedule(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		var body scheduleContentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Schedule(r.Context(), body.toDTO())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

type hashtagsRequest struct {
	Industry string `json:"industry"`
	Text     string `json:"text"`
}

// ContentHashtags suggests hashtags for a piece of content.
func ContentHashtags(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		var body hashtagsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string][]string{
			"hashtags": svc.GenerateHashtags(body.Industry, body.Text),
		})
	}
}

// ContentCalendar lists a vendor's scheduled items ordered by time.
func ContentCalendar(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Calendar(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// ContentGet fetches one content item.
func ContentGet(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
			return
		}

		id, err := pathUUID(r, "contentId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}
