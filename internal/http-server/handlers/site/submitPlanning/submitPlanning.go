package submitPlanning

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/metrics"
	"eventPandey/internal/site"
)

// PlanningRequest is the quote form. Its contents are not delivered anywhere.
type PlanningRequest struct {
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	EventType string `form:"eventType"`
	Budget    string `form:"budget"`
	Vision    string `form:"vision"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlanningSubmitter
type PlanningSubmitter interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
}

func New(log *slog.Logger, submitter PlanningSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.submitPlanning.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req PlanningRequest

		if err := render.DecodeForm(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			metrics.FormSubmitted("planning", "invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.String("event_type", req.EventType))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			metrics.FormSubmitted("planning", "invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err := submitter.Dispatch(w, r, site.SubmitPlanning{}); err != nil {
			log.Error("failed to submit planning request", sl.Err(err))
			metrics.FormSubmitted("planning", "error")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit request"))
			return
		}

		log.Info("planning request received", slog.String("event_type", req.EventType))
		metrics.FormSubmitted("planning", "ok")

		http.Redirect(w, r, "/#planning", http.StatusSeeOther)
	}
}
