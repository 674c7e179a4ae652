package updateBookingField

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/models"
	"eventPandey/internal/site"
)

type FieldRequest struct {
	Name  string `form:"name" validate:"required"`
	Value string `form:"value"`
}

type FieldResponse struct {
	response.Response
	Booking models.BookingFormData `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FieldUpdater
type FieldUpdater interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
	Snapshot(w http.ResponseWriter, r *http.Request) site.Snapshot
}

func New(log *slog.Logger, updater FieldUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.updateBookingField.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req FieldRequest

		if err := render.DecodeForm(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.String("field", req.Name))

		err := updater.Dispatch(w, r, site.UpdateBookingField{Name: req.Name, Value: req.Value})
		if err != nil {
			log.Error("failed to update booking field", sl.Err(err))

			switch {
			case errors.Is(err, site.ErrUnknownField):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown field"))
			case errors.Is(err, site.ErrInvalidField):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid field value"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update field"))
			}
			return
		}

		log.Debug("booking field updated")

		responseOK(w, r, updater.Snapshot(w, r).Booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.BookingFormData) {
	render.JSON(w, r, FieldResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
