package submitBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/metrics"
	"eventPandey/internal/site"
)

// BookingRequest mirrors the constraints the dialog's inputs declare.
type BookingRequest struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	Phone      string `form:"phone" validate:"required"`
	EventType  string `form:"eventType" validate:"required,oneof=wedding corporate political other"`
	Date       string `form:"date" validate:"required,datetime=2006-01-02"`
	GuestCount int    `form:"guestCount" validate:"required,min=1"`
	Notes      string `form:"notes"`
}

func (req BookingRequest) fields() []site.UpdateBookingField {
	return []site.UpdateBookingField{
		{Name: site.FieldName, Value: req.Name},
		{Name: site.FieldEmail, Value: req.Email},
		{Name: site.FieldPhone, Value: req.Phone},
		{Name: site.FieldEventType, Value: req.EventType},
		{Name: site.FieldDate, Value: req.Date},
		{Name: site.FieldGuestCount, Value: strconv.Itoa(req.GuestCount)},
		{Name: site.FieldNotes, Value: req.Notes},
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSubmitter
type BookingSubmitter interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
}

func New(log *slog.Logger, submitter BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.submitBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req BookingRequest

		if err := render.DecodeForm(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			metrics.FormSubmitted("booking", "invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.String("event_type", req.EventType), slog.Int("guest_count", req.GuestCount))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			metrics.FormSubmitted("booking", "invalid")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err := submitter.Dispatch(w, r, site.SubmitBookingForm{Fields: req.fields()})
		if err != nil {
			log.Error("failed to submit booking", sl.Err(err))

			switch {
			case errors.Is(err, site.ErrBookingClosed):
				metrics.FormSubmitted("booking", "error")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking dialog is not open"))
			case errors.Is(err, site.ErrUnknownField), errors.Is(err, site.ErrInvalidField):
				metrics.FormSubmitted("booking", "invalid")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid booking field"))
			default:
				metrics.FormSubmitted("booking", "error")
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit booking"))
			}
			return
		}

		log.Info("booking submitted", slog.String("event_type", req.EventType))
		metrics.FormSubmitted("booking", "ok")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
