package openBooking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/metrics"
	"eventPandey/internal/site"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingOpener
type BookingOpener interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
}

func New(log *slog.Logger, opener BookingOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.openBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := opener.Dispatch(w, r, site.OpenBooking{}); err != nil {
			log.Error("failed to open booking dialog", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to open booking dialog"))
			return
		}

		log.Info("booking dialog opened")
		metrics.BookingDialog("open")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
