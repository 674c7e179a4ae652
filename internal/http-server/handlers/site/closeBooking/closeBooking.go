package closeBooking

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCloser
type BookingCloser interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
}

// New serves both the dialog's header close control and the success view's Close button.
func New(log *slog.Logger, closer BookingCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.closeBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := closer.Dispatch(w, r, site.CloseBooking{}); err != nil {
			log.Error("failed to close booking dialog", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to close booking dialog"))
			return
		}

		log.Info("booking dialog closed")
		metrics.BookingDialog("close")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
