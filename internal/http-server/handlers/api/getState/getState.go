package getState

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/site"
)

type StateResponse struct {
	response.Response
	State site.Snapshot `json:"state"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StateGetter
type StateGetter interface {
	Snapshot(w http.ResponseWriter, r *http.Request) site.Snapshot
}

func New(log *slog.Logger, state StateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.getState.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		sn := state.Snapshot(w, r)

		log.Debug("state retrieved", slog.Bool("booking_open", sn.BookingOpen))

		responseOK(w, r, sn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, sn site.Snapshot) {
	render.JSON(w, r, StateResponse{
		Response: response.OK(),
		State:    sn,
	})
}
