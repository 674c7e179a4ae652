package showPage

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"eventPandey/internal/http-server/middleware/nonce"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/metrics"
	"eventPandey/internal/site"
	"eventPandey/internal/view"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StateGetter
type StateGetter interface {
	Snapshot(w http.ResponseWriter, r *http.Request) site.Snapshot
}

func New(log *slog.Logger, catalog view.Catalog, state StateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.showPage.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		sn := state.Snapshot(w, r)

		var buf bytes.Buffer
		err := view.Render(&buf, view.PageData{
			Catalog: catalog,
			State:   sn,
			Nonce:   nonce.FromContext(r.Context()),
		})
		if err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		metrics.PageRendered()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if _, err = buf.WriteTo(w); err != nil {
			log.Error("failed to write page", sl.Err(err))
		}
	}
}
