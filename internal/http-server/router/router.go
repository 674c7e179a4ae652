package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventPandey/internal/http-server/handlers/api/getContent"
	"eventPandey/internal/http-server/handlers/api/getState"
	"eventPandey/internal/http-server/handlers/site/closeBooking"
	"eventPandey/internal/http-server/handlers/site/openBooking"
	"eventPandey/internal/http-server/handlers/site/showPage"
	"eventPandey/internal/http-server/handlers/site/submitBooking"
	"eventPandey/internal/http-server/handlers/site/submitPlanning"
	"eventPandey/internal/http-server/handlers/site/toggleFaq"
	"eventPandey/internal/http-server/handlers/site/updateBookingField"
	"eventPandey/internal/http-server/middleware/mwlogger"
	"eventPandey/internal/http-server/middleware/nonce"
	"eventPandey/internal/http-server/middleware/ratelimit"
	"eventPandey/internal/site"
	"eventPandey/internal/view"
)

type Catalog interface {
	view.Catalog
	getContent.ContentGetter
}

type Sessions interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
	Snapshot(w http.ResponseWriter, r *http.Request) site.Snapshot
}

// New builds the site router. With trustProxy unset the peer address is used
// as is, so forwarding headers cannot pick a client's rate-limit bucket.
func New(log *slog.Logger, catalog Catalog, sessions Sessions, limiter *ratelimit.Limiter, trustProxy bool) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/content", getContent.New(log, catalog))
		r.Get("/state", getState.New(log, sessions))
	})

	router.Group(func(r chi.Router) {
		r.Use(nonce.New(log))
		r.Get("/", showPage.New(log, catalog, sessions))
	})

	router.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware(log))
		}

		r.Post("/booking/open", openBooking.New(log, sessions))
		r.Post("/booking/close", closeBooking.New(log, sessions))
		r.Post("/booking/field", updateBookingField.New(log, sessions))
		r.Post("/booking", submitBooking.New(log, sessions))
		r.Post("/planning", submitPlanning.New(log, sessions))
		r.Post("/faq/{index}/toggle", toggleFaq.New(log, sessions))
	})

	return router
}
