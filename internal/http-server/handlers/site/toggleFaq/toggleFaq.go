package toggleFaq

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/lib/logger/sl"
	"eventPandey/internal/metrics"
	"eventPandey/internal/site"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FaqToggler
type FaqToggler interface {
	Dispatch(w http.ResponseWriter, r *http.Request, m site.Msg) error
}

func New(log *slog.Logger, toggler FaqToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.site.toggleFaq.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		indexStr := chi.URLParam(r, "index")
		if indexStr == "" {
			log.Error("faq index is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("faq index is required"))
			return
		}

		index, err := strconv.Atoi(indexStr)
		if err != nil {
			log.Error("invalid faq index format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid faq index format"))
			return
		}

		log = log.With(slog.Int("index", index))

		err = toggler.Dispatch(w, r, site.ToggleFAQ{Index: index})
		if err != nil {
			log.Error("failed to toggle faq item", sl.Err(err))

			if errors.Is(err, site.ErrFaqIndexOutOfRange) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("faq item not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle faq item"))
			return
		}

		log.Info("faq item toggled")
		metrics.FaqToggled(indexStr)

		http.Redirect(w, r, "/#faq", http.StatusSeeOther)
	}
}
