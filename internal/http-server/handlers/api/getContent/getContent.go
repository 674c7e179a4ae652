package getContent

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventPandey/internal/lib/api/response"
	"eventPandey/internal/models"
)

type ContentResponse struct {
	response.Response
	Nav      []models.NavLink     `json:"nav"`
	About    []string             `json:"about"`
	Services []models.Service     `json:"services"`
	Stats    []models.Stat        `json:"stats"`
	Pricing  []models.PricingTier `json:"pricing"`
	Faq      []models.FaqItem     `json:"faq"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentGetter
type ContentGetter interface {
	NavLinks() []models.NavLink
	AboutPoints() []string
	Services() []models.Service
	Stats() []models.Stat
	PricingTiers() []models.PricingTier
	FaqItems() []models.FaqItem
}

func New(log *slog.Logger, content ContentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.getContent.New"

		log := log.With(slog.String("op", op))

		resp := ContentResponse{
			Response: response.OK(),
			Nav:      content.NavLinks(),
			About:    content.AboutPoints(),
			Services: content.Services(),
			Stats:    content.Stats(),
			Pricing:  content.PricingTiers(),
			Faq:      content.FaqItems(),
		}

		log.Debug("content retrieved", slog.Int("pricing", len(resp.Pricing)), slog.Int("faq", len(resp.Faq)))

		render.JSON(w, r, resp)
	}
}
