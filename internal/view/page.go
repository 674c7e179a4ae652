// Package view renders the landing page from the catalog and a session snapshot.
package view

import (
	"io"
	"math"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"eventPandey/internal/models"
	"eventPandey/internal/site"
)

type Catalog interface {
	NavLinks() []models.NavLink
	AboutPoints() []string
	Services() []models.Service
	Stats() []models.Stat
	PricingTiers() []models.PricingTier
	FaqItems() []models.FaqItem
	PlanningOptions() []string
}

type PageData struct {
	Catalog Catalog
	State   site.Snapshot
	// Nonce is the CSP nonce for the inline stylesheet.
	Nonce string
}

func Render(w io.Writer, d PageData) error {
	return Page(d).Render(w)
}

func Page(d PageData) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				refresh(d.State),
				h.TitleEl(g.Text("Event Pandey | Make Life Legendary")),
				h.StyleEl(g.If(d.Nonce != "", g.Attr("nonce", d.Nonce)), g.Raw(stylesheet)),
			),
			h.Body(
				navbar(d.Catalog.NavLinks()),
				h.Main(
					hero(),
					about(d.Catalog.AboutPoints()),
					services(d.Catalog.Services()),
					pricing(d.Catalog.PricingTiers()),
					usp(d.Catalog.Stats()),
					planning(d.Catalog.PlanningOptions(), d.State.PlanningStatus),
					faq(d.Catalog.FaqItems(), d.State),
				),
				footer(),
				g.If(d.State.BookingOpen, bookingModal(d.State)),
			),
		),
	)
}

// refresh asks the browser to reload once the next delayed transition is due.
func refresh(sn site.Snapshot) g.Node {
	if sn.RefreshIn <= 0 {
		return nil
	}

	secs := int(math.Ceil(sn.RefreshIn.Seconds()))

	return h.Meta(g.Attr("http-equiv", "refresh"), h.Content(strconv.Itoa(secs)))
}

// postButton is a button that submits an empty POST form to action.
func postButton(action, class, label string, extra ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		h.Class("inline"),
		h.Button(
			h.Type("submit"),
			h.Class(class),
			g.Group(extra),
			g.Text(label),
		),
	)
}
