package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"eventPandey/internal/models"
)

func navbar(links []models.NavLink) g.Node {
	items := make([]g.Node, 0, len(links))
	for _, l := range links {
		items = append(items, h.A(h.Href("#"+l.Anchor), h.Class("nav-link"), g.Text(l.Label)))
	}

	return h.Nav(
		h.Class("navbar"),
		h.Div(h.Class("brand"),
			h.Div(h.Class("brand-mark"), g.Text("E")),
			h.Span(h.Class("brand-name"), g.Text("Event Pandey")),
		),
		h.Div(h.Class("nav-links"), g.Group(items)),
		postButton("/booking/open", "btn btn-black", "Book Now"),
	)
}

func hero() g.Node {
	return h.Section(
		h.Class("hero"),
		h.Div(h.Class("badge"), g.Text("NO BORING EVENTS ALLOWED")),
		h.H1(g.Text("Make Life "), h.Br(), h.Span(h.Class("highlight"), g.Text("Legendary"))),
		h.P(g.Text("We don't do subtle. We do bold, loud, and flawlessly executed chaos. Weddings, corporate, political – we handle the stress, you take the credit.")),
		h.Div(h.Class("hero-actions"),
			postButton("/booking/open", "btn btn-pink", "Start Planning"),
			h.A(h.Href("#planning"), h.Class("btn btn-white"), g.Text("Get Offer")),
		),
	)
}

func about(points []string) g.Node {
	items := make([]g.Node, 0, len(points))
	for i, p := range points {
		items = append(items, h.Li(
			h.Span(h.Class("num"), g.Text(strconv.Itoa(i+1))),
			g.Text(p),
		))
	}

	return h.Section(
		h.ID("about"),
		h.Class("section about"),
		h.Div(h.Class("about-image"),
			h.Img(h.Src("https://picsum.photos/800/800?random=3"), h.Alt("Team")),
			h.P(h.Class("quote"), g.Text(`"Chaos Managed."`)),
		),
		h.Div(
			h.H2(g.Text("We Are "), h.Br(), h.Span(h.Class("highlight"), g.Text("Event Pandey"))),
			h.P(g.Text(`You want a party? We give you a production. We are a team of detail-obsessed planners who believe that "good enough" is a crime.`)),
			h.Ul(h.Class("numbered"), g.Group(items)),
		),
	)
}

func services(list []models.Service) g.Node {
	cards := make([]g.Node, 0, len(list))
	for _, s := range list {
		cards = append(cards, h.Div(
			h.Class("card"),
			g.Attr("data-service", string(s.ID)),
			h.Img(h.Src(s.Image), h.Alt(s.Title)),
			h.Div(h.Class("card-body accent-"+s.Accent),
				h.H3(g.Text(s.Title)),
				h.P(g.Text(s.Description)),
				h.Span(h.Class("more"), g.Text("Read Details →")),
			),
		))
	}

	return h.Section(
		h.ID("services"),
		h.Class("section"),
		h.H2(g.Text("What We Do")),
		h.P(g.Text("Whatever you want. As long as it's loud.")),
		h.Div(h.Class("grid grid-3"), g.Group(cards)),
	)
}

func pricing(tiers []models.PricingTier) g.Node {
	cards := make([]g.Node, 0, len(tiers))
	for _, t := range tiers {
		features := make([]g.Node, 0, len(t.Features))
		for _, f := range t.Features {
			features = append(features, h.Li(h.Span(h.Class("check"), g.Text("✓")), g.Text(" "+f)))
		}

		class := "card tier"
		if t.Recommended {
			class += " recommended"
		}

		cards = append(cards, h.Div(
			h.Class(class),
			g.If(t.Recommended, h.Div(h.Class("ribbon"), g.Text("The Best One"))),
			h.H3(g.Text(t.Name)),
			h.Div(h.Class("price"), g.Text(t.Price)),
			h.Ul(g.Group(features)),
			postButton("/booking/open", "btn btn-green btn-block", "Pick "+t.Name),
		))
	}

	return h.Section(
		h.ID("pricing"),
		h.Class("section"),
		h.H2(g.Text("Packages")),
		h.Div(h.Class("grid grid-3"), g.Group(cards)),
	)
}

func usp(stats []models.Stat) g.Node {
	items := make([]g.Node, 0, len(stats))
	for _, s := range stats {
		items = append(items, h.Div(h.Class("stat"),
			h.Div(h.Class("stat-number"), g.Text(s.Number)),
			h.Div(h.Class("stat-label"), g.Text(s.Label)),
		))
	}

	return h.Section(
		h.Class("section usp"),
		h.H2(g.Text("Why Event Pandey?")),
		h.Div(h.Class("grid grid-4"), g.Group(items)),
	)
}

func footer() g.Node {
	return h.Footer(
		h.Class("footer"),
		h.Div(h.Class("brand"),
			h.Div(h.Class("brand-mark"), g.Text("E")),
			h.Span(h.Class("brand-name"), g.Text("Event Pandey")),
		),
		h.Div(h.Class("social"),
			h.A(h.Href("#"), g.Text("Instagram")),
			h.A(h.Href("#"), g.Text("Twitter")),
			h.A(h.Href("#"), g.Text("Facebook")),
		),
		h.P(g.Text("© 2024 Event Pandey. All rights reserved.")),
		h.Div(h.Class("legal"),
			h.A(h.Href("#"), g.Text("Privacy")),
			h.A(h.Href("#"), g.Text("Terms")),
		),
	)
}
