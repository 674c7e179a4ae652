package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"eventPandey/internal/models"
	"eventPandey/internal/site"
)

func planning(options []string, status models.PlanningStatus) g.Node {
	var body g.Node
	if status == models.PlanningSubmitted {
		body = h.Div(h.Class("received"),
			h.Div(h.Class("check big"), g.Text("✓")),
			h.H3(g.Text("Received!")),
			h.P(g.Text("We're sharpening our pencils.")),
		)
	} else {
		opts := make([]g.Node, 0, len(options))
		for _, o := range options {
			opts = append(opts, h.Option(h.Value(o), g.Text(o)))
		}

		body = h.Form(
			h.Method("post"),
			h.Action("/planning"),
			h.Class("quote-form"),
			h.H3(g.Text("Get A Quote")),
			field("Your Name", h.Input(h.Type("text"), h.Name("name"), h.Required(), h.Placeholder("NAME"))),
			field("Email", h.Input(h.Type("email"), h.Name("email"), h.Required(), h.Placeholder("EMAIL"))),
			field("Event Type", h.Select(h.Name("eventType"), g.Group(opts))),
			field("Budget (Optional)", h.Input(h.Type("text"), h.Name("budget"), h.Placeholder("$10,000+"))),
			field("Vision", h.Textarea(h.Name("vision"), h.Rows("3"), h.Placeholder("Describe your dream event..."))),
			h.Button(h.Type("submit"), h.Class("btn btn-black btn-block"), g.Text("Send Request")),
		)
	}

	return h.Section(
		h.ID("planning"),
		h.Class("section planning"),
		h.Div(
			h.Div(h.Class("badge"), g.Text("Limited Availability")),
			h.H2(g.Text("Let's Plan "), h.Br(), h.Span(h.Class("highlight"), g.Text("The Chaos"))),
			h.P(g.Text("Skip the email tag. Fill out this form, and we'll send you a custom event blueprint that will blow your mind (and your budget... in a good way).")),
			h.Div(h.Class("perks"),
				h.Span(h.Class("perk"), g.Text("Free Consultation")),
				h.Span(h.Class("perk"), g.Text("Instant Clout")),
			),
		),
		h.Div(h.Class("card"), body),
	)
}

func faq(items []models.FaqItem, sn site.Snapshot) g.Node {
	rows := make([]g.Node, 0, len(items))
	for i, it := range items {
		open := sn.FaqIsOpen(i)

		marker, class := "+", "faq-question"
		if open {
			marker, class = "−", "faq-question open"
		}

		rows = append(rows, h.Div(
			h.Class("faq-item"),
			h.Form(
				h.Method("post"),
				h.Action("/faq/"+strconv.Itoa(i)+"/toggle"),
				h.Button(
					h.Type("submit"),
					h.Class(class),
					h.Aria("expanded", strconv.FormatBool(open)),
					h.Span(g.Text(it.Question)),
					h.Span(g.Text(marker)),
				),
			),
			g.If(open, h.Div(h.Class("faq-answer"), g.Text(it.Answer))),
		))
	}

	return h.Section(
		h.ID("faq"),
		h.Class("section"),
		h.H2(g.Text("Questions?")),
		h.Div(h.Class("faq-list"), g.Group(rows)),
	)
}

func bookingModal(sn site.Snapshot) g.Node {
	var body g.Node
	if sn.BookingStep == models.StepSuccess {
		body = h.Div(h.Class("success"),
			h.Div(h.Class("check big"), g.Text("✓")),
			h.H3(g.Text("Done.")),
			h.P(g.Text("We'll hit you up within 24 hours. Prepare for greatness.")),
			postButton("/booking/close", "btn btn-black btn-block", "Close"),
		)
	} else {
		body = bookingForm(sn)
	}

	return h.Div(
		h.Class("overlay"),
		h.Div(
			h.Class("modal"),
			h.Role("dialog"),
			h.Aria("modal", "true"),
			h.ID("booking"),
			postButton("/booking/close", "modal-close", "×", h.Aria("label", "Close")),
			body,
		),
	)
}

func bookingForm(sn site.Snapshot) g.Node {
	d := sn.Booking

	opts := make([]g.Node, 0, len(models.EventTypes))
	for _, et := range models.EventTypes {
		opts = append(opts, h.Option(
			h.Value(string(et)),
			g.If(et == d.EventType, h.Selected()),
			g.Text(et.Label()),
		))
	}

	submitLabel := "Confirm Booking"
	if sn.BookingPending {
		submitLabel = "Sending..."
	}

	return h.Div(
		h.H2(g.Text("Book It.")),
		h.P(g.Text("Let's make some noise.")),
		h.Form(
			h.Method("post"),
			h.Action("/booking"),
			h.Class("booking-form"),
			field("Name", h.Input(h.Type("text"), h.Name(site.FieldName), h.Required(), h.Value(d.Name), h.Placeholder("JANE DOE"))),
			field("Phone", h.Input(h.Type("tel"), h.Name(site.FieldPhone), h.Required(), h.Value(d.Phone), h.Placeholder("(555) 000-0000"))),
			field("Email", h.Input(h.Type("email"), h.Name(site.FieldEmail), h.Required(), h.Value(d.Email), h.Placeholder("JANE@EXAMPLE.COM"))),
			field("Event Type", h.Select(h.Name(site.FieldEventType), g.Group(opts))),
			field("Date", h.Input(h.Type("date"), h.Name(site.FieldDate), h.Required(), h.Value(d.Date))),
			field("Guest Count", h.Input(h.Type("number"), h.Name(site.FieldGuestCount), h.Required(), h.Min("1"), h.Value(strconv.Itoa(d.GuestCount)))),
			field("Notes", h.Textarea(h.Name(site.FieldNotes), h.Placeholder("TELL US ABOUT THE VIBE..."), g.Text(d.Notes))),
			h.Button(
				h.Type("submit"),
				h.Class("btn btn-black btn-block"),
				g.If(sn.BookingPending, h.Disabled()),
				g.Text(submitLabel),
			),
		),
	)
}

func field(label string, input g.Node) g.Node {
	return h.Label(h.Class("field"),
		h.Span(h.Class("field-label"), g.Text(label)),
		input,
	)
}
