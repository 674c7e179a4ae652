package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRenders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "site_page_renders_total",
			Help: "Total rendered landing pages",
		},
	)

	formSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_form_submissions_total",
			Help: "Form submissions by form and outcome",
		},
		[]string{"form", "status"},
	)

	faqToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_faq_toggles_total",
			Help: "FAQ accordion toggles per item",
		},
		[]string{"index"},
	)

	bookingDialog = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_booking_dialog_total",
			Help: "Booking dialog open and close actions",
		},
		[]string{"action"},
	)
)

func PageRendered() {
	pageRenders.Inc()
}

func FormSubmitted(form, status string) {
	formSubmissions.WithLabelValues(form, status).Inc()
}

func FaqToggled(index string) {
	faqToggles.WithLabelValues(index).Inc()
}

func BookingDialog(action string) {
	bookingDialog.WithLabelValues(action).Inc()
}
