package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPandey/internal/models"
	"eventPandey/internal/site"
	"eventPandey/internal/storage/memory"
)

func render(t *testing.T, sn site.Snapshot) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, PageData{Catalog: memory.New(), State: sn, Nonce: "abc123"}))

	return buf.String()
}

func initial() site.Snapshot {
	open := 0
	return site.Snapshot{
		FaqOpen:        &open,
		PlanningStatus: models.PlanningIdle,
		BookingStep:    models.StepForm,
		Booking:        models.NewBookingFormData(),
	}
}

func TestPageHasSectionsInOrder(t *testing.T) {
	t.Parallel()

	html := render(t, initial())

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))

	last := -1
	for _, id := range []string{`id="about"`, `id="services"`, `id="pricing"`, `id="planning"`, `id="faq"`} {
		idx := strings.Index(html, id)
		require.NotEqual(t, -1, idx, "missing %s", id)
		assert.Greater(t, idx, last, "%s out of order", id)
		last = idx
	}

	for _, anchor := range []string{"#about", "#services", "#pricing", "#planning", "#faq"} {
		assert.Contains(t, html, `href="`+anchor+`"`)
	}

	assert.Contains(t, html, `nonce="abc123"`)
	assert.Contains(t, html, "The Best One")
	assert.Contains(t, html, "$8.5k+")
	assert.NotContains(t, html, `http-equiv="refresh"`)
}

func TestFaqRendersOnlyOpenAnswer(t *testing.T) {
	t.Parallel()

	html := render(t, initial())
	assert.Contains(t, html, "We bring the machines")
	assert.NotContains(t, html, "We travel. You pay.")
	assert.Contains(t, html, `action="/faq/1/toggle"`)

	sn := initial()
	sn.FaqOpen = nil
	html = render(t, sn)
	assert.NotContains(t, html, `class="faq-answer"`)
}

func TestModalOnlyWhenOpen(t *testing.T) {
	t.Parallel()

	html := render(t, initial())
	assert.NotContains(t, html, `role="dialog"`)

	sn := initial()
	sn.BookingOpen = true
	sn.Booking.Name = "Jane <Doe>"
	html = render(t, sn)

	assert.Contains(t, html, `role="dialog"`)
	assert.Contains(t, html, "Book It.")
	assert.Contains(t, html, `value="Jane &lt;Doe&gt;"`)
	assert.Contains(t, html, `value="50"`)
	assert.Contains(t, html, `min="1"`)
	assert.Contains(t, html, `action="/booking/close"`)
	assert.Contains(t, html, `<option value="wedding" selected>`)
}

func TestModalSuccessView(t *testing.T) {
	t.Parallel()

	sn := initial()
	sn.BookingOpen = true
	sn.BookingStep = models.StepSuccess
	html := render(t, sn)

	assert.Contains(t, html, "Done.")
	assert.NotContains(t, html, "Confirm Booking")
	assert.Equal(t, 2, strings.Count(html, `action="/booking/close"`))
}

func TestPendingSubmitRefreshes(t *testing.T) {
	t.Parallel()

	sn := initial()
	sn.BookingOpen = true
	sn.BookingPending = true
	sn.RefreshIn = 900 * time.Millisecond
	html := render(t, sn)

	assert.Contains(t, html, `http-equiv="refresh" content="1"`)
	assert.Contains(t, html, "Sending...")
}

func TestPlanningReceived(t *testing.T) {
	t.Parallel()

	sn := initial()
	sn.PlanningStatus = models.PlanningSubmitted
	html := render(t, sn)

	assert.Contains(t, html, "Received!")
	assert.NotContains(t, html, `action="/planning"`)

	html = render(t, initial())
	assert.Contains(t, html, `action="/planning"`)
	assert.Contains(t, html, "Birthday Bash")
}
