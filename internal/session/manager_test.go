package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPandey/internal/clock"
	"eventPandey/internal/models"
	"eventPandey/internal/site"
)

var epoch = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

func newManager() (*Manager, *clock.Fake) {
	c := clock.NewFake(epoch)
	m := NewManager(Config{
		CookieName: "sid",
		TTL:        10 * time.Minute,
		Site:       site.Options{FaqItems: 4},
	}, c)

	return m, c
}

func TestStoreSetsCookieAndReusesSession(t *testing.T) {
	t.Parallel()

	m, _ := newManager()

	rr := httptest.NewRecorder()
	first := m.Store(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	second := m.Store(rr, req)

	assert.Same(t, first, second)
	assert.Empty(t, rr.Result().Cookies())
	assert.Equal(t, 1, m.Len())
}

func TestUnknownCookieStartsNewSession(t *testing.T) {
	t.Parallel()

	m, _ := newManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "stale"})
	rr := httptest.NewRecorder()

	m.Store(rr, req)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "stale", cookies[0].Value)
}

func TestFirstRequestResolvesOneSession(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"stale cookie", &http.Cookie{Name: "sid", Value: "stale"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newManager()

			req := httptest.NewRequest(http.MethodPost, "/booking/field", nil)
			req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rr := httptest.NewRecorder()

			require.NoError(t, m.Dispatch(rr, req, site.UpdateBookingField{Name: site.FieldGuestCount, Value: "75"}))
			sn := m.Snapshot(rr, req)

			assert.Equal(t, 75, sn.Booking.GuestCount)
			assert.Equal(t, 1, m.Len())
			assert.Len(t, rr.Result().Cookies(), 1)

			other, err := req.Cookie("theme")
			require.NoError(t, err)
			assert.Equal(t, "dark", other.Value)
		})
	}
}

func TestSweepEvictsIdleSessionsAndStopsTimers(t *testing.T) {
	t.Parallel()

	c := clock.NewFake(epoch)
	m := NewManager(Config{
		CookieName: "sid",
		TTL:        10 * time.Minute,
		Site:       site.Options{FaqItems: 4, PlanningReset: time.Hour},
	}, c)

	idle := m.Store(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, idle.Dispatch(site.SubmitPlanning{}))

	c.Advance(5 * time.Minute)
	active := m.Store(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	c.Advance(6 * time.Minute)
	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())

	c.Advance(2 * time.Hour)
	assert.Equal(t, models.PlanningSubmitted, idle.Snapshot().PlanningStatus)
	assert.ErrorIs(t, idle.Dispatch(site.OpenBooking{}), site.ErrClosed)
	assert.NoError(t, active.Dispatch(site.OpenBooking{}))
}

func TestClose(t *testing.T) {
	t.Parallel()

	m, _ := newManager()

	s := m.Store(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	m.Close()

	assert.Zero(t, m.Len())
	assert.ErrorIs(t, s.Dispatch(site.OpenBooking{}), site.ErrClosed)
}

func TestDispatchAndSnapshotShareSession(t *testing.T) {
	t.Parallel()

	m, _ := newManager()

	rr := httptest.NewRecorder()
	require.NoError(t, m.Dispatch(rr, httptest.NewRequest(http.MethodPost, "/booking/open", nil), site.OpenBooking{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])

	assert.True(t, m.Snapshot(httptest.NewRecorder(), req).BookingOpen)
}
