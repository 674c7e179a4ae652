package showPage

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventPandey/internal/http-server/handlers/site/showPage/mocks"
	"eventPandey/internal/http-server/middleware/nonce"
	"eventPandey/internal/lib/logger/handlers/slogdiscard"
	"eventPandey/internal/models"
	"eventPandey/internal/site"
	"eventPandey/internal/storage/memory"
)

func TestShowPage(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name     string
		snapshot site.Snapshot
		contains []string
		excludes []string
	}{
		{
			name: "Closed dialog",
			snapshot: site.Snapshot{
				PlanningStatus: models.PlanningIdle,
				BookingStep:    models.StepForm,
				Booking:        models.NewBookingFormData(),
			},
			contains: []string{`id="about"`, `id="faq"`, "Get A Quote"},
			excludes: []string{`role="dialog"`},
		},
		{
			name: "Open dialog after success",
			snapshot: site.Snapshot{
				BookingOpen:    true,
				PlanningStatus: models.PlanningSubmitted,
				BookingStep:    models.StepSuccess,
				Booking:        models.NewBookingFormData(),
			},
			contains: []string{`role="dialog"`, "Done.", "Received!"},
			excludes: []string{"Get A Quote", "Confirm Booking"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			state := mocks.NewStateGetter(t)
			state.On("Snapshot", mock.Anything, mock.Anything).Return(tc.snapshot)

			handler := nonce.New(logger)(New(logger, memory.New(), state))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `nonce="`)

			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, rr.Body.String(), s)
			}
		})
	}
}
