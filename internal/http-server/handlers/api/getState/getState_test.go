package getState

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventPandey/internal/http-server/handlers/api/getState/mocks"
	"eventPandey/internal/lib/logger/handlers/slogdiscard"
	"eventPandey/internal/models"
	"eventPandey/internal/site"
)

func TestGetStateHandler(t *testing.T) {
	t.Parallel()

	open := 1
	sn := site.Snapshot{
		BookingOpen:    true,
		FaqOpen:        &open,
		PlanningStatus: models.PlanningSubmitted,
		BookingStep:    models.StepForm,
		BookingPending: true,
		Booking:        models.NewBookingFormData(),
	}

	state := mocks.NewStateGetter(t)
	state.On("Snapshot", mock.Anything, mock.Anything).Return(sn)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), state).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "OK",
		"state": {
			"booking_open": true,
			"faq_open": 1,
			"planning_status": "submitted",
			"booking_step": "form",
			"booking_pending": true,
			"booking": {
				"name": "",
				"email": "",
				"phone": "",
				"event_type": "wedding",
				"date": "",
				"guest_count": 50,
				"notes": ""
			}
		}
	}`, rr.Body.String())
}

func TestClosedFaqIsNull(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	responseOK(rr, httptest.NewRequest(http.MethodGet, "/", nil), site.Snapshot{})

	assert.Contains(t, rr.Body.String(), `"faq_open":null`)
}
