package closeBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventPandey/internal/http-server/handlers/site/closeBooking/mocks"
	"eventPandey/internal/lib/logger/handlers/slogdiscard"
	"eventPandey/internal/site"
)

func TestCloseBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	closer := mocks.NewBookingCloser(t)
	closer.On("Dispatch", mock.Anything, mock.Anything, site.CloseBooking{}).Return(nil).Once()

	rr := httptest.NewRecorder()
	New(logger, closer).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/booking/close", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestCloseBookingHandlerError(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	closer := mocks.NewBookingCloser(t)
	closer.On("Dispatch", mock.Anything, mock.Anything, site.CloseBooking{}).Return(errors.New("store is closed"))

	rr := httptest.NewRecorder()
	New(logger, closer).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/booking/close", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"failed to close booking dialog"}`, rr.Body.String())
}
