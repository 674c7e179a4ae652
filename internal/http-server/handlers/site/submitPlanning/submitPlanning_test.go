package submitPlanning

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventPandey/internal/http-server/handlers/site/submitPlanning/mocks"
	"eventPandey/internal/lib/logger/handlers/slogdiscard"
	"eventPandey/internal/site"
)

func validForm() url.Values {
	return url.Values{
		"name":      {"Jane Doe"},
		"email":     {"jane@example.com"},
		"eventType": {"Corporate Gala"},
		"budget":    {"$10,000+"},
		"vision":    {"Snow. Lots of it."},
	}
}

func TestSubmitPlanningHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		form           func() url.Values
		mockSetup      func(m *mocks.PlanningSubmitter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			form: validForm,
			mockSetup: func(m *mocks.PlanningSubmitter) {
				m.On("Dispatch", mock.Anything, mock.Anything, site.SubmitPlanning{}).Return(nil)
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name: "Optional fields omitted",
			form: func() url.Values {
				return url.Values{"name": {"Jane"}, "email": {"jane@example.com"}}
			},
			mockSetup: func(m *mocks.PlanningSubmitter) {
				m.On("Dispatch", mock.Anything, mock.Anything, site.SubmitPlanning{}).Return(nil)
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name: "Missing name",
			form: func() url.Values {
				v := validForm()
				v.Del("name")
				return v
			},
			mockSetup:      func(m *mocks.PlanningSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Name is a required field"}`,
		},
		{
			name: "Malformed email",
			form: func() url.Values {
				v := validForm()
				v.Set("email", "jane-at-example")
				return v
			},
			mockSetup:      func(m *mocks.PlanningSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name: "Unknown form field",
			form: func() url.Values {
				v := validForm()
				v.Set("coupon", "FREE")
				return v
			},
			mockSetup:      func(m *mocks.PlanningSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Dispatch error",
			form: validForm,
			mockSetup: func(m *mocks.PlanningSubmitter) {
				m.On("Dispatch", mock.Anything, mock.Anything, site.SubmitPlanning{}).Return(errors.New("store is closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to submit request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			submitter := mocks.NewPlanningSubmitter(t)
			tc.mockSetup(submitter)

			req := httptest.NewRequest(http.MethodPost, "/planning", strings.NewReader(tc.form().Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			New(logger, submitter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			switch {
			case tc.expectedBody != "":
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			case tc.checkBody != nil:
				tc.checkBody(t, rr.Body.String())
			default:
				assert.Equal(t, "/#planning", rr.Header().Get("Location"))
			}
		})
	}
}
