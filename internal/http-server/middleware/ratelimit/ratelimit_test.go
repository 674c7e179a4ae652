package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventPandey/internal/lib/logger/handlers/slogdiscard"
)

func TestMiddlewareRejectsOverBurst(t *testing.T) {
	t.Parallel()

	l := New(Config{RPS: 1, Burst: 2})
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	handler := l.Middleware(slogdiscard.NewDiscardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/planning", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:1001").Code)

	rr := do("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"too many requests"}`, rr.Body.String())

	assert.Equal(t, http.StatusNoContent, do("10.0.0.2:1000").Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:1003").Code)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	l := New(Config{IdleTTL: time.Minute})
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(30 * time.Second)
	l.Allow("b")
	now = now.Add(45 * time.Second)

	l.Cleanup()

	assert.Len(t, l.clients, 1)
	assert.Contains(t, l.clients, "b")
}
