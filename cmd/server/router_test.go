package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/contact"
	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/logger"
	"github.com/amoxtli/school-contact/pkg/ratelimit"
)

func testRouter(t *testing.T, limit ratelimit.Config) http.Handler {
	t.Helper()

	sender := email.SenderFunc(func(context.Context, email.Message) error { return nil })
	svc, err := contact.NewService(contact.DefaultConfig(), sender)
	require.NoError(t, err)

	limiter, closeFn, err := newLimiter(limit, nil, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(closeFn)

	return newRouter(routerDeps{service: svc, limiter: limiter, log: logger.Discard()})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := testRouter(t, ratelimit.Config{})

	tests := []struct {
		path string
		want string
	}{
		{"/health/live", "ALIVE"},
		{"/health/ready", "READY"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Equal(t, tt.want, rec.Body.String(), tt.path)
	}
}

func TestRouter_ContactProbeHasRequestID(t *testing.T) {
	t.Parallel()

	h := testRouter(t, ratelimit.Config{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), contact.MsgAlive)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_RateLimitsSubmissions(t *testing.T) {
	t.Parallel()

	h := testRouter(t, ratelimit.Config{Enabled: true, Requests: 1, Window: time.Minute})

	body := `{"name":"Ana","email":"ana@example.com","company":"Sol","industry":"education","companySize":"small","message":"Hola"}`
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:4242"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), contact.MsgTooMany)
}

func TestNewLimiter_Disabled(t *testing.T) {
	t.Parallel()

	limiter, closeFn, err := newLimiter(ratelimit.Config{Enabled: false}, nil, logger.Discard())
	require.NoError(t, err)
	assert.Nil(t, limiter)
	closeFn()
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, _, err := newLimiter(ratelimit.Config{Enabled: true, Requests: 0, Window: time.Minute}, nil, logger.Discard())
	assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
}

func TestNewSender_DevFallback(t *testing.T) {
	t.Parallel()

	sender, err := newSender(email.Config{DevDir: t.TempDir()}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, sender)
}
