package contactform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/analytics"
	"github.com/amoxtli/school-contact/pkg/contact"
	"github.com/amoxtli/school-contact/pkg/contactform"
	"github.com/amoxtli/school-contact/pkg/email"
)

type event struct {
	Name  string
	Props map[string]any
}

type recorder struct {
	mu     sync.Mutex
	events []event
	err    error
}

func (r *recorder) Track(_ context.Context, name string, props map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{name, props})
	return r.err
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}

func (r *recorder) last() event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func jsonServer(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not a url", "/relative", "://x"} {
		_, err := contactform.New(raw)
		assert.ErrorIs(t, err, contactform.ErrInvalidBaseURL, raw)
	}
}

func TestClient_Submit_Success(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"`+contact.MsgSuccess+`"}`, nil)
	rec := &recorder{}
	c, err := contactform.New(srv.URL, contactform.WithTracker(rec), contactform.WithProvider("postmark"))
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, contactform.StateSuccess, out.State)
	assert.Equal(t, contact.MsgSuccess, out.Message)
	assert.Equal(t, contactform.StateSuccess, c.State())
	assert.Equal(t, contactform.FormData{}, c.Data(), "form is cleared after success")

	assert.Equal(t, []string{contactform.EventSubmitAttempt, contactform.EventSubmitSuccess}, rec.names())
	assert.Equal(t, map[string]any{
		"provider":    "postmark",
		"industry":    "education",
		"companySize": "small",
	}, rec.last().Props)
}

func TestClient_Submit_ServerRejection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantErr string
	}{
		{
			name:    "server message is shown",
			status:  http.StatusBadRequest,
			body:    `{"success":false,"message":"Formato de email inválido"}`,
			wantMsg: "Formato de email inválido",
			wantErr: "Formato de email inválido",
		},
		{
			name:    "empty message falls back",
			status:  http.StatusInternalServerError,
			body:    `{"success":false}`,
			wantMsg: contactform.MsgFallback,
			wantErr: contactform.MsgFallback,
		},
		{
			name:    "unreadable body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantMsg: contactform.MsgFallback,
			wantErr: "unexpected_error",
		},
		{
			name:    "success flag with error status",
			status:  http.StatusInternalServerError,
			body:    `{"success":true,"message":"odd"}`,
			wantMsg: "odd",
			wantErr: "odd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := jsonServer(t, tt.status, tt.body, nil)
			rec := &recorder{}
			c, err := contactform.New(srv.URL, contactform.WithTracker(rec))
			require.NoError(t, err)

			form := validForm()
			out, err := c.Submit(context.Background(), form)
			require.NoError(t, err)

			assert.False(t, out.Success)
			assert.Equal(t, contactform.StateError, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, form, c.Data(), "form keeps its values after a failure")

			assert.Equal(t, []string{contactform.EventSubmitAttempt, contactform.EventSubmitError}, rec.names())
			assert.Equal(t, map[string]any{"provider": "api", "error": tt.wantErr}, rec.last().Props)
		})
	}
}

func TestClient_Submit_ConnectionError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	rec := &recorder{}
	c, err := contactform.New(base, contactform.WithTracker(rec))
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, contactform.StateError, out.State)
	assert.Equal(t, contactform.MsgConnectionError, out.Message)
	assert.Equal(t, contactform.MsgConnectionError, rec.last().Props["error"])
}

func TestClient_Submit_LocalValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*contactform.FormData)
		wantMsg   string
		wantField []string
	}{
		{
			name:      "invalid email",
			mutate:    func(d *contactform.FormData) { d.Email = "ana@" },
			wantMsg:   contactform.MsgEmailInvalid,
			wantField: []string{"email"},
		},
		{
			name:      "honeypot filled",
			mutate:    func(d *contactform.FormData) { d.Honeypot = "bot" },
			wantMsg:   contactform.MsgSpam,
			wantField: []string{"honeypot"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"ok"}`, &calls)
			rec := &recorder{}
			c, err := contactform.New(srv.URL, contactform.WithTracker(rec))
			require.NoError(t, err)

			form := validForm()
			tt.mutate(&form)
			out, err := c.Submit(context.Background(), form)
			require.NoError(t, err)

			assert.Equal(t, contactform.StateError, out.State)
			assert.Equal(t, tt.wantMsg, out.Message)
			assert.Equal(t, tt.wantField, out.Errors.Fields())
			assert.Zero(t, calls.Load())
			assert.Equal(t, form, c.Data())

			assert.Equal(t, []string{contactform.EventSubmitAttempt, contactform.EventSubmitError}, rec.names())
			assert.Equal(t, map[string]any{"provider": "api", "error": tt.wantMsg}, rec.last().Props)
		})
	}
}

func TestClient_Submit_EmptySuccessMessageFallsBack(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{"success":true}`, nil)
	c, err := contactform.New(srv.URL)
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, contactform.StateSuccess, out.State)
	assert.Equal(t, contactform.MsgSuccess, out.Message)
}

func TestClient_Submit_RejectsConcurrentSubmit(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		close(entered)
		<-release
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	t.Cleanup(srv.Close)

	c, err := contactform.New(srv.URL)
	require.NoError(t, err)

	done := make(chan contactform.Outcome)
	go func() {
		out, _ := c.Submit(context.Background(), validForm())
		done <- out
	}()

	<-entered
	assert.Equal(t, contactform.StateSubmitting, c.State())

	_, err = c.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, contactform.ErrSubmissionInProgress)
	assert.ErrorIs(t, c.Reset(), contactform.ErrSubmissionInProgress)

	close(release)
	out := <-done
	assert.True(t, out.Success)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, c.Reset())
	assert.Equal(t, contactform.StateIdle, c.State())
}

func TestClient_Submit_TrackerFailureDoesNotChangeOutcome(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"ok"}`, nil)
	rec := &recorder{err: errors.New("analytics down")}
	c, err := contactform.New(srv.URL, contactform.WithTracker(rec))
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, contactform.StateSuccess, out.State)
	assert.Len(t, rec.names(), 2)
}

func TestClient_Submit_AgainstContactAPI(t *testing.T) {
	t.Parallel()

	var sent atomic.Int32
	sender := email.SenderFunc(func(context.Context, email.Message) error {
		sent.Add(1)
		return nil
	})
	svc, err := contact.NewService(contact.DefaultConfig(), sender)
	require.NoError(t, err)
	srv := httptest.NewServer(contact.Routes(svc))
	t.Cleanup(srv.Close)

	tracker := analytics.NewAsync(&recorder{})
	c, err := contactform.New(srv.URL, contactform.WithTracker(tracker))
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NoError(t, tracker.Flush(context.Background()))

	assert.True(t, out.Success)
	assert.Equal(t, contact.MsgSuccess, out.Message)
	assert.Equal(t, int32(2), sent.Load())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", contactform.StateIdle.String())
	assert.Equal(t, "submitting", contactform.StateSubmitting.String())
	assert.Equal(t, "success", contactform.StateSuccess.String())
	assert.Equal(t, "error", contactform.StateError.String())
	assert.Equal(t, "unknown", contactform.State(42).String())
}
