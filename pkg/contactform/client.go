package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/amoxtli/school-contact/pkg/analytics"
	"github.com/amoxtli/school-contact/pkg/logger"
)

const (
	EventSubmitAttempt = "form_submit_attempt"
	EventSubmitSuccess = "form_submit_success"
	EventSubmitError   = "form_submit_error"
)

const (
	MsgSuccess         = "¡Gracias! Tu consulta ha sido enviada."
	MsgFallback        = "Error al enviar el formulario. Por favor, intenta de nuevo."
	MsgConnectionError = "Error de conexión"

	reasonUnexpected = "unexpected_error"
	maxResponseBytes = 1 << 20
)

// Outcome is what the form shows after a submit.
type Outcome struct {
	State   State
	Success bool
	Message string
	Errors  FieldErrors // set when local validation failed
}

// Client submits the contact form to the API. It is safe for concurrent
// use; only one submission runs at a time.
type Client struct {
	endpoint string
	http     *http.Client
	tracker  analytics.Tracker
	provider string
	log      *slog.Logger

	mu    sync.Mutex
	state State
	data  FormData
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTracker sets where analytics events go. Wrap slow trackers in
// analytics.Async.
func WithTracker(t analytics.Tracker) Option {
	return func(cl *Client) {
		if t != nil {
			cl.tracker = t
		}
	}
}

// WithProvider sets the "provider" property sent with every event.
func WithProvider(name string) Option {
	return func(cl *Client) {
		if name != "" {
			cl.provider = name
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		if log != nil {
			cl.log = log
		}
	}
}

// New returns a Client posting to <baseURL>/api/contact.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	c := &Client{
		endpoint: u.JoinPath("api", "contact").String(),
		http:     &http.Client{Timeout: 30 * time.Second},
		tracker:  analytics.Noop{},
		provider: "api",
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("contactform"))
	return c, nil
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Data returns the values the form currently holds. They are cleared after
// a successful submit and kept after a failed one.
func (c *Client) Data() FormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Reset clears the form back to idle. It fails while a submission runs.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrSubmissionInProgress
	}
	c.state = StateIdle
	c.data = FormData{}
	return nil
}

// Submit validates d and posts it. A local validation failure is tracked
// as an attempt followed by an error carrying the first message, and
// nothing is posted. The only error returned is ErrSubmissionInProgress;
// every other failure is reported in the Outcome.
func (c *Client) Submit(ctx context.Context, d FormData) (Outcome, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return Outcome{State: StateSubmitting}, ErrSubmissionInProgress
	}
	c.data = d

	if ok, errs := Validate(d); !ok {
		c.state = StateError
		c.mu.Unlock()
		msg := FirstError(errs)
		c.track(ctx, EventSubmitAttempt, map[string]any{"provider": c.provider})
		c.track(ctx, EventSubmitError, map[string]any{"provider": c.provider, "error": msg})
		return Outcome{State: StateError, Message: msg, Errors: errs}, nil
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	c.track(ctx, EventSubmitAttempt, map[string]any{"provider": c.provider})

	success, msg, err := c.post(ctx, d)

	c.mu.Lock()
	if success {
		c.state = StateSuccess
		c.data = FormData{}
	} else {
		c.state = StateError
	}
	out := Outcome{State: c.state, Success: success, Message: msg}
	c.mu.Unlock()

	switch {
	case success:
		c.track(ctx, EventSubmitSuccess, map[string]any{
			"provider":    c.provider,
			"industry":    d.Industry,
			"companySize": d.CompanySize,
		})
	case errors.Is(err, errUnexpected):
		c.track(ctx, EventSubmitError, map[string]any{"provider": c.provider, "error": reasonUnexpected})
	default:
		c.track(ctx, EventSubmitError, map[string]any{"provider": c.provider, "error": msg})
	}
	return out, nil
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// post returns the server verdict and the message to show. A non-nil error
// means no verdict was received.
func (c *Client) post(ctx context.Context, d FormData) (bool, string, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return false, MsgFallback, errors.Join(errUnexpected, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, MsgFallback, errors.Join(errUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "contact api unreachable", logger.Error(err))
		return false, MsgConnectionError, err
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		c.log.WarnContext(ctx, "contact api returned an unreadable response",
			slog.Int("status", resp.StatusCode),
			logger.Error(err),
		)
		return false, MsgFallback, errors.Join(errUnexpected, err)
	}

	if out.Success && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out.Message == "" {
			out.Message = MsgSuccess
		}
		return true, out.Message, nil
	}
	if out.Message == "" {
		out.Message = MsgFallback
	}
	return false, out.Message, nil
}

func (c *Client) track(ctx context.Context, name string, props map[string]any) {
	if err := c.tracker.Track(ctx, name, props); err != nil {
		c.log.DebugContext(ctx, "analytics event failed", logger.Event(name), logger.Error(err))
	}
}
