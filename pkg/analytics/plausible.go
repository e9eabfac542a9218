package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/amoxtli/school-contact/pkg/logger"
)

// Plausible sends events to the Plausible Events API.
type Plausible struct {
	endpoint   string
	domain     string
	pageURL    string
	userAgent  string
	maxRetries int

	client  *http.Client
	limiter *rate.Limiter
	breaker *CircuitBreaker
	backoff Backoff
	sleep   func(context.Context, time.Duration) error
	log     *slog.Logger
}

type PlausibleOption func(*Plausible)

func WithHTTPClient(c *http.Client) PlausibleOption {
	return func(p *Plausible) {
		if c != nil {
			p.client = c
		}
	}
}

func WithBackoff(b Backoff) PlausibleOption {
	return func(p *Plausible) {
		if b != nil {
			p.backoff = b
		}
	}
}

func WithCircuitBreaker(cb *CircuitBreaker) PlausibleOption {
	return func(p *Plausible) {
		if cb != nil {
			p.breaker = cb
		}
	}
}

func WithPlausibleLogger(log *slog.Logger) PlausibleOption {
	return func(p *Plausible) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPlausible requires a domain and an endpoint.
func NewPlausible(cfg Config, opts ...PlausibleOption) (*Plausible, error) {
	if cfg.Domain == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("domain is required"))
	}
	if cfg.Endpoint == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("endpoint is required"))
	}
	if cfg.EventsPerSecond <= 0 || cfg.Burst <= 0 {
		return nil, errors.Join(ErrInvalidConfig, errors.New("event budget must be positive"))
	}

	p := &Plausible{
		endpoint:   cfg.Endpoint,
		domain:     cfg.Domain,
		pageURL:    cfg.PageURL,
		userAgent:  cfg.UserAgent,
		maxRetries: max(cfg.MaxRetries, 0),
		client:     &http.Client{Timeout: cmpOr(cfg.Timeout, 5*time.Second)},
		limiter:    rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), cfg.Burst),
		breaker:    NewCircuitBreaker(5, 1, 30*time.Second),
		backoff:    ExponentialBackoff{Jitter: 0.1},
		sleep:      sleepContext,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Component("analytics"))
	return p, nil
}

type plausibleEvent struct {
	Name   string            `json:"name"`
	URL    string            `json:"url"`
	Domain string            `json:"domain"`
	Props  map[string]string `json:"props,omitempty"`
}

// Track delivers one event. Events over the local budget are dropped with
// ErrRateLimited; 4xx responses other than 408, 425 and 429 are not retried.
func (p *Plausible) Track(ctx context.Context, name string, props map[string]any) error {
	if name == "" {
		return ErrEmptyEventName
	}
	if !p.limiter.Allow() {
		return ErrRateLimited
	}

	body, err := json.Marshal(plausibleEvent{
		Name:   name,
		URL:    p.pageURL,
		Domain: p.domain,
		Props:  stringProps(props),
	})
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			if err := p.sleep(ctx, p.backoff.NextInterval(attempt)); err != nil {
				return errors.Join(ErrDeliveryFailed, err)
			}
		}
		if !p.breaker.Allow() {
			return ErrCircuitOpen
		}

		lastErr = p.post(ctx, body)
		if lastErr == nil {
			p.breaker.RecordSuccess()
			return nil
		}
		if errors.Is(lastErr, ErrPermanentFailure) {
			return lastErr
		}
		p.breaker.RecordFailure()
		p.log.DebugContext(ctx, "analytics event attempt failed",
			logger.Event(name),
			slog.Int("attempt", attempt+1),
			logger.Error(lastErr),
		)
	}
	return errors.Join(ErrDeliveryFailed, lastErr)
}

func (p *Plausible) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	statusErr := fmt.Errorf("unexpected status %d", resp.StatusCode)
	if isPermanent(resp.StatusCode) {
		return errors.Join(ErrPermanentFailure, statusErr)
	}
	return statusErr
}

func isPermanent(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}

// stringProps flattens property values; Plausible only accepts scalars.
func stringProps(props map[string]any) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for k, v := range props {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case fmt.Stringer:
			out[k] = val.String()
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
