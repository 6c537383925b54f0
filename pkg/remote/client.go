// Package remote talks to the HTTP endpoint quotes are synchronised with.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultAttempts    = 3
	defaultBackoff     = 250 * time.Millisecond
	maxBackoff         = 5 * time.Second
	backoffJitterRatio = 0.25
)

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

// Config configures a Client.
type Config struct {
	// URL is the collection endpoint, used for both GET and POST.
	URL string

	// Attempts bounds how many times a fetch is tried. Transport errors
	// and 5xx responses are retried. Pushes are never retried.
	Attempts int

	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration

	// Timeout is the per-attempt timeout.
	Timeout time.Duration

	// Limit is the number of posts mapped to quotes per fetch. Zero means all.
	Limit int

	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client is a small retrying HTTP client for the sync endpoint.
type Client struct {
	http     *http.Client
	url      string
	attempts int
	backoff  time.Duration
	limit    int
	logger   *log.Logger
}

// New creates a client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("remote: url is required")
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http:     hc,
		url:      cfg.URL,
		attempts: cfg.Attempts,
		backoff:  cfg.Backoff,
		limit:    cfg.Limit,
		logger:   logger.With("component", "remote"),
	}, nil
}

// do sends the request built by newReq up to attempts times, retrying
// transport errors and 5xx responses. newReq is called once per attempt so
// bodies can be replayed. The caller closes the returned body.
func (c *Client) do(ctx context.Context, attempts int, newReq func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < max(attempts, 1); attempt++ {
		if attempt > 0 {
			wait := c.backoffFor(attempt)
			c.logger.Debug("retrying request", "attempt", attempt+1, "backoff", wait, "err", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := newReq(ctx)
		if err != nil {
			return nil, fmt.Errorf("remote: build request: %w", err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			drain(resp.Body)
			lastErr = &StatusError{Method: req.Method, URL: req.URL.String(), Code: resp.StatusCode}
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			drain(resp.Body)
			return nil, &StatusError{Method: req.Method, URL: req.URL.String(), Code: resp.StatusCode}
		}
		c.logger.Debug("request completed", "method", req.Method, "status", resp.StatusCode, "attempt", attempt+1)
		return resp, nil
	}
	return nil, lastErr
}

func (c *Client) backoffFor(attempt int) time.Duration {
	d := float64(c.backoff) * math.Pow(2, float64(attempt-1))
	d = math.Min(d, float64(maxBackoff))
	jitter := d * backoffJitterRatio * (rand.Float64()*2 - 1)
	return time.Duration(d + jitter)
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
