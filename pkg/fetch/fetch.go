// Package fetch is the shared resilient JSON HTTP client. Every outbound
// call to the seven labour-market APIs goes through one Client so all of
// them share a single timeout, retry, and error-classification contract.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/maltehb/jobtech-mcp/pkg/logging"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 3
)

// Client performs JSON GET/POST requests with a bounded retry loop.
// It holds no mutable state between calls; concurrent use is safe.
type Client struct {
	httpClient *http.Client
	logger     *logging.Logger
	timeout    time.Duration
	retries    int
	sleep      func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying net/http client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithLogger injects the logger used for retry and failure diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout sets the per-attempt wall-clock budget. Each retry starts a
// fresh window.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets how many times a 5xx response is retried after the
// initial attempt.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithSleep overrides the inter-attempt wait. Tests use this to record the
// backoff schedule instead of sleeping through it.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// New builds a Client. Defaults: 10s per attempt, 3 retries, nop logger.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     logging.NewNop(),
		timeout:    defaultTimeout,
		retries:    defaultRetries,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON issues a GET against an absolute URL and decodes the 2xx body
// into out. 5xx responses are retried with linear backoff (1s, 2s, 3s);
// 429, timeouts, and other non-2xx statuses fail immediately with a typed
// *Error. Transport failures pass through unmodified.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, out, newLinearBackOff(time.Second))
}

// PostJSON issues a POST with a JSON-serialized body. Same contract as
// GetJSON except the retry backoff is exponential (1s, 2s, 4s).
func (c *Client) PostJSON(ctx context.Context, rawURL string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("fetch: encode body for %s: %w", rawURL, err)
	}
	return c.do(ctx, http.MethodPost, rawURL, payload, out, newExponentialBackOff(time.Second))
}

// do runs the bounded attempt loop: at most retries+1 attempts, waiting
// out the schedule between consecutive 5xx failures.
func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, out any, schedule backoff.BackOff) error {
	requestID := uuid.NewString()
	maxAttempts := c.retries + 1

	for attempt := 1; ; attempt++ {
		err := c.attempt(ctx, method, rawURL, body, out)
		if err == nil {
			return nil
		}

		var fe *Error
		if errors.As(err, &fe) && fe.Kind == KindServer && attempt < maxAttempts {
			delay := schedule.NextBackOff()
			c.logger.Warn("upstream server error, retrying",
				"request_id", requestID,
				"method", method,
				"url", rawURL,
				"status", fe.Status,
				"attempt", attempt,
				"delay", delay,
			)
			if serr := c.sleep(ctx, delay); serr != nil {
				return serr
			}
			continue
		}

		c.logger.Warn("request failed",
			"request_id", requestID,
			"method", method,
			"url", rawURL,
			"attempt", attempt,
			"err", err,
		)
		return err
	}
}

func (c *Client) attempt(ctx context.Context, method, rawURL string, body []byte, out any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("fetch: build request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Distinguish our per-attempt deadline from a caller cancellation
		// by structure, not by error text.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return &Error{Kind: KindTimeout, URL: rawURL, cause: err}
		}
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: resp.StatusCode, URL: rawURL}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &Error{Kind: KindServer, Status: resp.StatusCode, URL: rawURL}
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return &Error{Kind: KindClient, Status: resp.StatusCode, URL: rawURL}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fetch: decode response from %s: %w", rawURL, err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
