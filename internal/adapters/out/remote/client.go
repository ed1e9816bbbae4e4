// Package remote is the JSON-over-HTTP plumbing shared by the clients of the Users and
// Orders services.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultTimeout bounds a single remote call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// FailureRecorder counts failed remote calls.
type FailureRecorder interface {
	RemoteCallFailed(service string, operation string)
}

type nopRecorder struct{}

func (nopRecorder) RemoteCallFailed(string, string) {}

// Client sends JSON requests to one remote service.
type Client struct {
	service  string
	baseURL  string
	http     *http.Client
	failures FailureRecorder
	logger   *slog.Logger
}

// NewClient builds a client for service rooted at baseURL. A non-positive timeout falls back
// to DefaultTimeout; failures and logger may be nil.
func NewClient(
	service string,
	baseURL string,
	timeout time.Duration,
	failures FailureRecorder,
	logger *slog.Logger,
) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if failures == nil {
		failures = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		service:  service,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		failures: failures,
		logger:   logger.With("component", service+"_client"),
	}
}

// StatusError reports a response with an unexpected status code.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Do sends body (if not nil) as JSON and decodes a 2xx response into out (if not nil).
// It returns the status code; transport and decoding failures are returned as errors and
// counted against operation. Callers decide which non-2xx codes are failures.
func (c *Client) Do(ctx context.Context, operation string, method string, path string, body any, out any) (int, error) {
	code, err := c.do(ctx, method, path, body, out)
	if err != nil {
		c.Fail(ctx, operation, err)
	}
	return code, err
}

// Fail records a failed call.
func (c *Client) Fail(ctx context.Context, operation string, err error) {
	c.failures.RemoteCallFailed(c.service, operation)
	c.logger.WarnContext(ctx, "remote call failed", "operation", operation, "error", err)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 || out == nil {
		return resp.StatusCode, nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return resp.StatusCode, nil
}
