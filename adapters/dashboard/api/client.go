package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/orgtools/dashadm/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Config carries the immutable settings shared by every outbound call.
type Config struct {
	BaseURL string        // e.g. https://dashboard.example.com/api/v1
	APIKey  string        // bearer token
	Timeout time.Duration // per-call deadline, defaultTimeout when zero
}

// Client performs single HTTP exchanges against the dashboard API. It holds
// no retry logic; see Executor for the rate-limit policy.
type Client struct {
	cfg Config
	hc  *http.Client
}

// NewClient validates cfg and returns a ready Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("dashboard base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("dashboard API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Transport: http.DefaultTransport},
	}, nil
}

// Do performs exactly one HTTP exchange. body is JSON-marshaled when non-nil.
// On 2xx it returns the raw response body and headers; any other outcome
// returns an *Error.
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	url := c.cfg.BaseURL + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, &Error{Method: method, URL: url, Detail: "encoding request body: " + err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, &Error{Method: method, URL: url, Detail: err.Error()}
	}
	reqID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-Request-Id", reqID)

	logging.FromContext(ctx).Debug(ctx, "dashboard request", "method", method, "path", path, "request_id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, nil, &Error{Method: method, URL: url, Detail: err.Error()}
	}
	// The body must be drained for the connection to be reused.
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, nil, &Error{Method: method, URL: url, Status: resp.StatusCode, Header: resp.Header, Detail: "reading response body: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, newResponseError(method, url, resp, data)
	}
	return data, resp.Header, nil
}
