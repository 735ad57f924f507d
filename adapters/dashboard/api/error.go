package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Error is returned for any non-2xx dashboard response or for a failure
// before a response was received. Status and Header are zero in the latter
// case.
type Error struct {
	Method string
	URL    string
	Status int
	Header http.Header
	Reason string // message extracted from the response body, if any
	Detail string // transport-level detail when no response was received
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Detail)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Status)
}

// RateLimited reports whether the server asked the caller to back off.
func (e *Error) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}

// RetryAfter returns the server-directed backoff from the Retry-After header
// (integer seconds). A missing or unparseable header is an error so callers
// fail fast instead of sleeping for an implicit zero.
func (e *Error) RetryAfter() (time.Duration, error) {
	v := e.Header.Get("Retry-After")
	if v == "" {
		return 0, errors.New("missing Retry-After header")
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("unparseable Retry-After %q", v)
	}
	return time.Duration(secs) * time.Second, nil
}

// newResponseError builds an *Error from a non-2xx response, extracting the
// dashboard's error messages from the body when present.
func newResponseError(method, url string, resp *http.Response, body []byte) *Error {
	e := &Error{
		Method: method,
		URL:    url,
		Status: resp.StatusCode,
		Header: resp.Header,
	}
	var payload struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		e.Reason = payload.Errors[0]
	}
	return e
}
