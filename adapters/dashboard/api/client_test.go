package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "http://localhost"})
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "http://localhost", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.cfg.Timeout)
}

func TestClientDoSuccess(t *testing.T) {
	var gotAuth, gotContentType, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Header().Set("X-Server", "dash")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"1","name":"Acme"}]`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	body, header, err := c.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, gotContentType, "application/json")
	assert.NotEmpty(t, gotReqID)
	assert.JSONEq(t, `[{"id":"1","name":"Acme"}]`, string(body))
	assert.Equal(t, "dash", header.Get("X-Server"))
}

func TestClientDoNontwoxx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"errors":["rate limit exceeded"]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	_, _, err = c.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "7", apiErr.Header.Get("Retry-After"))
	assert.Equal(t, "rate limit exceeded", apiErr.Reason)
	assert.True(t, apiErr.RateLimited())
}

func TestClientDoNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	_, _, err = c.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.Status)
	assert.NotEmpty(t, apiErr.Detail)
	assert.False(t, apiErr.RateLimited())
}

func TestClientDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, _, err = c.Do(context.Background(), http.MethodGet, "/organizations", nil)
	assert.Error(t, err)
}
