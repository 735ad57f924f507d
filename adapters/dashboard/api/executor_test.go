package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDoer replays a scripted sequence of results and counts calls.
type mockDoer struct {
	calls   int
	results []error // nil means success
	payload []byte
}

func (m *mockDoer) Do(ctx context.Context, method, path string, body any) ([]byte, http.Header, error) {
	i := m.calls
	m.calls++
	if i >= len(m.results) {
		i = len(m.results) - 1
	}
	if err := m.results[i]; err != nil {
		return nil, nil, err
	}
	return m.payload, nil, nil
}

func rateLimitError(retryAfter string) *Error {
	h := http.Header{}
	if retryAfter != "" {
		h.Set("Retry-After", retryAfter)
	}
	return &Error{Method: http.MethodGet, URL: "/x", Status: http.StatusTooManyRequests, Header: h}
}

// recordingSleep collects requested wait durations without delaying.
func recordingSleep(waits *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
}

func TestExecutorSuccessFirstAttempt(t *testing.T) {
	var waits []time.Duration
	doer := &mockDoer{results: []error{nil}, payload: []byte(`{}`)}
	e := NewExecutorWithSleep(doer, recordingSleep(&waits))

	payload, err := e.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), payload)
	assert.Equal(t, 1, doer.calls)
	assert.Empty(t, waits)
}

func TestExecutorNoRetryOnOtherErrors(t *testing.T) {
	var waits []time.Duration
	doer := &mockDoer{results: []error{&Error{Method: "GET", URL: "/x", Status: http.StatusInternalServerError}}}
	e := NewExecutorWithSleep(doer, recordingSleep(&waits))

	_, err := e.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.Error(t, err)
	assert.Equal(t, 1, doer.calls)
	assert.Empty(t, waits)
}

func TestExecutorRetriesOnRateLimit(t *testing.T) {
	var waits []time.Duration
	doer := &mockDoer{
		results: []error{rateLimitError("2"), rateLimitError("5"), nil},
		payload: []byte(`[]`),
	}
	e := NewExecutorWithSleep(doer, recordingSleep(&waits))

	payload, err := e.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
	assert.Equal(t, 3, doer.calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 5 * time.Second}, waits)
}

func TestExecutorExhaustsRetries(t *testing.T) {
	var waits []time.Duration
	doer := &mockDoer{results: []error{rateLimitError("1")}}
	e := NewExecutorWithSleep(doer, recordingSleep(&waits))

	_, err := e.Do(context.Background(), http.MethodGet, "/organizations", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited after 3 retries")
	// Initial attempt plus maxRateLimitRetries re-attempts, one wait each.
	assert.Equal(t, maxRateLimitRetries+1, doer.calls)
	assert.Len(t, waits, maxRateLimitRetries)
}

func TestExecutorFailsFastWithoutRetryAfter(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
	}{
		{"missing header", ""},
		{"unparseable header", "soon"},
		{"negative header", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var waits []time.Duration
			doer := &mockDoer{results: []error{rateLimitError(tt.retryAfter)}}
			e := NewExecutorWithSleep(doer, recordingSleep(&waits))

			_, err := e.Do(context.Background(), http.MethodGet, "/organizations", nil)
			require.Error(t, err)
			assert.Equal(t, 1, doer.calls)
			assert.Empty(t, waits)

			// The originating response error stays inspectable.
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
		})
	}
}

func TestExecutorSleepAbortsOnCancel(t *testing.T) {
	doer := &mockDoer{results: []error{rateLimitError("30")}}
	e := NewExecutor(doer)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := e.Do(ctx, http.MethodGet, "/organizations", nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestContextSleep(t *testing.T) {
	err := contextSleep(context.Background(), time.Millisecond)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = contextSleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
