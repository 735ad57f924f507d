package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgtools/dashadm/internal/logging"
)

// maxRateLimitRetries bounds how many times a single logical request is
// re-attempted after a 429. Every other failure is final on the first try.
const maxRateLimitRetries = 3

// Doer performs one HTTP exchange. *Client is the production implementation.
type Doer interface {
	Do(ctx context.Context, method, path string, body any) ([]byte, http.Header, error)
}

// SleepFunc suspends for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

func contextSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Executor wraps a Doer with the rate-limit retry policy: a 429 response is
// retried after the server-directed Retry-After delay, up to
// maxRateLimitRetries times. Nothing else is ever retried.
type Executor struct {
	doer  Doer
	sleep SleepFunc
}

// NewExecutor returns an Executor over doer with a context-aware sleep.
func NewExecutor(doer Doer) *Executor {
	return &Executor{doer: doer, sleep: contextSleep}
}

// NewExecutorWithSleep returns an Executor with an injected sleep, used by
// tests to observe waits without real delays.
func NewExecutorWithSleep(doer Doer, sleep SleepFunc) *Executor {
	return &Executor{doer: doer, sleep: sleep}
}

// Do issues the request, honoring the retry policy. It returns the response
// payload on success.
func (e *Executor) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	log := logging.FromContext(ctx)
	for attempt := 0; ; attempt++ {
		payload, _, err := e.doer.Do(ctx, method, path, body)
		if err == nil {
			return payload, nil
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) || !apiErr.RateLimited() {
			log.Error(ctx, "dashboard request failed", "method", method, "path", path, "error", err)
			return nil, err
		}
		if attempt >= maxRateLimitRetries {
			log.Error(ctx, "rate limit retries exhausted", "method", method, "path", path, "retries", maxRateLimitRetries)
			return nil, fmt.Errorf("rate limited after %d retries: %w", maxRateLimitRetries, err)
		}

		wait, perr := apiErr.RetryAfter()
		if perr != nil {
			// Without a usable Retry-After there is no sane wait; give up
			// rather than sleep for an implicit zero.
			log.Error(ctx, "rate limited without usable Retry-After", "method", method, "path", path, "error", perr)
			return nil, fmt.Errorf("rate limited but %v: %w", perr, apiErr)
		}

		log.Warn(ctx, "rate limited, backing off", "method", method, "path", path, "wait", wait, "attempt", attempt+1)
		if serr := e.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
}
