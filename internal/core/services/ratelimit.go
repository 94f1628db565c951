package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit holds the parameters of one call-rate budget: at most
// Calls admissions within any rolling Window.
type RateLimit struct {
	Calls  int
	Window time.Duration
}

// DefaultReadLimit and DefaultWriteLimit are the budgets of the
// Contacts API for read and write requests. Reads and writes are
// metered separately by the API, hence two budgets.
var (
	DefaultReadLimit  = RateLimit{Calls: 7, Window: 5 * time.Second}
	DefaultWriteLimit = RateLimit{Calls: 7, Window: 5 * time.Second}
)

// RateLimiter admits calls under a RateLimit budget. Excess calls are
// queued, not failed: Wait blocks the caller until admission. A
// backoff period recorded after a server-side rate limit rejection is
// honoured before the next admission.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a limiter for the given budget. Both
// parameters must be positive.
func NewRateLimiter(cfg RateLimit) (*RateLimiter, error) {
	if cfg.Calls <= 0 {
		return nil, fmt.Errorf("rate limit calls must be positive, got %d", cfg.Calls)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", cfg.Window)
	}
	// Admissions are spaced evenly at Window/Calls with no burst, so
	// no rolling window ever sees more than Calls admissions.
	interval := cfg.Window / time.Duration(cfg.Calls)
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Wait blocks until a call can be made without exceeding the budget,
// or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRetryAfter sets a backoff period after the server itself
// rejected a call for rate limiting.
func (r *RateLimiter) RecordRetryAfter(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = time.Now().Add(d)
}

// Allow reports whether a call could be made right now without
// blocking. It consumes an admission when it returns true.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}
	return r.limiter.Allow()
}
