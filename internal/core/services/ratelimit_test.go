package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRateLimiter_Validation tests budget parameter checks
func TestNewRateLimiter_Validation(t *testing.T) {
	_, err := NewRateLimiter(RateLimit{Calls: 0, Window: time.Second})
	assert.Error(t, err)

	_, err = NewRateLimiter(RateLimit{Calls: 7, Window: 0})
	assert.Error(t, err)

	limiter, err := NewRateLimiter(DefaultReadLimit)
	require.NoError(t, err)
	assert.NotNil(t, limiter)
}

// TestRateLimiter_RollingWindow tests that no rolling window ever
// admits more calls than budgeted
func TestRateLimiter_RollingWindow(t *testing.T) {
	window := 200 * time.Millisecond
	limiter, err := NewRateLimiter(RateLimit{Calls: 4, Window: window})
	require.NoError(t, err)

	ctx := context.Background()
	var admissions []time.Time
	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.Wait(ctx))
		admissions = append(admissions, time.Now())
	}

	for i := range admissions {
		count := 1
		for j := i + 1; j < len(admissions); j++ {
			if admissions[j].Sub(admissions[i]) < window {
				count++
			}
		}
		assert.LessOrEqual(t, count, 4,
			"window starting at admission %d saw %d admissions", i, count)
	}
}

// TestRateLimiter_WaitHonoursContext tests that a blocked Wait returns
// when the context is cancelled
func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter, err := NewRateLimiter(RateLimit{Calls: 1, Window: time.Hour})
	require.NoError(t, err)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.Wait(ctx))
}

// TestRateLimiter_RecordRetryAfter tests that a recorded server
// backoff blocks admissions
func TestRateLimiter_RecordRetryAfter(t *testing.T) {
	limiter, err := NewRateLimiter(RateLimit{Calls: 100, Window: time.Millisecond})
	require.NoError(t, err)

	limiter.RecordRetryAfter(50 * time.Millisecond)
	assert.False(t, limiter.Allow())

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

// TestRateLimiter_Allow tests non-blocking admission
func TestRateLimiter_Allow(t *testing.T) {
	limiter, err := NewRateLimiter(RateLimit{Calls: 1, Window: time.Hour})
	require.NoError(t, err)

	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}
