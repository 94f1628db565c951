package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gpeople/internal/core/domain"
)

func testLimiter(t *testing.T) *RateLimiter {
	t.Helper()
	limiter, err := NewRateLimiter(RateLimit{Calls: 1000, Window: time.Millisecond})
	require.NoError(t, err)
	return limiter
}

func fastPager(t *testing.T, maxAttempts int) *Pager {
	t.Helper()
	p := NewPager(testLimiter(t), maxAttempts)
	p.initialBackoff = time.Millisecond
	return p
}

func pageOf(names ...string) []domain.RawRecord {
	out := make([]domain.RawRecord, len(names))
	for i, n := range names {
		out[i] = domain.RawRecord{"resourceName": n}
	}
	return out
}

func names(records []domain.RawRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = r["resourceName"].(string)
	}
	return out
}

// TestPager_MergesPagesInOrder tests token-driven pagination
func TestPager_MergesPagesInOrder(t *testing.T) {
	pages := map[string]struct {
		records []domain.RawRecord
		next    string
	}{
		"":   {pageOf("people/c1", "people/c2"), "t1"},
		"t1": {pageOf("people/c3"), "t2"},
		"t2": {pageOf("people/c4", "people/c5"), ""},
	}

	var tokens []string
	records, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			tokens = append(tokens, token)
			page := pages[token]
			return page.records, page.next, nil
		})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "t1", "t2"}, tokens)
	assert.Equal(t, []string{"people/c1", "people/c2", "people/c3", "people/c4", "people/c5"}, names(records))
}

// TestPager_SinglePage tests the degenerate one-page sequence
func TestPager_SinglePage(t *testing.T) {
	records, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			return pageOf("people/c1"), "", nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"people/c1"}, names(records))
}

// TestPager_DeduplicatesRepeatedRecords tests that a resource name
// seen again keeps its first position with the last-seen payload
func TestPager_DeduplicatesRepeatedRecords(t *testing.T) {
	calls := 0
	records, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls++
			switch calls {
			case 1:
				return []domain.RawRecord{
					{"resourceName": "people/c1", "version": "old"},
					{"resourceName": "people/c2"},
				}, "t1", nil
			default:
				return []domain.RawRecord{
					{"resourceName": "people/c1", "version": "new"},
					{"resourceName": "people/c3"},
				}, "", nil
			}
		})
	require.NoError(t, err)

	assert.Equal(t, []string{"people/c1", "people/c2", "people/c3"}, names(records))
	assert.Equal(t, "new", records[0]["version"])
}

// TestPager_RetriesTransientFailures tests recovery within the attempt
// bound
func TestPager_RetriesTransientFailures(t *testing.T) {
	calls := 0
	records, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls++
			if calls < 3 {
				return nil, "", fmt.Errorf("backend unavailable: %w", domain.ErrTransient)
			}
			return pageOf("people/c1"), "", nil
		})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"people/c1"}, names(records))
}

// TestPager_ExhaustedRetriesReturnPartial tests that retry exhaustion
// surfaces the records gathered before the failing page
func TestPager_ExhaustedRetriesReturnPartial(t *testing.T) {
	calls := 0
	records, err := fastPager(t, 2).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls++
			if token == "" {
				return pageOf("people/c1", "people/c2"), "t1", nil
			}
			return nil, "", fmt.Errorf("backend unavailable: %w", domain.ErrTransient)
		})
	require.Error(t, err)

	var pagingErr *domain.PagingError
	require.ErrorAs(t, err, &pagingErr)
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Equal(t, 2, pagingErr.Attempts)
	assert.Equal(t, []string{"people/c1", "people/c2"}, names(pagingErr.Records))
	assert.Equal(t, []string{"people/c1", "people/c2"}, names(records))
	assert.Equal(t, 3, calls)
}

// TestPager_NonRetryableFailsImmediately tests that permanent errors
// are not retried
func TestPager_NonRetryableFailsImmediately(t *testing.T) {
	permanent := errors.New("invalid request")
	calls := 0
	_, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls++
			return nil, "", permanent
		})
	require.Error(t, err)

	var pagingErr *domain.PagingError
	require.ErrorAs(t, err, &pagingErr)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

// TestPager_RateLimitedErrorsAreRetried tests that server rate limit
// rejections count as retryable
func TestPager_RateLimitedErrorsAreRetried(t *testing.T) {
	calls := 0
	_, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls++
			return nil, "", fmt.Errorf("quota exceeded: %w", domain.ErrRateLimited)
		})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

// TestPager_ContextCancellation tests that a cancelled context stops
// the page loop
func TestPager_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, err := fastPager(t, 3).FetchAll(ctx,
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			cancel()
			return pageOf("people/c1"), "t1", nil
		})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPager_HonoursRateBudget tests that page fetches recorded by a
// stub never exceed the call budget within any rolling window
func TestPager_HonoursRateBudget(t *testing.T) {
	window := 200 * time.Millisecond
	limiter, err := NewRateLimiter(RateLimit{Calls: 4, Window: window})
	require.NoError(t, err)
	pager := NewPager(limiter, 1)

	var calls []time.Time
	_, err = pager.FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			calls = append(calls, time.Now())
			if len(calls) < 10 {
				return pageOf(fmt.Sprintf("people/c%d", len(calls))), fmt.Sprintf("t%d", len(calls)), nil
			}
			return nil, "", nil
		})
	require.NoError(t, err)
	require.Len(t, calls, 10)

	for i := range calls {
		count := 1
		for j := i + 1; j < len(calls); j++ {
			if calls[j].Sub(calls[i]) < window {
				count++
			}
		}
		assert.LessOrEqual(t, count, 4,
			"window starting at call %d saw %d calls", i, count)
	}
}

// TestPager_RecordsWithoutResourceName tests that anonymous records
// are kept without deduplication
func TestPager_RecordsWithoutResourceName(t *testing.T) {
	records, err := fastPager(t, 3).FetchAll(context.Background(),
		func(ctx context.Context, token string) ([]domain.RawRecord, string, error) {
			return []domain.RawRecord{{"names": []any{}}, {"names": []any{}}}, "", nil
		})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
