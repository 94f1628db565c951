package services

import (
	"context"
	"time"

	"github.com/custodia-labs/gpeople/internal/core/domain"
	"github.com/custodia-labs/gpeople/internal/logger"
)

// PageFunc fetches one page of raw records. An empty pageToken
// requests the first page; an empty returned token terminates the
// sequence.
type PageFunc func(ctx context.Context, pageToken string) (records []domain.RawRecord, nextPageToken string, err error)

const (
	defaultMaxAttempts    = 3
	defaultInitialBackoff = 500 * time.Millisecond
)

// Pager drives repeated list-page calls under a shared rate budget and
// merges the pages into one sequence in server order. Retryable page
// failures are retried with exponential backoff up to a bounded
// attempt count.
type Pager struct {
	limiter        *RateLimiter
	maxAttempts    int
	initialBackoff time.Duration
}

// NewPager creates a pager admitting page calls through the given
// limiter. maxAttempts <= 0 selects the default retry bound.
func NewPager(limiter *RateLimiter, maxAttempts int) *Pager {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Pager{
		limiter:        limiter,
		maxAttempts:    maxAttempts,
		initialBackoff: defaultInitialBackoff,
	}
}

// FetchAll fetches every page and returns the merged records.
// Records repeating a resource name across pages (possible under
// concurrent remote mutation during paging) are deduplicated: the
// first-seen position is kept and the last-seen payload wins. This is
// an assumption about page consistency, not an API guarantee.
//
// On retry exhaustion the error is a *domain.PagingError carrying the
// records gathered so far; the same records are also returned, so the
// caller decides whether to use the partial result.
func (p *Pager) FetchAll(ctx context.Context, fetch PageFunc) ([]domain.RawRecord, error) {
	var records []domain.RawRecord
	position := make(map[string]int)

	token := ""
	for {
		page, next, attempts, err := p.fetchPage(ctx, fetch, token)
		if err != nil {
			return records, &domain.PagingError{
				Records:  records,
				Attempts: attempts,
				Err:      err,
			}
		}

		for _, rec := range page {
			name, _ := rec["resourceName"].(string)
			if name != "" {
				if i, seen := position[name]; seen {
					records[i] = rec
					continue
				}
				position[name] = len(records)
			}
			records = append(records, rec)
		}

		if next == "" {
			return records, nil
		}
		token = next
	}
}

// fetchPage fetches one page, blocking on the limiter before every
// attempt and backing off between retryable failures.
func (p *Pager) fetchPage(ctx context.Context, fetch PageFunc, token string) ([]domain.RawRecord, string, int, error) {
	backoff := p.initialBackoff
	for attempt := 1; ; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, "", attempt, err
		}

		page, next, err := fetch(ctx, token)
		if err == nil {
			return page, next, attempt, nil
		}
		if !domain.IsRetryable(err) || attempt >= p.maxAttempts {
			return nil, "", attempt, err
		}

		logger.Warn("page fetch failed (attempt %d/%d), retrying in %s: %v",
			attempt, p.maxAttempts, backoff, err)
		select {
		case <-ctx.Done():
			return nil, "", attempt, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
