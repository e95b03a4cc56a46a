package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	fetchMaxAttempts = 3
	fetchBaseDelay   = 1 * time.Second
)

// MatchFetcher turns a list of match ids into match details, fetching
// concurrently under a permit pool. Failed ids are logged and skipped; the
// surviving matches keep the input order.
type MatchFetcher struct {
	client *RiotClient
	limit  int64

	// Injectable for tests; defaults to sleepCtx.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewMatchFetcher(client *RiotClient, limit int) *MatchFetcher {
	if limit <= 0 {
		limit = defaultConcurrencyLimit
	}
	return &MatchFetcher{client: client, limit: int64(limit), sleep: sleepCtx}
}

// FetchAll fetches every id concurrently. A permit is held only while a
// request is in flight; a rate-limited worker releases its permit before
// backing off so others keep the pool busy. Results are written into a slice
// indexed by input position and compacted afterwards, so order survives
// regardless of completion timing.
func (f *MatchFetcher) FetchAll(ctx context.Context, routing string, matchIDs []string) ([]MatchDto, error) {
	if len(matchIDs) == 0 {
		return []MatchDto{}, nil
	}

	sem := semaphore.NewWeighted(f.limit)
	results := make([]*MatchDto, len(matchIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, matchID := range matchIDs {
		i, matchID := i, matchID
		g.Go(func() error {
			match, err := f.fetchOne(ctx, sem, routing, matchID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("Skipping match %s: %v", matchID, err)
				return nil
			}
			results[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]MatchDto, 0, len(matchIDs))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

// fetchOne runs the acquire/request/release cycle with rate-limit retries.
// Only 429 responses are retried; everything else fails the id immediately.
func (f *MatchFetcher) fetchOne(ctx context.Context, sem *semaphore.Weighted, routing, matchID string) (*MatchDto, error) {
	var lastErr error
	for attempt := 0; attempt < fetchMaxAttempts; attempt++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		match, err := f.client.MatchByID(ctx, routing, matchID)
		sem.Release(1)

		if err == nil {
			return match, nil
		}
		lastErr = err
		if !isRateLimited(err) || attempt == fetchMaxAttempts-1 {
			return nil, err
		}
		// The permit is already back in the pool while we wait.
		if err := f.sleep(ctx, fetchBaseDelay<<uint(attempt)); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}
