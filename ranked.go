package main

import (
	"context"
	"fmt"
	"log"
	"time"
)

const (
	rankedCacheTTL      = 600 * time.Second
	rankedMaxAttempts   = 3
	rankedRetryBaseWait = 600 * time.Millisecond
)

// RankedService serves ranked league entries with a stale-tolerant cache.
// The live API is always tried first; the cache only answers when the
// refresh fails, which keeps entries as current as the upstream allows while
// still surviving outages.
type RankedService struct {
	client *RiotClient
	cache  *ttlCache
	retry  *retryPolicy
}

func NewRankedService(client *RiotClient) *RankedService {
	return &RankedService{
		client: client,
		cache:  newTTLCache(rankedCacheTTL),
		retry:  newRetryPolicy(rankedMaxAttempts, rankedRetryBaseWait, isRateLimited),
	}
}

// Entries returns the ranked entries for a player. On live-fetch failure it
// falls back to the cached value of any age, then to an empty list. The
// returned error is always nil; degradation is logged, not surfaced.
func (s *RankedService) Entries(ctx context.Context, region, puuid string) []LeagueEntryDTO {
	key := fmt.Sprintf("ranked:%s:%s", region, puuid)

	var entries []LeagueEntryDTO
	err := s.retry.do(ctx, func() error {
		fetched, fetchErr := s.client.LeagueEntriesByPUUID(ctx, region, puuid)
		if fetchErr != nil {
			return fetchErr
		}
		entries = fetched
		return nil
	})
	if err == nil {
		if entries == nil {
			entries = []LeagueEntryDTO{}
		}
		s.cache.Set(key, entries)
		return entries
	}

	if cached, ok := s.cache.GetStale(key); ok {
		log.Printf("Ranked refresh failed for %s, serving cached entries: %v", puuid, err)
		return cached.([]LeagueEntryDTO)
	}
	log.Printf("Ranked refresh failed for %s with no cached fallback: %v", puuid, err)
	return []LeagueEntryDTO{}
}
