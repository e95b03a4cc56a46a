package main

import (
	"context"
	"log"
)

// collectSeasonMatchIDs pages through a player's match history until
// targetCount ids are gathered or the history runs out. Pages are requested
// at up to 100 ids each (the upstream maximum); an empty or short page means
// the history is exhausted. A page failure stops collection and returns
// whatever was gathered so far.
func collectSeasonMatchIDs(ctx context.Context, client *RiotClient, routing, puuid string, targetCount int, seasonStart int64) []string {
	if targetCount <= 0 {
		return []string{}
	}

	collected := make([]string, 0, targetCount)
	for len(collected) < targetCount {
		pageSize := targetCount - len(collected)
		if pageSize > maxMatchCount {
			pageSize = maxMatchCount
		}

		ids, err := client.MatchIDsByPUUID(ctx, routing, puuid, MatchIDOptions{
			Start:     len(collected),
			Count:     pageSize,
			StartTime: seasonStart,
		})
		if err != nil {
			log.Printf("Match id collection stopped at %d ids for %s: %v", len(collected), puuid, err)
			break
		}
		if len(ids) == 0 {
			break
		}
		collected = append(collected, ids...)
		if len(ids) < pageSize {
			break
		}
	}
	return collected
}
