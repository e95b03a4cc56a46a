package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
)

// idsHandler serves a synthetic match history of historySize ids, honoring
// the start/count paging parameters.
func idsHandler(historySize int, requests *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		count, _ := strconv.Atoi(r.URL.Query().Get("count"))

		ids := []string{}
		for i := start; i < start+count && i < historySize; i++ {
			ids = append(ids, fmt.Sprintf("NA1_%d", i))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ids)
	}
}

func TestCollectSeasonMatchIDs_PagesUntilHistoryExhausted(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, idsHandler(240, &requests))

	ids := collectSeasonMatchIDs(context.Background(), client, "americas", "puuid-1", 250, 0)

	if len(ids) != 240 {
		t.Errorf("Expected 240 ids, got %d", len(ids))
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("Expected 3 page requests, got %d", got)
	}
	if ids[0] != "NA1_0" || ids[239] != "NA1_239" {
		t.Errorf("Ids out of order: first=%s last=%s", ids[0], ids[len(ids)-1])
	}
}

func TestCollectSeasonMatchIDs_StopsAtTarget(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, idsHandler(1000, &requests))

	ids := collectSeasonMatchIDs(context.Background(), client, "americas", "puuid-1", 150, 0)

	if len(ids) != 150 {
		t.Errorf("Expected exactly 150 ids, got %d", len(ids))
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("Expected 2 page requests (100 then 50), got %d", got)
	}
}

func TestCollectSeasonMatchIDs_NonPositiveTarget(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, idsHandler(1000, &requests))

	for _, target := range []int{0, -5} {
		ids := collectSeasonMatchIDs(context.Background(), client, "americas", "puuid-1", target, 0)
		if len(ids) != 0 {
			t.Errorf("target=%d: expected empty result, got %d ids", target, len(ids))
		}
	}
	if requests.Load() != 0 {
		t.Errorf("Expected no upstream requests for non-positive targets")
	}
}

func TestCollectSeasonMatchIDs_ReturnsPartialOnFailure(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		idsHandler(1000, new(atomic.Int32))(w, r)
	})

	ids := collectSeasonMatchIDs(context.Background(), client, "americas", "puuid-1", 250, 0)

	if len(ids) != 100 {
		t.Errorf("Expected the 100 ids gathered before the failure, got %d", len(ids))
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("Expected collection to stop after the failing request, got %d requests", got)
	}
}
