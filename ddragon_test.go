package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
)

func newTestDDragon(t *testing.T, handler http.HandlerFunc) (*DDragonService, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	svc := NewDDragonService(srv.Client())
	svc.baseURL = srv.URL
	return svc, &requests
}

func TestDDragonChampions_CachedByVersion(t *testing.T) {
	svc, requests := newTestDDragon(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DataDragonChampions{
			Version: "14.10.1",
			Data: map[string]ChampionData{
				"Ahri": {ID: "Ahri", Key: "103", Name: "Ahri"},
			},
		})
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		champions, err := svc.Champions(ctx, "14.10.1")
		if err != nil {
			t.Fatalf("Champions failed: %v", err)
		}
		if len(champions.Data) != 1 {
			t.Fatalf("Unexpected catalog: %+v", champions)
		}
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("Expected a single upstream fetch, got %d", got)
	}

	// A different version misses the cache.
	if _, err := svc.Champions(ctx, "14.11.1"); err != nil {
		t.Fatalf("Champions failed: %v", err)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("Expected a second fetch for the new version, got %d", got)
	}
}

func TestDDragonChampionByKey(t *testing.T) {
	svc, _ := newTestDDragon(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DataDragonChampions{
			Data: map[string]ChampionData{
				"Ahri": {ID: "Ahri", Key: "103", Name: "Ahri"},
				"Zed":  {ID: "Zed", Key: "238", Name: "Zed"},
			},
		})
	})

	champ, err := svc.ChampionByKey(context.Background(), "14.10.1", 238)
	if err != nil {
		t.Fatalf("ChampionByKey failed: %v", err)
	}
	if champ.Name != "Zed" {
		t.Errorf("Expected Zed, got %s", champ.Name)
	}

	if _, err := svc.ChampionByKey(context.Background(), "14.10.1", 99999); err == nil {
		t.Error("Unknown key should error")
	}
}

func TestFlattenRuneData(t *testing.T) {
	paths := []RunePathData{{
		ID: 8100, Key: "Domination", Name: "Domination",
		Slots: []RuneSlot{{Runes: []RuneInfo{
			{ID: 8112, Key: "Electrocute", Name: "Electrocute"},
			{ID: 8128, Key: "DarkHarvest", Name: "Dark Harvest"},
		}}},
	}}

	flat := flattenRuneData(paths)
	if len(flat) != 3 {
		t.Fatalf("Expected path + 2 runes, got %d entries", len(flat))
	}
	if flat[8112].Key != "Electrocute" {
		t.Errorf("Rune lookup broken: %+v", flat[8112])
	}
	if flat[8100].Name != "Domination" {
		t.Errorf("Path itself must be indexed: %+v", flat[8100])
	}
}

func TestDDragonLatestVersion(t *testing.T) {
	svc, requests := newTestDDragon(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"14.12.1", "14.11.1"})
	})

	for i := 0; i < 2; i++ {
		version, err := svc.LatestVersion(context.Background())
		if err != nil {
			t.Fatalf("LatestVersion failed: %v", err)
		}
		if version != "14.12.1" {
			t.Errorf("Expected newest version first, got %s", version)
		}
	}
	if requests.Load() != 1 {
		t.Errorf("Version list should be cached between calls")
	}
}
