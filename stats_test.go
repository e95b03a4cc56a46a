package main

import (
	"reflect"
	"testing"
)

const testPUUID = "puuid-under-test"

type matchSpec struct {
	champion string
	champID  int
	win      bool
	kills    int
	deaths   int
	assists  int
	cs       int
	vision   int
	duration int64
	role     string
	items    []int
	spells   [2]int
	keystone int
}

func buildMatch(spec matchSpec) MatchDto {
	p := ParticipantDto{
		PUUID:              testPUUID,
		ChampionName:       spec.champion,
		ChampionID:         spec.champID,
		Win:                spec.win,
		Kills:              spec.kills,
		Deaths:             spec.deaths,
		Assists:            spec.assists,
		TotalMinionsKilled: spec.cs,
		VisionScore:        spec.vision,
		TeamPosition:       spec.role,
		Lane:               spec.role,
		Summoner1Id:        spec.spells[0],
		Summoner2Id:        spec.spells[1],
	}
	items := spec.items
	for len(items) < 7 {
		items = append(items, 0)
	}
	p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6 =
		items[0], items[1], items[2], items[3], items[4], items[5], items[6]
	if spec.keystone != 0 {
		p.Perks = &PerksDto{Styles: []StyleDto{{
			Selections: []SelectionDto{{Perk: spec.keystone}},
		}}}
	}
	duration := spec.duration
	if duration == 0 {
		duration = 1800
	}
	return MatchDto{
		Metadata: MatchMetadataDto{MatchID: "NA1_test"},
		Info: MatchInfoDto{
			GameDuration: duration,
			Participants: []ParticipantDto{
				p,
				{PUUID: "someone-else", ChampionName: "Teemo"},
			},
		},
	}
}

func TestAggregateChampionStats_SingleMatch(t *testing.T) {
	matches := []MatchDto{buildMatch(matchSpec{
		champion: "Ahri", champID: 103, win: true,
		kills: 10, deaths: 2, assists: 8,
		items: []int{3089, 3020, 0, 1056, 0, 0, 3363},
		spells: [2]int{4, 14}, keystone: 8112,
	})}

	aggs := aggregateChampionStats(matches, testPUUID)
	if len(aggs) != 1 {
		t.Fatalf("Expected 1 champion aggregate, got %d", len(aggs))
	}
	agg := aggs[0]
	if agg.ChampionName != "Ahri" || agg.Games != 1 || agg.Wins != 1 {
		t.Errorf("Unexpected aggregate identity: %+v", agg)
	}
	if agg.Kills != 10 || agg.Deaths != 2 || agg.Assists != 8 {
		t.Errorf("K/D/A totals wrong: %d/%d/%d", agg.Kills, agg.Deaths, agg.Assists)
	}
	if len(agg.TopItems) != 4 {
		t.Errorf("Empty item slots must be ignored: got %d items", len(agg.TopItems))
	}
	if agg.TopSpellSets[0].Spells != [2]int{4, 14} {
		t.Errorf("Expected normalized spell pair [4 14], got %v", agg.TopSpellSets[0].Spells)
	}
	if agg.TopKeystones[0].PerkID != 8112 {
		t.Errorf("Expected keystone 8112, got %d", agg.TopKeystones[0].PerkID)
	}
}

func TestAggregateChampionStats_SpellPairOrderNormalized(t *testing.T) {
	matches := []MatchDto{
		buildMatch(matchSpec{champion: "Ahri", champID: 103, spells: [2]int{14, 4}}),
		buildMatch(matchSpec{champion: "Ahri", champID: 103, spells: [2]int{4, 14}}),
	}

	aggs := aggregateChampionStats(matches, testPUUID)
	if len(aggs) != 1 {
		t.Fatalf("Expected 1 aggregate, got %d", len(aggs))
	}
	if len(aggs[0].TopSpellSets) != 1 {
		t.Fatalf("Flipped spell pairs should collapse to one entry, got %d", len(aggs[0].TopSpellSets))
	}
	if got := aggs[0].TopSpellSets[0]; got.Spells != [2]int{4, 14} || got.Count != 2 {
		t.Errorf("Expected {[4 14] 2}, got %+v", got)
	}
}

func TestAggregateChampionStats_SortedByGamesDesc(t *testing.T) {
	matches := []MatchDto{
		buildMatch(matchSpec{champion: "Zed", champID: 238}),
		buildMatch(matchSpec{champion: "Ahri", champID: 103}),
		buildMatch(matchSpec{champion: "Ahri", champID: 103}),
	}

	aggs := aggregateChampionStats(matches, testPUUID)
	if len(aggs) != 2 {
		t.Fatalf("Expected 2 aggregates, got %d", len(aggs))
	}
	if aggs[0].ChampionName != "Ahri" || aggs[0].Games != 2 {
		t.Errorf("Most played champion should come first, got %+v", aggs[0])
	}
}

func TestAggregateChampionStats_SkipsMatchesWithoutPlayer(t *testing.T) {
	foreign := buildMatch(matchSpec{champion: "Ahri", champID: 103})
	foreign.Info.Participants[0].PUUID = "someone-entirely-else"

	aggs := aggregateChampionStats([]MatchDto{foreign}, testPUUID)
	if len(aggs) != 0 {
		t.Errorf("Expected no aggregates when the player is absent, got %d", len(aggs))
	}
}

func TestAnalyzeMatches_EmptyBatch(t *testing.T) {
	summary := analyzeMatches(nil, testPUUID)

	if summary.TotalMatches != 0 || summary.WinRate != 0 {
		t.Errorf("Empty batch should produce a zero summary: %+v", summary)
	}
	if summary.ChampionsPlayed == nil || summary.RolesPlayed == nil || summary.ChampionStats == nil {
		t.Error("Maps must be initialized even for an empty batch")
	}
	if summary.BestChampions == nil || summary.WorstChampions == nil {
		t.Error("Ranking slices must be initialized even for an empty batch")
	}
}

func TestAnalyzeMatches_KDARatio(t *testing.T) {
	t.Run("WithDeaths", func(t *testing.T) {
		summary := analyzeMatches([]MatchDto{buildMatch(matchSpec{
			champion: "Ahri", champID: 103, kills: 10, deaths: 2, assists: 8,
		})}, testPUUID)
		if summary.KDARatio != 9.0 {
			t.Errorf("Expected KDA 9.0 for 10/2/8, got %v", summary.KDARatio)
		}
	})

	t.Run("Deathless", func(t *testing.T) {
		summary := analyzeMatches([]MatchDto{buildMatch(matchSpec{
			champion: "Ahri", champID: 103, kills: 7, deaths: 0, assists: 5,
		})}, testPUUID)
		if summary.KDARatio != 12 {
			t.Errorf("Deathless KDA should be kills+assists exactly, got %v", summary.KDARatio)
		}
	})
}

func TestAnalyzeMatches_AveragesAndRounding(t *testing.T) {
	matches := []MatchDto{
		buildMatch(matchSpec{champion: "Ahri", champID: 103, win: true, kills: 10, deaths: 2, assists: 8, cs: 200, vision: 20, duration: 1800, role: "MIDDLE"}),
		buildMatch(matchSpec{champion: "Ahri", champID: 103, win: false, kills: 3, deaths: 5, assists: 4, cs: 150, vision: 10, duration: 1500, role: "MIDDLE"}),
		buildMatch(matchSpec{champion: "Zed", champID: 238, win: true, kills: 5, deaths: 3, assists: 2, cs: 180, vision: 15, duration: 2100, role: "MIDDLE"}),
	}

	summary := analyzeMatches(matches, testPUUID)

	if summary.TotalMatches != 3 || summary.Wins != 2 || summary.Losses != 1 {
		t.Fatalf("Win/loss tallies wrong: %+v", summary)
	}
	if summary.WinRate != 66.7 {
		t.Errorf("Expected winrate 66.7, got %v", summary.WinRate)
	}
	if summary.AvgKills != 6.0 {
		t.Errorf("Expected avg kills 6.0, got %v", summary.AvgKills)
	}
	if summary.AvgGameDuration != 30.0 {
		t.Errorf("Expected avg duration 30.0 minutes, got %v", summary.AvgGameDuration)
	}
	if summary.PreferredRole != "MIDDLE" {
		t.Errorf("Expected preferred role MIDDLE, got %q", summary.PreferredRole)
	}
	if summary.ChampionsPlayed["Ahri"] != 2 || summary.ChampionsPlayed["Zed"] != 1 {
		t.Errorf("Champion counts wrong: %v", summary.ChampionsPlayed)
	}
}

func TestAnalyzeMatches_BestWorstRequireTwoGames(t *testing.T) {
	matches := []MatchDto{
		buildMatch(matchSpec{champion: "Ahri", champID: 103, win: true, kills: 8, deaths: 2, assists: 6}),
		buildMatch(matchSpec{champion: "Ahri", champID: 103, win: true, kills: 6, deaths: 3, assists: 7}),
		buildMatch(matchSpec{champion: "Zed", champID: 238, win: false, kills: 2, deaths: 8, assists: 1}),
	}

	summary := analyzeMatches(matches, testPUUID)

	if len(summary.BestChampions) != 1 || summary.BestChampions[0].Champion != "Ahri" {
		t.Errorf("Only Ahri has 2+ games; best=%+v", summary.BestChampions)
	}
	// One qualifying champion means no worst list.
	if len(summary.WorstChampions) != 0 {
		t.Errorf("Worst list needs more than 3 qualifiers, got %+v", summary.WorstChampions)
	}
}

func TestAnalyzeMatches_Idempotent(t *testing.T) {
	matches := []MatchDto{
		buildMatch(matchSpec{champion: "Ahri", champID: 103, win: true, kills: 10, deaths: 2, assists: 8, role: "MIDDLE"}),
		buildMatch(matchSpec{champion: "Zed", champID: 238, win: false, kills: 1, deaths: 6, assists: 3, role: "TOP"}),
	}

	first := analyzeMatches(matches, testPUUID)
	second := analyzeMatches(matches, testPUUID)
	if !reflect.DeepEqual(first, second) {
		t.Error("analyzeMatches must be idempotent over the same batch")
	}

	aggFirst := aggregateChampionStats(matches, testPUUID)
	aggSecond := aggregateChampionStats(matches, testPUUID)
	if !reflect.DeepEqual(aggFirst, aggSecond) {
		t.Error("aggregateChampionStats must be idempotent over the same batch")
	}
}
