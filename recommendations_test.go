package main

import (
	"strings"
	"testing"
)

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestGenerateRecommendations_PlaceholderWithoutData(t *testing.T) {
	for name, summary := range map[string]*PlayerStatsSummary{
		"NilSummary":   nil,
		"EmptySummary": {TotalMatches: 0},
	} {
		t.Run(name, func(t *testing.T) {
			recs := generateRecommendations(summary, nil)
			if len(recs.ImprovementAreas) == 0 || len(recs.PlaystyleTips) == 0 {
				t.Errorf("Placeholder bundle should carry default advice: %+v", recs)
			}
			if len(recs.ChampionPool) != 0 {
				t.Errorf("Placeholder bundle should have an empty champion pool")
			}
		})
	}
}

func TestGenerateRecommendations_ImprovementThresholds(t *testing.T) {
	summary := &PlayerStatsSummary{
		TotalMatches:    10,
		AvgDeaths:       7.5,
		AvgVisionScore:  10,
		AvgCS:           100,
		AvgGameDuration: 30, // 3.3 CS/min
		PreferredRole:   "MIDDLE",
		ChampionStats:   map[string]*ChampionRecord{},
		RolesPlayed:     map[string]int{"MIDDLE": 10},
	}

	recs := generateRecommendations(summary, nil)

	if !containsSubstring(recs.ImprovementAreas, "deaths") {
		t.Error("Average deaths above 6 should flag a deaths improvement")
	}
	if !containsSubstring(recs.ImprovementAreas, "vision") {
		t.Error("Vision score below 15 should flag a vision improvement")
	}
	if !containsSubstring(recs.ImprovementAreas, "CS per minute") {
		t.Error("CS/min below 6 in a lane role should flag a CS improvement")
	}
	if len(recs.Strengths) != 0 {
		t.Errorf("No strength thresholds met, got %+v", recs.Strengths)
	}
}

func TestGenerateRecommendations_CSCheckSkipsJungle(t *testing.T) {
	summary := &PlayerStatsSummary{
		TotalMatches:    10,
		AvgCS:           60,
		AvgGameDuration: 30,
		PreferredRole:   "JUNGLE",
		ChampionStats:   map[string]*ChampionRecord{},
	}

	recs := generateRecommendations(summary, nil)
	if containsSubstring(recs.ImprovementAreas, "CS per minute") {
		t.Error("CS benchmark must not apply to jungle")
	}
}

func TestGenerateRecommendations_Strengths(t *testing.T) {
	summary := &PlayerStatsSummary{
		TotalMatches:   20,
		KDARatio:       3.4,
		WinRate:        58.0,
		AvgVisionScore: 28,
		AvgDeaths:      4,
		PreferredRole:  "UTILITY",
		ChampionStats: map[string]*ChampionRecord{
			"Thresh": {Games: 12},
			"Lulu":   {Games: 5},
			"Janna":  {Games: 1},
		},
	}

	recs := generateRecommendations(summary, nil)

	if len(recs.Strengths) != 3 {
		t.Errorf("Expected all three strengths, got %+v", recs.Strengths)
	}
	if len(recs.ImprovementAreas) != 0 {
		t.Errorf("No improvement thresholds met, got %+v", recs.ImprovementAreas)
	}
	// Janna has a single game and stays out of the pool.
	if len(recs.ChampionPool) != 2 || recs.ChampionPool[0] != "Thresh" {
		t.Errorf("Champion pool should list repeat champions by games: %+v", recs.ChampionPool)
	}
	if len(recs.PlaystyleTips) == 0 {
		t.Error("Support role should receive role tips")
	}
}

func TestGenerateRecommendations_InGameTipsOnlyWhenLive(t *testing.T) {
	summary := &PlayerStatsSummary{TotalMatches: 5, ChampionStats: map[string]*ChampionRecord{}}

	withoutLive := generateRecommendations(summary, nil)
	if len(withoutLive.InGameTips) != 0 {
		t.Errorf("No live game, no in-game tips: %+v", withoutLive.InGameTips)
	}

	withLive := generateRecommendations(summary, &CurrentGameInfo{GameID: 1})
	if len(withLive.InGameTips) == 0 {
		t.Error("Live context should produce in-game tips")
	}
}
