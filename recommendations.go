package main

import "sort"

// roleTips holds the static per-role advice keyed by teamPosition values.
var roleTips = map[string][]string{
	"TOP": {
		"Manage the wave before roaming; a frozen wave denies your opponent more than a kill.",
		"Track the enemy jungler before committing to trades in a long lane.",
	},
	"JUNGLE": {
		"Path toward lanes that are pushing in your favor.",
		"Secure vision around objectives 45 seconds before they spawn.",
	},
	"MIDDLE": {
		"Push the wave before roaming so you lose as little CS as possible.",
		"Ward both river entrances when playing a pushed lane.",
	},
	"BOTTOM": {
		"Respect enemy support roams after they hit level 2.",
		"Position behind your frontline in late-game fights; your damage means nothing if you are dead.",
	},
	"UTILITY": {
		"Keep control wards on the map at all times.",
		"Match your roam timers to your mid laner's push.",
	},
}

var genericInGameTips = []string{
	"Check the minimap every few seconds, especially before stepping up for CS.",
	"Trade when enemy abilities are on cooldown.",
	"Play around your win condition: protect the fed carry, not the KDA.",
}

// defaultRecommendations is the placeholder bundle served when no match
// history is available to analyze.
func defaultRecommendations() Recommendations {
	return Recommendations{
		ChampionPool:     []string{},
		ImprovementAreas: []string{"Play more matches to unlock personalized analysis."},
		Strengths:        []string{},
		PlaystyleTips: []string{
			"Focus on one role and a small champion pool while learning.",
			"Review one of your losses after each session.",
		},
		InGameTips: genericInGameTips,
	}
}

// generateRecommendations derives coaching output from a stats summary and,
// optionally, a live game for immediate context. A nil or empty summary
// yields the placeholder bundle.
func generateRecommendations(summary *PlayerStatsSummary, liveGame *CurrentGameInfo) Recommendations {
	if summary == nil || summary.TotalMatches == 0 {
		return defaultRecommendations()
	}

	recs := Recommendations{
		ChampionPool:     championPool(summary),
		ImprovementAreas: []string{},
		Strengths:        []string{},
		PlaystyleTips:    []string{},
		InGameTips:       []string{},
	}

	if summary.AvgDeaths > 6 {
		recs.ImprovementAreas = append(recs.ImprovementAreas,
			"High average deaths. Play safer when no vision is available and respect enemy power spikes.")
	}
	if summary.AvgVisionScore < 15 {
		recs.ImprovementAreas = append(recs.ImprovementAreas,
			"Low vision score. Buy control wards and use trinkets on cooldown.")
	}
	if isLaneRole(summary.PreferredRole) && summary.AvgGameDuration > 0 {
		csPerMin := summary.AvgCS / summary.AvgGameDuration
		if csPerMin < 6 {
			recs.ImprovementAreas = append(recs.ImprovementAreas,
				"CS per minute is below 6. Prioritize last-hitting over harassing when you cannot do both.")
		}
	}

	if summary.KDARatio >= 3 {
		recs.Strengths = append(recs.Strengths,
			"Strong KDA. You pick your fights well.")
	}
	if summary.WinRate >= 55 {
		recs.Strengths = append(recs.Strengths,
			"Winning more than you lose. Keep playing this champion pool.")
	}
	if summary.AvgVisionScore >= 25 {
		recs.Strengths = append(recs.Strengths,
			"Excellent vision control.")
	}

	if tips, ok := roleTips[summary.PreferredRole]; ok {
		recs.PlaystyleTips = append(recs.PlaystyleTips, tips...)
	}

	if liveGame != nil {
		recs.InGameTips = append(recs.InGameTips, genericInGameTips...)
	}

	return recs
}

// isLaneRole reports whether the CS benchmark applies to a role. Jungle and
// support income works differently, so they are excluded.
func isLaneRole(role string) bool {
	switch role {
	case "TOP", "MIDDLE", "BOTTOM":
		return true
	}
	return false
}

// championPool lists the player's most-played champions, up to three, only
// counting champions with repeat games.
func championPool(summary *PlayerStatsSummary) []string {
	type entry struct {
		name  string
		games int
	}
	entries := make([]entry, 0, len(summary.ChampionStats))
	for name, r := range summary.ChampionStats {
		if r.Games >= 2 {
			entries = append(entries, entry{name: name, games: r.Games})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].games != entries[j].games {
			return entries[i].games > entries[j].games
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > 3 {
		entries = entries[:3]
	}
	pool := make([]string, 0, len(entries))
	for _, e := range entries {
		pool = append(pool, e.name)
	}
	return pool
}
