package main

import (
	"math"
	"sort"
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// participantFor finds the target player inside a match. Matches where the
// player is absent are skipped by the aggregators.
func participantFor(match *MatchDto, puuid string) *ParticipantDto {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].PUUID == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// aggregateChampionStats builds per-champion aggregates for one player over a
// batch of matches. Running the same batch twice yields identical output:
// every aggregate is built from scratch per call.
func aggregateChampionStats(matches []MatchDto, puuid string) []ChampionAggregate {
	byChampion := make(map[int]*ChampionAggregate)

	for i := range matches {
		p := participantFor(&matches[i], puuid)
		if p == nil {
			continue
		}

		agg, ok := byChampion[p.ChampionID]
		if !ok {
			agg = &ChampionAggregate{
				ChampionID:     p.ChampionID,
				ChampionName:   p.ChampionName,
				itemCounts:     make(map[int]int),
				spellCounts:    make(map[[2]int]int),
				keystoneCounts: make(map[int]int),
			}
			byChampion[p.ChampionID] = agg
		}

		agg.Games++
		if p.Win {
			agg.Wins++
		}
		agg.Kills += p.Kills
		agg.Deaths += p.Deaths
		agg.Assists += p.Assists
		agg.CS += p.TotalMinionsKilled + p.NeutralMinionsKilled
		agg.VisionScore += p.VisionScore
		agg.Damage += int64(p.TotalDamageDealtToChampions)
		agg.Gold += int64(p.GoldEarned)
		agg.DurationSeconds += matches[i].Info.GameDuration

		for _, item := range p.Items() {
			if item != 0 {
				agg.itemCounts[item]++
			}
		}

		pair := [2]int{p.Summoner1Id, p.Summoner2Id}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		agg.spellCounts[pair]++

		if keystone := p.Keystone(); keystone != 0 {
			agg.keystoneCounts[keystone]++
		}
	}

	aggregates := make([]ChampionAggregate, 0, len(byChampion))
	for _, agg := range byChampion {
		agg.TopItems = topItems(agg.itemCounts, 6)
		agg.TopSpellSets = topSpellPairs(agg.spellCounts, 2)
		agg.TopKeystones = topKeystones(agg.keystoneCounts, 2)
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Games != aggregates[j].Games {
			return aggregates[i].Games > aggregates[j].Games
		}
		return aggregates[i].ChampionName < aggregates[j].ChampionName
	})
	return aggregates
}

func topItems(counts map[int]int, limit int) []ItemCount {
	out := make([]ItemCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, ItemCount{ItemID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ItemID < out[j].ItemID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func topSpellPairs(counts map[[2]int]int, limit int) []SpellPairCount {
	out := make([]SpellPairCount, 0, len(counts))
	for pair, n := range counts {
		out = append(out, SpellPairCount{Spells: pair, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Spells[0] != out[j].Spells[0] {
			return out[i].Spells[0] < out[j].Spells[0]
		}
		return out[i].Spells[1] < out[j].Spells[1]
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func topKeystones(counts map[int]int, limit int) []KeystoneCount {
	out := make([]KeystoneCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, KeystoneCount{PerkID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].PerkID < out[j].PerkID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// analyzeMatches computes the overall summary for one player over a batch of
// matches. Matches where the player does not appear are skipped. An empty
// batch produces a zero-count summary with initialized maps.
func analyzeMatches(matches []MatchDto, puuid string) *PlayerStatsSummary {
	summary := &PlayerStatsSummary{
		ChampionsPlayed: make(map[string]int),
		RolesPlayed:     make(map[string]int),
		LanesPlayed:     make(map[string]int),
		ChampionStats:   make(map[string]*ChampionRecord),
		BestChampions:   []ChampionPerformance{},
		WorstChampions:  []ChampionPerformance{},
	}

	var (
		totalKills, totalDeaths, totalAssists int
		totalCS, totalVision                  int
		totalDamage, totalGold                int64
		totalDuration                         int64
	)

	for i := range matches {
		p := participantFor(&matches[i], puuid)
		if p == nil {
			continue
		}

		summary.TotalMatches++
		if p.Win {
			summary.Wins++
		} else {
			summary.Losses++
		}

		summary.ChampionsPlayed[p.ChampionName]++
		if p.TeamPosition != "" {
			summary.RolesPlayed[p.TeamPosition]++
		}
		if p.Lane != "" {
			summary.LanesPlayed[p.Lane]++
		}

		totalKills += p.Kills
		totalDeaths += p.Deaths
		totalAssists += p.Assists
		totalCS += p.TotalMinionsKilled + p.NeutralMinionsKilled
		totalVision += p.VisionScore
		totalDamage += int64(p.TotalDamageDealtToChampions)
		totalGold += int64(p.GoldEarned)
		totalDuration += matches[i].Info.GameDuration

		record, ok := summary.ChampionStats[p.ChampionName]
		if !ok {
			record = &ChampionRecord{}
			summary.ChampionStats[p.ChampionName] = record
		}
		record.Games++
		if p.Win {
			record.Wins++
		}
		record.Kills += p.Kills
		record.Deaths += p.Deaths
		record.Assists += p.Assists
		record.CS += p.TotalMinionsKilled + p.NeutralMinionsKilled
		record.Damage += int64(p.TotalDamageDealtToChampions)
	}

	if summary.TotalMatches == 0 {
		return summary
	}

	n := float64(summary.TotalMatches)
	summary.WinRate = round1(float64(summary.Wins) / n * 100)
	summary.AvgKills = round1(float64(totalKills) / n)
	summary.AvgDeaths = round1(float64(totalDeaths) / n)
	summary.AvgAssists = round1(float64(totalAssists) / n)
	summary.AvgCS = round1(float64(totalCS) / n)
	summary.AvgVisionScore = round1(float64(totalVision) / n)
	summary.AvgDamage = math.Round(float64(totalDamage) / n)
	summary.AvgGold = math.Round(float64(totalGold) / n)
	summary.AvgGameDuration = round1(float64(totalDuration) / n / 60)

	if totalDeaths > 0 {
		summary.KDARatio = round2(float64(totalKills+totalAssists) / float64(totalDeaths))
	} else {
		summary.KDARatio = float64(totalKills + totalAssists)
	}

	for _, record := range summary.ChampionStats {
		record.WinRate = round1(float64(record.Wins) / float64(record.Games) * 100)
		deaths := record.Deaths
		if deaths == 0 {
			deaths = 1
		}
		record.AvgKDA = round2(float64(record.Kills+record.Assists) / float64(deaths))
	}

	summary.BestChampions, summary.WorstChampions = rankChampions(summary.ChampionStats)
	summary.PreferredRole = mostFrequent(summary.RolesPlayed)

	return summary
}

// rankChampions ranks champions with at least two games by win rate, then
// KDA. Worst entries are only reported when more than three champions
// qualify, so a short list is never both best and worst.
func rankChampions(records map[string]*ChampionRecord) (best, worst []ChampionPerformance) {
	ranked := make([]ChampionPerformance, 0, len(records))
	for name, r := range records {
		if r.Games < 2 {
			continue
		}
		ranked = append(ranked, ChampionPerformance{
			Champion: name,
			Games:    r.Games,
			WinRate:  r.WinRate,
			AvgKDA:   r.AvgKDA,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].WinRate != ranked[j].WinRate {
			return ranked[i].WinRate > ranked[j].WinRate
		}
		if ranked[i].AvgKDA != ranked[j].AvgKDA {
			return ranked[i].AvgKDA > ranked[j].AvgKDA
		}
		return ranked[i].Champion < ranked[j].Champion
	})

	best = ranked
	if len(best) > 5 {
		best = best[:5]
	}
	best = append([]ChampionPerformance{}, best...)

	worst = []ChampionPerformance{}
	if len(ranked) > 3 {
		worst = append(worst, ranked[len(ranked)-3:]...)
	}
	return best, worst
}

// mostFrequent returns the highest-count key, with an alphabetical tiebreak
// so the result is stable across runs.
func mostFrequent(counts map[string]int) string {
	var result string
	var max int
	for key, n := range counts {
		if n > max || (n == max && (result == "" || key < result)) {
			result = key
			max = n
		}
	}
	return result
}
