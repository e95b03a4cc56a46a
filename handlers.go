package main

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// writeJSON writes v as a JSON response. Encoding failures after the header
// is sent can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError translates the typed error taxonomy into an HTTP response with
// an {"error": ...} body. Upstream statuses pass through; transport errors
// become 502.
func writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch e := err.(type) {
	case *APIError:
		message = e.Message
		if e.StatusCode > 0 {
			status = e.StatusCode
		} else {
			status = http.StatusBadGateway
		}
	case ValidationError:
		status = http.StatusBadRequest
		message = e.Message
	default:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": message})
}

// regionFrom reads the region query parameter, falling back to the
// configured default.
func (app *App) regionFrom(r *http.Request) (string, error) {
	region := strings.ToLower(SanitizeString(r.URL.Query().Get("region")))
	if region == "" {
		return app.cfg.DefaultRegion, nil
	}
	if err := ValidateRegion(region); err != nil {
		return "", err
	}
	return region, nil
}

func healthHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":        "ok",
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"apiConfigured": app.cfg.RiotAPIKey != "",
		})
	}
}

func getRegionsHandler(app *App) http.HandlerFunc {
	type regionInfo struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Routing string `json:"routing"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		regions := make([]regionInfo, 0, len(platformRouting))
		for id, routing := range platformRouting {
			regions = append(regions, regionInfo{ID: id, Name: regionNames[id], Routing: routing})
		}
		sort.Slice(regions, func(i, j int) bool { return regions[i].ID < regions[j].ID })
		writeJSON(w, http.StatusOK, regions)
	}
}

func getAccountHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		gameName, tagLine, region, err := ValidateAndSanitizeInput(
			chi.URLParam(r, "gameName"), chi.URLParam(r, "tagLine"), region)
		if err != nil {
			writeError(w, err)
			return
		}

		account, err := app.client.AccountByRiotID(r.Context(), routingForRegion(region), gameName, tagLine)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, account)
	}
}

func getSummonerHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}

		summoner, err := app.client.SummonerByPUUID(r.Context(), region, puuid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summoner)
	}
}

func getRankedHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, app.ranked.Entries(r.Context(), region, puuid))
	}
}

func getMasteryHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}
		count, err := ValidateCount(r.URL.Query().Get("count"), 5, 20)
		if err != nil {
			writeError(w, err)
			return
		}

		masteries, err := app.client.TopChampionMasteries(r.Context(), region, puuid, count)
		if err != nil {
			// Mastery is decorative; degrade to an empty list.
			log.Printf("Mastery lookup failed for %s: %v", puuid, err)
			masteries = []ChampionMasteryDTO{}
		}
		writeJSON(w, http.StatusOK, masteries)
	}
}

func getMatchIDsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}
		count, err := ValidateCount(r.URL.Query().Get("count"), defaultMatchCount, maxMatchCount)
		if err != nil {
			writeError(w, err)
			return
		}
		queue, err := ValidateQueueID(r.URL.Query().Get("queue"), 0)
		if err != nil {
			writeError(w, err)
			return
		}
		start := 0
		if startStr := r.URL.Query().Get("start"); startStr != "" {
			if start, err = strconv.Atoi(startStr); err != nil || start < 0 {
				writeError(w, ValidationError{Field: "start", Message: "start must be a non-negative integer"})
				return
			}
		}

		ids, err := app.client.MatchIDsByPUUID(r.Context(), routingForRegion(region), puuid, MatchIDOptions{
			Start: start,
			Count: count,
			Queue: queue,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ids)
	}
}

func getMatchDetailsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		region, matchID, err := ValidateMatchInput(region, chi.URLParam(r, "matchId"))
		if err != nil {
			writeError(w, err)
			return
		}

		match, err := app.client.MatchByID(r.Context(), routingForRegion(region), matchID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func getMatchTimelineHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		region, matchID, err := ValidateMatchInput(region, chi.URLParam(r, "matchId"))
		if err != nil {
			writeError(w, err)
			return
		}

		timeline, err := app.client.MatchTimeline(r.Context(), routingForRegion(region), matchID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, timeline)
	}
}

// playerSearchResponse is the composite lookup payload: account identity plus
// the platform summoner profile when it resolves.
type playerSearchResponse struct {
	Account        *AccountDTO  `json:"account"`
	Summoner       *SummonerDTO `json:"summoner,omitempty"`
	ProfileIconURL string       `json:"profileIconUrl,omitempty"`
	Region         string       `json:"region"`
}

func getPlayerSearchHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		gameName, tagLine, region, err := ValidateAndSanitizeInput(
			r.URL.Query().Get("gameName"), r.URL.Query().Get("tagLine"), region)
		if err != nil {
			writeError(w, err)
			return
		}

		account, err := app.client.AccountByRiotID(r.Context(), routingForRegion(region), gameName, tagLine)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := playerSearchResponse{Account: account, Region: region}
		summoner, err := app.client.SummonerByPUUID(r.Context(), region, account.PUUID)
		if err != nil {
			// The account exists even when the platform profile does not.
			log.Printf("Search: summoner lookup failed for %s on %s: %v", account.PUUID, region, err)
			writeJSON(w, http.StatusOK, resp)
			return
		}
		resp.Summoner = summoner

		if version, verr := app.ddragon.LatestVersion(r.Context()); verr == nil {
			resp.ProfileIconURL = app.ddragon.ProfileIconURL(version, summoner.ProfileIconID)
		} else {
			log.Printf("Search: skipping profile icon enrichment: %v", verr)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getFeaturedGamesHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}

		featured, err := app.client.FeaturedGames(r.Context(), region)
		if err != nil {
			// The rotation is decorative; degrade to an empty list.
			log.Printf("Featured games lookup failed for %s: %v", region, err)
			featured = &FeaturedGamesDTO{GameList: []map[string]any{}}
		}
		if featured.GameList == nil {
			featured.GameList = []map[string]any{}
		}
		writeJSON(w, http.StatusOK, featured)
	}
}

// playerStatsResponse bundles the full analysis pipeline output.
type playerStatsResponse struct {
	Summary         *PlayerStatsSummary `json:"summary"`
	Champions       []ChampionAggregate `json:"champions"`
	Recommendations Recommendations     `json:"recommendations"`
	MatchesAnalyzed int                 `json:"matchesAnalyzed"`
}

func getPlayerStatsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}
		count, err := ValidateCount(r.URL.Query().Get("count"), defaultMatchCount, maxMatchCount)
		if err != nil {
			writeError(w, err)
			return
		}

		routing := routingForRegion(region)
		ids := collectSeasonMatchIDs(r.Context(), app.client, routing, puuid, count, 0)
		matches, err := app.fetcher.FetchAll(r.Context(), routing, ids)
		if err != nil {
			writeError(w, err)
			return
		}

		summary := analyzeMatches(matches, puuid)
		writeJSON(w, http.StatusOK, playerStatsResponse{
			Summary:         summary,
			Champions:       aggregateChampionStats(matches, puuid),
			Recommendations: generateRecommendations(summary, nil),
			MatchesAnalyzed: summary.TotalMatches,
		})
	}
}

// fetchLiveGame looks up and decodes the live game for a player, enriching
// participants with champion names from the static catalog. A nil result
// with nil error means the player is not in game.
func (app *App) fetchLiveGame(r *http.Request, region, puuid string) (*CurrentGameInfo, error) {
	raw, err := app.client.CurrentGame(r.Context(), region, puuid)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var game CurrentGameInfo
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &game,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	version, verr := app.ddragon.LatestVersion(r.Context())
	if verr != nil {
		// Names are cosmetic; serve the game without them.
		log.Printf("Skipping live-game enrichment: %v", verr)
		return &game, nil
	}
	for i := range game.Participants {
		champ, cerr := app.ddragon.ChampionByKey(r.Context(), version, game.Participants[i].ChampionID)
		if cerr != nil {
			continue
		}
		game.Participants[i].ChampionName = champ.Name
		game.Participants[i].ChampionImage = app.ddragon.ChampionIconURL(version, champ.Image.Full)
	}
	return &game, nil
}

func getLiveGameHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}

		game, err := app.fetchLiveGame(r, region, puuid)
		if err != nil {
			writeError(w, err)
			return
		}
		if game == nil {
			writeJSON(w, http.StatusOK, map[string]any{"inGame": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"inGame": true, "game": game})
	}
}

func getLiveRecommendationsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		puuid := chi.URLParam(r, "puuid")
		if err := ValidatePUUID(puuid); err != nil {
			writeError(w, err)
			return
		}

		game, err := app.fetchLiveGame(r, region, puuid)
		if err != nil {
			writeError(w, err)
			return
		}

		routing := routingForRegion(region)
		ids := collectSeasonMatchIDs(r.Context(), app.client, routing, puuid, defaultMatchCount, 0)
		matches, err := app.fetcher.FetchAll(r.Context(), routing, ids)
		if err != nil {
			writeError(w, err)
			return
		}

		summary := analyzeMatches(matches, puuid)
		writeJSON(w, http.StatusOK, map[string]any{
			"inGame":          game != nil,
			"recommendations": generateRecommendations(summary, game),
		})
	}
}

func getLeaderboardHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}
		tier := strings.ToLower(chi.URLParam(r, "tier"))
		if err := ValidateTier(tier); err != nil {
			writeError(w, err)
			return
		}
		queue := r.URL.Query().Get("queue")
		if queue == "" {
			queue = "RANKED_SOLO_5x5"
		}

		league, err := app.client.ApexLeague(r.Context(), region, tier, queue)
		if err != nil {
			writeError(w, err)
			return
		}
		sort.Slice(league.Entries, func(i, j int) bool {
			return league.Entries[i].LeaguePoints > league.Entries[j].LeaguePoints
		})
		writeJSON(w, http.StatusOK, league)
	}
}

func getStatusHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region, err := app.regionFrom(r)
		if err != nil {
			writeError(w, err)
			return
		}

		status, err := app.client.PlatformStatus(r.Context(), region)
		if err != nil {
			log.Printf("Platform status lookup failed for %s: %v", region, err)
			writeJSON(w, http.StatusOK, map[string]string{"status": "unknown"})
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// ddragonVersion resolves the requested catalog version, defaulting to the
// latest one.
func (app *App) ddragonVersion(r *http.Request) (string, error) {
	if v := r.URL.Query().Get("version"); v != "" {
		return v, nil
	}
	return app.ddragon.LatestVersion(r.Context())
}

func getDDragonVersionHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := app.ddragon.LatestVersion(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"version": version})
	}
}

func getDDragonChampionsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := app.ddragonVersion(r)
		if err != nil {
			writeError(w, err)
			return
		}
		champions, err := app.ddragon.Champions(r.Context(), version)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, champions)
	}
}

func getDDragonItemsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := app.ddragonVersion(r)
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := app.ddragon.Items(r.Context(), version)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getDDragonSpellsHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := app.ddragonVersion(r)
		if err != nil {
			writeError(w, err)
			return
		}
		spells, err := app.ddragon.SummonerSpells(r.Context(), version)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, spells)
	}
}

func getDDragonRunesHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := app.ddragonVersion(r)
		if err != nil {
			writeError(w, err)
			return
		}
		paths, err := app.ddragon.Runes(r.Context(), version)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"paths": paths,
			"flat":  flattenRuneData(paths),
		})
	}
}
