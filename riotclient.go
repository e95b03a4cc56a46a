package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
)

// ErrorKind classifies a failed Riot API call.
type ErrorKind string

const (
	ErrBadRequest   ErrorKind = "bad_request"
	ErrUnauthorized ErrorKind = "unauthorized"
	ErrForbidden    ErrorKind = "forbidden"
	ErrNotFound     ErrorKind = "not_found"
	ErrRateLimited  ErrorKind = "rate_limited"
	ErrServer       ErrorKind = "server_error"
	ErrUnavailable  ErrorKind = "unavailable"
	ErrHTTP         ErrorKind = "http_error"
	ErrNetwork      ErrorKind = "network_error"
)

// APIError is the uniform failure value for every upstream call. StatusCode
// is zero for transport-level failures.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("riot api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("riot api: %s", e.Message)
}

// apiErrorFromStatus maps an upstream HTTP status to a typed error.
func apiErrorFromStatus(status int) *APIError {
	switch status {
	case http.StatusBadRequest:
		return &APIError{Kind: ErrBadRequest, StatusCode: status, Message: "Invalid request"}
	case http.StatusUnauthorized:
		return &APIError{Kind: ErrUnauthorized, StatusCode: status, Message: "Invalid API Key"}
	case http.StatusForbidden:
		return &APIError{Kind: ErrForbidden, StatusCode: status, Message: "Access forbidden"}
	case http.StatusNotFound:
		return &APIError{Kind: ErrNotFound, StatusCode: status, Message: "Not found"}
	case http.StatusTooManyRequests:
		return &APIError{Kind: ErrRateLimited, StatusCode: status, Message: "Rate limit exceeded"}
	case http.StatusInternalServerError:
		return &APIError{Kind: ErrServer, StatusCode: status, Message: "Riot server error"}
	case http.StatusServiceUnavailable:
		return &APIError{Kind: ErrUnavailable, StatusCode: status, Message: "Service unavailable"}
	default:
		return &APIError{Kind: ErrHTTP, StatusCode: status, Message: fmt.Sprintf("Unexpected status %d", status)}
	}
}

// isRateLimited reports whether err is an upstream 429.
func isRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrRateLimited
}

// isNotFound reports whether err is an upstream 404.
func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrNotFound
}

// RiotClient performs authenticated GETs against the Riot API. It never
// retries; retry policy lives with the callers that need it.
type RiotClient struct {
	apiKey     string
	httpClient *http.Client

	// Overrides the https://<host>.api.riotgames.com scheme when set.
	// Tests point this at a local server.
	baseURL string
}

func NewRiotClient(apiKey string, httpClient *http.Client) *RiotClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &RiotClient{apiKey: apiKey, httpClient: httpClient}
}

func (c *RiotClient) hostURL(host string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.%s", host, riotAPIBase)
}

// get performs one GET against host (a platform or routing region) and
// decodes the JSON body into out. All failures come back as *APIError.
func (c *RiotClient) get(ctx context.Context, host, path string, params url.Values, out any) error {
	u := c.hostURL(host) + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Kind: ErrNetwork, Message: fmt.Sprintf("building request: %v", err)}
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: ErrNetwork, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return apiErrorFromStatus(resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: ErrNetwork, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

// AccountByRiotID resolves gameName#tagLine to an account on a routing region.
func (c *RiotClient) AccountByRiotID(ctx context.Context, routing, gameName, tagLine string) (*AccountDTO, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))
	var account AccountDTO
	if err := c.get(ctx, routing, path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountByPUUID looks up an account by PUUID on a routing region.
func (c *RiotClient) AccountByPUUID(ctx context.Context, routing, puuid string) (*AccountDTO, error) {
	path := "/riot/account/v1/accounts/by-puuid/" + url.PathEscape(puuid)
	var account AccountDTO
	if err := c.get(ctx, routing, path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SummonerByPUUID looks up a summoner by PUUID on a platform region.
func (c *RiotClient) SummonerByPUUID(ctx context.Context, region, puuid string) (*SummonerDTO, error) {
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)
	var summoner SummonerDTO
	if err := c.get(ctx, region, path, nil, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// LeagueEntriesByPUUID fetches all ranked entries for a player.
func (c *RiotClient) LeagueEntriesByPUUID(ctx context.Context, region, puuid string) ([]LeagueEntryDTO, error) {
	path := "/lol/league/v4/entries/by-puuid/" + url.PathEscape(puuid)
	var entries []LeagueEntryDTO
	if err := c.get(ctx, region, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ApexLeague fetches a challenger/grandmaster/master league for a queue.
// tier must be one of "challenger", "grandmaster", "master".
func (c *RiotClient) ApexLeague(ctx context.Context, region, tier, queue string) (*LeagueListDTO, error) {
	path := fmt.Sprintf("/lol/league/v4/%sleagues/by-queue/%s", tier, url.PathEscape(queue))
	var league LeagueListDTO
	if err := c.get(ctx, region, path, nil, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

// MatchIDOptions narrows a match-id listing.
type MatchIDOptions struct {
	Start     int
	Count     int
	Queue     int   // 0 means all queues
	StartTime int64 // unix seconds, 0 means no lower bound
}

// MatchIDsByPUUID lists recent match ids for a player on a routing region.
func (c *RiotClient) MatchIDsByPUUID(ctx context.Context, routing, puuid string, opts MatchIDOptions) ([]string, error) {
	params := url.Values{}
	params.Set("start", strconv.Itoa(opts.Start))
	count := opts.Count
	if count <= 0 {
		count = defaultMatchCount
	}
	params.Set("count", strconv.Itoa(count))
	if opts.Queue > 0 {
		params.Set("queue", strconv.Itoa(opts.Queue))
	}
	if opts.StartTime > 0 {
		params.Set("startTime", strconv.FormatInt(opts.StartTime, 10))
	}

	path := "/lol/match/v5/matches/by-puuid/" + url.PathEscape(puuid) + "/ids"
	var ids []string
	if err := c.get(ctx, routing, path, params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// MatchByID fetches full match detail from a routing region.
func (c *RiotClient) MatchByID(ctx context.Context, routing, matchID string) (*MatchDto, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	var match MatchDto
	if err := c.get(ctx, routing, path, nil, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// MatchTimeline fetches the frame-by-frame timeline for a match. The frame
// schema is large and patch-dependent, so it passes through as a generic map.
func (c *RiotClient) MatchTimeline(ctx context.Context, routing, matchID string) (map[string]any, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID) + "/timeline"
	var raw map[string]any
	if err := c.get(ctx, routing, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// CurrentGame returns the live game for a player, decoded into a generic map.
// Spectator payloads drift across patches, so the caller decodes the parts it
// needs with mapstructure.
func (c *RiotClient) CurrentGame(ctx context.Context, region, puuid string) (map[string]any, error) {
	path := "/lol/spectator/v5/active-games/by-summoner/" + url.PathEscape(puuid)
	var raw map[string]any
	if err := c.get(ctx, region, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// FeaturedGames fetches the spectator featured-games rotation for a platform.
func (c *RiotClient) FeaturedGames(ctx context.Context, region string) (*FeaturedGamesDTO, error) {
	var featured FeaturedGamesDTO
	if err := c.get(ctx, region, "/lol/spectator/v5/featured-games", nil, &featured); err != nil {
		return nil, err
	}
	return &featured, nil
}

// PlatformStatus fetches the platform status page data.
func (c *RiotClient) PlatformStatus(ctx context.Context, region string) (*PlatformStatusDTO, error) {
	var status PlatformStatusDTO
	if err := c.get(ctx, region, "/lol/status/v4/platform-data", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// TopChampionMasteries fetches a player's top champion masteries.
func (c *RiotClient) TopChampionMasteries(ctx context.Context, region, puuid string, count int) ([]ChampionMasteryDTO, error) {
	if count <= 0 {
		count = 5
	}
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	path := "/lol/champion-mastery/v4/champion-masteries/by-puuid/" + url.PathEscape(puuid) + "/top"
	var masteries []ChampionMasteryDTO
	if err := c.get(ctx, region, path, params, &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}
