package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
)

// DDragonService fetches and caches static game data from Data Dragon.
// Catalogs are immutable per version, so entries live in the cache for a
// long time; only the version list itself gets a short TTL.
type DDragonService struct {
	httpClient *http.Client
	cache      *gocache.Cache
	baseURL    string
}

func NewDDragonService(httpClient *http.Client) *DDragonService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &DDragonService{
		httpClient: httpClient,
		cache:      gocache.New(24*time.Hour, 30*time.Minute),
		baseURL:    dataDragonBaseURL,
	}
}

func (s *DDragonService) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building data dragon request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("data dragon returned status %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// LatestVersion returns the newest Data Dragon version string.
func (s *DDragonService) LatestVersion(ctx context.Context) (string, error) {
	if cached, ok := s.cache.Get("versions:latest"); ok {
		return cached.(string), nil
	}
	var versions DataDragonVersions
	if err := s.fetchJSON(ctx, s.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("data dragon returned an empty version list")
	}
	// New patches land roughly biweekly; recheck hourly.
	s.cache.Set("versions:latest", versions[0], time.Hour)
	return versions[0], nil
}

// Champions returns the champion catalog for a version.
func (s *DDragonService) Champions(ctx context.Context, version string) (*DataDragonChampions, error) {
	key := "champions:" + version
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*DataDragonChampions), nil
	}
	var champions DataDragonChampions
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", s.baseURL, version)
	if err := s.fetchJSON(ctx, url, &champions); err != nil {
		return nil, err
	}
	s.cache.Set(key, &champions, gocache.DefaultExpiration)
	return &champions, nil
}

// Items returns the item catalog for a version.
func (s *DDragonService) Items(ctx context.Context, version string) (*DataDragonItems, error) {
	key := "items:" + version
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*DataDragonItems), nil
	}
	var items DataDragonItems
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/item.json", s.baseURL, version)
	if err := s.fetchJSON(ctx, url, &items); err != nil {
		return nil, err
	}
	s.cache.Set(key, &items, gocache.DefaultExpiration)
	return &items, nil
}

// SummonerSpells returns the summoner spell catalog for a version.
func (s *DDragonService) SummonerSpells(ctx context.Context, version string) (*DataDragonSummonerSpells, error) {
	key := "spells:" + version
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*DataDragonSummonerSpells), nil
	}
	var spells DataDragonSummonerSpells
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/summoner.json", s.baseURL, version)
	if err := s.fetchJSON(ctx, url, &spells); err != nil {
		return nil, err
	}
	s.cache.Set(key, &spells, gocache.DefaultExpiration)
	return &spells, nil
}

// Runes returns the rune path catalog for a version.
func (s *DDragonService) Runes(ctx context.Context, version string) ([]RunePathData, error) {
	key := "runes:" + version
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]RunePathData), nil
	}
	var paths []RunePathData
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/runesReforged.json", s.baseURL, version)
	if err := s.fetchJSON(ctx, url, &paths); err != nil {
		return nil, err
	}
	s.cache.Set(key, paths, gocache.DefaultExpiration)
	return paths, nil
}

// flattenRuneData indexes every individual rune (including the path itself,
// which match data can reference) by numeric id.
func flattenRuneData(paths []RunePathData) map[int]RuneInfo {
	flat := make(map[int]RuneInfo)
	for _, path := range paths {
		flat[path.ID] = RuneInfo{ID: path.ID, Key: path.Key, Icon: path.Icon, Name: path.Name}
		for _, slot := range path.Slots {
			for _, rune := range slot.Runes {
				flat[rune.ID] = rune
			}
		}
	}
	return flat
}

// ChampionByKey finds a champion by its numeric key ("266" for Aatrox).
// Match and spectator data identify champions this way.
func (s *DDragonService) ChampionByKey(ctx context.Context, version string, championID int64) (*ChampionData, error) {
	champions, err := s.Champions(ctx, version)
	if err != nil {
		return nil, err
	}
	want := strconv.FormatInt(championID, 10)
	for _, champ := range champions.Data {
		if champ.Key == want {
			c := champ
			return &c, nil
		}
	}
	return nil, fmt.Errorf("no champion with key %s in version %s", want, version)
}

// ChampionIconURL builds the CDN URL for a champion square icon.
func (s *DDragonService) ChampionIconURL(version, imageFull string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s", s.baseURL, version, imageFull)
}

// ProfileIconURL builds the CDN URL for a summoner profile icon.
func (s *DDragonService) ProfileIconURL(version string, iconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", s.baseURL, version, iconID)
}
