package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

// Optimized HTTP transport for Riot API requests with connection reuse and TLS optimization
var riotTransport = &http.Transport{
	// Keep a handful of connections to each Riot edge-node alive
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 100,
	IdleConnTimeout:     90 * time.Second,
	// TLS handshakes are expensive; enable session resumption & HTTP/2
	TLSClientConfig:   &tls.Config{MinVersion: tls.VersionTLS12},
	ForceAttemptHTTP2: true,
}

// Optimized HTTP client for Riot API requests
var riotHTTP = &http.Client{
	Transport: riotTransport,
	Timeout:   defaultTimeout,
}

// App holds the components every handler closes over.
type App struct {
	cfg     Config
	client  *RiotClient
	ddragon *DDragonService
	ranked  *RankedService
	fetcher *MatchFetcher
}

func newApp(cfg Config) *App {
	client := NewRiotClient(cfg.RiotAPIKey, riotHTTP)
	return &App{
		cfg:     cfg,
		client:  client,
		ddragon: NewDDragonService(riotHTTP),
		ranked:  NewRankedService(client),
		fetcher: NewMatchFetcher(client, cfg.ConcurrencyLimit),
	}
}

// corsMiddleware allows any origin; this API serves public read-only data.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func newRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(corsMiddleware)

	r.Route("/api", func(api chi.Router) {
		api.Options("/*", func(w http.ResponseWriter, r *http.Request) {
			// CORS preflight response is handled by corsMiddleware
			w.WriteHeader(http.StatusOK)
		})

		api.Get("/health", healthHandler(app))
		api.Get("/regions", getRegionsHandler(app))
		api.Get("/status", getStatusHandler(app))

		api.Get("/account/{gameName}/{tagLine}", getAccountHandler(app))
		api.Get("/summoner/{puuid}", getSummonerHandler(app))
		api.Get("/ranked/{puuid}", getRankedHandler(app))
		api.Get("/mastery/{puuid}", getMasteryHandler(app))
		api.Get("/matches/{puuid}", getMatchIDsHandler(app))
		api.Get("/match/{matchId}", getMatchDetailsHandler(app))
		api.Get("/match/{matchId}/timeline", getMatchTimelineHandler(app))
		api.Get("/featured-games", getFeaturedGamesHandler(app))

		api.Get("/player/search", getPlayerSearchHandler(app))
		api.Get("/player/{puuid}/stats", getPlayerStatsHandler(app))
		api.Get("/player/{puuid}/live", getLiveGameHandler(app))
		api.Get("/player/{puuid}/live-recommendations", getLiveRecommendationsHandler(app))

		api.Get("/leaderboard/{tier}", getLeaderboardHandler(app))

		api.Get("/ddragon/version", getDDragonVersionHandler(app))
		api.Get("/ddragon/champions", getDDragonChampionsHandler(app))
		api.Get("/ddragon/items", getDDragonItemsHandler(app))
		api.Get("/ddragon/spells", getDDragonSpellsHandler(app))
		api.Get("/ddragon/runes", getDDragonRunesHandler(app))
	})

	return handlers.CompressHandler(r)
}

func main() {
	log.Println("Starting League statistics backend...")

	// Try to load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables.")
	} else {
		log.Println("Successfully loaded .env file for local development.")
	}

	cfg := loadConfig()
	if cfg.RiotAPIKey == "" {
		log.Fatal("CRITICAL: RIOT_API_KEY environment variable not set.")
	}

	app := newApp(cfg)

	srv := &http.Server{
		Handler:      newRouter(app),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Starting HTTP server on :%s (default region %s, fetch concurrency %d)",
		cfg.Port, cfg.DefaultRegion, cfg.ConcurrencyLimit)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not start HTTP server on :%s: %v\n", cfg.Port, err)
	}

	log.Println("Backend server stopped.")
}
