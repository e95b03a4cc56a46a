package main

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	riotAPIBase       = "api.riotgames.com"
	dataDragonBaseURL = "https://ddragon.leagueoflegends.com"

	defaultTimeout          = 30 * time.Second
	defaultMatchCount       = 20
	maxMatchCount           = 100
	defaultConcurrencyLimit = 10
	defaultPort             = "8000"
)

// platformRouting maps platform regions (summoner/league/spectator hosts) to
// the regional routing cluster used by account and match endpoints.
var platformRouting = map[string]string{
	"br1":  "americas",
	"eun1": "europe",
	"euw1": "europe",
	"jp1":  "asia",
	"kr":   "asia",
	"la1":  "americas",
	"la2":  "americas",
	"na1":  "americas",
	"oc1":  "sea",
	"tr1":  "europe",
	"ru":   "europe",
	"ph2":  "sea",
	"sg2":  "sea",
	"th2":  "sea",
	"tw2":  "sea",
	"vn2":  "sea",
}

var regionNames = map[string]string{
	"br1":  "Brazil",
	"eun1": "EU Nordic & East",
	"euw1": "EU West",
	"jp1":  "Japan",
	"kr":   "Korea",
	"la1":  "Latin America North",
	"la2":  "Latin America South",
	"na1":  "North America",
	"oc1":  "Oceania",
	"tr1":  "Turkey",
	"ru":   "Russia",
	"ph2":  "Philippines",
	"sg2":  "Singapore",
	"th2":  "Thailand",
	"tw2":  "Taiwan",
	"vn2":  "Vietnam",
}

// routingForRegion resolves the regional routing cluster for a platform
// region, defaulting to americas for anything unknown.
func routingForRegion(region string) string {
	if routing, ok := platformRouting[region]; ok {
		return routing
	}
	log.Printf("Warning: unknown region %q, defaulting to americas routing", region)
	return "americas"
}

// Config holds everything read from the environment at startup.
type Config struct {
	RiotAPIKey       string
	Port             string
	DefaultRegion    string
	ConcurrencyLimit int
}

func loadConfig() Config {
	cfg := Config{
		RiotAPIKey:       os.Getenv("RIOT_API_KEY"),
		Port:             os.Getenv("PORT"),
		DefaultRegion:    os.Getenv("DEFAULT_REGION"),
		ConcurrencyLimit: defaultConcurrencyLimit,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("PORT not set, defaulting to %s", defaultPort)
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "la1"
	}
	if limitStr := os.Getenv("MATCH_FETCH_CONCURRENCY"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			cfg.ConcurrencyLimit = limit
		} else {
			log.Printf("Ignoring invalid MATCH_FETCH_CONCURRENCY %q", limitStr)
		}
	}

	return cfg
}
