package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the service
type Config struct {
	Port          string
	GinMode       string
	RedisURL      string
	TMDBAPIKeys   []string // multiple keys rotate round-robin
	TMDBBaseURL   string
	TMDBImageBase string
	AdminAPIKey   string

	CacheTTLSuggest  time.Duration
	CacheTTLSearch   time.Duration
	CacheTTLTrending time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	// TMDB_API_KEY may hold several comma-separated keys
	tmdbKeys := []string{}
	if keyEnv := os.Getenv("TMDB_API_KEY"); keyEnv != "" {
		for _, k := range strings.Split(keyEnv, ",") {
			if trimmed := strings.TrimSpace(k); trimmed != "" {
				tmdbKeys = append(tmdbKeys, trimmed)
			}
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		TMDBAPIKeys:   tmdbKeys,
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageBase: getEnv("TMDB_IMAGE_BASE", "https://image.tmdb.org/t/p/w500"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),

		CacheTTLSuggest:  getDurationEnv("CACHE_TTL_SUGGEST", 15*time.Minute),
		CacheTTLSearch:   getDurationEnv("CACHE_TTL_SEARCH", 30*time.Minute),
		CacheTTLTrending: getDurationEnv("CACHE_TTL_TRENDING", 1*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
