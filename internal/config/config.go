// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      int
	DevMode   bool
	LogLevel  string
	LogPretty bool
	LogFile   string

	// CacheDBPath is the SQLite DSN backing the client data cache.
	// The default is a shared in-memory database, so nothing survives a restart.
	CacheDBPath string

	EIA     EIAConfig
	NewsAPI NewsAPIConfig

	NewsCacheTTL     time.Duration
	HistoryCacheTTL  time.Duration // 0 disables caching of upstream price history
	SnapshotInterval time.Duration

	NewsProfilePath string
	News            *NewsProfile
}

// EIAConfig configures the government price-history gateway
type EIAConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewsAPIConfig configures the news-search gateway
type NewsAPIConfig struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RatePerMinute int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvAsInt("PORT", 8000),
		DevMode:     getEnvAsBool("DEV_MODE", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvAsBool("LOG_PRETTY", true),
		LogFile:     getEnv("LOG_FILE", ""),
		CacheDBPath: getEnv("CACHE_DB_PATH", "file:energyintel?mode=memory&cache=shared"),
		EIA: EIAConfig{
			APIKey:  getEnv("EIA_API_KEY", ""),
			BaseURL: getEnv("EIA_BASE_URL", "https://api.eia.gov/v2"),
			Timeout: getEnvAsDuration("EIA_TIMEOUT", 15*time.Second),
		},
		NewsAPI: NewsAPIConfig{
			APIKey:        getEnv("NEWSAPI_KEY", ""),
			BaseURL:       getEnv("NEWSAPI_BASE_URL", "https://newsapi.org"),
			Timeout:       getEnvAsDuration("NEWSAPI_TIMEOUT", 10*time.Second),
			RatePerMinute: getEnvAsInt("NEWSAPI_RATE_PER_MIN", 30),
		},
		NewsCacheTTL:     getEnvAsDuration("NEWS_CACHE_TTL", 2*time.Hour),
		HistoryCacheTTL:  getEnvAsDuration("HISTORY_CACHE_TTL", 0),
		SnapshotInterval: getEnvAsDuration("SNAPSHOT_INTERVAL", 60*time.Second),
		NewsProfilePath:  getEnv("NEWS_CONFIG", ""),
	}

	profile, err := LoadNewsProfile(cfg.NewsProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load news profile: %w", err)
	}
	cfg.News = profile

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.SnapshotInterval <= 0 {
		return fmt.Errorf("SNAPSHOT_INTERVAL must be positive")
	}
	if c.NewsCacheTTL <= 0 {
		return fmt.Errorf("NEWS_CACHE_TTL must be positive")
	}
	if c.HistoryCacheTTL < 0 {
		return fmt.Errorf("HISTORY_CACHE_TTL must not be negative")
	}
	if c.EIA.Timeout <= 0 || c.NewsAPI.Timeout <= 0 {
		return fmt.Errorf("gateway timeouts must be positive")
	}

	// Note: API keys are optional. Without them the gateways report failure
	// and the dashboard serves synthetic history and curated articles.

	if c.News != nil {
		if err := c.News.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
