package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Mistral OCR vendor
	MistralAPIKey  string
	MistralBaseURL string
	MistralModel   string

	// Analytics sink. Empty disables usage tracking.
	AnalyticsURL string

	// Optional Bearer auth for /api/*. Empty leaves the API open.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Timeouts
	DownloadTimeout time.Duration
	OCRTimeout      time.Duration

	// Search
	SearchTopK          int
	SearchDeterministic bool

	// OCR latency stats window
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		MistralAPIKey:  os.Getenv("MISTRAL_API_KEY"),
		MistralBaseURL: envOr("MISTRAL_BASE_URL", "https://api.mistral.ai"),
		MistralModel:   envOr("MISTRAL_OCR_MODEL", "mistral-ocr-latest"),

		AnalyticsURL: os.Getenv("ANALYTICS_URL"),

		APIKey: os.Getenv("PDFSIFT_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DownloadTimeout: envDuration("DOWNLOAD_TIMEOUT", 60*time.Second),
		OCRTimeout:      envDuration("OCR_TIMEOUT", 120*time.Second),

		SearchTopK:          envInt("SEARCH_TOP_K", 3),
		SearchDeterministic: envBool("SEARCH_DETERMINISTIC", false),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = 60 * time.Second
	}
	if cfg.OCRTimeout <= 0 {
		cfg.OCRTimeout = 120 * time.Second
	}
	if cfg.SearchTopK <= 0 {
		cfg.SearchTopK = 3
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.MistralAPIKey == "" {
		return fmt.Errorf("MISTRAL_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
