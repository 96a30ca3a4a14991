package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const defaultAPIBaseURL = "https://api.nasa.gov/planetary/apod"

const (
	minFetchCount = 1
	maxFetchCount = 50
)

// Config holds runtime settings for the gallery app.
type Config struct {
	APIKey     string
	APIBaseURL string
	DBPath     string
	FetchCount int
	NoCache    bool
	Debug      bool
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIKey:     os.Getenv("APOD_API_KEY"),
		APIBaseURL: os.Getenv("APOD_API_BASE_URL"),
		DBPath:     os.Getenv("APOD_DB_PATH"),
		NoCache:    boolFromEnv("APOD_NO_CACHE"),
		Debug:      boolFromEnv("APOD_DEBUG"),
	}

	if cfg.APIKey == "" {
		cfg.APIKey = "DEMO_KEY"
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "apod.db"
	}

	cfg.FetchCount = 12
	if raw := os.Getenv("APOD_FETCH_COUNT"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("APOD_FETCH_COUNT must be a number: %s", raw)
		}
		cfg.FetchCount = count
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func boolFromEnv(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("APIKey is required")
	}
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if !c.NoCache && c.DBPath == "" {
		return errors.New("DBPath is required unless caching is disabled")
	}
	if c.FetchCount < minFetchCount || c.FetchCount > maxFetchCount {
		return fmt.Errorf("FetchCount must be between %d and %d: %d", minFetchCount, maxFetchCount, c.FetchCount)
	}
	return nil
}
