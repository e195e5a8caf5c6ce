package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
)

// Config holds settings for tools built on the advocacy client. Service
// connection settings live in advocacy.Config.
type Config struct {
	ClientID        string
	ClientSecret    string
	Retries         int
	RetryMaxElapsed time.Duration
	Concurrency     int
	DebugDatabase   bool
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		ClientID:        os.Getenv("ADVOCACY_CLIENT_ID"),
		ClientSecret:    os.Getenv("ADVOCACY_CLIENT_SECRET"),
		Retries:         0,
		RetryMaxElapsed: time.Minute,
		Concurrency:     5,
	}

	var err error
	if cfg.Retries, err = readInt("ADVOCACY_RETRIES", cfg.Retries); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = readInt("ADVOCACY_CONCURRENCY", cfg.Concurrency); err != nil {
		return nil, err
	}
	if v := os.Getenv("ADVOCACY_RETRY_MAX_ELAPSED"); v != "" {
		d, err := str2duration.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("ADVOCACY_RETRY_MAX_ELAPSED: %w", err)
		}
		cfg.RetryMaxElapsed = d
	}
	if v := os.Getenv("ADVOCACY_DEBUG_DB"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ADVOCACY_DEBUG_DB: %w", err)
		}
		cfg.DebugDatabase = b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if (c.ClientID == "") != (c.ClientSecret == "") {
		return fmt.Errorf("ADVOCACY_CLIENT_ID and ADVOCACY_CLIENT_SECRET must be set together")
	}
	if c.Retries < 0 {
		return fmt.Errorf("ADVOCACY_RETRIES must not be negative")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("ADVOCACY_CONCURRENCY must be at least 1")
	}
	return nil
}

// HasClientCredentials reports whether a token can be requested.
func (c *Config) HasClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func readInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
