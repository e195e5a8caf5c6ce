package advocacy

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	APIKey      string
	AccessToken string
	Debug       bool
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:     os.Getenv("ADVOCACY_BASE_URL"),
		APIKey:      os.Getenv("ADVOCACY_API_KEY"),
		AccessToken: os.Getenv("ADVOCACY_ACCESS_TOKEN"),
	}
	if v := os.Getenv("ADVOCACY_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigurationError{Field: "ADVOCACY_DEBUG", Reason: "must be a boolean"}
		}
		cfg.Debug = debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil || strings.TrimSpace(c.BaseURL) == "" {
		return &ConfigurationError{Field: "BaseURL", Reason: "is required"}
	}
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigurationError{Field: "BaseURL", Reason: "must be an absolute URL"}
	}
	// Endpoint paths are appended to the base, so it cannot carry its own
	// query or fragment.
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return &ConfigurationError{Field: "BaseURL", Reason: "must not have a query or fragment"}
	}
	// APIKey is optional: token-only deployments leave it empty.
	return nil
}
