package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"ADVOCACY_CLIENT_ID", "ADVOCACY_CLIENT_SECRET", "ADVOCACY_RETRIES",
		"ADVOCACY_RETRY_MAX_ELAPSED", "ADVOCACY_CONCURRENCY", "ADVOCACY_DEBUG_DB",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, &Config{RetryMaxElapsed: time.Minute, Concurrency: 5}, cfg)
	require.False(t, cfg.HasClientCredentials())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADVOCACY_CLIENT_ID", "id")
	t.Setenv("ADVOCACY_CLIENT_SECRET", "secret")
	t.Setenv("ADVOCACY_RETRIES", "3")
	t.Setenv("ADVOCACY_RETRY_MAX_ELAPSED", "1m30s")
	t.Setenv("ADVOCACY_CONCURRENCY", "8")
	t.Setenv("ADVOCACY_DEBUG_DB", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, &Config{
		ClientID:        "id",
		ClientSecret:    "secret",
		Retries:         3,
		RetryMaxElapsed: 90 * time.Second,
		Concurrency:     8,
		DebugDatabase:   true,
	}, cfg)
	require.True(t, cfg.HasClientCredentials())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"ADVOCACY_RETRIES":           "many",
		"ADVOCACY_RETRY_MAX_ELAPSED": "soon",
		"ADVOCACY_CONCURRENCY":       "0",
		"ADVOCACY_CLIENT_ID":         "only-id",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			for _, k := range []string{
				"ADVOCACY_CLIENT_ID", "ADVOCACY_CLIENT_SECRET", "ADVOCACY_RETRIES",
				"ADVOCACY_RETRY_MAX_ELAPSED", "ADVOCACY_CONCURRENCY", "ADVOCACY_DEBUG_DB",
			} {
				t.Setenv(k, "")
			}
			t.Setenv(key, val)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
