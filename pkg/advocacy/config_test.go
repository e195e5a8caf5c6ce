package advocacy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ADVOCACY_BASE_URL", "https://svc.example.com")
	t.Setenv("ADVOCACY_API_KEY", "K1")
	t.Setenv("ADVOCACY_ACCESS_TOKEN", "")
	t.Setenv("ADVOCACY_DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, &Config{BaseURL: "https://svc.example.com", APIKey: "K1", Debug: true}, cfg)

	t.Setenv("ADVOCACY_DEBUG", "maybe")
	_, err = LoadConfig()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	t.Setenv("ADVOCACY_DEBUG", "")
	t.Setenv("ADVOCACY_BASE_URL", "")
	_, err = LoadConfig()
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "BaseURL", cfgErr.Field)
}

func TestValidateRejectsBaseURLQueryAndFragment(t *testing.T) {
	for _, base := range []string{
		"https://svc.example.com?x=1",
		"https://svc.example.com/root?",
		"https://svc.example.com/#top",
	} {
		err := (&Config{BaseURL: base}).Validate()
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr, base)
		require.Equal(t, "BaseURL", cfgErr.Field)
		require.Equal(t, "must not have a query or fragment", cfgErr.Reason)
	}

	require.NoError(t, (&Config{BaseURL: "https://svc.example.com/root/"}).Validate())
}
