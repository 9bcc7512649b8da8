package config_test

import (
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-boarding-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, v := range []string{"PORT", "APP_NAME", "ENV", "LOG_LEVEL", "API_BASE_URL", "OIDC_ISSUER", "TOKEN_PASSPHRASE", "ALLOWED_ORIGINS"} {
		t.Setenv(v, "")
	}
	c := config.New()

	require.Equal(t, "127.0.0.1:8080", c.GetPort())
	require.Equal(t, "Boarding House", c.GetAppName())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "info", c.GetLogLevel())
	require.Equal(t, "http://localhost:8000/api", c.GetAPIBaseURL())
	require.Equal(t, "/token", c.GetTokenPath())
	require.Empty(t, c.GetOIDCIssuer())
	require.Empty(t, c.GetTokenPassphrase())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:8080"))
	require.False(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:3000"))
}

func TestEnvironmentOverrides(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "profile")
	t.Setenv("PORT", ":9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("API_BASE_URL", "https://api.example.test/api/")
	t.Setenv("DATA_FOLDER", folder)
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	c := config.New()

	require.Equal(t, "127.0.0.1:9090", c.GetPort())
	require.Equal(t, "PROD", c.GetEnv())
	require.Equal(t, "https://api.example.test/api", c.GetAPIBaseURL())
	require.Equal(t, folder, c.GetDataFolder())

	origins := c.GetAllowedOrigins()
	require.Len(t, origins, 2)
	require.True(t, origins.IsAllowedOrigin("http://b.test"))
}

func TestGetPort_RejectsHosts(t *testing.T) {
	for _, value := range []string{"0.0.0.0:9090", "localhost:9090", "http", "70000", "-1"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("PORT", value)
			require.Equal(t, "127.0.0.1:8080", config.New().GetPort())
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BOARDING_TEST_VAR", "")
	require.Equal(t, "fallback", config.GetEnv("BOARDING_TEST_VAR", "fallback"))
	t.Setenv("BOARDING_TEST_VAR", "set")
	require.Equal(t, "set", config.GetEnv("BOARDING_TEST_VAR", "fallback"))
}
