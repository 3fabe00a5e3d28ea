package config_test

import (
	"testing"
	"time"

	"github.com/Vayain/soul-builder/internal/config"
	"github.com/stretchr/testify/require"
)

func TestEnvVars_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TRANSPORT", "")

	c := config.New()
	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "Soul Builder", c.GetAppName())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "info", c.GetLogLevel())
	require.Equal(t, config.TransportHTTP, c.GetTransport())
}

func TestEnvVars_Overrides(t *testing.T) {
	t.Run("port with and without colon", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		require.Equal(t, ":9000", config.New().GetPort())
		t.Setenv("PORT", ":9001")
		require.Equal(t, ":9001", config.New().GetPort())
	})

	t.Run("stdio transport is case insensitive", func(t *testing.T) {
		t.Setenv("TRANSPORT", "STDIO")
		require.Equal(t, config.TransportStdio, config.New().GetTransport())
	})

	t.Run("unknown transport falls back to http", func(t *testing.T) {
		t.Setenv("TRANSPORT", "carrier-pigeon")
		require.Equal(t, config.TransportHTTP, config.New().GetTransport())
	})

	t.Run("env is upper cased", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		require.Equal(t, "PROD", config.New().GetEnv())
	})
}

func TestSessions_Durations(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SESSION_EXPIRY", "")
		t.Setenv("SESSION_SWEEP_INTERVAL", "")
		c := config.New()
		require.Equal(t, time.Hour, c.GetSessionExpiry())
		require.Equal(t, 10*time.Minute, c.GetSweepInterval())
	})

	t.Run("valid overrides", func(t *testing.T) {
		t.Setenv("SESSION_EXPIRY", "90m")
		t.Setenv("SESSION_SWEEP_INTERVAL", "30s")
		c := config.New()
		require.Equal(t, 90*time.Minute, c.GetSessionExpiry())
		require.Equal(t, 30*time.Second, c.GetSweepInterval())
	})

	t.Run("malformed and negative values use defaults", func(t *testing.T) {
		t.Setenv("SESSION_EXPIRY", "soon")
		t.Setenv("SESSION_SWEEP_INTERVAL", "-5m")
		c := config.New()
		require.Equal(t, time.Hour, c.GetSessionExpiry())
		require.Equal(t, 10*time.Minute, c.GetSweepInterval())
	})
}

func TestCors_AllowedOrigins(t *testing.T) {
	t.Run("wildcard by default", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		origins := config.New().GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("*"))
	})

	t.Run("comma separated list", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://b.example, https://a.example,,")
		origins := config.New().GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("https://a.example"))
		require.True(t, origins.IsAllowedOrigin("https://b.example"))
		require.False(t, origins.IsAllowedOrigin("*"))
		require.Equal(t, "https://a.example, https://b.example", origins.String())
	})
}
