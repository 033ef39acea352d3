package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "https://fashion-studio.dicoding.dev", cfg.BaseURL)
	require.Equal(t, 50, cfg.PageCount)
	require.Equal(t, "products.csv", cfg.OutputPath)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 3, cfg.RetryAttempts)
	require.Equal(t, time.Second, cfg.RetryWait)
	require.Equal(t, 500*time.Millisecond, cfg.PageDelay)
	require.Equal(t, "", cfg.MetricsAddr)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ETL_BASE_URL", "http://localhost:8080")
	t.Setenv("ETL_PAGE_COUNT", "3")
	t.Setenv("ETL_OUTPUT_PATH", "/tmp/out.csv")
	t.Setenv("ETL_REQUEST_TIMEOUT", "2s")
	t.Setenv("ETL_RETRY_ATTEMPTS", "5")
	t.Setenv("ETL_PAGE_DELAY", "0s")
	t.Setenv("ETL_LOG_LEVEL", "debug")

	cfg := Load()

	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 3, cfg.PageCount)
	require.Equal(t, "/tmp/out.csv", cfg.OutputPath)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	require.Equal(t, 5, cfg.RetryAttempts)
	require.Equal(t, time.Duration(0), cfg.PageDelay)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("ETL_PAGE_COUNT", "many")
	t.Setenv("ETL_REQUEST_TIMEOUT", "soon")

	cfg := Load()

	require.Equal(t, 50, cfg.PageCount)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
