// Package config loads pipeline settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob of one pipeline run. CLI flags may override the
// BaseURL, PageCount and OutputPath fields.
type Config struct {
	BaseURL        string
	PageCount      int
	OutputPath     string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryWait      time.Duration
	PageDelay      time.Duration
	MetricsAddr    string
	LogLevel       string
}

// Load reads .env if present, then the process environment, falling back to
// defaults that match the public demo site.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:        getEnv("ETL_BASE_URL", "https://fashion-studio.dicoding.dev"),
		PageCount:      getEnvInt("ETL_PAGE_COUNT", 50),
		OutputPath:     getEnv("ETL_OUTPUT_PATH", "products.csv"),
		RequestTimeout: getEnvDuration("ETL_REQUEST_TIMEOUT", 10*time.Second),
		RetryAttempts:  getEnvInt("ETL_RETRY_ATTEMPTS", 3),
		RetryWait:      getEnvDuration("ETL_RETRY_WAIT", time.Second),
		PageDelay:      getEnvDuration("ETL_PAGE_DELAY", 500*time.Millisecond),
		MetricsAddr:    getEnv("ETL_METRICS_ADDR", ""),
		LogLevel:       getEnv("ETL_LOG_LEVEL", "info"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func getEnvDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	dur, err := time.ParseDuration(v)
	if err != nil {
		return d
	}
	return dur
}
