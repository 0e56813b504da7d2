package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              string
	GinMode           string
	SquareAccessToken string
	SquareBaseURL     string
	SquareTimeout     time.Duration
	BusinessTimezone  string
	SessionJWTSecret  string
	AuthDisabled      bool
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		SquareAccessToken: getEnv("SQUARE_ACCESS_TOKEN", ""),
		SquareBaseURL:     getEnv("SQUARE_BASE_URL", "https://connect.squareup.com"),
		SquareTimeout:     time.Duration(getEnvInt("SQUARE_TIMEOUT_SECONDS", 30)) * time.Second,
		BusinessTimezone:  getEnv("BUSINESS_TIMEZONE", "America/Denver"),
		SessionJWTSecret:  getEnv("SESSION_JWT_SECRET", ""),
		AuthDisabled:      getEnv("AUTH_DISABLED", "false") == "true",
	}
}

// Location resolves the business timezone used to bound royalty date ranges.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.BusinessTimezone)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
