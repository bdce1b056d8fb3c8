// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	// ExpiringWindowDays is the inclusive look-ahead for 'list expiring'.
	ExpiringWindowDays int

	// MetricsDB is the SQLite DSN for command metrics. The default
	// ':memory:' keeps telemetry for the process lifetime only.
	MetricsDB string

	// Telegram config (bot frontend only)
	TelegramBotToken       string
	TelegramAllowedUserIDs []int64
}

// Default returns the built-in configuration used when no environment
// overrides are present.
func Default() *Config {
	return &Config{
		ExpiringWindowDays: 3,
		MetricsDB:          ":memory:",
	}
}

// NewFromEnv creates a new Config object from environment variables. All
// variables are optional for the CLI; the Telegram token is required by
// the bot frontend, which checks for it itself.
func NewFromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("FRIDGESAVVY_EXPIRING_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("FRIDGESAVVY_EXPIRING_WINDOW_DAYS must be a positive integer, got '%s'", v)
		}
		cfg.ExpiringWindowDays = days
	}

	if v := os.Getenv("FRIDGESAVVY_METRICS_DB"); v != "" {
		cfg.MetricsDB = v
	}

	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")

	if v := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); v != "" {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS contains an invalid id '%s'", part)
			}
			cfg.TelegramAllowedUserIDs = append(cfg.TelegramAllowedUserIDs, id)
		}
	}

	return cfg, nil
}
