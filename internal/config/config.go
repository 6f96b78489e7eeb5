package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	SQLiteDBPath string

	// gin mode: debug, release or test
	GinMode string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/dashboard.db"),
		GinMode:      getEnv("GIN_MODE", "release"),
	}
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.SQLiteDBPath == "" {
		return fmt.Errorf("sqlite db path must be set")
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", c.GinMode)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
