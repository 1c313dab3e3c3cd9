package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers selectable through STORE_DRIVER.
const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultPort = 8080

type Config struct {
	Port        int
	StoreDriver string
	// Location is used for every calendar window (months, quarters).
	Location *time.Location
	// CreateSchema applies the Postgres schema on startup.
	CreateSchema bool
}

// Load reads the service configuration from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORE_DRIVER (dynamodb|postgres|memory, default: dynamodb)
//   - FORECAST_TIMEZONE (IANA name, default: UTC)
//   - POSTGRES_CREATE_SCHEMA (bool, default: false)
//
// Store specific variables (DYNAMODB_ENDPOINT, *_TABLE, DATABASE_URL) are read by the
// adapters themselves.
func Load() (Config, error) {
	cfg := Config{
		Port:        defaultPort,
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", DriverDynamoDB)),
		Location:    time.UTC,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	switch cfg.StoreDriver {
	case DriverDynamoDB, DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if tz := os.Getenv("FORECAST_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FORECAST_TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if v := os.Getenv("POSTGRES_CREATE_SCHEMA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid POSTGRES_CREATE_SCHEMA %q", v)
		}
		cfg.CreateSchema = b
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
