package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("FORECAST_TIMEZONE", "")
		t.Setenv("POSTGRES_CREATE_SCHEMA", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.StoreDriver != DriverDynamoDB || cfg.Location != time.UTC || cfg.CreateSchema {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STORE_DRIVER", "Memory")
		t.Setenv("FORECAST_TIMEZONE", "America/Sao_Paulo")
		t.Setenv("POSTGRES_CREATE_SCHEMA", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9090 || cfg.StoreDriver != DriverMemory || !cfg.CreateSchema {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.Location.String() != "America/Sao_Paulo" {
			t.Fatalf("expected America/Sao_Paulo, got %s", cfg.Location)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string][2]string{
			"port":     {"PORT", "abc"},
			"driver":   {"STORE_DRIVER", "mongo"},
			"timezone": {"FORECAST_TIMEZONE", "Mars/Olympus"},
			"schema":   {"POSTGRES_CREATE_SCHEMA", "maybe"},
		}
		for name, kv := range cases {
			t.Run(name, func(t *testing.T) {
				t.Setenv(kv[0], kv[1])
				if _, err := Load(); err == nil {
					t.Fatalf("expected error for %s=%s", kv[0], kv[1])
				}
			})
		}
	})
}
