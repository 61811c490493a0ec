package config_test

import (
	"testing"
	"time"

	"github.com/SaErPu/expense-tracker-web/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GATEWAY_URL", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.GatewayURL != "http://localhost:8080" {
		t.Fatalf("expected default gateway URL, got %s", cfg.GatewayURL)
	}

	if cfg.GatewayTimeout != 10*time.Second {
		t.Fatalf("expected default gateway timeout 10s, got %s", cfg.GatewayTimeout)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.DatabasePath != "expenses.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GATEWAY_URL", "https://expenses.example.com")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.GatewayURL != "https://expenses.example.com" {
		t.Fatalf("expected custom gateway URL, got %s", cfg.GatewayURL)
	}

	if cfg.GatewayTimeout != 3*time.Second {
		t.Fatalf("expected gateway timeout 3s, got %s", cfg.GatewayTimeout)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port 9090, got %s", cfg.HTTPPort)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.LogLevel)
	}
}
