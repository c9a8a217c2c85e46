package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pricelab/pricelab/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Address != constants.DefaultServerAddress {
			t.Errorf("Address = %q, expected default %q", cfg.Address, constants.DefaultServerAddress)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Address != constants.DefaultServerAddress {
			t.Errorf("Address = %q, expected default %q", cfg.Address, constants.DefaultServerAddress)
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	data := `
address: ":9090"
allowOrigins:
  - https://dashboard.example.com
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, expected :9090", cfg.Address)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("AllowOrigins = %v, expected single dashboard origin", cfg.AllowOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte("address: [not: valid"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for malformed YAML")
	}
}
