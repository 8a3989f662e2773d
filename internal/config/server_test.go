package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/prompt-mixer/internal/config"
)

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{
		Host:         "localhost",
		Port:         8000,
		ReadTimeout:  "15s",
		WriteTimeout: "30s",
	}

	base.Merge(&config.ServerConfig{
		Port:         9090,
		WriteTimeout: "60s",
	})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want %q (should not change)", base.Host, "localhost")
	}

	if base.Port != 9090 {
		t.Errorf("Port = %d, want %d (should merge)", base.Port, 9090)
	}

	if base.ReadTimeout != "15s" {
		t.Errorf("ReadTimeout = %q, want %q (should not change)", base.ReadTimeout, "15s")
	}

	if base.WriteTimeout != "60s" {
		t.Errorf("WriteTimeout = %q, want %q (should merge)", base.WriteTimeout, "60s")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{"default", "0.0.0.0", 8000, "0.0.0.0:8000"},
		{"localhost", "localhost", 3000, "localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ServerConfig{Host: tt.host, Port: tt.port}

			if addr := cfg.Addr(); addr != tt.expected {
				t.Errorf("Addr() = %q, want %q", addr, tt.expected)
			}
		})
	}
}

func TestServerConfig_DurationGetters(t *testing.T) {
	cfg := &config.ServerConfig{
		ReadTimeout:  "30s",
		WriteTimeout: "60s",
		IdleTimeout:  "90s",
	}

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"ReadTimeout", cfg.ReadTimeoutDuration(), 30 * time.Second},
		{"WriteTimeout", cfg.WriteTimeoutDuration(), 60 * time.Second},
		{"IdleTimeout", cfg.IdleTimeoutDuration(), 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestServerConfig_Finalize(t *testing.T) {
	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != 8000 {
		t.Errorf("defaults = %s", cfg.Addr())
	}

	if cfg.ReadTimeout == "" || cfg.WriteTimeout == "" || cfg.IdleTimeout == "" {
		t.Error("timeouts not set to default")
	}
}

func TestServerConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{"port out of range", config.ServerConfig{Port: 70000}},
		{"bad read timeout", config.ServerConfig{ReadTimeout: "fast"}},
		{"bad idle timeout", config.ServerConfig{IdleTimeout: "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() expected error")
			}
		})
	}
}
