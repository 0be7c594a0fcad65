package config

import (
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) Env {
	return func(key string) string { return m[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(envFrom(nil))

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %s, want http://localhost:8000", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %s, want en", cfg.DefaultLocale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg := Load(envFrom(map[string]string{
		"PORT":                "9090",
		"API_BASE_URL":        "https://api.bwc.example",
		"API_REQUEST_TIMEOUT": "5s",
		"CACHE_SIZE":          "50",
		"DEFAULT_LOCALE":      "el",
	}))

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.bwc.example" {
		t.Errorf("APIBaseURL = %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.CacheSize != 50 {
		t.Errorf("CacheSize = %d, want 50", cfg.CacheSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("overrides should validate, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Load(envFrom(nil))
	cfg.Port = "not-a-port"
	cfg.APIBaseURL = "ftp://example.com"
	cfg.DefaultLocale = "fr"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	msg := err.Error()
	for _, fragment := range []string{"invalid port", "invalid API base URL scheme", "invalid default locale"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("error %q missing fragment %q", msg, fragment)
		}
	}
}
