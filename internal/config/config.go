package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the portal needs from the environment.
type Config struct {
	// HTTP server
	Port string

	// Backend API
	APIBaseURL     string
	APIToken       string
	RequestTimeout time.Duration

	// View caches
	CacheTTL  time.Duration
	CacheSize int

	// UI
	DefaultLocale string

	// Logging
	LogLevel string
}

// Env is the subset of os.Getenv the loader needs; injectable for tests.
type Env func(key string) string

// Load reads configuration from the environment with sensible defaults.
func Load(getenv Env) *Config {
	return &Config{
		Port:           getEnv(getenv, "PORT", "8080"),
		APIBaseURL:     getEnv(getenv, "API_BASE_URL", "http://localhost:8000"),
		APIToken:       getEnv(getenv, "API_TOKEN", ""),
		RequestTimeout: getEnvDuration(getenv, "API_REQUEST_TIMEOUT", 15*time.Second),
		CacheTTL:       getEnvDuration(getenv, "CACHE_TTL", 2*time.Minute),
		CacheSize:      getEnvInt(getenv, "CACHE_SIZE", 100),
		DefaultLocale:  getEnv(getenv, "DEFAULT_LOCALE", "en"),
		LogLevel:       getEnv(getenv, "LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if parsed, err := url.Parse(c.APIBaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API base URL scheme '%s': must be http or https", parsed.Scheme))
	} else if parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid API base URL '%s': missing host", c.APIBaseURL))
	}

	if c.RequestTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be at least 1 second", c.RequestTimeout))
	} else if c.RequestTimeout > time.Minute {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be at most 1 minute", c.RequestTimeout))
	}

	if c.CacheTTL < time.Second {
		problems = append(problems, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}
	if c.CacheSize < 1 || c.CacheSize > 10000 {
		problems = append(problems, fmt.Sprintf("invalid cache size %d: must be between 1 and 10000", c.CacheSize))
	}

	switch c.DefaultLocale {
	case "en", "el":
	default:
		problems = append(problems, fmt.Sprintf("invalid default locale '%s': must be 'en' or 'el'", c.DefaultLocale))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(getenv Env, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(getenv Env, key string, defaultValue int) int {
	if value := getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(getenv Env, key string, defaultValue time.Duration) time.Duration {
	if value := getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
