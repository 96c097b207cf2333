// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string

	// AsyncEnabled selects asynchronous delivery: turns that start plan
	// generation return a task ID immediately and the result is pushed to
	// the registered callback. When false, generation is awaited inline.
	AsyncEnabled bool

	// ProcessingDelay is waited before generation starts; exists so tests
	// and demos can observe the pending state.
	ProcessingDelay time.Duration

	// TaskRetention is how long a terminal, delivered (or abandoned) task
	// stays available for polling before eviction.
	TaskRetention time.Duration

	Delivery DeliveryConfig

	// ModelAgentAddr is the gRPC address of the external model service.
	// Empty disables the model backend; plans fall back to the local
	// template generator.
	ModelAgentAddr string

	EnableWebSearch bool
}

// DeliveryConfig controls callback notification delivery.
type DeliveryConfig struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	BackoffBase    time.Duration
	AuthToken      string
	BaseAPIURL     string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		FrontendURL:     getEnv("FRONTEND_URL", ""),
		DBPath:          getEnv("DB_PATH", "./data/prepcoach.db"),
		AsyncEnabled:    getEnvBool("ASYNC_ENABLED", true),
		ProcessingDelay: time.Duration(getEnvInt("PROCESSING_DELAY_SECONDS", 5)) * time.Second,
		TaskRetention:   time.Duration(getEnvInt("TASK_RETENTION_MINUTES", 60)) * time.Minute,
		Delivery: DeliveryConfig{
			MaxAttempts:    getEnvInt("DELIVERY_MAX_ATTEMPTS", 3),
			AttemptTimeout: time.Duration(getEnvInt("DELIVERY_TIMEOUT_SECONDS", 60)) * time.Second,
			BackoffBase:    time.Duration(getEnvInt("DELIVERY_BACKOFF_MS", 1000)) * time.Millisecond,
			AuthToken:      getEnv("CALLBACK_AUTH_TOKEN", ""),
			BaseAPIURL:     getEnv("BASE_API_URL", ""),
		},
		ModelAgentAddr:  getEnv("MODEL_AGENT_ADDR", ""),
		EnableWebSearch: getEnvBool("ENABLE_WEB_SEARCH", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Delivery.MaxAttempts <= 0 {
		return fmt.Errorf("DELIVERY_MAX_ATTEMPTS must be > 0")
	}
	if c.Delivery.AttemptTimeout <= 0 {
		return fmt.Errorf("DELIVERY_TIMEOUT_SECONDS must be > 0")
	}
	if c.Delivery.BackoffBase <= 0 {
		return fmt.Errorf("DELIVERY_BACKOFF_MS must be > 0")
	}
	if c.TaskRetention <= 0 {
		return fmt.Errorf("TASK_RETENTION_MINUTES must be > 0")
	}
	if c.ProcessingDelay < 0 {
		return fmt.Errorf("PROCESSING_DELAY_SECONDS must be >= 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
