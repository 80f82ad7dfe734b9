// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	SessionCapacity int
	SessionTimeout  time.Duration
	LogLevel        string
	LogFormat       string // json or text
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	capacity := getEnvInt("SESSION_CAPACITY", 100)
	if capacity < 1 {
		return nil, fmt.Errorf("SESSION_CAPACITY must be positive, got %d", capacity)
	}

	timeoutMinutes := getEnvInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)
	if timeoutMinutes < 1 {
		return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT_MINUTES must be positive, got %d", timeoutMinutes)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		SessionCapacity: capacity,
		SessionTimeout:  time.Duration(timeoutMinutes) * time.Minute,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
