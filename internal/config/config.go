package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"bolsillo/internal/core"
)

type Config struct {
	// HTTP Server
	Port string

	// Gin mode: debug, release or test
	GinMode string

	// Session seed: opening balance as a decimal string
	InitialBalance string

	// Shutdown grace period in seconds
	ShutdownGraceSeconds int
}

func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "release"),
		InitialBalance:       getEnv("INITIAL_BALANCE", "12450.80"),
		ShutdownGraceSeconds: getEnvInt("SHUTDOWN_GRACE_SECONDS", 10),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be debug, release or test", c.GinMode))
	}

	if _, err := core.ParseBalanceCents(c.InitialBalance); err != nil {
		errors = append(errors, fmt.Sprintf("invalid initial balance '%s': must be a non-negative decimal", c.InitialBalance))
	}

	if c.ShutdownGraceSeconds < 1 {
		errors = append(errors, fmt.Sprintf("invalid shutdown grace %d: must be at least 1 second", c.ShutdownGraceSeconds))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// InitialBalanceCents returns the opening balance in cents. Call Validate first.
func (c *Config) InitialBalanceCents() core.Money {
	cents, _ := core.ParseBalanceCents(c.InitialBalance)
	return core.Money{Cents: cents}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
