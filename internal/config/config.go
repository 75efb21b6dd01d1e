// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// AppConfig covers the HTTP listener and logging.
type AppConfig struct {
	Env            Environment
	LogLevel       string
	Addr           string
	AllowedOrigins []string
}

// OracleConfig points at the dependency-parse sidecar.
type OracleConfig struct {
	URL            string
	TimeoutSeconds int
}

// ProviderConfig covers the external sentence sources.
type ProviderConfig struct {
	TimeoutSeconds int
	WordnikKey     string
}

type Config struct {
	App      AppConfig
	Oracle   OracleConfig
	Provider ProviderConfig
}

// Load reads the environment (after merging an optional .env file) and
// returns the full configuration with defaults applied.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("GRAMMATICA_ENV", "development"))

	return &Config{
		App: AppConfig{
			Env:            env,
			LogLevel:       getLogLevel(env),
			Addr:           getEnv("GRAMMATICA_ADDR", ":8080"),
			AllowedOrigins: splitOrigins(getEnv("GRAMMATICA_ALLOWED_ORIGINS", "https://YOUR-USERNAME.github.io")),
		},
		Oracle: OracleConfig{
			URL:            getEnv("GRAMMATICA_ORACLE_URL", "http://localhost:9000"),
			TimeoutSeconds: getEnvInt("GRAMMATICA_ORACLE_TIMEOUT_SECONDS", 15),
		},
		Provider: ProviderConfig{
			TimeoutSeconds: getEnvInt("GRAMMATICA_PROVIDER_TIMEOUT_SECONDS", 6),
			WordnikKey:     getEnv("WORDNIK_API_KEY", ""),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.App.Addr == "" {
		return fmt.Errorf("GRAMMATICA_ADDR must not be empty")
	}
	if c.Oracle.URL == "" {
		return fmt.Errorf("GRAMMATICA_ORACLE_URL must not be empty")
	}
	if c.Oracle.TimeoutSeconds <= 0 {
		return fmt.Errorf("GRAMMATICA_ORACLE_TIMEOUT_SECONDS must be positive, got %d", c.Oracle.TimeoutSeconds)
	}
	if c.Provider.TimeoutSeconds <= 0 {
		return fmt.Errorf("GRAMMATICA_PROVIDER_TIMEOUT_SECONDS must be positive, got %d", c.Provider.TimeoutSeconds)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("GRAMMATICA_LOG_LEVEL", "info")
	}

	return getEnv("GRAMMATICA_LOG_LEVEL", "debug")
}

// splitOrigins parses a comma-separated origin list. Empty entries,
// including one left by a trailing comma, are dropped.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
