package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration
type Config struct {
	Env      string
	LogLevel string
	BotToken string
	Server   ServerConfig
	Storage  StorageConfig
	Limits   RateLimitConfig

	CleanupInterval time.Duration
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string
	Port            int
	FallbackPort    int
	ShutdownTimeout time.Duration
}

// StorageConfig holds the paths of the two JSON documents
type StorageConfig struct {
	VocabFile string
	StatsFile string
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	env := getEnv("APP_ENV", EnvDevelopment)
	if env != EnvDevelopment && env != EnvProduction {
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, env)
	}

	defaultHost := "127.0.0.1"
	if env == EnvProduction {
		defaultHost = "0.0.0.0"
	}

	port, err := parsePort(getEnv("PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}
	fallbackPort, err := parsePort(getEnv("FALLBACK_PORT", "5001"))
	if err != nil {
		return nil, fmt.Errorf("FALLBACK_PORT: %w", err)
	}

	rps, err := getEnvFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	cleanup, err := getEnvDuration("CLEANUP_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	shutdown, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:      env,
		LogLevel: getEnv("LOG_LEVEL", ""),
		BotToken: os.Getenv("BOT_TOKEN"),
		Server: ServerConfig{
			Host:            getEnv("HOST", defaultHost),
			Port:            port,
			FallbackPort:    fallbackPort,
			ShutdownTimeout: shutdown,
		},
		Storage: StorageConfig{
			VocabFile: getEnv("VOCAB_FILE", "vocabulary.json"),
			StatsFile: getEnv("STATS_FILE", "quiz_stats.json"),
		},
		Limits: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
		CleanupInterval: cleanup,
	}

	// Validate ranges
	if cfg.Limits.RPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.Limits.Burst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if cfg.CleanupInterval <= 0 {
		return nil, fmt.Errorf("CLEANUP_INTERVAL must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// TelegramEnabled reports whether the bot front-end should start
func (c *Config) TelegramEnabled() bool {
	return c.BotToken != ""
}

// Addr returns the primary listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// FallbackAddr returns the listen address used when the primary port is taken
func (c *Config) FallbackAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.FallbackPort))
}

// parsePort keeps only the digits of raw, so values like "5000/tcp" or
// " 8080 " still work
func parsePort(raw string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, fmt.Errorf("no digits in %q", raw)
	}

	port, err := strconv.Atoi(digits)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %q out of range 1-65535", digits)
	}
	return port, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
