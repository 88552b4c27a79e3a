package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	// Discord
	DiscordToken    string
	GuildID         string
	CleanupCommands bool

	// Weather provider
	OpenWeatherAPIKey string

	// Health endpoint
	HealthPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Interactive weather sessions
	SessionTimeout time.Duration

	// Outbound HTTP
	ClientTimeout   time.Duration
	RequestTimeout  time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	RetryMultiplier float64
	BreakerTimeout  time.Duration
	RatePerSecond   float64
	RateBurst       int

	LogLevel string
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.DiscordToken = getEnv("DISCORD_TOKEN", "")
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	cfg.GuildID = getEnv("DISCORD_GUILD_ID", "")
	cfg.CleanupCommands = getEnv("CLEANUP_COMMANDS", "false") == "true"

	cfg.OpenWeatherAPIKey = getEnv("OPENWEATHER_API_KEY", "")
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	cfg.HealthPort = getEnv("HEALTH_PORT", "8080")
	cfg.ReadTimeout = parseDuration(getEnv("HEALTH_READ_TIMEOUT", "10s"))
	cfg.WriteTimeout = parseDuration(getEnv("HEALTH_WRITE_TIMEOUT", "10s"))

	cfg.SessionTimeout = parseDuration(getEnv("SESSION_TIMEOUT", "5m"))

	cfg.ClientTimeout = parseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	cfg.RequestTimeout = parseDuration(getEnv("REQUEST_TIMEOUT", "15s"))
	cfg.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.RetryDelay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.RetryMultiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))
	cfg.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))
	cfg.RatePerSecond = parseFloat(getEnv("RATE_PER_SECOND", "5"))
	cfg.RateBurst = parseInt(getEnv("RATE_BURST", "5"))

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
