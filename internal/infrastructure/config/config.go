package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration
type Config struct {
	Server    ServerConfig
	Watson    WatsonConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// WatsonConfig holds the remote emotion service settings
type WatsonConfig struct {
	URL     string
	ModelID string
	Timeout time.Duration
}

// RateLimitConfig holds per-client rate limiting settings
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// Load builds the configuration from environment variables, applying
// defaults for anything unset. Variables are prefixed EMOTION_.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("EMOTION_SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("EMOTION_SERVER_PORT", 8080),
			Mode: getEnv("EMOTION_SERVER_MODE", "debug"),
		},
		Watson: WatsonConfig{
			URL:     getEnv("EMOTION_WATSON_URL", "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"),
			ModelID: getEnv("EMOTION_WATSON_MODEL_ID", "emotion_aggregated-workflow_lang_en_stock"),
			Timeout: time.Duration(getEnvInt("EMOTION_WATSON_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("EMOTION_RATELIMIT_ENABLED", true),
			RPS:     getEnvFloat("EMOTION_RATELIMIT_RPS", 10),
			Burst:   getEnvInt("EMOTION_RATELIMIT_BURST", 20),
		},
		Log: LogConfig{
			Level:  getEnv("EMOTION_LOG_LEVEL", "info"),
			Format: getEnv("EMOTION_LOG_FORMAT", "json"),
		},
	}

	if cfg.Watson.URL == "" {
		return nil, fmt.Errorf("emotion service URL must not be empty")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
