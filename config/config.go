package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// Language model (DeepSeek, OpenAI-compatible)
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string
	ChatTemperature float64
	ChatMaxTokens   int
	// Optional Postgres catalog. Empty means the embedded mock catalog is used.
	DBUrl string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	ChatRateLimit          int
	// Demo session tokens
	SessionSecret   string
	SessionTTLHours int
	// Artificial latency on mock fetches, mirroring the original frontend demo
	SimulateLatency bool
}

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally; ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3020"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		// Language model
		DeepSeekAPIKey:  getEnv(EnvDeepSeekAPIKey, ""),
		DeepSeekBaseURL: strings.TrimRight(getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"), "/"),
		DeepSeekModel:   getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		ChatTemperature: getEnvFloat("CHAT_TEMPERATURE", 0.7),
		ChatMaxTokens:   getEnvInt("CHAT_MAX_TOKENS", 2000),
		// Database
		DBUrl: getEnv("DATABASE_URL", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		ChatRateLimit:          getEnvInt("CHAT_RATE_LIMIT", 20),           // 20 chat turns per window
		// Sessions
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
		// Mock backend
		SimulateLatency: getEnvBool("SIMULATE_LATENCY", true),
	}

	if cfg.DeepSeekAPIKey == "" {
		log.Printf("WARNING: %s is missing. The chat endpoint will fail until it is set.", EnvDeepSeekAPIKey)
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow is the rate limiting window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// SessionTTL is how long demo session tokens stay valid
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
