package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when GEMINI_API_KEY is absent. The service
// refuses to start without it: there is no degraded mode to fall back to.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type CacheConfig struct {
	// MaxEntries bounds the memoization cache. 0 means unbounded,
	// which is fine for a single-user demo deployment.
	MaxEntries int
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// If no .env file found, continue with environment variables directly
	// (useful for Docker/K8s)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "120"))
	cacheMax, _ := strconv.Atoi(getEnv("CACHE_MAX_ENTRIES", "0"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey: apiKey,
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Cache: CacheConfig{
			MaxEntries: cacheMax,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
