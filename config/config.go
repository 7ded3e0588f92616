package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	App       AppConfig
	Directory DirectoryConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	AdminRateLimit float64
	AdminRateBurst int
}

type RedisConfig struct {
	URL            string
	PublishTimeout time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// DirectoryConfig controls the in-memory profile directory and its map view.
type DirectoryConfig struct {
	Seed          bool
	MapZoom       int
	TileURL       string
	PhotoMaxBytes int64
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AdminRateLimit: getEnvAsFloat("ADMIN_RATE_LIMIT", 10),
			AdminRateBurst: getEnvAsInt("ADMIN_RATE_BURST", 20),
		},
		Redis: RedisConfig{
			URL:            getEnv("REDIS_URL", ""),
			PublishTimeout: time.Duration(getEnvAsInt("REDIS_PUBLISH_TIMEOUT_MS", 500)) * time.Millisecond,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Directory: DirectoryConfig{
			Seed:          getEnvAsBool("DIRECTORY_SEED", true),
			MapZoom:       getEnvAsInt("MAP_ZOOM", 10),
			TileURL:       getEnv("MAP_TILE_URL", defaultTileURL),
			PhotoMaxBytes: int64(getEnvAsInt("PHOTO_MAX_BYTES", 5<<20)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Directory.MapZoom < 1 || c.Directory.MapZoom > 19 {
		return fmt.Errorf("MAP_ZOOM must be between 1 and 19, got %d", c.Directory.MapZoom)
	}

	if c.Directory.PhotoMaxBytes <= 0 {
		return fmt.Errorf("PHOTO_MAX_BYTES must be positive")
	}

	if c.Redis.PublishTimeout <= 0 {
		return fmt.Errorf("REDIS_PUBLISH_TIMEOUT_MS must be positive")
	}

	if c.Server.AdminRateLimit <= 0 || c.Server.AdminRateBurst <= 0 {
		return fmt.Errorf("ADMIN_RATE_LIMIT and ADMIN_RATE_BURST must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
