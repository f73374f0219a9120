// ABOUTME: Configuration management for the x2colon service with environment variable support
// ABOUTME: Loads an optional .env file, then reads server, logging, cache and rate limit settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logger configuration
	Log LogConfig

	// Cache contains result cache configuration
	Cache CacheConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// CORSOrigins lists the allowed origins; "*" allows any
	CORSOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	// File is empty for stdout
	File string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTLSeconds is how long a cached result stays valid
	TTLSeconds int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string
}

// TTL returns the cache TTL as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests allowed per window for a single client
	Requests int

	// WindowSeconds is the length of the window
	WindowSeconds int
}

// Window returns the rate limit window as a duration
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// LoadFromEnv loads configuration from environment variables.
// Values from a .env file in the working directory are applied first
// without overriding variables that are already set.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Cache: CacheConfig{
			Type:       strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheMemory)),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL", 3600),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "cache.db"),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("port must be numeric: %q", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return errors.New("log format must be 'json' or 'text'")
	}

	switch c.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis, CacheSQLite:
	default:
		return errors.New("cache type must be 'none', 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	if c.Cache.Type == CacheRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == CacheSQLite && c.Cache.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit must be at least 1 request")
	}

	if c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate window must be at least 1 second")
	}

	return nil
}
