// ABOUTME: Result cache selection for the API server
// ABOUTME: Builds the configured backend and falls back to memory when it cannot start

package main

import (
	"x2colon-api/core/interfaces"
	"x2colon-api/infrastructure/cache/memory"
	"x2colon-api/infrastructure/cache/redis"
	"x2colon-api/infrastructure/cache/sqlite"
	"x2colon-api/pkg/config"
)

func noopClose() error { return nil }

func newMemoryCache(cfg config.CacheConfig) interfaces.Cache {
	return memory.NewMemoryCache(cfg.TTL(), memory.DefaultCleanupInterval)
}

// newCache returns the configured cache and a function releasing it.
// A nil cache means caching is off.
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func() error) {
	switch cfg.Type {
	case config.CacheNone:
		logger.Info("Result cache disabled", nil)
		return nil, noopClose

	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return newMemoryCache(cfg), noopClose
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, redisCache.Close

	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLitePath, memory.DefaultCleanupInterval)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.SQLitePath,
			})
			return newMemoryCache(cfg), noopClose
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLitePath,
		})
		return sqliteCache, sqliteCache.Close

	default:
		logger.Info("Using memory cache", nil)
		return newMemoryCache(cfg), noopClose
	}
}
