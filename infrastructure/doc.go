// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package: result caches, the HTTP transport used by the
// API client, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: shared cache on redis/go-redis
// - cache/sqlite: persistent single-node cache on mattn/go-sqlite3
// - http/standard: net/http client with retry on server errors
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, memory.DefaultCleanupInterval)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//	defer cache.Close()
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("cache.db", 10*time.Minute)
//	defer cache.Close()
//
// # HTTP Client
//
// The HTTP client retries transient server failures with backoff:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Post(ctx, "http://localhost:8000/timestamp", body)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{Level: "info"})
//	logger.Info("Durations calculated", map[string]interface{}{
//	    "lines":         2,
//	    "total_seconds": 95,
//	})
package infrastructure
