// ABOUTME: Main entry point for the x2colon API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"x2colon-api/api"
	"x2colon-api/api/handlers"
	"x2colon-api/api/middleware"
	"x2colon-api/core/durations"
	"x2colon-api/core/interfaces"
	"x2colon-api/infrastructure/logger/structured"
	"x2colon-api/pkg/config"
	"x2colon-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting x2colon API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	deps := interfaces.Dependencies{Logger: logger}
	if flags.IsEnabled(context.Background(), featureflags.CacheEnabled) {
		cache, closeCache := newCache(cfg.Cache, logger)
		defer func() {
			if err := closeCache(); err != nil {
				logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
			}
		}()
		deps.Cache = cache
	}

	service := durations.NewService(deps, durations.ServiceOptions{CacheTTL: cfg.Cache.TTL()})

	router, limiter := newRouter(cfg, flags, service, logger)
	if limiter != nil {
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newRouter builds the API and registers the handlers enabled by flags.
// The returned limiter is nil when rate limiting is disabled.
func newRouter(cfg *config.Config, flags featureflags.Manager, service interfaces.DurationService, logger interfaces.Logger) (http.Handler, *middleware.RateLimiter) {
	ctx := context.Background()

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	}

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewRootHandler(api.Version).RegisterRoutes(humaAPI)
	handlers.NewTimestampHandler(service).RegisterRoutes(humaAPI)
	if flags.IsEnabled(ctx, featureflags.CleanEnabled) {
		handlers.NewCleanHandler(service).RegisterRoutes(humaAPI)
	}

	return router, apiConfig.RateLimiter
}

func init() {
	fmt.Println(`
        ____                  __
   _  _|___ \ ___ ___  | |  ___  _ __
   \ \/ / __) / __/ _ \| | / _ \| '_ \
    >  < / __/ (_| (_) | || (_) | | | |
   /_/\_\_____\___\___/|_| \___/|_| |_|
	`)
}
