// ABOUTME: Duration service fronting the pure core with result caching and logging
// ABOUTME: Provides business logic for the HTTP handlers and the CLI

package durations

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"x2colon-api/core/domain"
	"x2colon-api/core/interfaces"
)

// DefaultCacheTTL is used when ServiceOptions.CacheTTL is zero
const DefaultCacheTTL = time.Hour

// ServiceOptions tunes the duration service
type ServiceOptions struct {
	// CacheTTL is how long results stay cached
	CacheTTL time.Duration
}

// Service implements interfaces.DurationService
type Service struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewService creates a new duration service instance
func NewService(deps interfaces.Dependencies, opts ServiceOptions) *Service {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		deps:     deps,
		cacheTTL: ttl,
	}
}

// Calculate sums the timestamp ranges in content
func (s *Service) Calculate(ctx context.Context, content string) (*domain.ParseOutput, error) {
	key := cacheKey("durations", content)

	var cached domain.ParseOutput
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	out, err := CalculateDurations(content)
	if err != nil {
		s.log("Duration calculation rejected", map[string]interface{}{
			"error":  err.Error(),
			"length": len(content),
		})
		return nil, err
	}

	s.setCached(ctx, key, out)

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Durations calculated", map[string]interface{}{
			"lines":         len(out.Lines),
			"total_seconds": out.Total.Seconds,
		})
	}

	return out, nil
}

// Clean removes timestamp ranges from script
func (s *Service) Clean(ctx context.Context, script string) string {
	key := cacheKey("clean", script)

	var cached string
	if s.getCached(ctx, key, &cached) {
		return cached
	}

	cleaned := CleanScript(script)
	s.setCached(ctx, key, cleaned)

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Script cleaned", map[string]interface{}{
			"input_length":  len(script),
			"output_length": len(cleaned),
		})
	}

	return cleaned
}

// getCached decodes a cached value into dst; misses and decode errors report false
func (s *Service) getCached(ctx context.Context, key string, dst interface{}) bool {
	if s.deps.Cache == nil {
		return false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.warn("Discarding unreadable cache entry", key, err)
		_ = s.deps.Cache.Delete(ctx, key)
		return false
	}

	return true
}

// setCached stores value; cache errors are logged and otherwise ignored
func (s *Service) setCached(ctx context.Context, key string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.warn("Failed to encode cache entry", key, err)
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.warn("Failed to write cache entry", key, err)
	}
}

func (s *Service) log(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) warn(msg, key string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// cacheKey namespaces a SHA-256 of the input
func cacheKey(prefix, input string) string {
	sum := sha256.Sum256([]byte(input))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
