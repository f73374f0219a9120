// Package core contains the business logic for the x2colon service.
// It is framework-agnostic and can be used independently of the HTTP API.
//
// The core package is organized into several sub-packages:
//
// - domain: pure data models (Timestamp, LineResult, ParseOutput)
// - durations: range scanning, validation, aggregation, script cleaning and the cached service
// - errors: typed errors for rejected ranges and request validation
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - The scanner, aggregator and cleaner are pure functions over a string
// - All external dependencies are injected via interfaces
// - Caching and logging live in the service, never in the pure functions
//
// # Usage Example
//
//	out, err := durations.CalculateDurations("Intro (0:00-0:30) + (0:45-1:15)")
//	if err != nil {
//	    // errors.IsDurationError(err) reports a problem with the input
//	}
//	fmt.Println(out.Total.Format) // 1:00
//
//	svc := durations.NewService(interfaces.Dependencies{
//	    Cache:  cache,
//	    Logger: logger,
//	}, durations.ServiceOptions{CacheTTL: time.Hour})
//	cleaned := svc.Clean(ctx, "Start (0:00-0:10) end") // "Start end"
package core
