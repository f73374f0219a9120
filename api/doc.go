// Package api provides the HTTP API layer for the x2colon service.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request/response validation, and a clean handler interface.
//
// # Architecture
//
//   - server.go: Huma API configuration and the middleware chain
//   - handlers/: HTTP request handlers
//   - dto/: Data Transfer Objects for requests and responses
//   - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//   - GET /: welcome message
//   - GET /health: liveness and version
//   - POST /timestamp: sums the timestamp ranges in {"content": "..."}
//   - POST /clean: removes timestamp ranges from {"script": "..."}
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(100, time.Minute)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: limiter,
//	})
//
//	handlers.NewTimestampHandler(service).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "No valid timestamps found"
//	}
//
// Rejected input maps to 400; any other failure is a 500.
package api
