// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Bundles the optional result cache and the logger

package interfaces

// Dependencies holds the external dependencies of the duration service
type Dependencies struct {
	// Cache stores calculation results; nil disables caching
	Cache Cache

	// Logger provides structured logging; nil disables logging
	Logger Logger
}
