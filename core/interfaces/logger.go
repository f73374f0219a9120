// ABOUTME: Logger interface for structured logging
// ABOUTME: Implemented by the logrus-backed structured logger

package interfaces

// Logger is the structured logger used across the service, API and CLI.
//
//	logger.Info("Durations calculated", map[string]interface{}{
//		"lines": 3,
//		"total_seconds": 95,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general operational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs conditions that don't stop the request.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
