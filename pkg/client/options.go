// ABOUTME: Configuration options for the x2colon API client
// ABOUTME: Provides functional options pattern for flexible client configuration

package client

import (
	"time"

	"x2colon-api/core/interfaces"
)

// DefaultTimeout bounds each HTTP request made by the client
const DefaultTimeout = 30 * time.Second

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// HTTPClient overrides the transport; Timeout is ignored when set
	HTTPClient interfaces.HTTPClient

	// Timeout applies to the default transport
	Timeout time.Duration

	// Logger receives request outcomes
	Logger interfaces.Logger
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return newError(ErrorTypeConfiguration, "HTTP client cannot be nil", nil)
		}
		c.HTTPClient = client
		return nil
	}
}

// WithTimeout sets the request timeout of the default transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return newError(ErrorTypeConfiguration, "timeout must be positive", nil)
		}
		c.Timeout = timeout
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Logger:  quietLogger{},
	}
}

// quietLogger discards all output
type quietLogger struct{}

func (quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (quietLogger) Info(msg string, fields map[string]interface{})  {}
func (quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (quietLogger) Error(msg string, fields map[string]interface{}) {}
