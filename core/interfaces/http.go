// ABOUTME: HTTP client interfaces for outbound requests
// ABOUTME: Used by the API client to reach a remote x2colon server

package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the transport used by the API client package.
// It keeps pkg/client independent of net/http so tests can swap it out.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST with a JSON body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is a minimal view of an HTTP response
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the named header, or "".
	Header(key string) string
}
