// ABOUTME: Go client for the x2colon HTTP API
// ABOUTME: Wraps the duration and clean endpoints with typed requests, results and errors

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"x2colon-api/core/domain"
	"x2colon-api/core/interfaces"
	"x2colon-api/infrastructure/http/standard"
	"x2colon-api/pkg/utils/duration"
)

// Client calls a remote x2colon API
type Client struct {
	baseURL string
	http    interfaces.HTTPClient
	logger  interfaces.Logger
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, newError(ErrorTypeConfiguration, fmt.Sprintf("invalid base URL %q", baseURL), err)
	}

	config := defaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Logger == nil {
		config.Logger = quietLogger{}
	}
	if config.HTTPClient == nil {
		config.HTTPClient = standard.NewStandardHTTPClient(config.Timeout).WithLogger(config.Logger)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    config.HTTPClient,
		logger:  config.Logger,
	}, nil
}

type timestampRequest struct {
	Content string `json:"content"`
}

type cleanRequest struct {
	Script string `json:"script"`
}

type cleanResponse struct {
	Cleaned string `json:"cleaned"`
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CalculateDurations sums the timestamp ranges in content on the server
func (c *Client) CalculateDurations(ctx context.Context, content string) (*domain.ParseOutput, error) {
	var out domain.ParseOutput
	if err := c.post(ctx, "/timestamp", timestampRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	if err := checkFormats(&out); err != nil {
		return nil, newError(ErrorTypeDecoding, "inconsistent response from /timestamp", err)
	}
	return &out, nil
}

// checkFormats verifies every format string agrees with its seconds value
func checkFormats(out *domain.ParseOutput) error {
	results := make([]domain.DurationResult, 0, len(out.Lines)+1)
	for _, line := range out.Lines {
		results = append(results, line.Result)
	}
	results = append(results, out.Total)

	for _, r := range results {
		secs, err := duration.ParseFormatted(r.Format)
		if err != nil {
			return err
		}
		if secs != r.Seconds {
			return fmt.Errorf("format %q does not match %d seconds", r.Format, r.Seconds)
		}
	}
	return nil
}

// CleanScript removes timestamp ranges from script on the server
func (c *Client) CleanScript(ctx context.Context, script string) (string, error) {
	var out cleanResponse
	if err := c.post(ctx, "/clean", cleanRequest{Script: script}, &out); err != nil {
		return "", err
	}
	return out.Cleaned, nil
}

// Health reports the server's health status
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	resp, err := c.http.Get(ctx, c.baseURL+"/health")
	if err != nil {
		return nil, newError(ErrorTypeNetwork, "health check failed", err)
	}

	var out HealthStatus
	if err := c.decode(resp, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, dst interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return newError(ErrorTypeConfiguration, "failed to encode request", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.logger.Warn("API request failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return newError(ErrorTypeNetwork, "request to "+path+" failed", err)
	}

	return c.decode(resp, path, dst)
}

// decode reads the response into dst, or converts an error status into *Error
func (c *Client) decode(resp interfaces.Response, path string, dst interface{}) error {
	body := resp.Body()
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return newError(ErrorTypeNetwork, "failed to read response", err)
	}

	status := resp.StatusCode()
	if status >= 400 {
		var p problem
		_ = json.Unmarshal(data, &p)
		apiErr := statusError(status, p)

		c.logger.Debug("API returned an error", map[string]interface{}{
			"path":   path,
			"status": status,
			"detail": apiErr.Detail,
		})
		return apiErr
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return newError(ErrorTypeDecoding, "failed to decode response from "+path, err)
	}

	return nil
}
