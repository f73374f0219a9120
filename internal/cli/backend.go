// ABOUTME: Backend selection for the CLI
// ABOUTME: Runs commands against the local core or a remote API through pkg/client

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"x2colon-api/core/domain"
	"x2colon-api/core/durations"
	"x2colon-api/pkg/client"
)

// backend runs the two operations either in-process or against an API server.
// *client.Client satisfies it directly.
type backend interface {
	CalculateDurations(ctx context.Context, content string) (*domain.ParseOutput, error)
	CleanScript(ctx context.Context, script string) (string, error)
}

type localBackend struct{}

func (localBackend) CalculateDurations(ctx context.Context, content string) (*domain.ParseOutput, error) {
	return durations.CalculateDurations(content)
}

func (localBackend) CleanScript(ctx context.Context, script string) (string, error) {
	return durations.CleanScript(script), nil
}

func newBackend(cmd *cobra.Command, opts *GlobalOptions) (backend, error) {
	if opts.Remote == "" {
		return localBackend{}, nil
	}

	logger, err := newLogger(cmd, opts)
	if err != nil {
		return nil, err
	}

	remote, err := client.New(opts.Remote, client.WithTimeout(opts.Timeout), client.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return remote, nil
}
