// ABOUTME: Durations command summing timestamp ranges per input
// ABOUTME: Reports per-input results and separates rejections from hard failures

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"x2colon-api/core/domain"
	coreerrors "x2colon-api/core/errors"
	"x2colon-api/pkg/client"
)

// DurationsOptions holds command-line options for the durations command
type DurationsOptions struct {
	Output string
}

// Report is the outcome for one input
type Report struct {
	Source string              `json:"source" yaml:"source"`
	Result *domain.ParseOutput `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDurationsCommand creates the durations command
func NewDurationsCommand(global *GlobalOptions) *cobra.Command {
	opts := &DurationsOptions{}

	cmd := &cobra.Command{
		Use:   "durations [file...]",
		Short: "Sum the timestamp ranges in each input",
		Long: `Sum the timestamp ranges in each file, or stdin when no file (or "-") is given.

Files are processed concurrently; reports are printed in argument order.
An input with a malformed or out-of-range timestamp is reported and the
command exits with status 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDurations(cmd, args, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|yaml)")

	return cmd
}

func runDurations(cmd *cobra.Command, args []string, global *GlobalOptions, opts *DurationsOptions) error {
	write, err := reportWriter(opts.Output)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	be, err := newBackend(cmd, global)
	if err != nil {
		return err
	}

	inputs, err := readInputs(ctx, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	reports := make([]Report, len(inputs))
	err = forEach(ctx, inputs, func(ctx context.Context, i int, in input) error {
		out, err := be.CalculateDurations(ctx, in.Content)
		switch {
		case err == nil:
			reports[i] = Report{Source: in.Name, Result: out}
		case isRejection(err):
			reports[i] = Report{Source: in.Name, Error: err.Error()}
		default:
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := write(cmd.OutOrStdout(), reports); err != nil {
		return err
	}

	for _, r := range reports {
		if r.Error != "" {
			return errRejected
		}
	}
	return nil
}

// isRejection reports whether err blames the input rather than the environment
func isRejection(err error) bool {
	return coreerrors.IsDurationError(err) || client.IsValidationError(err)
}
