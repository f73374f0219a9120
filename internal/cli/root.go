// ABOUTME: Root command and exit codes for the x2colon CLI
// ABOUTME: Defines the persistent flags shared by every subcommand

// Package cli provides the x2colon command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"x2colon-api/core/interfaces"
	"x2colon-api/infrastructure/logger/structured"
	"x2colon-api/pkg/client"
)

// Exit codes
const (
	ExitOK       = 0
	ExitRejected = 1 // at least one input had invalid ranges
	ExitError    = 2 // usage, I/O or remote failure
)

// errRejected marks a run where some input was rejected but output was still produced
var errRejected = errors.New("one or more inputs were rejected")

// GlobalOptions holds flags shared by every command
type GlobalOptions struct {
	Remote   string
	Timeout  time.Duration
	LogLevel string
}

// Execute runs the root command and returns the exit code
func Execute() int {
	return run(NewRootCommand(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errRejected):
		return ExitRejected
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}

// NewRootCommand creates the root cobra command
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "x2colon",
		Short: "Sum and strip timestamp ranges in text",
		Long: `x2colon finds timestamp ranges such as (0:00-1:23) or (1:00:00–1:05:30)
in text, sums their durations and removes them from scripts.

Ranges joined by '+' count as one line. Input comes from files or stdin.

Exit codes:
  0 - Success
  1 - At least one input had invalid ranges
  2 - Usage, I/O or remote error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.Remote, "remote", "", "Base URL of an x2colon API to use instead of local processing")
	rootCmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", client.DefaultTimeout, "Request timeout when using --remote")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level for diagnostics on stderr (debug|info|warn|error)")

	rootCmd.AddCommand(NewDurationsCommand(opts))
	rootCmd.AddCommand(NewCleanCommand(opts))

	return rootCmd
}

// newLogger writes text diagnostics to the command's stderr
func newLogger(cmd *cobra.Command, opts *GlobalOptions) (interfaces.Logger, error) {
	return structured.NewLogger(structured.Options{
		Level:  opts.LogLevel,
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})
}
