// ABOUTME: Clean command removing timestamp ranges from scripts
// ABOUTME: Prints cleaned text or rewrites files in place

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CleanOptions holds command-line options for the clean command
type CleanOptions struct {
	InPlace bool
}

// NewCleanCommand creates the clean command
func NewCleanCommand(global *GlobalOptions) *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean [file...]",
		Short: "Remove timestamp ranges from scripts",
		Long: `Remove timestamp ranges and their '+' connectors from each file, or stdin
when no file (or "-") is given, and print the result.

With --in-place each file is rewritten instead. Text containing a malformed
range is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, global, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.InPlace, "in-place", "i", false, "Rewrite files instead of printing")

	return cmd
}

func runClean(cmd *cobra.Command, args []string, global *GlobalOptions, opts *CleanOptions) error {
	if opts.InPlace {
		if len(args) == 0 {
			return errors.New("--in-place needs at least one file")
		}
		for _, a := range args {
			if a == stdinName {
				return errors.New("--in-place cannot rewrite stdin")
			}
		}
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

	cleaned := make([]string, len(inputs))
	err = forEach(ctx, inputs, func(ctx context.Context, i int, in input) error {
		out, err := be.CleanScript(ctx, in.Content)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		cleaned[i] = out

		if opts.InPlace {
			return writeFilePreservingMode(in.Name, out)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if opts.InPlace {
		return nil
	}

	for _, c := range cleaned {
		if _, err := io.WriteString(cmd.OutOrStdout(), c); err != nil {
			return err
		}
	}
	return nil
}

func writeFilePreservingMode(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}
