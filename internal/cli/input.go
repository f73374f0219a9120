// ABOUTME: Input reading for CLI commands
// ABOUTME: Reads files and stdin concurrently while keeping argument order

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// stdinName stands for standard input in argument lists
const stdinName = "-"

// input is one named text source
type input struct {
	Name    string
	Content string
}

// readInputs loads every path concurrently, keeping argument order.
// No paths means stdin.
func readInputs(ctx context.Context, paths []string, stdin io.Reader) ([]input, error) {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	stdinCount := 0
	for _, p := range paths {
		if p == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, fmt.Errorf("stdin (%s) can only be given once", stdinName)
	}

	inputs := make([]input, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var data []byte
			var err error
			if path == stdinName {
				data, err = io.ReadAll(stdin)
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			inputs[i] = input{Name: path, Content: string(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// forEach runs fn over every input concurrently; results land at the input's index
func forEach(ctx context.Context, inputs []input, fn func(ctx context.Context, i int, in input) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i, in)
		})
	}

	return g.Wait()
}
