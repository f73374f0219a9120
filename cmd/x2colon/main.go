// ABOUTME: Entry point for the x2colon command-line tool
// ABOUTME: Sums and strips timestamp ranges in files or stdin

package main

import (
	"os"

	"x2colon-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
