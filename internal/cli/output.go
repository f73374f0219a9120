// ABOUTME: Output writers for the durations command
// ABOUTME: Renders reports as text, JSON or YAML

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"x2colon-api/pkg/utils/duration"
)

type writeFunc func(w io.Writer, reports []Report) error

func reportWriter(format string) (writeFunc, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "yaml", "yml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("invalid output format %q (want text, json or yaml)", format)
	}
}

func writeJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

// writeText prints one block per input; the header is omitted for a single input
func writeText(w io.Writer, reports []Report) error {
	var b strings.Builder

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "== %s ==\n", r.Source)
		}

		if r.Error != "" {
			fmt.Fprintf(&b, "error: %s\n", r.Error)
			continue
		}

		for _, line := range r.Result.Lines {
			fmt.Fprintf(&b, "%d. %s  %s\n", line.ID, line.Input, line.Result.Format)
		}
		fmt.Fprintf(&b, "Total: %s (%s)\n",
			r.Result.Total.Format, duration.SecondsToHumanReadable(r.Result.Total.Seconds))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
