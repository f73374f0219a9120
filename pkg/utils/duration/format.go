// ABOUTME: Duration formatting utilities for elapsed-time totals
// ABOUTME: Renders seconds as unbounded minutes with zero-padded seconds

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds converts seconds to M:SS format.
// Minutes are never folded into hours, so 5400 renders as "90:00".
func FormatSeconds(seconds uint64) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseFormatted converts a string produced by FormatSeconds back to seconds
func ParseFormatted(formatted string) (uint64, error) {
	mins, secs, ok := strings.Cut(formatted, ":")
	if !ok || len(secs) != 2 {
		return 0, fmt.Errorf("invalid duration format %q", formatted)
	}

	m, err := strconv.ParseUint(mins, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", formatted, err)
	}
	s, err := strconv.ParseUint(secs, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", formatted, err)
	}
	if s > 59 {
		return 0, fmt.Errorf("seconds out of range in %q", formatted)
	}

	return m*60 + s, nil
}

// SecondsToHumanReadable converts seconds to a human-readable format
func SecondsToHumanReadable(seconds uint64) string {
	if seconds < 60 {
		if seconds == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", seconds)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour", hours))
		if hours > 1 {
			parts[len(parts)-1] += "s"
		}
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute", minutes))
		if minutes > 1 {
			parts[len(parts)-1] += "s"
		}
	}

	return strings.Join(parts, " ")
}
