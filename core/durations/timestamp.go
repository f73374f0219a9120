// ABOUTME: Timestamp literal parser for H:MM:SS and M:SS forms
// ABOUTME: Reads fixed grammars from the start of a string without regular expressions

package durations

import (
	"strconv"
	"strings"

	"x2colon-api/core/domain"
)

// Accepted range separators: hyphen, en dash, em dash.
var dashes = []string{"-", "–", "—"}

// ParseTimestamp parses a timestamp at the start of s and returns it together
// with the number of bytes consumed. H:MM:SS is tried before M:SS so that
// "1:23:45" is never read as "1:23" followed by a stray ":45".
func ParseTimestamp(s string) (domain.Timestamp, int, bool) {
	if f, n, ok := parseFields(s, 3); ok {
		return domain.Timestamp{Hours: f[0], Minutes: f[1], Seconds: f[2]}, n, true
	}
	if f, n, ok := parseFields(s, 2); ok {
		return domain.Timestamp{Minutes: f[0], Seconds: f[1]}, n, true
	}
	return domain.Timestamp{}, 0, false
}

// parseFields reads count colon-separated numbers from the start of s
func parseFields(s string, count int) ([3]uint64, int, bool) {
	var fields [3]uint64
	pos := 0

	for i := 0; i < count; i++ {
		if i > 0 {
			if pos >= len(s) || s[pos] != ':' {
				return fields, 0, false
			}
			pos++
		}

		v, n, ok := parseNumber(s[pos:])
		if !ok {
			return fields, 0, false
		}
		fields[i] = v
		pos += n
	}

	return fields, pos, true
}

// parseNumber reads a run of ASCII digits. Values that do not fit in 32 bits
// are rejected.
func parseNumber(s string) (uint64, int, bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0, false
	}

	v, err := strconv.ParseUint(s[:n], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

// parseDash returns the byte length of the dash glyph at the start of s
func parseDash(s string) (int, bool) {
	for _, d := range dashes {
		if strings.HasPrefix(s, d) {
			return len(d), true
		}
	}
	return 0, false
}
