// ABOUTME: Range scanner locating (start-end) timestamp ranges in free text
// ABOUTME: Separates genuine ranges, ordinary parentheses and malformed range-like spans

package durations

import (
	"regexp"
	"strings"
	"sync"

	"x2colon-api/core/domain"
	"x2colon-api/core/errors"
)

// loosePattern matches anything shaped like "(..:..-..:..)" up to the first
// closing paren. It is only consulted after a strict match has failed.
var loosePattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\([^)]*:[^)]*[-–—][^)]*:[^)]*\)`)
})

// Range is one parenthesized timestamp range found in the source text.
// StartPos and EndPos are byte offsets; Text is an owned copy of
// text[StartPos:EndPos].
type Range struct {
	StartPos int
	EndPos   int
	Text     string
	Start    domain.Timestamp
	End      domain.Timestamp

	// Duration is only meaningful when Err is nil
	Duration uint64

	// Err holds the validation defect, if any
	Err error
}

// Valid reports whether the range passed validation
func (r Range) Valid() bool {
	return r.Err == nil
}

// ScanResult is the ordered list of ranges found by Scan
type ScanResult struct {
	Ranges []Range
}

// FirstDefect returns the validation error of the first defective range, or nil
func (s *ScanResult) FirstDefect() error {
	for _, r := range s.Ranges {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// Empty reports whether no ranges were found
func (s *ScanResult) Empty() bool {
	return len(s.Ranges) == 0
}

// Scan walks text left to right and collects every timestamp range.
//
// A "(" that does not start a strict range is treated as ordinary text unless
// the loose range shape begins exactly at it, in which case the scan fails with
// a *errors.MalformedRangeError. Range-like text that starts inside other
// parentheses is skipped silently.
//
// Validation defects do not fail the scan; they are recorded on each Range.
func Scan(text string) (*ScanResult, error) {
	result := &ScanResult{}
	cursor := 0

	for {
		idx := strings.IndexByte(text[cursor:], '(')
		if idx < 0 {
			break
		}
		start := cursor + idx

		if r, ok := matchRange(text, start); ok {
			result.Ranges = append(result.Ranges, r)
			cursor = r.EndPos
			continue
		}

		if m := loosePattern().FindString(text[start:]); m != "" {
			return nil, &errors.MalformedRangeError{Text: m}
		}

		cursor = start + 1
	}

	return result, nil
}

// matchRange attempts "(" TIMESTAMP DASH TIMESTAMP ")" at text[start]
func matchRange(text string, start int) (Range, bool) {
	pos := start + 1

	from, n, ok := ParseTimestamp(text[pos:])
	if !ok {
		return Range{}, false
	}
	pos += n

	n, ok = parseDash(text[pos:])
	if !ok {
		return Range{}, false
	}
	pos += n

	to, n, ok := ParseTimestamp(text[pos:])
	if !ok {
		return Range{}, false
	}
	pos += n

	if pos >= len(text) || text[pos] != ')' {
		return Range{}, false
	}
	pos++

	r := Range{
		StartPos: start,
		EndPos:   pos,
		Text:     strings.Clone(text[start:pos]),
		Start:    from,
		End:      to,
	}
	r.Duration, r.Err = Validate(r.Text, from, to)

	return r, true
}
