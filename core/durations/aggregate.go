// ABOUTME: Duration aggregator grouping "+"-joined ranges into output lines
// ABOUTME: Sums line and total durations with explicit overflow rejection

package durations

import (
	"math/bits"
	"strings"

	"x2colon-api/core/domain"
	"x2colon-api/core/errors"
	"x2colon-api/pkg/utils/duration"
)

// connector joins consecutive ranges into a single line
const connector = "+"

// CalculateDurations scans text and aggregates every range into lines.
//
// The first malformed construct or invalid range aborts the whole call. Text
// without any range yields *errors.NoRangesFoundError.
func CalculateDurations(text string) (*domain.ParseOutput, error) {
	scan, err := Scan(text)
	if err != nil {
		return nil, err
	}

	if err := scan.FirstDefect(); err != nil {
		return nil, err
	}

	if scan.Empty() {
		return nil, &errors.NoRangesFoundError{}
	}

	return Aggregate(text, scan.Ranges)
}

// Aggregate groups already scanned ranges into lines and totals them.
// An empty range list produces an empty output with a zero total.
func Aggregate(text string, ranges []Range) (*domain.ParseOutput, error) {
	out := &domain.ParseOutput{
		Lines: make([]domain.LineResult, 0, len(ranges)),
	}

	var total uint64
	for i, group := range groupRanges(text, ranges) {
		texts := make([]string, len(group))
		var seconds uint64

		for k, r := range group {
			if r.Err != nil {
				return nil, r.Err
			}
			texts[k] = r.Text

			var carry uint64
			seconds, carry = bits.Add64(seconds, r.Duration, 0)
			if carry != 0 {
				return nil, &errors.DurationOverflowError{Range: r.Text}
			}
		}

		var carry uint64
		total, carry = bits.Add64(total, seconds, 0)
		if carry != 0 {
			return nil, &errors.DurationOverflowError{Range: group[len(group)-1].Text}
		}

		out.Lines = append(out.Lines, domain.LineResult{
			ID:     i + 1,
			Input:  strings.Join(texts, " "+connector+" "),
			Result: newResult(seconds),
		})
	}

	out.Total = newResult(total)
	return out, nil
}

// groupRanges splits ranges into runs whose gaps are exactly a "+" once
// whitespace is trimmed
func groupRanges(text string, ranges []Range) [][]Range {
	var groups [][]Range

	for i := 0; i < len(ranges); {
		j := i
		for j+1 < len(ranges) && joined(text, ranges[j], ranges[j+1]) {
			j++
		}
		groups = append(groups, ranges[i:j+1])
		i = j + 1
	}

	return groups
}

func joined(text string, prev, next Range) bool {
	return strings.TrimSpace(text[prev.EndPos:next.StartPos]) == connector
}

func newResult(seconds uint64) domain.DurationResult {
	return domain.DurationResult{
		Seconds: seconds,
		Format:  duration.FormatSeconds(seconds),
	}
}
