// ABOUTME: Range validator checking minute and second bounds
// ABOUTME: Returns the elapsed seconds of a range or the first bound it violates

package durations

import (
	"x2colon-api/core/domain"
	"x2colon-api/core/errors"
)

const maxField = 59

// Validate checks the bounds of a scanned range and returns its duration in
// seconds. Checks run in a fixed order and the first failure wins. Hours are
// never bounded.
func Validate(literal string, start, end domain.Timestamp) (uint64, error) {
	switch {
	case start.Minutes > maxField:
		return 0, &errors.InvalidMinutesError{Range: literal, Value: start.Minutes}
	case end.Minutes > maxField:
		return 0, &errors.InvalidMinutesError{Range: literal, Value: end.Minutes}
	case start.Seconds > maxField:
		return 0, &errors.InvalidSecondsError{Range: literal, Value: start.Seconds}
	case end.Seconds > maxField:
		return 0, &errors.InvalidSecondsError{Range: literal, Value: end.Seconds}
	}

	from, to := start.TotalSeconds(), end.TotalSeconds()
	if to < from {
		return 0, &errors.EndBeforeStartError{Range: literal}
	}

	return to - from, nil
}
