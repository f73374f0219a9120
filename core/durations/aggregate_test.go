package durations

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x2colon-api/core/domain"
	"x2colon-api/core/errors"
)

func TestCalculateDurations_SingleRange(t *testing.T) {
	out, err := CalculateDurations("Opening (0:00-1:23)")
	require.NoError(t, err)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, domain.LineResult{
		ID:     1,
		Input:  "(0:00-1:23)",
		Result: domain.DurationResult{Seconds: 83, Format: "1:23"},
	}, out.Lines[0])
	assert.Equal(t, domain.DurationResult{Seconds: 83, Format: "1:23"}, out.Total)
}

func TestCalculateDurations_Grouping(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		inputs  []string
		seconds []uint64
	}{
		{
			name:    "spaced connector",
			input:   "(0:00-0:10) + (0:20-0:25)",
			inputs:  []string{"(0:00-0:10) + (0:20-0:25)"},
			seconds: []uint64{15},
		},
		{
			name:    "tight connector",
			input:   "(0:00-0:10)+(0:20-0:25)",
			inputs:  []string{"(0:00-0:10) + (0:20-0:25)"},
			seconds: []uint64{15},
		},
		{
			name:    "connector across newlines",
			input:   "(0:00-0:10)\n  +\n(0:20-0:25)",
			inputs:  []string{"(0:00-0:10) + (0:20-0:25)"},
			seconds: []uint64{15},
		},
		{
			name:    "chain of three then a separate line",
			input:   "A (0:00-0:10) + (0:10-0:20) + (0:20-0:30)\nB (1:00-2:00)",
			inputs:  []string{"(0:00-0:10) + (0:10-0:20) + (0:20-0:30)", "(1:00-2:00)"},
			seconds: []uint64{30, 60},
		},
		{
			name:    "words between ranges",
			input:   "(0:00-0:10) and (0:20-0:25)",
			inputs:  []string{"(0:00-0:10)", "(0:20-0:25)"},
			seconds: []uint64{10, 5},
		},
		{
			name:    "double plus is not a connector",
			input:   "(0:00-0:10) ++ (0:20-0:25)",
			inputs:  []string{"(0:00-0:10)", "(0:20-0:25)"},
			seconds: []uint64{10, 5},
		},
		{
			name:    "adjacent ranges",
			input:   "(0:00-0:10)(0:20-0:25)",
			inputs:  []string{"(0:00-0:10)", "(0:20-0:25)"},
			seconds: []uint64{10, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CalculateDurations(tt.input)
			require.NoError(t, err)
			require.Len(t, out.Lines, len(tt.inputs))

			var sum uint64
			for i, line := range out.Lines {
				assert.Equal(t, i+1, line.ID)
				assert.Equal(t, tt.inputs[i], line.Input)
				assert.Equal(t, tt.seconds[i], line.Result.Seconds)
				sum += line.Result.Seconds
			}
			assert.Equal(t, sum, out.Total.Seconds)
		})
	}
}

func TestCalculateDurations_HoursSupport(t *testing.T) {
	out, err := CalculateDurations("(1:00:00-2:30:00)")
	require.NoError(t, err)
	assert.Equal(t, uint64(5400), out.Lines[0].Result.Seconds)
	assert.Equal(t, "90:00", out.Lines[0].Result.Format)
	assert.Equal(t, "90:00", out.Total.Format)
}

func TestCalculateDurations_DashTolerance(t *testing.T) {
	for _, input := range []string{"(1:00-2:00)", "(1:00–2:00)", "(1:00—2:00)"} {
		out, err := CalculateDurations(input)
		require.NoError(t, err)
		assert.Equal(t, uint64(60), out.Total.Seconds, "input %q", input)
	}
}

func TestCalculateDurations_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(error) bool
		message string
	}{
		{"no ranges", "nothing to see", errors.IsNoRangesFound, "No valid timestamps found"},
		{"malformed", "(1:00-2:zz)", errors.IsMalformedRange, "Malformed timestamp: (1:00-2:zz)"},
		{"start seconds", "(0:60-1:00)", errors.IsInvalidRange, "Invalid timestamp range: (0:60-1:00) (seconds 60 exceeds 59)"},
		{"end seconds", "(0:00-0:60)", errors.IsInvalidRange, "Invalid timestamp range: (0:00-0:60) (seconds 60 exceeds 59)"},
		{"minutes", "(0:00-75:00)", errors.IsInvalidRange, "Invalid timestamp range: (0:00-75:00) (minutes 75 exceeds 59, use H:MM:SS format)"},
		{"order", "(1:00-0:30)", errors.IsInvalidRange, "Invalid timestamp range: (1:00-0:30) (end time is before start time)"},
		{"defect after valid range", "(0:00-0:10) + (0:20-0:10)", errors.IsInvalidRange, "Invalid timestamp range: (0:20-0:10) (end time is before start time)"},
		{"first defect wins", "(0:00-0:61) (2:00-1:00)", errors.IsInvalidRange, "Invalid timestamp range: (0:00-0:61) (seconds 61 exceeds 59)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CalculateDurations(tt.input)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCalculateDurations_NotMalformedWithoutDash(t *testing.T) {
	_, err := CalculateDurations("(1:00x2:00)")
	require.Error(t, err)
	assert.True(t, errors.IsNoRangesFound(err))
	assert.False(t, errors.IsMalformedRange(err))
}

func TestCalculateDurations_TotalIsSumOfLines(t *testing.T) {
	inputs := []string{
		"(0:00-0:30)",
		"(0:00-0:30) (0:30-1:45) (1:00:00-1:00:01)",
		"x (0:05-0:10) + (0:15-0:20)\ny (10:00-59:59) + (1:00:00-3:00:00)",
	}

	for _, input := range inputs {
		out, err := CalculateDurations(input)
		require.NoError(t, err)

		var sum uint64
		for _, line := range out.Lines {
			sum += line.Result.Seconds
		}
		assert.Equal(t, sum, out.Total.Seconds, "input %q", input)
	}
}

func TestAggregate_EmptyRanges(t *testing.T) {
	out, err := Aggregate("no ranges", nil)
	require.NoError(t, err)
	assert.True(t, out.Empty())
	assert.NotNil(t, out.Lines)
	assert.Equal(t, domain.DurationResult{Seconds: 0, Format: "0:00"}, out.Total)
}

func TestAggregate_RejectsOverflow(t *testing.T) {
	huge := Range{StartPos: 0, EndPos: 2, Text: "r1", Duration: math.MaxUint64}
	one := Range{StartPos: 3, EndPos: 5, Text: "r2", Duration: 1}

	t.Run("across lines", func(t *testing.T) {
		_, err := Aggregate("r1 r2", []Range{huge, one})
		require.Error(t, err)
		assert.True(t, errors.IsOverflow(err))
	})

	t.Run("within a line", func(t *testing.T) {
		_, err := Aggregate("r1+r2", []Range{huge, one})
		require.Error(t, err)
		assert.True(t, errors.IsOverflow(err))
		assert.Contains(t, err.Error(), "r2")
	})
}

func TestCalculateDurations_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := CalculateDurations("(0:00-0:10) + (0:20-0:25) (1:00-2:00)")
			assert.NoError(t, err)
			if assert.NotNil(t, out) {
				assert.Equal(t, uint64(75), out.Total.Seconds)
			}
		}()
	}
	wg.Wait()
}
