// ABOUTME: Domain models for timestamp ranges and aggregated durations
// ABOUTME: Pure data structures shared by the scanner, aggregator and API layer

package domain

// Timestamp is a parsed H:MM:SS or M:SS literal.
// Fields are stored unbounded; range checks happen during validation.
type Timestamp struct {
	Hours   uint64
	Minutes uint64
	Seconds uint64
}

// TotalSeconds returns the timestamp as seconds since zero
func (t Timestamp) TotalSeconds() uint64 {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// DurationResult is a number of seconds together with its M:SS rendering
type DurationResult struct {
	Seconds uint64 `json:"seconds" yaml:"seconds" doc:"Elapsed time in seconds"`
	Format  string `json:"format" yaml:"format" doc:"Elapsed time as minutes:seconds" example:"1:23"`
}

// LineResult is one aggregated output line, possibly made of several ranges
type LineResult struct {
	ID     int            `json:"id" yaml:"id" doc:"Sequential line number starting at 1"`
	Input  string         `json:"input" yaml:"input" doc:"Literal ranges of this line joined with ' + '"`
	Result DurationResult `json:"result" yaml:"result"`
}

// ParseOutput is the result of a duration calculation
type ParseOutput struct {
	Lines []LineResult   `json:"lines" yaml:"lines"`
	Total DurationResult `json:"total" yaml:"total"`
}

// Empty reports whether no lines were produced
func (p *ParseOutput) Empty() bool {
	return p == nil || len(p.Lines) == 0
}
