// ABOUTME: Response DTOs for the duration and clean endpoints
// ABOUTME: Mirrors the wire format of duration results returned to API clients

package responses

// DurationResponse is a number of seconds and its minutes:seconds rendering
type DurationResponse struct {
	Seconds uint64 `json:"seconds" doc:"Elapsed time in seconds"`
	Format  string `json:"format" doc:"Elapsed time as minutes:seconds" example:"1:23"`
}

// LineResponse is one aggregated line of ranges
type LineResponse struct {
	ID     int              `json:"id" doc:"Sequential line number starting at 1"`
	Input  string           `json:"input" doc:"Literal ranges of this line joined with ' + '" example:"(0:00-0:30) + (0:45-1:15)"`
	Result DurationResponse `json:"result"`
}

// TimestampResponse is the result of POST /timestamp
type TimestampResponse struct {
	Lines []LineResponse   `json:"lines" doc:"One entry per range or '+'-joined group of ranges"`
	Total DurationResponse `json:"total" doc:"Sum of all lines"`
}

// CleanResponse is the result of POST /clean
type CleanResponse struct {
	Cleaned string `json:"cleaned" doc:"Script with timestamp ranges removed" example:"Start end"`
}

// MessageResponse is the welcome body of GET /
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to x2-colon!"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"1.0.0"`
}
