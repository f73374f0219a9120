// ABOUTME: Mappers from duration domain models to response DTOs
// ABOUTME: Keeps the API wire format independent of core types

package mappers

import (
	"x2colon-api/api/dto/responses"
	"x2colon-api/core/domain"
)

// ToTimestampResponse converts a domain ParseOutput to its response DTO
func ToTimestampResponse(out *domain.ParseOutput) responses.TimestampResponse {
	if out == nil {
		return responses.TimestampResponse{Lines: []responses.LineResponse{}}
	}

	lines := make([]responses.LineResponse, len(out.Lines))
	for i, line := range out.Lines {
		lines[i] = responses.LineResponse{
			ID:     line.ID,
			Input:  line.Input,
			Result: toDurationResponse(line.Result),
		}
	}

	return responses.TimestampResponse{
		Lines: lines,
		Total: toDurationResponse(out.Total),
	}
}

func toDurationResponse(d domain.DurationResult) responses.DurationResponse {
	return responses.DurationResponse{
		Seconds: d.Seconds,
		Format:  d.Format,
	}
}
