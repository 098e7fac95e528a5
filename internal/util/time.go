package util

import (
	"fmt"
	"time"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

// ResolveTimeRange turns a validated request's time specification into a
// concrete window. Relative windows end at now.
func ResolveTimeRange(req dto.SearchRequest, now time.Time) (model.TimeRange, error) {
	switch req.TimeRangeType {
	case dto.TimeRangeRelative:
		window, ok := dto.RelativeTimeWindows[req.RelativeTimeKey]
		if !ok {
			return model.TimeRange{}, apperror.Internal("unresolvable time range",
				fmt.Errorf("unknown relative_time_key: %q", req.RelativeTimeKey))
		}
		return model.TimeRange{Start: now.Add(-window), End: now}, nil
	case dto.TimeRangeAbsolute:
		if req.StartTime == nil || req.EndTime == nil {
			return model.TimeRange{}, apperror.Internal("unresolvable time range",
				fmt.Errorf("missing start_time or end_time"))
		}
		return model.TimeRange{Start: *req.StartTime, End: *req.EndTime}, nil
	default:
		return model.TimeRange{}, apperror.Internal("unresolvable time range",
			fmt.Errorf("unknown time_range_type: %q", req.TimeRangeType))
	}
}

// TrailingWindow returns the window of length d ending at now.
func TrailingWindow(now time.Time, d time.Duration) model.TimeRange {
	return model.TimeRange{Start: now.Add(-d), End: now}
}

// AbsoluteRequest builds a search over a fixed window, newest first.
func AbsoluteRequest(query string, tr model.TimeRange, page, pageSize int) dto.SearchRequest {
	start, end := tr.Start, tr.End
	req := dto.NewSearchRequest()
	req.Query = query
	req.TimeRangeType = dto.TimeRangeAbsolute
	req.StartTime = &start
	req.EndTime = &end
	req.Page = page
	req.PageSize = pageSize
	return req
}
