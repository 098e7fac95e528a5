package dto

import (
	"time"

	"logsearch-gateway/internal/apperror"
)

const (
	TimeRangeRelative = "relative"
	TimeRangeAbsolute = "absolute"

	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 1000
	DefaultSortBy   = "timestamp"
)

// RelativeTimeWindows lists the accepted relative_time_key values and the
// trailing window each one resolves to.
var RelativeTimeWindows = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// SearchRequest is the client-supplied log search.
type SearchRequest struct {
	// Query uses the backend query syntax. Empty means match all.
	Query string `json:"query" example:"level:ERROR"`
	// Filters are ANDed into the query as field:value clauses.
	Filters         map[string]string `json:"filters"`
	TimeRangeType   string            `json:"time_range_type" enums:"relative,absolute" example:"relative"`
	RelativeTimeKey string            `json:"relative_time_key,omitempty" enums:"1m,5m,15m,1h,4h,1d,7d,30d" example:"1h"`
	StartTime       *time.Time        `json:"start_time,omitempty"`
	EndTime         *time.Time        `json:"end_time,omitempty"`
	Page            int               `json:"page" example:"1" minimum:"1"`
	PageSize        int               `json:"page_size" example:"50" minimum:"1" maximum:"1000"`
	SortBy          string            `json:"sort_by" example:"timestamp"`
	SortDesc        bool              `json:"sort_desc" example:"true"`
}

// NewSearchRequest returns a request populated with the defaults applied to
// fields the client leaves out.
func NewSearchRequest() SearchRequest {
	return SearchRequest{
		Filters:       map[string]string{},
		TimeRangeType: TimeRangeAbsolute,
		Page:          DefaultPage,
		PageSize:      DefaultPageSize,
		SortBy:        DefaultSortBy,
		SortDesc:      true,
	}
}

// Validate returns the first structural violation found, as a validation error.
func (r SearchRequest) Validate() error {
	if r.Page < 1 {
		return apperror.Validation("page must be >= 1")
	}
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		return apperror.Validationf("page_size must be between 1 and %d", MaxPageSize)
	}

	switch r.TimeRangeType {
	case TimeRangeRelative:
		if r.RelativeTimeKey == "" {
			return apperror.Validation("relative_time_key is required when time_range_type is 'relative'")
		}
		if _, ok := RelativeTimeWindows[r.RelativeTimeKey]; !ok {
			return apperror.Validationf("invalid relative_time_key: %s", r.RelativeTimeKey)
		}
	case TimeRangeAbsolute:
		if r.StartTime == nil || r.EndTime == nil {
			return apperror.Validation("start_time and end_time are required when time_range_type is 'absolute'")
		}
		if !r.StartTime.Before(*r.EndTime) {
			return apperror.Validation("start_time must be before end_time")
		}
	default:
		return apperror.Validationf("invalid time_range_type: %s", r.TimeRangeType)
	}

	return nil
}
