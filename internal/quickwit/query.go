package quickwit

import (
	"fmt"
	"sort"
	"strings"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

const (
	matchAll = "*"

	serviceField       = "service"
	serviceAggName     = "services"
	serviceBucketLimit = 200
)

// SearchQuery is the body of POST /api/v1/{index}/search.
type SearchQuery struct {
	Query          string                      `json:"query"`
	StartTimestamp int64                       `json:"start_timestamp"`
	EndTimestamp   int64                       `json:"end_timestamp"`
	MaxHits        int                         `json:"max_hits"`
	StartOffset    int                         `json:"start_offset,omitempty"`
	SortBy         string                      `json:"sort_by,omitempty"`
	Aggs           map[string]TermsAggregation `json:"aggs,omitempty"`
}

type TermsAggregation struct {
	Terms TermsSpec `json:"terms"`
}

type TermsSpec struct {
	Field string `json:"field"`
	Size  int    `json:"size"`
}

// BuildSearchQuery translates a validated request and its resolved window.
func BuildSearchQuery(req dto.SearchRequest, tr model.TimeRange) SearchQuery {
	return SearchQuery{
		Query:          BuildQueryString(req.Query, req.Filters),
		StartTimestamp: tr.Start.Unix(),
		EndTimestamp:   tr.End.Unix(),
		MaxHits:        req.PageSize,
		StartOffset:    (req.Page - 1) * req.PageSize,
		SortBy:         SortField(req.SortBy, req.SortDesc),
	}
}

// BuildServiceAggregationQuery asks for term buckets on the service field
// without any hits.
func BuildServiceAggregationQuery(tr model.TimeRange) SearchQuery {
	return SearchQuery{
		Query:          matchAll,
		StartTimestamp: tr.Start.Unix(),
		EndTimestamp:   tr.End.Unix(),
		MaxHits:        0,
		Aggs: map[string]TermsAggregation{
			serviceAggName: {Terms: TermsSpec{Field: serviceField, Size: serviceBucketLimit}},
		},
	}
}

// BuildQueryString ANDs the free-text query with one field:value clause per
// filter. Filters are emitted in field-name order.
func BuildQueryString(query string, filters map[string]string) string {
	parts := make([]string, 0, len(filters)+1)
	if query != "" {
		parts = append(parts, query)
	}

	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s:%s", field, filters[field]))
	}

	if len(parts) == 0 {
		return matchAll
	}
	return strings.Join(parts, " AND ")
}

// SortField encodes direction in Quickwit's convention, which is the reverse
// of the client's: a bare field sorts newest first, a leading '-' sorts
// oldest first.
func SortField(field string, desc bool) string {
	if desc {
		return field
	}
	return "-" + field
}
