package quickwit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

var testRange = model.TimeRange{
	Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
}

func TestSortField(t *testing.T) {
	assert.Equal(t, "timestamp", SortField("timestamp", true))
	assert.Equal(t, "-timestamp", SortField("timestamp", false))
	assert.Equal(t, "-level", SortField("level", false))
}

func TestBuildQueryString(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		filters map[string]string
		want    string
	}{
		{name: "Empty Matches All", want: "*"},
		{name: "Query Only", query: "timeout", want: "timeout"},
		{name: "Filter Only", filters: map[string]string{"level": "ERROR"}, want: "level:ERROR"},
		{
			name:    "Query And Filters",
			query:   "timeout",
			filters: map[string]string{"service": "api", "level": "ERROR"},
			want:    "timeout AND level:ERROR AND service:api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQueryString(tt.query, tt.filters))
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	req := dto.NewSearchRequest()
	req.Query = "level:ERROR"
	req.Page = 3
	req.PageSize = 20
	req.SortDesc = false

	q := BuildSearchQuery(req, testRange)

	assert.Equal(t, "level:ERROR", q.Query)
	assert.Equal(t, testRange.Start.Unix(), q.StartTimestamp)
	assert.Equal(t, testRange.End.Unix(), q.EndTimestamp)
	assert.Equal(t, 20, q.MaxHits)
	assert.Equal(t, 40, q.StartOffset)
	assert.Equal(t, "-timestamp", q.SortBy)
	assert.Nil(t, q.Aggs)
}

func TestBuildSearchQuery_FirstPageOmitsOffset(t *testing.T) {
	req := dto.NewSearchRequest()

	body, err := json.Marshal(BuildSearchQuery(req, testRange))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.NotContains(t, decoded, "start_offset")
	assert.Equal(t, "*", decoded["query"])
	assert.Equal(t, "timestamp", decoded["sort_by"])
	assert.EqualValues(t, 50, decoded["max_hits"])
}

func TestBuildServiceAggregationQuery(t *testing.T) {
	body, err := json.Marshal(BuildServiceAggregationQuery(testRange))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"query": "*",
		"start_timestamp": 1704067200,
		"end_timestamp": 1704153600,
		"max_hits": 0,
		"aggs": {"services": {"terms": {"field": "service", "size": 200}}}
	}`, string(body))
}
