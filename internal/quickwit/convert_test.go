package quickwit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"

	"logsearch-gateway/internal/apperror"
)

func goodHit(i int) string {
	return fmt.Sprintf(`{"timestamp":"2024-01-01T00:00:%02dZ","message":"m%d","level":"INFO","service":"api","env":"prod"}`, i, i)
}

func searchBody(numHits int, rows []string) string {
	return fmt.Sprintf(`{"num_hits":%d,"hits":[%s],"elapsed_time_micros":10}`, numHits, strings.Join(rows, ","))
}

func mustParse(t *testing.T, s string) *fastjson.Value {
	t.Helper()
	v, err := fastjson.Parse(s)
	require.NoError(t, err)
	return v
}

// captureLogs redirects the global logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestConvertSearchResponse_AllRowsValid(t *testing.T) {
	logs := captureLogs(t)

	rows := make([]string, 10)
	for i := range rows {
		rows[i] = goodHit(i)
	}

	resp, err := ConvertSearchResponse(mustParse(t, searchBody(1234, rows)), 2, 10, 15*time.Millisecond)
	require.NoError(t, err)

	assert.Len(t, resp.Hits, 10)
	assert.EqualValues(t, 1234, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.EqualValues(t, 15, resp.TookMs)
	assert.Equal(t, "m0", resp.Hits[0].Message)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), resp.Hits[0].Timestamp)
	assert.NotContains(t, logs.String(), "failed to parse")
}

func TestConvertSearchResponse_SkipsBadRowsAndWarns(t *testing.T) {
	logs := captureLogs(t)

	rows := make([]string, 0, 10)
	for i := 0; i < 7; i++ {
		rows = append(rows, goodHit(i))
	}
	rows = append(rows,
		`{"timestamp":"2024-01-01T00:00:00Z","message":"no level","service":"api","env":"prod"}`,
		`{"timestamp":"yesterday","message":"m","level":"INFO","service":"api","env":"prod"}`,
		`"not an object"`,
	)

	resp, err := ConvertSearchResponse(mustParse(t, searchBody(10, rows)), 1, 10, 0)
	require.NoError(t, err)

	assert.Len(t, resp.Hits, 7)
	assert.EqualValues(t, 10, resp.Total)
	assert.Contains(t, logs.String(), "3 of 10 hits failed to parse")
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestConvertSearchResponse_OneBadRowInTenDoesNotWarn(t *testing.T) {
	logs := captureLogs(t)

	rows := make([]string, 0, 10)
	for i := 0; i < 9; i++ {
		rows = append(rows, goodHit(i))
	}
	rows = append(rows, `{"message":"no timestamp"}`)

	resp, err := ConvertSearchResponse(mustParse(t, searchBody(10, rows)), 1, 10, 0)
	require.NoError(t, err)

	assert.Len(t, resp.Hits, 9)
	assert.NotContains(t, logs.String(), "hits failed to parse")
}

func TestConvertSearchResponse_MissingHits(t *testing.T) {
	for _, body := range []string{`{"num_hits":3}`, `{"num_hits":3,"hits":{}}`} {
		_, err := ConvertSearchResponse(mustParse(t, body), 1, 50, 0)
		require.Error(t, err)
		assert.Equal(t, apperror.KindParse, apperror.KindOf(err))
		assert.Equal(t, "Missing hits field", apperror.MessageOf(err))
	}
}

func TestConvertSearchResponse_NumHitsPermissive(t *testing.T) {
	resp, err := ConvertSearchResponse(mustParse(t, `{"hits":[]}`), 1, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Total)
	assert.Empty(t, resp.Hits)

	resp, err = ConvertSearchResponse(mustParse(t, `{"num_hits":"many","hits":[]}`), 1, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Total)
}

func TestDecodeLogHit_OptionalFields(t *testing.T) {
	v := mustParse(t, `{
		"timestamp":"2024-01-01T10:00:00.123+02:00",
		"message":"boom","level":"ERROR","service":"api","env":"prod",
		"host":"node-1","trace_id":"t1","span_id":null,
		"labels":{"region":"eu"}
	}`)

	hit, err := decodeLogHit(v)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 123000000, time.UTC), hit.Timestamp)
	assert.Equal(t, "node-1", hit.Host)
	assert.Equal(t, "t1", hit.TraceID)
	assert.Empty(t, hit.SpanID)
	assert.Empty(t, hit.StackTrace)
	assert.JSONEq(t, `{"region":"eu"}`, string(hit.Labels))
}

func TestDecodeLogHit_WrongOptionalType(t *testing.T) {
	v := mustParse(t, `{"timestamp":"2024-01-01T00:00:00Z","message":"m","level":"INFO","service":"api","env":"prod","trace_id":42}`)

	_, err := decodeLogHit(v)
	assert.ErrorContains(t, err, "trace_id")
}

func TestExtractServiceBuckets(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   []string
		wantOK bool
	}{
		{
			name:   "Aggs Path",
			body:   `{"hits":[],"aggs":{"services":{"buckets":[{"key":"b","doc_count":3},{"key":"a","doc_count":1}]}}}`,
			want:   []string{"b", "a"},
			wantOK: true,
		},
		{
			name:   "Aggregations Path",
			body:   `{"hits":[],"aggregations":{"services":{"buckets":[{"key":"api"},{"key":7}]}}}`,
			want:   []string{"api"},
			wantOK: true,
		},
		{
			name:   "Empty Buckets",
			body:   `{"aggs":{"services":{"buckets":[]}}}`,
			want:   []string{},
			wantOK: true,
		},
		{name: "Absent", body: `{"hits":[]}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, ok := ExtractServiceBuckets(mustParse(t, tt.body))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, keys)
			}
		})
	}
}
