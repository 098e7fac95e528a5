package quickwit

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fastjson"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

// maxRowFailureRatio is the share of unparseable rows above which a page is
// reported in the logs. The page is still returned.
const maxRowFailureRatio = 0.1

// bucketPaths are the two response shapes Quickwit versions use for
// aggregation results, tried in order.
var bucketPaths = [][]string{
	{"aggs", serviceAggName, "buckets"},
	{"aggregations", serviceAggName, "buckets"},
}

// ConvertSearchResponse maps a raw search response to the client schema.
// A missing hits array fails the whole page; a malformed row is skipped.
func ConvertSearchResponse(v *fastjson.Value, page, pageSize int, took time.Duration) (*dto.SearchResponse, error) {
	hitsValue := v.Get("hits")
	if hitsValue == nil || hitsValue.Type() != fastjson.TypeArray {
		return nil, apperror.Parse("Missing hits field")
	}
	rows, _ := hitsValue.Array()

	// num_hits is read permissively: absent or mistyped counts as zero.
	total := v.GetUint64("num_hits")

	hits, failed := convertHits(rows)
	if failed > 0 && float64(failed)/float64(len(rows)) > maxRowFailureRatio {
		log.Warn().
			Int("failed", failed).
			Int("total", len(rows)).
			Msgf("%d of %d hits failed to parse", failed, len(rows))
	}

	return &dto.SearchResponse{
		Total:    total,
		Hits:     hits,
		Page:     page,
		PageSize: pageSize,
		TookMs:   uint64(took.Milliseconds()),
	}, nil
}

func convertHits(rows []*fastjson.Value) ([]model.LogHit, int) {
	hits := make([]model.LogHit, 0, len(rows))
	failed := 0
	for _, row := range rows {
		hit, err := decodeLogHit(row)
		if err != nil {
			failed++
			log.Debug().Err(err).Str("raw", row.String()).Msg("Failed to parse hit")
			continue
		}
		hits = append(hits, hit)
	}
	return hits, failed
}

func decodeLogHit(v *fastjson.Value) (model.LogHit, error) {
	var hit model.LogHit
	if v.Type() != fastjson.TypeObject {
		return hit, fmt.Errorf("hit is %s, not an object", v.Type())
	}

	tsRaw, err := requiredString(v, "timestamp")
	if err != nil {
		return hit, err
	}
	ts, err := time.Parse(time.RFC3339Nano, tsRaw)
	if err != nil {
		return hit, fmt.Errorf("field timestamp: %w", err)
	}
	hit.Timestamp = ts.UTC()

	if hit.Message, err = requiredString(v, "message"); err != nil {
		return hit, err
	}
	if hit.Level, err = requiredString(v, "level"); err != nil {
		return hit, err
	}
	if hit.Service, err = requiredString(v, "service"); err != nil {
		return hit, err
	}
	if hit.Env, err = requiredString(v, "env"); err != nil {
		return hit, err
	}
	if hit.Host, err = optionalString(v, "host"); err != nil {
		return hit, err
	}
	if hit.TraceID, err = optionalString(v, "trace_id"); err != nil {
		return hit, err
	}
	if hit.SpanID, err = optionalString(v, "span_id"); err != nil {
		return hit, err
	}
	if hit.StackTrace, err = optionalString(v, "stack_trace"); err != nil {
		return hit, err
	}
	if labels := v.Get("labels"); labels != nil && labels.Type() != fastjson.TypeNull {
		hit.Labels = labels.MarshalTo(nil)
	}
	return hit, nil
}

func requiredString(v *fastjson.Value, key string) (string, error) {
	field := v.Get(key)
	if field == nil || field.Type() == fastjson.TypeNull {
		return "", fmt.Errorf("missing field %s", key)
	}
	b, err := field.StringBytes()
	if err != nil {
		return "", fmt.Errorf("field %s: %w", key, err)
	}
	return string(b), nil
}

func optionalString(v *fastjson.Value, key string) (string, error) {
	field := v.Get(key)
	if field == nil || field.Type() == fastjson.TypeNull {
		return "", nil
	}
	b, err := field.StringBytes()
	if err != nil {
		return "", fmt.Errorf("field %s: %w", key, err)
	}
	return string(b), nil
}

// ExtractServiceBuckets returns the bucket keys of the services aggregation
// and whether any of the known bucket paths was present.
func ExtractServiceBuckets(v *fastjson.Value) ([]string, bool) {
	for _, path := range bucketPaths {
		buckets := v.Get(path...)
		if buckets == nil || buckets.Type() != fastjson.TypeArray {
			continue
		}
		items, _ := buckets.Array()
		keys := make([]string, 0, len(items))
		for _, bucket := range items {
			key := bucket.Get("key")
			if key == nil || key.Type() != fastjson.TypeString {
				continue
			}
			keys = append(keys, string(key.GetStringBytes()))
		}
		return keys, true
	}
	return nil, false
}
