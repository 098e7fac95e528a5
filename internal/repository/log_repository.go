package repository

import (
	"context"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

type LogRepository interface {
	// Search runs one page of req over the already resolved window tr.
	Search(ctx context.Context, req dto.SearchRequest, tr model.TimeRange) (*dto.SearchResponse, error)
	// AggregateServices returns the service term-bucket keys seen in tr.
	// ok is false when the backend answered without aggregation buckets.
	AggregateServices(ctx context.Context, tr model.TimeRange) (keys []string, ok bool, err error)
}
