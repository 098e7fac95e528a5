package quickwit

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
	"logsearch-gateway/internal/repository"
)

type quickwitLogRepository struct {
	client *Client
}

func NewQuickwitLogRepository(client *Client) repository.LogRepository {
	return &quickwitLogRepository{
		client: client,
	}
}

func (r *quickwitLogRepository) Search(ctx context.Context, req dto.SearchRequest, tr model.TimeRange) (*dto.SearchResponse, error) {
	query := BuildSearchQuery(req, tr)

	start := time.Now()
	raw, err := r.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)

	response, err := ConvertSearchResponse(raw, req.Page, req.PageSize, took)
	if err != nil {
		log.Error().Err(err).Str("index", r.client.IndexID()).Msg("Unusable Quickwit search response")
		return nil, err
	}

	log.Debug().
		Uint64("total_hits", response.Total).
		Int("returned_hits", len(response.Hits)).
		Uint64("took_ms", response.TookMs).
		Msg("Quickwit search successful")
	return response, nil
}

func (r *quickwitLogRepository) AggregateServices(ctx context.Context, tr model.TimeRange) ([]string, bool, error) {
	raw, err := r.client.Search(ctx, BuildServiceAggregationQuery(tr))
	if err != nil {
		return nil, false, err
	}
	keys, ok := ExtractServiceBuckets(raw)
	return keys, ok, nil
}
