package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/repository"
	"logsearch-gateway/internal/util"
)

type LogQueryService interface {
	SearchLogs(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error)
}

type logQueryService struct {
	logRepo repository.LogRepository
	now     func() time.Time
}

func NewLogQueryService(logRepo repository.LogRepository) LogQueryService {
	return &logQueryService{
		logRepo: logRepo,
		now:     time.Now,
	}
}

func (s *logQueryService) SearchLogs(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tr, err := util.ResolveTimeRange(req, s.now())
	if err != nil {
		log.Error().Err(err).Str("time_range_type", req.TimeRangeType).Msg("Validated request has no resolvable time range")
		return nil, err
	}

	log.Info().
		Str("query", req.Query).
		Str("time_range_type", req.TimeRangeType).
		Time("start_time", tr.Start).
		Time("end_time", tr.End).
		Int("page", req.Page).
		Int("page_size", req.PageSize).
		Msg("Searching logs")

	return s.logRepo.Search(ctx, req, tr)
}
