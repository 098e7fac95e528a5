package service

import (
	"context"
	"time"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
)

type searchCall struct {
	req dto.SearchRequest
	tr  model.TimeRange
}

// fakeLogRepository serves canned pages in call order.
type fakeLogRepository struct {
	pages     []*dto.SearchResponse
	searchErr error

	buckets    []string
	bucketsOK  bool
	bucketsErr error

	searches  []searchCall
	aggRanges []model.TimeRange
}

func (r *fakeLogRepository) Search(ctx context.Context, req dto.SearchRequest, tr model.TimeRange) (*dto.SearchResponse, error) {
	r.searches = append(r.searches, searchCall{req: req, tr: tr})
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	i := len(r.searches) - 1
	if i >= len(r.pages) {
		return &dto.SearchResponse{Page: req.Page, PageSize: req.PageSize}, nil
	}
	return r.pages[i], nil
}

func (r *fakeLogRepository) AggregateServices(ctx context.Context, tr model.TimeRange) ([]string, bool, error) {
	r.aggRanges = append(r.aggRanges, tr)
	return r.buckets, r.bucketsOK, r.bucketsErr
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func hitsFor(services ...string) []model.LogHit {
	hits := make([]model.LogHit, len(services))
	for i, s := range services {
		hits[i] = model.LogHit{
			Timestamp: fixedNow().Add(-time.Duration(i) * time.Minute),
			Message:   "request failed",
			Level:     "ERROR",
			Service:   s,
			Env:       "prod",
		}
	}
	return hits
}

func page(total uint64, services ...string) *dto.SearchResponse {
	return &dto.SearchResponse{Total: total, Hits: hitsFor(services...)}
}
