package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
)

func TestSearchLogs_RelativeWindow(t *testing.T) {
	repo := &fakeLogRepository{pages: []*dto.SearchResponse{page(2, "api", "web")}}
	svc := &logQueryService{logRepo: repo, now: fixedNow}

	req := dto.NewSearchRequest()
	req.TimeRangeType = dto.TimeRangeRelative
	req.RelativeTimeKey = "1h"

	resp, err := svc.SearchLogs(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Hits, 2)

	require.Len(t, repo.searches, 1)
	assert.Equal(t, fixedNow().Add(-time.Hour), repo.searches[0].tr.Start)
	assert.Equal(t, fixedNow(), repo.searches[0].tr.End)
	assert.Equal(t, "1h", repo.searches[0].req.RelativeTimeKey)
}

func TestSearchLogs_ValidationStopsBeforeBackend(t *testing.T) {
	repo := &fakeLogRepository{}
	svc := &logQueryService{logRepo: repo, now: fixedNow}

	req := dto.NewSearchRequest()
	req.TimeRangeType = dto.TimeRangeRelative
	req.RelativeTimeKey = "1h"
	req.PageSize = 0

	_, err := svc.SearchLogs(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Empty(t, repo.searches)
}

func TestSearchLogs_PropagatesBackendError(t *testing.T) {
	repo := &fakeLogRepository{searchErr: apperror.Backend("connection refused", nil)}
	svc := NewLogQueryService(repo)

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	req := dto.NewSearchRequest()
	req.StartTime = &start
	req.EndTime = &end

	_, err := svc.SearchLogs(context.Background(), req)
	assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
	assert.Equal(t, "connection refused", apperror.MessageOf(err))
}
