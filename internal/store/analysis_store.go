package store

import (
	"context"
	"sync"
	"time"

	"logsearch-gateway/internal/dto"
)

// AnalysisStore keeps finished trace analyses so repeated requests for the
// same trace do not hit the LLM again.
type AnalysisStore interface {
	Get(ctx context.Context, traceID string) (*dto.AnalyzeResponse, bool)
	Put(ctx context.Context, traceID string, analysis *dto.AnalyzeResponse)
}

type cachedAnalysis struct {
	analysis  dto.AnalyzeResponse
	expiresAt time.Time
}

type inMemoryAnalysisStore struct {
	store map[string]cachedAnalysis // map[traceID]analysis
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
}

// NewInMemoryAnalysisStore returns a store whose entries expire after ttl.
// A non-positive ttl disables storing.
func NewInMemoryAnalysisStore(ttl time.Duration) AnalysisStore {
	return &inMemoryAnalysisStore{
		store: make(map[string]cachedAnalysis),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *inMemoryAnalysisStore) Get(ctx context.Context, traceID string) (*dto.AnalyzeResponse, bool) {
	s.mu.RLock()
	entry, ok := s.store[traceID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		if current, ok := s.store[traceID]; ok && current.expiresAt == entry.expiresAt {
			delete(s.store, traceID)
		}
		s.mu.Unlock()
		return nil, false
	}
	analysis := entry.analysis
	return &analysis, true
}

func (s *inMemoryAnalysisStore) Put(ctx context.Context, traceID string, analysis *dto.AnalyzeResponse) {
	if s.ttl <= 0 || analysis == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[traceID] = cachedAnalysis{
		analysis:  *analysis,
		expiresAt: s.now().Add(s.ttl),
	}
}
