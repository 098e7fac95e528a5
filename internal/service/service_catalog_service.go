package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"logsearch-gateway/internal/model"
	"logsearch-gateway/internal/repository"
	"logsearch-gateway/internal/util"
)

const (
	serviceLookback  = 24 * time.Hour
	fallbackPageSize = 500
	fallbackMaxPages = 10
)

type ServiceCatalogService interface {
	// ListServices returns the distinct service names seen in the last 24h,
	// sorted.
	ListServices(ctx context.Context) ([]string, error)
}

type serviceCatalogService struct {
	logRepo repository.LogRepository
	now     func() time.Time
}

func NewServiceCatalogService(logRepo repository.LogRepository) ServiceCatalogService {
	return &serviceCatalogService{
		logRepo: logRepo,
		now:     time.Now,
	}
}

func (s *serviceCatalogService) ListServices(ctx context.Context) ([]string, error) {
	tr := util.TrailingWindow(s.now(), serviceLookback)

	keys, ok, err := s.logRepo.AggregateServices(ctx, tr)
	if err != nil {
		log.Error().Err(err).Msg("Service aggregation query failed")
		return nil, err
	}
	if ok {
		services := sortedUnique(keys)
		log.Debug().Int("count", len(services)).Msg("Listed services from aggregation buckets")
		return services, nil
	}

	log.Warn().Msg("Quickwit response missing aggregations; falling back to scan")
	return s.scanServices(ctx, tr)
}

// scanServices pages through plain searches over the same window. Pages are
// fetched one at a time: each stop condition depends on the previous page's
// hit count and reported total. The result is bounded by
// fallbackMaxPages*fallbackPageSize rows.
func (s *serviceCatalogService) scanServices(ctx context.Context, tr model.TimeRange) ([]string, error) {
	seen := make(map[string]struct{})

	for page := 1; ; page++ {
		req := util.AbsoluteRequest("*", tr, page, fallbackPageSize)
		resp, err := s.logRepo.Search(ctx, req, tr)
		if err != nil {
			log.Error().Err(err).Int("page", page).Msg("Service scan page failed")
			return nil, err
		}
		if len(resp.Hits) == 0 {
			break
		}

		for _, hit := range resp.Hits {
			seen[hit.Service] = struct{}{}
		}

		if page >= fallbackMaxPages {
			break
		}
		if uint64(page*fallbackPageSize) >= resp.Total {
			break
		}
	}

	services := make([]string, 0, len(seen))
	for name := range seen {
		services = append(services, name)
	}
	sort.Strings(services)
	log.Debug().Int("count", len(services)).Msg("Listed services from fallback scan")
	return services, nil
}

func sortedUnique(values []string) []string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)

	out := make([]string, 0, len(sorted))
	for _, v := range sorted {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
