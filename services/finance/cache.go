package finance

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"crewledger/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cached summaries only serve dashboard reads; every payment validation
// re-reads shifts inside the ledger transaction and never touches the cache.
const summaryTTL = 5 * time.Minute

func summaryKey(parts ...string) string {
	return "finsum:" + strings.Join(parts, ":")
}

func (s *DefaultFinanceService) cachedSummary(ctx context.Context, key string) (models.FinancialSummary, bool) {
	if s.Cache == nil {
		return models.FinancialSummary{}, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("summary cache read failed", zap.String("key", key), zap.Error(err))
		}
		return models.FinancialSummary{}, false
	}
	var summary models.FinancialSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return models.FinancialSummary{}, false
	}
	return summary, true
}

func (s *DefaultFinanceService) cacheSummary(ctx context.Context, key string, summary models.FinancialSummary) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, summaryTTL).Err(); err != nil {
		s.Logger.Warn("summary cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultFinanceService) invalidateSummaries(ctx context.Context, crewID, projectID, mid string) {
	InvalidateSummaries(ctx, s.Cache, crewID, projectID, mid)
}

// InvalidateSummaries drops every cached aggregate a shift or payment
// mutation can affect. The shift service calls this too, so edits made
// outside the coordinator never serve stale dashboard numbers.
func InvalidateSummaries(ctx context.Context, cache *redis.Client, crewID, projectID, mid string) {
	if cache == nil {
		return
	}
	cache.Del(ctx,
		summaryKey("crew", crewID, projectID),
		summaryKey("project", projectID),
		summaryKey("mid", mid),
	)
}
