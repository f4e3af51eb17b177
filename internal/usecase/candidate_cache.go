package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CandidateCache stores ranked candidate lists. Implementations must treat an
// unavailable backend as a miss rather than an error where they can.
type CandidateCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const candidatesKeyPrefix = "candidates:"

func CandidatesCacheKey(jobID uuid.UUID) string {
	return candidatesKeyPrefix + jobID.String()
}

// AllCandidatesPattern matches every cached ranking. Worker skill changes can
// move a worker in any job's list.
func AllCandidatesPattern() string {
	return candidatesKeyPrefix + "*"
}

// invalidateAllRankings drops every cached ranking after a change to a
// worker's name or skills, or to the worker set itself.
func invalidateAllRankings(ctx context.Context, cache CandidateCache, log *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPattern(ctx, AllCandidatesPattern()); err != nil {
		log.Warn("candidate cache invalidation failed", zap.Error(err))
	}
}
