package usecase

import (
	"context"
	"errors"
	"time"

	"workmatch/internal/domain/matching"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidateList struct {
	JobID         uuid.UUID
	JobTitle      string
	TotalRequired int
	Candidates    []matching.Candidate
	GeneratedAt   time.Time
	Cached        bool `json:"-"`
}

type CandidateUsecase interface {
	RankCandidates(ctx context.Context, jobID uuid.UUID) (CandidateList, error)
}

type Candidates struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	cache      CandidateCache
	ttl        time.Duration
	log        *zap.Logger
	now        func() time.Time
}

func NewCandidateUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	cache CandidateCache,
	ttl time.Duration,
	log *zap.Logger,
) *Candidates {
	return &Candidates{jobs: jobs, candidates: candidates, cache: cache, ttl: ttl, log: logger.OrNop(log), now: time.Now}
}

func (u *Candidates) RankCandidates(ctx context.Context, jobID uuid.UUID) (CandidateList, error) {
	if jobID == uuid.Nil {
		return CandidateList{}, ErrJobNotFound
	}

	key := CandidatesCacheKey(jobID)
	if u.cache != nil {
		var cached CandidateList
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.log.Warn("candidate cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit && err == nil {
			cached.Cached = true
			return cached, nil
		}
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return CandidateList{}, ErrJobNotFound
		}
		return CandidateList{}, ErrInternal
	}

	reqs, err := u.candidates.Requirements(ctx, jobID)
	if err != nil {
		u.log.Error("load job requirements failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return CandidateList{}, ErrInternal
	}
	workers, err := u.candidates.WorkerProfiles(ctx, jobID)
	if err != nil {
		u.log.Error("load worker profiles failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return CandidateList{}, ErrInternal
	}

	out := CandidateList{
		JobID:         j.ID,
		JobTitle:      j.Title,
		TotalRequired: matching.TotalRequired(reqs),
		Candidates:    matching.Rank(reqs, workers, matching.MaxCandidates),
		GeneratedAt:   u.now().UTC(),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
			u.log.Warn("candidate cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}
