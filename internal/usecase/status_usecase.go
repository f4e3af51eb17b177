package usecase

import (
	"context"
	"sync"
	"time"

	"workmatch/internal/domain"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ClientCounter interface {
	ClientCount() int
}

type StatusUsecase interface {
	GetStatus(ctx context.Context) (domain.SystemStatus, error)
}

type Status struct {
	repo  repository.StatusRepository
	db    Pinger
	cache Pinger
	live  ClientCounter
	log   *zap.Logger
	now   func() time.Time
}

func NewStatusUsecase(repo repository.StatusRepository, db, cache Pinger, live ClientCounter, log *zap.Logger) *Status {
	return &Status{repo: repo, db: db, cache: cache, live: live, log: logger.OrNop(log), now: time.Now}
}

// GetStatus never fails on a broken dependency; it reports it instead.
func (u *Status) GetStatus(ctx context.Context) (domain.SystemStatus, error) {
	out := domain.SystemStatus{ServerTime: u.now().UTC()}
	if u.live != nil {
		out.LiveClients = u.live.ClientCount()
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var (
		counts    domain.Counts
		errCounts error
		errDB     error
		errCache  error
	)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if u.db == nil {
			errDB = ErrInternal
			return
		}
		errDB = u.db.Ping(ctx)
		if errDB != nil {
			u.log.Warn("status check failed", zap.String("component", "database"), zap.Error(errDB))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if u.cache == nil {
			errCache = ErrInternal
			return
		}
		errCache = u.cache.Ping(ctx)
		if errCache != nil {
			u.log.Warn("status check failed", zap.String("component", "redis"), zap.Error(errCache))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if u.repo == nil {
			errCounts = ErrInternal
			return
		}
		counts, errCounts = u.repo.Counts(ctx)
		if errCounts != nil {
			u.log.Warn("status check failed", zap.String("component", "counts"), zap.Error(errCounts))
		}
	}()

	wg.Wait()

	out.DatabaseHealthy = errDB == nil
	out.RedisHealthy = errCache == nil
	if errCounts == nil {
		out.Counts = counts
	}
	return out, nil
}
