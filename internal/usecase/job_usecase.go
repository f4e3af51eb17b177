package usecase

import (
	"context"
	"errors"
	"strings"

	"workmatch/internal/domain/job"
	"workmatch/internal/domain/skill"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateJobInput struct {
	Title       string
	Description string
	Skills      []job.SkillInput
}

type JobListParams struct {
	Limit  int
	Offset int
}

type JobUsecase interface {
	CreateJob(ctx context.Context, managerID uuid.UUID, in CreateJobInput) (job.Job, error)
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	DeleteJob(ctx context.Context, jobID uuid.UUID) error
}

type Job struct {
	jobs  repository.JobRepository
	cache CandidateCache
	log   *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache CandidateCache, log *zap.Logger) *Job {
	return &Job{jobs: jobs, cache: cache, log: logger.OrNop(log)}
}

func (u *Job) CreateJob(ctx context.Context, managerID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if managerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	skills, err := NormalizeJobSkills(in.Skills)
	if err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.CreateWithSkills(ctx, job.Job{
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		CreatedByManagerID: &managerID,
	}, skills)
	if err != nil {
		u.log.Error("create job failed", zap.String("manager_id", managerID.String()), zap.Error(err))
		return job.Job{}, ErrInternal
	}

	u.invalidate(ctx, created.ID)
	return created, nil
}

func (u *Job) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	items, err := u.jobs.ListJobs(ctx, limit, params.Offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Job) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Job) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	if jobID == uuid.Nil {
		return ErrJobNotFound
	}
	if err := u.jobs.Delete(ctx, jobID); err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return ErrJobNotFound
		case errors.Is(err, repository.ErrJobHasAssignments):
			return ErrJobHasAssignments
		}
		return ErrInternal
	}

	u.invalidate(ctx, jobID)
	return nil
}

func (u *Job) invalidate(ctx context.Context, jobID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, CandidatesCacheKey(jobID)); err != nil {
		u.log.Warn("candidate cache invalidation failed", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

// NormalizeJobSkills trims names, drops blank ones, applies the default level
// and collapses case-insensitive duplicates onto the last level given. The
// first spelling of a name is kept.
func NormalizeJobSkills(in []job.SkillInput) ([]job.SkillInput, error) {
	out := make([]job.SkillInput, 0, len(in))
	idx := make(map[string]int, len(in))
	for _, s := range in {
		name := skill.NormalizeName(s.Name)
		if name == "" {
			continue
		}

		level := s.RequiredLevel
		if level == 0 {
			level = skill.DefaultLevel
		}
		if !skill.ValidLevel(level) {
			return nil, ErrInvalidProficiencyLevel
		}

		key := skill.Key(name)
		if i, ok := idx[key]; ok {
			out[i].RequiredLevel = level
			continue
		}
		idx[key] = len(out)
		out = append(out, job.SkillInput{Name: name, RequiredLevel: level})
	}
	return out, nil
}

// ParseSkillList splits a comma separated "name[:level]" list, the format
// managers type into a single field.
func ParseSkillList(raw string) []job.SkillInput {
	parts := strings.Split(raw, ",")
	out := make([]job.SkillInput, 0, len(parts))
	for _, p := range parts {
		name, lvl, hasLevel := strings.Cut(p, ":")
		in := job.SkillInput{Name: strings.TrimSpace(name)}
		if hasLevel {
			in.RequiredLevel = parseLevel(lvl)
		}
		out = append(out, in)
	}
	return out
}

func parseLevel(s string) int {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '0')
}
