package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"workmatch/internal/domain/skill"
	"workmatch/internal/domain/worker"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"
	ucprofile "workmatch/internal/usecase/profile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const workerListLimit = 200

type WorkerProfile struct {
	Worker         worker.Worker
	Skills         []skill.WorkerSkill
	Certifications []worker.Certification
}

type AddWorkerSkillInput struct {
	SkillName   string
	Proficiency int
}

type CertificationInput struct {
	Title  string
	Issuer string
	Year   *int
}

type WorkerUsecase interface {
	GetProfile(ctx context.Context, workerID uuid.UUID) (WorkerProfile, error)
	UpdateProfile(ctx context.Context, workerID uuid.UUID, in ucprofile.UpdateInput) (worker.Worker, error)
	ListWorkers(ctx context.Context) ([]worker.Worker, error)

	ListSkills(ctx context.Context, workerID uuid.UUID) ([]skill.WorkerSkill, error)
	AddSkill(ctx context.Context, workerID uuid.UUID, in AddWorkerSkillInput) (skill.WorkerSkill, error)
	UpdateSkill(ctx context.Context, workerID, workerSkillID uuid.UUID, proficiency int) (skill.WorkerSkill, error)
	RemoveSkill(ctx context.Context, workerID, workerSkillID uuid.UUID) error

	ListCertifications(ctx context.Context, workerID uuid.UUID) ([]worker.Certification, error)
	AddCertification(ctx context.Context, workerID uuid.UUID, in CertificationInput) (worker.Certification, error)
}

type Worker struct {
	workers worker.Repository
	profile *ucprofile.Service
	skills  repository.WorkerSkillRepository
	certs   repository.CertificationRepository
	cache   CandidateCache
	log     *zap.Logger
	now     func() time.Time
}

func NewWorkerUsecase(
	workers worker.Repository,
	skills repository.WorkerSkillRepository,
	certs repository.CertificationRepository,
	cache CandidateCache,
	log *zap.Logger,
) *Worker {
	return &Worker{workers: workers, profile: ucprofile.NewService(workers), skills: skills, certs: certs, cache: cache, log: logger.OrNop(log), now: time.Now}
}

func (u *Worker) GetProfile(ctx context.Context, workerID uuid.UUID) (WorkerProfile, error) {
	w, err := u.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			return WorkerProfile{}, ErrWorkerNotFound
		}
		return WorkerProfile{}, ErrInternal
	}
	w.PasswordHash = ""

	skills, err := u.skills.FindByWorkerID(ctx, workerID)
	if err != nil {
		return WorkerProfile{}, ErrInternal
	}
	certs, err := u.certs.FindByWorkerID(ctx, workerID)
	if err != nil {
		return WorkerProfile{}, ErrInternal
	}
	return WorkerProfile{Worker: w, Skills: skills, Certifications: certs}, nil
}

func (u *Worker) UpdateProfile(ctx context.Context, workerID uuid.UUID, in ucprofile.UpdateInput) (worker.Worker, error) {
	w, err := u.profile.Update(ctx, workerID, in)
	if err != nil {
		switch {
		case errors.Is(err, ucprofile.ErrNotFound):
			return worker.Worker{}, ErrWorkerNotFound
		case errors.Is(err, ucprofile.ErrInvalidInput):
			return worker.Worker{}, ErrInvalidInput
		}
		return worker.Worker{}, ErrInternal
	}

	u.invalidateRankings(ctx)
	return w, nil
}

func (u *Worker) ListWorkers(ctx context.Context) ([]worker.Worker, error) {
	items, err := u.workers.List(ctx, workerListLimit)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range items {
		items[i].PasswordHash = ""
	}
	return items, nil
}

func (u *Worker) ListSkills(ctx context.Context, workerID uuid.UUID) ([]skill.WorkerSkill, error) {
	items, err := u.skills.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Worker) AddSkill(ctx context.Context, workerID uuid.UUID, in AddWorkerSkillInput) (skill.WorkerSkill, error) {
	name := skill.NormalizeName(in.SkillName)
	if name == "" {
		return skill.WorkerSkill{}, ErrInvalidInput
	}
	if !skill.ValidLevel(in.Proficiency) {
		return skill.WorkerSkill{}, ErrInvalidProficiencyLevel
	}

	created, err := u.skills.Add(ctx, workerID, name, in.Proficiency)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWorkerSkillExists):
			return skill.WorkerSkill{}, ErrSkillAlreadyExists
		case errors.Is(err, repository.ErrSkillNotFound):
			return skill.WorkerSkill{}, ErrInvalidInput
		}
		u.log.Error("add worker skill failed", zap.String("worker_id", workerID.String()), zap.Error(err))
		return skill.WorkerSkill{}, ErrInternal
	}

	u.invalidateRankings(ctx)
	return created, nil
}

func (u *Worker) UpdateSkill(ctx context.Context, workerID, workerSkillID uuid.UUID, proficiency int) (skill.WorkerSkill, error) {
	if workerSkillID == uuid.Nil {
		return skill.WorkerSkill{}, ErrInvalidInput
	}
	if !skill.ValidLevel(proficiency) {
		return skill.WorkerSkill{}, ErrInvalidProficiencyLevel
	}

	updated, err := u.skills.UpdateProficiency(ctx, workerSkillID, workerID, proficiency)
	if err != nil {
		return skill.WorkerSkill{}, mapWorkerSkillError(err)
	}

	u.invalidateRankings(ctx)
	return updated, nil
}

func (u *Worker) RemoveSkill(ctx context.Context, workerID, workerSkillID uuid.UUID) error {
	if workerSkillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.skills.Delete(ctx, workerSkillID, workerID); err != nil {
		return mapWorkerSkillError(err)
	}

	u.invalidateRankings(ctx)
	return nil
}

func (u *Worker) ListCertifications(ctx context.Context, workerID uuid.UUID) ([]worker.Certification, error) {
	items, err := u.certs.FindByWorkerID(ctx, workerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Worker) AddCertification(ctx context.Context, workerID uuid.UUID, in CertificationInput) (worker.Certification, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return worker.Certification{}, ErrInvalidInput
	}
	if in.Year != nil && (*in.Year < 1900 || *in.Year > u.now().Year()+1) {
		return worker.Certification{}, ErrInvalidInput
	}

	created, err := u.certs.Create(ctx, worker.Certification{
		WorkerID: workerID,
		Title:    title,
		Issuer:   strings.TrimSpace(in.Issuer),
		Year:     in.Year,
	})
	if err != nil {
		return worker.Certification{}, ErrInternal
	}
	return created, nil
}

func (u *Worker) invalidateRankings(ctx context.Context) {
	invalidateAllRankings(ctx, u.cache, u.log)
}

func mapWorkerSkillError(err error) error {
	switch {
	case errors.Is(err, repository.ErrWorkerSkillNotFound):
		return ErrSkillNotFound
	case errors.Is(err, repository.ErrWorkerSkillForbidden):
		return ErrForbidden
	default:
		return ErrInternal
	}
}
