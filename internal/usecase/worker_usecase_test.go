package usecase

import (
	"context"
	"testing"
	"time"

	"workmatch/internal/domain/worker"
	"workmatch/internal/repository"
	ucprofile "workmatch/internal/usecase/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkerUsecase(skills *mockWorkerSkillRepo, cache *memCache) (*Worker, uuid.UUID) {
	id := uuid.New()
	workers := &mockWorkerRepo{items: map[uuid.UUID]worker.Worker{id: {ID: id, Name: "Ana", PasswordHash: "secret"}}}
	var c CandidateCache
	if cache != nil {
		c = cache
	}
	uc := NewWorkerUsecase(workers, skills, &mockCertRepo{}, c, nil)
	uc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return uc, id
}

func TestWorker_GetProfileHidesHash(t *testing.T) {
	uc, id := newWorkerUsecase(&mockWorkerSkillRepo{}, nil)

	p, err := uc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Worker.Name)
	assert.Empty(t, p.Worker.PasswordHash)
	assert.NotNil(t, p.Skills)

	_, err = uc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestWorker_AddSkill(t *testing.T) {
	skills := &mockWorkerSkillRepo{}
	cache := newMemCache()
	uc, id := newWorkerUsecase(skills, cache)

	ws, err := uc.AddSkill(context.Background(), id, AddWorkerSkillInput{SkillName: "  Forklift   Operation ", Proficiency: 4})
	require.NoError(t, err)
	assert.Equal(t, "Forklift Operation", ws.SkillName)
	assert.Equal(t, []string{"Forklift Operation"}, skills.added)
	assert.Contains(t, cache.deleted, AllCandidatesPattern())
}

func TestWorker_AddSkill_Errors(t *testing.T) {
	skills := &mockWorkerSkillRepo{}
	uc, id := newWorkerUsecase(skills, nil)

	_, err := uc.AddSkill(context.Background(), id, AddWorkerSkillInput{SkillName: "Welding", Proficiency: 0})
	assert.ErrorIs(t, err, ErrInvalidProficiencyLevel)

	_, err = uc.AddSkill(context.Background(), id, AddWorkerSkillInput{SkillName: " ", Proficiency: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	skills.addErr = repository.ErrWorkerSkillExists
	_, err = uc.AddSkill(context.Background(), id, AddWorkerSkillInput{SkillName: "Welding", Proficiency: 3})
	assert.ErrorIs(t, err, ErrSkillAlreadyExists)
}

func TestWorker_UpdateAndRemoveSkill_Ownership(t *testing.T) {
	skills := &mockWorkerSkillRepo{
		updateErr: repository.ErrWorkerSkillForbidden,
		deleteErr: repository.ErrWorkerSkillNotFound,
	}
	uc, id := newWorkerUsecase(skills, nil)

	_, err := uc.UpdateSkill(context.Background(), id, uuid.New(), 3)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.UpdateSkill(context.Background(), id, uuid.New(), 9)
	assert.ErrorIs(t, err, ErrInvalidProficiencyLevel)

	err = uc.RemoveSkill(context.Background(), id, uuid.New())
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestWorker_AddCertification(t *testing.T) {
	uc, id := newWorkerUsecase(&mockWorkerSkillRepo{}, nil)
	year := 2024

	c, err := uc.AddCertification(context.Background(), id, CertificationInput{Title: " Forklift license ", Issuer: "OSHA", Year: &year})
	require.NoError(t, err)
	assert.Equal(t, "Forklift license", c.Title)
	assert.Equal(t, id, c.WorkerID)

	bad := 3000
	_, err = uc.AddCertification(context.Background(), id, CertificationInput{Title: "x", Year: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.AddCertification(context.Background(), id, CertificationInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorker_UpdateProfileClearsRankings(t *testing.T) {
	c := newMemCache()
	jobID := uuid.New()
	require.NoError(t, c.SetJSON(context.Background(), CandidatesCacheKey(jobID), CandidateList{JobID: jobID}, time.Minute))
	uc, id := newWorkerUsecase(&mockWorkerSkillRepo{}, c)

	name := "Ana Lima"
	w, err := uc.UpdateProfile(context.Background(), id, ucprofile.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", w.Name)
	assert.Contains(t, c.deleted, AllCandidatesPattern())

	var cached CandidateList
	hit, err := c.GetJSON(context.Background(), CandidatesCacheKey(jobID), &cached)
	require.NoError(t, err)
	assert.False(t, hit)
}
