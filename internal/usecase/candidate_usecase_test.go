package usecase

import (
	"context"
	"testing"

	"workmatch/internal/domain/job"
	"workmatch/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateFixture() (uuid.UUID, *mockJobRepo, *mockCandidateRepo) {
	jobID := uuid.New()
	a, b := uuid.New(), uuid.New()

	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Job{jobID: {ID: jobID, Title: "Warehouse shift"}}}
	cands := &mockCandidateRepo{
		reqs: []matching.Requirement{
			{SkillID: a, SkillName: "A", RequiredLevel: 4},
			{SkillID: b, SkillName: "B", RequiredLevel: 2},
		},
		workers: []matching.WorkerProfile{
			{WorkerID: uuid.New(), Name: "Nobody"},
			{WorkerID: uuid.New(), Name: "Ana", Skills: []matching.WorkerSkill{
				{SkillID: a, SkillName: "A", Proficiency: 5},
				{SkillID: b, SkillName: "B", Proficiency: 1},
			}},
		},
	}
	return jobID, jobs, cands
}

func TestCandidates_Rank(t *testing.T) {
	jobID, jobs, cands := candidateFixture()
	uc := NewCandidateUsecase(jobs, cands, nil, 0, nil)

	list, err := uc.RankCandidates(context.Background(), jobID)
	require.NoError(t, err)

	assert.Equal(t, "Warehouse shift", list.JobTitle)
	assert.Equal(t, 6, list.TotalRequired)
	require.Len(t, list.Candidates, 2)
	assert.Equal(t, "Ana", list.Candidates[0].WorkerName)
	assert.InDelta(t, 0.833, list.Candidates[0].Score, 0.001)
	assert.Zero(t, list.Candidates[1].Score)
	assert.False(t, list.Cached)
}

func TestCandidates_CacheHit(t *testing.T) {
	jobID, jobs, cands := candidateFixture()
	cache := newMemCache()
	uc := NewCandidateUsecase(jobs, cands, cache, 0, nil)

	first, err := uc.RankCandidates(context.Background(), jobID)
	require.NoError(t, err)
	second, err := uc.RankCandidates(context.Background(), jobID)
	require.NoError(t, err)

	assert.Equal(t, 1, cands.calls)
	assert.True(t, second.Cached)
	require.Len(t, second.Candidates, len(first.Candidates))
	assert.Equal(t, first.Candidates[0].WorkerID, second.Candidates[0].WorkerID)
	assert.Equal(t, first.Candidates[0].MatchedSkills, second.Candidates[0].MatchedSkills)
}

func TestCandidates_UnknownJob(t *testing.T) {
	_, jobs, cands := candidateFixture()
	uc := NewCandidateUsecase(jobs, cands, nil, 0, nil)

	_, err := uc.RankCandidates(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Zero(t, cands.calls)
}
