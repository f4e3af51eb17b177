package usecase

import (
	"context"
	"testing"
	"time"

	"workmatch/internal/pkg/jwt"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterWorkerClearsRankings(t *testing.T) {
	c := newMemCache()
	jobID := uuid.New()
	require.NoError(t, c.SetJSON(context.Background(), CandidatesCacheKey(jobID), CandidateList{JobID: jobID}, time.Minute))

	uc := NewAuthUsecase(ucauth.NewService(&mockWorkerRepo{}, nil), jwt.NewHMACService("test", time.Hour), c, nil)

	s, err := uc.RegisterWorker(context.Background(), ucauth.WorkerRegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleWorker, s.Role)
	assert.NotEmpty(t, s.AccessToken)

	var cached CandidateList
	hit, err := c.GetJSON(context.Background(), CandidatesCacheKey(jobID), &cached)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, c.deleted, AllCandidatesPattern())
}

func TestAuth_FailedRegistrationKeepsRankings(t *testing.T) {
	c := newMemCache()
	jobID := uuid.New()
	require.NoError(t, c.SetJSON(context.Background(), CandidatesCacheKey(jobID), CandidateList{JobID: jobID}, time.Minute))

	uc := NewAuthUsecase(ucauth.NewService(&mockWorkerRepo{}, nil), jwt.NewHMACService("test", time.Hour), c, nil)

	_, err := uc.RegisterWorker(context.Background(), ucauth.WorkerRegisterInput{Name: "Ana", Email: "bad", Password: "password1"})
	require.Error(t, err)
	assert.Empty(t, c.deleted)
}
