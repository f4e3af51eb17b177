package dto

import (
	"math"

	"workmatch/internal/usecase"

	"github.com/google/uuid"
)

type MatchedSkillResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	Proficiency   int       `json:"proficiency"`
	RequiredLevel int       `json:"required_level"`
	Points        int       `json:"points"`
}

type MissingSkillResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	RequiredLevel int       `json:"required_level"`
}

type CandidateResponse struct {
	Rank          int                    `json:"rank"`
	WorkerID      uuid.UUID              `json:"worker_id"`
	WorkerName    string                 `json:"worker_name"`
	MatchedPoints int                    `json:"matched_points"`
	TotalRequired int                    `json:"total_required"`
	Score         float64                `json:"score"`
	MatchedSkills []MatchedSkillResponse `json:"matched_skills"`
	MissingSkills []MissingSkillResponse `json:"missing_skills"`
}

type CandidateListResponse struct {
	JobID         uuid.UUID           `json:"job_id"`
	JobTitle      string              `json:"job_title"`
	TotalRequired int                 `json:"total_required"`
	GeneratedAt   string              `json:"generated_at"`
	Candidates    []CandidateResponse `json:"candidates"`
}

func NewCandidateListResponse(l usecase.CandidateList) CandidateListResponse {
	out := CandidateListResponse{
		JobID:         l.JobID,
		JobTitle:      l.JobTitle,
		TotalRequired: l.TotalRequired,
		GeneratedAt:   formatTime(l.GeneratedAt),
		Candidates:    make([]CandidateResponse, 0, len(l.Candidates)),
	}

	for i, c := range l.Candidates {
		matched := make([]MatchedSkillResponse, 0, len(c.MatchedSkills))
		for _, m := range c.MatchedSkills {
			matched = append(matched, MatchedSkillResponse{
				SkillID:       m.SkillID,
				SkillName:     m.SkillName,
				Proficiency:   m.Proficiency,
				RequiredLevel: m.RequiredLevel,
				Points:        m.Points,
			})
		}
		missing := make([]MissingSkillResponse, 0, len(c.MissingSkills))
		for _, m := range c.MissingSkills {
			missing = append(missing, MissingSkillResponse{
				SkillID:       m.SkillID,
				SkillName:     m.SkillName,
				RequiredLevel: m.RequiredLevel,
			})
		}

		out.Candidates = append(out.Candidates, CandidateResponse{
			Rank:          i + 1,
			WorkerID:      c.WorkerID,
			WorkerName:    c.WorkerName,
			MatchedPoints: c.MatchedPoints,
			TotalRequired: c.TotalRequired,
			Score:         RoundScore(c.Score),
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}
	return out
}

// RoundScore keeps three decimals.
func RoundScore(v float64) float64 {
	return math.Round(v*1000) / 1000
}
