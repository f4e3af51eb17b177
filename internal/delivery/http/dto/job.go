package dto

import (
	"workmatch/internal/domain/job"

	"github.com/google/uuid"
)

type JobSkillResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	RequiredLevel int       `json:"required_level"`
}

type JobResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	CreatedByManagerID *uuid.UUID         `json:"created_by_manager_id"`
	CreatedAt          string             `json:"created_at"`
	Skills             []JobSkillResponse `json:"skills"`
}

func NewJobResponse(j job.Job) JobResponse {
	skills := make([]JobSkillResponse, 0, len(j.Skills))
	for _, s := range j.Skills {
		skills = append(skills, JobSkillResponse{
			SkillID:       s.SkillID,
			SkillName:     s.SkillName,
			RequiredLevel: s.RequiredLevel,
		})
	}
	return JobResponse{
		ID:                 j.ID,
		Title:              j.Title,
		Description:        j.Description,
		CreatedByManagerID: j.CreatedByManagerID,
		CreatedAt:          formatTime(j.CreatedAt),
		Skills:             skills,
	}
}
