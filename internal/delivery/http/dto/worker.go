package dto

import (
	"workmatch/internal/domain/skill"
	"workmatch/internal/domain/worker"
	"workmatch/internal/usecase"

	"github.com/google/uuid"
)

type WorkerResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Qualifications string    `json:"qualifications"`
	CreatedAt      string    `json:"created_at"`
}

type WorkerSkillResponse struct {
	ID          uuid.UUID `json:"id"`
	SkillID     uuid.UUID `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	Proficiency int       `json:"proficiency"`
}

type CertificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	Year      *int      `json:"year"`
	CreatedAt string    `json:"created_at"`
}

type WorkerProfileResponse struct {
	WorkerResponse
	Skills         []WorkerSkillResponse   `json:"skills"`
	Certifications []CertificationResponse `json:"certifications"`
}

func NewWorkerResponse(w worker.Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Email:          w.Email,
		Phone:          w.Phone,
		Qualifications: w.Qualifications,
		CreatedAt:      formatTime(w.CreatedAt),
	}
}

func NewWorkerSkillResponse(ws skill.WorkerSkill) WorkerSkillResponse {
	return WorkerSkillResponse{
		ID:          ws.ID,
		SkillID:     ws.SkillID,
		SkillName:   ws.SkillName,
		Proficiency: ws.Proficiency,
	}
}

func NewWorkerSkillResponses(items []skill.WorkerSkill) []WorkerSkillResponse {
	out := make([]WorkerSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewWorkerSkillResponse(it))
	}
	return out
}

func NewCertificationResponse(c worker.Certification) CertificationResponse {
	return CertificationResponse{
		ID:        c.ID,
		Title:     c.Title,
		Issuer:    c.Issuer,
		Year:      c.Year,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func NewCertificationResponses(items []worker.Certification) []CertificationResponse {
	out := make([]CertificationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewCertificationResponse(it))
	}
	return out
}

func NewWorkerProfileResponse(p usecase.WorkerProfile) WorkerProfileResponse {
	return WorkerProfileResponse{
		WorkerResponse: NewWorkerResponse(p.Worker),
		Skills:         NewWorkerSkillResponses(p.Skills),
		Certifications: NewCertificationResponses(p.Certifications),
	}
}
