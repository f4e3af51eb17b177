package dto

import (
	"workmatch/internal/domain/assignment"

	"github.com/google/uuid"
)

type TaskResponse struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	Title        string    `json:"title"`
	Completed    bool      `json:"completed"`
	CompletedAt  *string   `json:"completed_at"`
	CreatedAt    string    `json:"created_at"`
}

type AssignmentResponse struct {
	ID                  uuid.UUID      `json:"id"`
	WorkerID            uuid.UUID      `json:"worker_id"`
	WorkerName          string         `json:"worker_name,omitempty"`
	JobID               uuid.UUID      `json:"job_id"`
	JobTitle            string         `json:"job_title,omitempty"`
	AssignedByManagerID uuid.UUID      `json:"assigned_by_manager_id"`
	ManagerName         string         `json:"manager_name,omitempty"`
	Status              string         `json:"status"`
	AssignedAt          string         `json:"assigned_at"`
	CompletedAt         *string        `json:"completed_at"`
	Tasks               []TaskResponse `json:"tasks,omitempty"`
}

func NewTaskResponse(t assignment.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		AssignmentID: t.AssignmentID,
		Title:        t.Title,
		Completed:    t.Completed,
		CompletedAt:  formatTimePtr(t.CompletedAt),
		CreatedAt:    formatTime(t.CreatedAt),
	}
}

func NewAssignmentResponse(a assignment.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:                  a.ID,
		WorkerID:            a.WorkerID,
		WorkerName:          a.WorkerName,
		JobID:               a.JobID,
		JobTitle:            a.JobTitle,
		AssignedByManagerID: a.AssignedByManagerID,
		ManagerName:         a.ManagerName,
		Status:              string(a.Status),
		AssignedAt:          formatTime(a.AssignedAt),
		CompletedAt:         formatTimePtr(a.CompletedAt),
	}
}

func NewAssignmentWithTasksResponse(a assignment.WithTasks) AssignmentResponse {
	out := NewAssignmentResponse(a.Assignment)
	out.Tasks = make([]TaskResponse, 0, len(a.Tasks))
	for _, t := range a.Tasks {
		out.Tasks = append(out.Tasks, NewTaskResponse(t))
	}
	return out
}
