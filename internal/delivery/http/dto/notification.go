package dto

import (
	"workmatch/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID           uuid.UUID `json:"id"`
	WorkerID     uuid.UUID `json:"worker_id"`
	WorkerName   string    `json:"worker_name"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	JobID        uuid.UUID `json:"job_id"`
	JobTitle     string    `json:"job_title"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    string    `json:"created_at"`
}

func NewNotificationResponse(n notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		WorkerID:     n.WorkerID,
		WorkerName:   n.WorkerName,
		AssignmentID: n.AssignmentID,
		JobID:        n.JobID,
		JobTitle:     n.JobTitle,
		Message:      n.Message,
		IsRead:       n.IsRead,
		CreatedAt:    formatTime(n.CreatedAt),
	}
}
