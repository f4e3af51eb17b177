package ws

import (
	"encoding/json"
	"time"

	"workmatch/internal/domain/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventNotificationCreated = "notification_created"

type NotificationEvent struct {
	Type           string `json:"type"`
	NotificationID string `json:"notification_id"`
	AssignmentID   string `json:"assignment_id"`
	WorkerID       string `json:"worker_id"`
	WorkerName     string `json:"worker_name,omitempty"`
	JobID          string `json:"job_id,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	Message        string `json:"message"`
	CreatedAt      string `json:"created_at"`
}

// PublishNotification pushes n to the addressed manager's live connections.
func (h *Hub) PublishNotification(n notification.Notification) {
	if h == nil {
		return
	}

	evt := NotificationEvent{
		Type:           EventNotificationCreated,
		NotificationID: n.ID.String(),
		AssignmentID:   n.AssignmentID.String(),
		WorkerID:       n.WorkerID.String(),
		WorkerName:     n.WorkerName,
		JobTitle:       n.JobTitle,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if n.JobID != uuid.Nil {
		evt.JobID = n.JobID.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws encode notification failed", zap.Error(err))
		return
	}
	h.SendTo(n.ManagerID, b)
}
