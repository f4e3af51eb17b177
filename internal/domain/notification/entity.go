package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID
	ManagerID    uuid.UUID
	WorkerID     uuid.UUID
	AssignmentID uuid.UUID
	Message      string
	IsRead       bool
	CreatedAt    time.Time

	WorkerName string
	JobID      uuid.UUID
	JobTitle   string
}

// ListLimit caps a manager's notification feed.
const ListLimit = 50
