package assignment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("assignment is not assigned to this worker")

// Transition is the outcome of a worker toggling an assignment: the new row
// state plus the notification owed to the assigning manager.
type Transition struct {
	AssignmentID uuid.UUID
	WorkerID     uuid.UUID
	ManagerID    uuid.UUID
	From         Status
	To           Status
	CompletedAt  *time.Time
	Message      string
}

func (t Transition) Changed() bool {
	return t.From != t.To
}

// Toggle moves the assignment to completed or back to active on behalf of
// actor. Only the assigned worker may do so. Re-applying the current state is
// allowed and still yields a notification.
func (a Assignment) Toggle(actor uuid.UUID, completed bool, now time.Time) (Transition, error) {
	if actor == uuid.Nil || actor != a.WorkerID {
		return Transition{}, ErrNotOwner
	}

	t := Transition{
		AssignmentID: a.ID,
		WorkerID:     a.WorkerID,
		ManagerID:    a.AssignedByManagerID,
		From:         a.Status,
		To:           StatusActive,
	}

	if completed {
		t.To = StatusCompleted
		at := now.UTC()
		if a.Status == StatusCompleted && a.CompletedAt != nil {
			at = a.CompletedAt.UTC()
		}
		t.CompletedAt = &at
	}

	t.Message = ToggleMessage(a.WorkerName, a.JobTitle, a.ID, completed)
	return t, nil
}

func ToggleMessage(workerName, jobTitle string, assignmentID uuid.UUID, completed bool) string {
	who := strings.TrimSpace(workerName)
	if who == "" {
		who = "A worker"
	}

	what := "assignment " + shortID(assignmentID)
	if title := strings.TrimSpace(jobTitle); title != "" {
		what = fmt.Sprintf("assignment %q", title)
	}

	state := "as incomplete"
	if completed {
		state = "as completed"
	}
	return fmt.Sprintf("%s marked %s %s", who, what, state)
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return "#" + s[:8]
	}
	return "#" + s
}
