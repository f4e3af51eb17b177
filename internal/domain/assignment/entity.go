package assignment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var ErrInvalidStatus = errors.New("invalid assignment status")

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Assignment struct {
	ID                  uuid.UUID
	WorkerID            uuid.UUID
	JobID               uuid.UUID
	AssignedByManagerID uuid.UUID
	Status              Status
	AssignedAt          time.Time
	CompletedAt         *time.Time

	// Read-side joins.
	WorkerName  string
	JobTitle    string
	ManagerName string
}

type Task struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	Title        string
	Completed    bool
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

// WithTasks is the worker dashboard view of an assignment.
type WithTasks struct {
	Assignment
	Tasks []Task
}
