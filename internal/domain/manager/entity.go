package manager

import (
	"time"

	"github.com/google/uuid"
)

type Manager struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
