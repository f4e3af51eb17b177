package worker

import (
	"time"

	"github.com/google/uuid"
)

type Worker struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	Phone          string
	Qualifications string
	CreatedAt      time.Time
}

type Certification struct {
	ID        uuid.UUID
	WorkerID  uuid.UUID
	Title     string
	Issuer    string
	Year      *int
	CreatedAt time.Time
}
