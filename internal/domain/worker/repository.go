package worker

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("worker not found")
	ErrEmailTaken = errors.New("worker email already registered")
)

type Repository interface {
	Create(ctx context.Context, w Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (Worker, error)
	GetByEmail(ctx context.Context, email string) (Worker, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, w Worker) error
	List(ctx context.Context, limit int) ([]Worker, error)
}
