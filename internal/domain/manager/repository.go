package manager

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("manager not found")
	ErrEmailTaken = errors.New("manager email already registered")
)

type Repository interface {
	Create(ctx context.Context, m Manager) error
	GetByID(ctx context.Context, id uuid.UUID) (Manager, error)
	GetByEmail(ctx context.Context, email string) (Manager, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}
