package profile

import (
	"context"
	"errors"
	"strings"

	"workmatch/internal/domain/worker"
	ucauth "workmatch/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("worker not found")
	ErrInternal     = errors.New("internal error")
)

// UpdateInput carries the fields a worker may change on their own profile.
// Nil means unchanged.
type UpdateInput struct {
	Name           *string
	Phone          *string
	Qualifications *string
	Password       *string
}

type Service struct {
	workers worker.Repository
}

func NewService(workers worker.Repository) *Service {
	return &Service{workers: workers}
}

func (s *Service) Update(ctx context.Context, workerID uuid.UUID, in UpdateInput) (worker.Worker, error) {
	w, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			return worker.Worker{}, ErrNotFound
		}
		return worker.Worker{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.Join(strings.Fields(*in.Name), " ")
		if name == "" {
			return worker.Worker{}, ErrInvalidInput
		}
		w.Name = name
	}
	if in.Phone != nil {
		w.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Qualifications != nil {
		w.Qualifications = strings.TrimSpace(*in.Qualifications)
	}
	if in.Password != nil {
		if ucauth.PasswordProblem(*in.Password) != "" {
			return worker.Worker{}, ErrInvalidInput
		}
		hash, err := ucauth.HashPassword(*in.Password)
		if err != nil {
			return worker.Worker{}, ErrInternal
		}
		w.PasswordHash = hash
	}

	if err := s.workers.Update(ctx, w); err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			return worker.Worker{}, ErrNotFound
		}
		return worker.Worker{}, ErrInternal
	}

	w.PasswordHash = ""
	return w, nil
}
