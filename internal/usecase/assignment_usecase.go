package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"workmatch/internal/domain/assignment"
	"workmatch/internal/domain/notification"
	"workmatch/internal/domain/worker"
	"workmatch/internal/pkg/logger"
	"workmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationPublisher pushes a stored notification to live listeners.
// Delivery is best effort.
type NotificationPublisher interface {
	PublishNotification(n notification.Notification)
}

type AssignmentUsecase interface {
	Assign(ctx context.Context, managerID, workerID, jobID uuid.UUID) (assignment.Assignment, error)
	ToggleAssignment(ctx context.Context, workerID, assignmentID uuid.UUID, completed bool) (assignment.Assignment, error)
	ListForWorker(ctx context.Context, workerID uuid.UUID) ([]assignment.WithTasks, error)

	AddTask(ctx context.Context, managerID, assignmentID uuid.UUID, title string) (assignment.Task, error)
	ToggleTask(ctx context.Context, workerID, taskID uuid.UUID, completed bool) (assignment.Task, error)
}

type Assignment struct {
	workers     worker.Repository
	jobs        repository.JobRepository
	assignments repository.AssignmentRepository
	tasks       repository.TaskRepository
	publisher   NotificationPublisher
	log         *zap.Logger
	now         func() time.Time
}

func NewAssignmentUsecase(
	workers worker.Repository,
	jobs repository.JobRepository,
	assignments repository.AssignmentRepository,
	tasks repository.TaskRepository,
	publisher NotificationPublisher,
	log *zap.Logger,
) *Assignment {
	return &Assignment{
		workers:     workers,
		jobs:        jobs,
		assignments: assignments,
		tasks:       tasks,
		publisher:   publisher,
		log:         logger.OrNop(log),
		now:         time.Now,
	}
}

func (u *Assignment) Assign(ctx context.Context, managerID, workerID, jobID uuid.UUID) (assignment.Assignment, error) {
	if managerID == uuid.Nil {
		return assignment.Assignment{}, ErrUnauthorized
	}
	if workerID == uuid.Nil || jobID == uuid.Nil {
		return assignment.Assignment{}, ErrInvalidInput
	}

	w, err := u.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrNotFound) {
			return assignment.Assignment{}, ErrWorkerNotFound
		}
		return assignment.Assignment{}, ErrInternal
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return assignment.Assignment{}, ErrJobNotFound
		}
		return assignment.Assignment{}, ErrInternal
	}

	active, err := u.assignments.ExistsActive(ctx, workerID, jobID)
	if err != nil {
		return assignment.Assignment{}, ErrInternal
	}
	if active {
		return assignment.Assignment{}, ErrAssignmentExists
	}

	created, err := u.assignments.Create(ctx, assignment.Assignment{
		WorkerID:            workerID,
		JobID:               jobID,
		AssignedByManagerID: managerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrActiveAssignmentExists) {
			return assignment.Assignment{}, ErrAssignmentExists
		}
		u.log.Error("create assignment failed",
			zap.String("worker_id", workerID.String()),
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
		return assignment.Assignment{}, ErrInternal
	}

	created.WorkerName = w.Name
	created.JobTitle = j.Title
	return created, nil
}

// ToggleAssignment records the worker's completed/incomplete choice and
// notifies the assigning manager. Every accepted call stores a notification,
// even when the status does not change.
func (u *Assignment) ToggleAssignment(ctx context.Context, workerID, assignmentID uuid.UUID, completed bool) (assignment.Assignment, error) {
	if workerID == uuid.Nil {
		return assignment.Assignment{}, ErrUnauthorized
	}
	if assignmentID == uuid.Nil {
		return assignment.Assignment{}, ErrAssignmentNotFound
	}

	a, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return assignment.Assignment{}, ErrAssignmentNotFound
		}
		return assignment.Assignment{}, ErrInternal
	}

	tr, err := a.Toggle(workerID, completed, u.now())
	if err != nil {
		if errors.Is(err, assignment.ErrNotOwner) {
			return assignment.Assignment{}, ErrForbidden
		}
		return assignment.Assignment{}, ErrInternal
	}

	n, err := u.assignments.ApplyTransition(ctx, tr)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAssignmentNotFound):
			return assignment.Assignment{}, ErrAssignmentNotFound
		case errors.Is(err, repository.ErrActiveAssignmentExists):
			return assignment.Assignment{}, ErrAssignmentExists
		}
		u.log.Error("apply assignment transition failed",
			zap.String("assignment_id", assignmentID.String()),
			zap.String("to", string(tr.To)),
			zap.Error(err),
		)
		return assignment.Assignment{}, ErrInternal
	}

	a.Status = tr.To
	a.CompletedAt = tr.CompletedAt

	n.WorkerName = a.WorkerName
	n.JobID = a.JobID
	n.JobTitle = a.JobTitle
	if u.publisher != nil {
		u.publisher.PublishNotification(n)
	}

	u.log.Info("assignment toggled",
		zap.String("assignment_id", a.ID.String()),
		zap.String("from", string(tr.From)),
		zap.String("to", string(tr.To)),
	)
	return a, nil
}

func (u *Assignment) ListForWorker(ctx context.Context, workerID uuid.UUID) ([]assignment.WithTasks, error) {
	if workerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.assignments.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Assignment) AddTask(ctx context.Context, managerID, assignmentID uuid.UUID, title string) (assignment.Task, error) {
	if managerID == uuid.Nil {
		return assignment.Task{}, ErrUnauthorized
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return assignment.Task{}, ErrInvalidInput
	}

	if _, err := u.assignments.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return assignment.Task{}, ErrAssignmentNotFound
		}
		return assignment.Task{}, ErrInternal
	}

	t, err := u.tasks.Create(ctx, assignment.Task{AssignmentID: assignmentID, Title: title})
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return assignment.Task{}, ErrAssignmentNotFound
		}
		return assignment.Task{}, ErrInternal
	}
	return t, nil
}

func (u *Assignment) ToggleTask(ctx context.Context, workerID, taskID uuid.UUID, completed bool) (assignment.Task, error) {
	if workerID == uuid.Nil {
		return assignment.Task{}, ErrUnauthorized
	}

	t, owner, err := u.tasks.GetWithOwner(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return assignment.Task{}, ErrTaskNotFound
		}
		return assignment.Task{}, ErrInternal
	}
	if owner != workerID {
		return assignment.Task{}, ErrForbidden
	}

	var at *time.Time
	if completed {
		now := u.now().UTC()
		if t.Completed && t.CompletedAt != nil {
			now = t.CompletedAt.UTC()
		}
		at = &now
	}

	updated, err := u.tasks.SetCompleted(ctx, taskID, completed, at)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return assignment.Task{}, ErrTaskNotFound
		}
		return assignment.Task{}, ErrInternal
	}
	return updated, nil
}
