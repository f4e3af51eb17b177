package repository

import (
	"context"
	"fmt"

	"workmatch/internal/database"
	"workmatch/internal/domain/assignment"
	"workmatch/internal/domain/notification"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error)
	ExistsActive(ctx context.Context, workerID, jobID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (assignment.Assignment, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]assignment.WithTasks, error)
	// ApplyTransition persists the new status and the manager notification
	// in a single transaction and returns the stored notification.
	ApplyTransition(ctx context.Context, tr assignment.Transition) (notification.Notification, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

const assignmentSelect = `SELECT a.id, a.worker_id, a.job_id, a.assigned_by_manager_id, a.status,
		a.assigned_at, a.completed_at, w.name, j.title, m.name
	FROM assignments a
	JOIN workers w ON w.id = a.worker_id
	JOIN jobs j ON j.id = a.job_id
	JOIN managers m ON m.id = a.assigned_by_manager_id`

func scanAssignment(row database.Row) (assignment.Assignment, error) {
	var (
		a      assignment.Assignment
		status string
	)
	if err := row.Scan(
		&a.ID, &a.WorkerID, &a.JobID, &a.AssignedByManagerID, &status,
		&a.AssignedAt, &a.CompletedAt, &a.WorkerName, &a.JobTitle, &a.ManagerName,
	); err != nil {
		return assignment.Assignment{}, err
	}
	st, err := assignment.ParseStatus(status)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("assignment %s: %w", a.ID, err)
	}
	a.Status = st
	return a, nil
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Status = assignment.StatusActive
	a.CompletedAt = nil

	row := r.db.QueryRow(ctx,
		`INSERT INTO assignments (id, worker_id, job_id, assigned_by_manager_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING assigned_at`,
		a.ID, a.WorkerID, a.JobID, a.AssignedByManagerID, string(a.Status),
	)
	if err := row.Scan(&a.AssignedAt); err != nil {
		if isUniqueViolation(err) {
			return assignment.Assignment{}, ErrActiveAssignmentExists
		}
		return assignment.Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) ExistsActive(ctx context.Context, workerID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE worker_id = $1 AND job_id = $2 AND status = 'active')`,
		workerID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (assignment.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return assignment.Assignment{}, ErrAssignmentNotFound
		}
		return assignment.Assignment{}, err
	}
	return a, nil
}

func (r *PostgresAssignmentRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]assignment.WithTasks, error) {
	rows, err := r.db.Query(ctx, assignmentSelect+` WHERE a.worker_id = $1 ORDER BY a.assigned_at DESC, a.id ASC`, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assignment.WithTasks, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment.WithTasks{Assignment: a, Tasks: make([]assignment.Task, 0)})
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	tasks, err := findTasks(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if ts := tasks[out[i].ID]; ts != nil {
			out[i].Tasks = ts
		}
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) ApplyTransition(ctx context.Context, tr assignment.Transition) (notification.Notification, error) {
	n := notification.Notification{
		ID:           uuid.New(),
		ManagerID:    tr.ManagerID,
		WorkerID:     tr.WorkerID,
		AssignmentID: tr.AssignmentID,
		Message:      tr.Message,
	}

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		affected, err := tx.Exec(ctx,
			`UPDATE assignments SET status = $1, completed_at = $2 WHERE id = $3 AND worker_id = $4`,
			string(tr.To), tr.CompletedAt, tr.AssignmentID, tr.WorkerID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrActiveAssignmentExists
			}
			return err
		}
		if affected == 0 {
			return ErrAssignmentNotFound
		}

		row := tx.QueryRow(ctx,
			`INSERT INTO notifications (id, manager_id, worker_id, assignment_id, message)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING created_at`,
			n.ID, n.ManagerID, n.WorkerID, n.AssignmentID, n.Message,
		)
		return row.Scan(&n.CreatedAt)
	})
	if err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}
