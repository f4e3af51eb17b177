package repository

import (
	"context"
	"time"

	"workmatch/internal/database"
	"workmatch/internal/domain/assignment"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(ctx context.Context, t assignment.Task) (assignment.Task, error)
	// GetWithOwner returns the task and the worker of its assignment.
	GetWithOwner(ctx context.Context, taskID uuid.UUID) (assignment.Task, uuid.UUID, error)
	SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool, at *time.Time) (assignment.Task, error)
}

type PostgresTaskRepository struct {
	db database.DB
}

func NewPostgresTaskRepository(db database.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t assignment.Task) (assignment.Task, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, assignment_id, title) VALUES ($1, $2, $3) RETURNING created_at`,
		t.ID, t.AssignmentID, t.Title,
	)
	if err := row.Scan(&t.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return assignment.Task{}, ErrAssignmentNotFound
		}
		return assignment.Task{}, err
	}
	return t, nil
}

func (r *PostgresTaskRepository) GetWithOwner(ctx context.Context, taskID uuid.UUID) (assignment.Task, uuid.UUID, error) {
	var (
		t     assignment.Task
		owner uuid.UUID
	)
	row := r.db.QueryRow(ctx,
		`SELECT t.id, t.assignment_id, t.title, t.completed, t.completed_at, t.created_at, a.worker_id
		 FROM tasks t
		 JOIN assignments a ON a.id = t.assignment_id
		 WHERE t.id = $1`,
		taskID,
	)
	if err := row.Scan(&t.ID, &t.AssignmentID, &t.Title, &t.Completed, &t.CompletedAt, &t.CreatedAt, &owner); err != nil {
		if isNoRows(err) {
			return assignment.Task{}, uuid.Nil, ErrTaskNotFound
		}
		return assignment.Task{}, uuid.Nil, err
	}
	return t, owner, nil
}

func (r *PostgresTaskRepository) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool, at *time.Time) (assignment.Task, error) {
	var t assignment.Task
	row := r.db.QueryRow(ctx,
		`UPDATE tasks SET completed = $1, completed_at = $2
		 WHERE id = $3
		 RETURNING id, assignment_id, title, completed, completed_at, created_at`,
		completed, at, taskID,
	)
	if err := row.Scan(&t.ID, &t.AssignmentID, &t.Title, &t.Completed, &t.CompletedAt, &t.CreatedAt); err != nil {
		if isNoRows(err) {
			return assignment.Task{}, ErrTaskNotFound
		}
		return assignment.Task{}, err
	}
	return t, nil
}

func findTasks(ctx context.Context, q database.Querier, assignmentIDs []uuid.UUID) (map[uuid.UUID][]assignment.Task, error) {
	rows, err := q.Query(ctx,
		`SELECT id, assignment_id, title, completed, completed_at, created_at
		 FROM tasks
		 WHERE assignment_id = ANY($1)
		 ORDER BY created_at ASC, id ASC`,
		assignmentIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]assignment.Task, len(assignmentIDs))
	for rows.Next() {
		var t assignment.Task
		if err := rows.Scan(&t.ID, &t.AssignmentID, &t.Title, &t.Completed, &t.CompletedAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		out[t.AssignmentID] = append(out[t.AssignmentID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
