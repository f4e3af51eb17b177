package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workmatch/internal/domain/worker"

	"github.com/google/uuid"
)

// WorkerRepository keeps its hot statements prepared for the lifetime of the
// process.
type WorkerRepository struct {
	db *sql.DB

	stmtCreate     *sql.Stmt
	stmtGetByID    *sql.Stmt
	stmtGetByEmail *sql.Stmt
	stmtExists     *sql.Stmt
}

const workerColumns = `id, name, email, password_hash, phone, qualifications, created_at`

func NewWorkerRepository(ctx context.Context, db *sql.DB) (*WorkerRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r := &WorkerRepository{db: db}

	var err error
	prepare := func(dst **sql.Stmt, query string) {
		if err != nil {
			return
		}
		*dst, err = db.PrepareContext(ctx, query)
	}

	prepare(&r.stmtCreate, `INSERT INTO workers (id, name, email, password_hash, phone, qualifications) VALUES ($1, $2, $3, $4, $5, $6)`)
	prepare(&r.stmtGetByID, `SELECT `+workerColumns+` FROM workers WHERE id = $1`)
	prepare(&r.stmtGetByEmail, `SELECT `+workerColumns+` FROM workers WHERE lower(email) = lower($1)`)
	prepare(&r.stmtExists, `SELECT EXISTS(SELECT 1 FROM workers WHERE lower(email) = lower($1))`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *WorkerRepository) Close() error {
	var c stmtCloser
	c.close(r.stmtCreate)
	c.close(r.stmtGetByID)
	c.close(r.stmtGetByEmail)
	c.close(r.stmtExists)
	return c.firstErr
}

func (r *WorkerRepository) Create(ctx context.Context, w worker.Worker) error {
	_, err := r.stmtCreate.ExecContext(ctx, w.ID, w.Name, w.Email, w.PasswordHash, w.Phone, w.Qualifications)
	if err != nil && isUniqueViolation(err) {
		return worker.ErrEmailTaken
	}
	return err
}

func (r *WorkerRepository) GetByID(ctx context.Context, id uuid.UUID) (worker.Worker, error) {
	return scanWorker(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *WorkerRepository) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	return scanWorker(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *WorkerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExists.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update rewrites the mutable profile columns. Email is not changeable.
func (r *WorkerRepository) Update(ctx context.Context, w worker.Worker) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workers SET name = $1, phone = $2, qualifications = $3, password_hash = $4 WHERE id = $5`,
		w.Name, w.Phone, w.Qualifications, w.PasswordHash, w.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return worker.ErrNotFound
	}
	return nil
}

func (r *WorkerRepository) List(ctx context.Context, limit int) ([]worker.Worker, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY name ASC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]worker.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		w.PasswordHash = ""
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorker(row rowScanner) (worker.Worker, error) {
	var w worker.Worker
	if err := row.Scan(&w.ID, &w.Name, &w.Email, &w.PasswordHash, &w.Phone, &w.Qualifications, &w.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return worker.Worker{}, worker.ErrNotFound
		}
		return worker.Worker{}, err
	}
	return w, nil
}
