package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workmatch/internal/domain/manager"

	"github.com/google/uuid"
)

type ManagerRepository struct {
	db *sql.DB

	stmtCreate     *sql.Stmt
	stmtGetByID    *sql.Stmt
	stmtGetByEmail *sql.Stmt
	stmtExists     *sql.Stmt
}

func NewManagerRepository(ctx context.Context, db *sql.DB) (*ManagerRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r := &ManagerRepository{db: db}

	var err error
	prepare := func(dst **sql.Stmt, query string) {
		if err != nil {
			return
		}
		*dst, err = db.PrepareContext(ctx, query)
	}

	prepare(&r.stmtCreate, `INSERT INTO managers (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`)
	prepare(&r.stmtGetByID, `SELECT id, name, email, password_hash, created_at FROM managers WHERE id = $1`)
	prepare(&r.stmtGetByEmail, `SELECT id, name, email, password_hash, created_at FROM managers WHERE lower(email) = lower($1)`)
	prepare(&r.stmtExists, `SELECT EXISTS(SELECT 1 FROM managers WHERE lower(email) = lower($1))`)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *ManagerRepository) Close() error {
	var c stmtCloser
	c.close(r.stmtCreate)
	c.close(r.stmtGetByID)
	c.close(r.stmtGetByEmail)
	c.close(r.stmtExists)
	return c.firstErr
}

func (r *ManagerRepository) Create(ctx context.Context, m manager.Manager) error {
	_, err := r.stmtCreate.ExecContext(ctx, m.ID, m.Name, m.Email, m.PasswordHash)
	if err != nil && isUniqueViolation(err) {
		return manager.ErrEmailTaken
	}
	return err
}

func (r *ManagerRepository) GetByID(ctx context.Context, id uuid.UUID) (manager.Manager, error) {
	return scanManager(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *ManagerRepository) GetByEmail(ctx context.Context, email string) (manager.Manager, error) {
	return scanManager(r.stmtGetByEmail.QueryRowContext(ctx, email))
}

func (r *ManagerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExists.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ManagerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM managers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanManager(row rowScanner) (manager.Manager, error) {
	var m manager.Manager
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return manager.Manager{}, manager.ErrNotFound
		}
		return manager.Manager{}, err
	}
	return m, nil
}
