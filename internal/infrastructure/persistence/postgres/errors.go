package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type stmtCloser struct {
	firstErr error
}

func (c *stmtCloser) close(s *sql.Stmt) {
	if s == nil {
		return
	}
	if err := s.Close(); err != nil && c.firstErr == nil {
		c.firstErr = err
	}
}
