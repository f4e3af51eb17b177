package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSkillNotFound          = errors.New("skill not found")
	ErrWorkerSkillNotFound    = errors.New("worker skill not found")
	ErrWorkerSkillExists      = errors.New("worker skill already exists")
	ErrWorkerSkillForbidden   = errors.New("worker skill belongs to another worker")
	ErrJobNotFound            = errors.New("job not found")
	ErrJobHasAssignments      = errors.New("job has assignments")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrActiveAssignmentExists = errors.New("active assignment already exists")
	ErrTaskNotFound           = errors.New("task not found")
	ErrNotificationNotFound   = errors.New("notification not found")
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}
