package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain"
)

type StatusRepository interface {
	Counts(ctx context.Context) (domain.Counts, error)
}

type PostgresStatusRepository struct {
	db database.DB
}

func NewPostgresStatusRepository(db database.DB) *PostgresStatusRepository {
	return &PostgresStatusRepository{db: db}
}

func (r *PostgresStatusRepository) Counts(ctx context.Context) (domain.Counts, error) {
	var c domain.Counts
	row := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM workers),
			(SELECT COUNT(*) FROM managers),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM assignments WHERE status = 'active'),
			(SELECT COUNT(*) FROM notifications WHERE is_read = false)`,
	)
	if err := row.Scan(&c.Workers, &c.Managers, &c.Jobs, &c.ActiveAssignments, &c.UnreadNotices); err != nil {
		return domain.Counts{}, err
	}
	return c, nil
}
