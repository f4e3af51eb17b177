package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/worker"

	"github.com/google/uuid"
)

type CertificationRepository interface {
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]worker.Certification, error)
	Create(ctx context.Context, c worker.Certification) (worker.Certification, error)
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

func (r *PostgresCertificationRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]worker.Certification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, worker_id, title, issuer, year, created_at
		 FROM certifications
		 WHERE worker_id = $1
		 ORDER BY created_at DESC`,
		workerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]worker.Certification, 0)
	for rows.Next() {
		var c worker.Certification
		if err := rows.Scan(&c.ID, &c.WorkerID, &c.Title, &c.Issuer, &c.Year, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCertificationRepository) Create(ctx context.Context, c worker.Certification) (worker.Certification, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO certifications (id, worker_id, title, issuer, year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		c.ID, c.WorkerID, c.Title, c.Issuer, c.Year,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return worker.Certification{}, err
	}
	return c, nil
}
