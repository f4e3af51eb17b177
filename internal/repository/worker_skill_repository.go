package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type WorkerSkillRepository interface {
	FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]skill.WorkerSkill, error)
	// Add resolves skillName to a skill (creating it when new) and attaches
	// it to the worker in one transaction.
	Add(ctx context.Context, workerID uuid.UUID, skillName string, proficiency int) (skill.WorkerSkill, error)
	UpdateProficiency(ctx context.Context, id, workerID uuid.UUID, proficiency int) (skill.WorkerSkill, error)
	Delete(ctx context.Context, id, workerID uuid.UUID) error
}

type PostgresWorkerSkillRepository struct {
	db database.DB
}

func NewPostgresWorkerSkillRepository(db database.DB) *PostgresWorkerSkillRepository {
	return &PostgresWorkerSkillRepository{db: db}
}

const workerSkillSelect = `SELECT ws.id, ws.worker_id, ws.skill_id, s.name, ws.proficiency
	FROM worker_skills ws
	JOIN skills s ON s.id = ws.skill_id`

func (r *PostgresWorkerSkillRepository) FindByWorkerID(ctx context.Context, workerID uuid.UUID) ([]skill.WorkerSkill, error) {
	rows, err := r.db.Query(ctx, workerSkillSelect+` WHERE ws.worker_id = $1 ORDER BY lower(s.name) ASC`, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.WorkerSkill, 0)
	for rows.Next() {
		var ws skill.WorkerSkill
		if err := rows.Scan(&ws.ID, &ws.WorkerID, &ws.SkillID, &ws.SkillName, &ws.Proficiency); err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWorkerSkillRepository) Add(ctx context.Context, workerID uuid.UUID, skillName string, proficiency int) (skill.WorkerSkill, error) {
	var out skill.WorkerSkill
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		s, err := getOrCreateSkill(ctx, tx, skillName, "")
		if err != nil {
			return err
		}

		id := uuid.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO worker_skills (id, worker_id, skill_id, proficiency) VALUES ($1, $2, $3, $4)`,
			id, workerID, s.ID, proficiency,
		); err != nil {
			if isUniqueViolation(err) {
				return ErrWorkerSkillExists
			}
			return err
		}

		out = skill.WorkerSkill{ID: id, WorkerID: workerID, SkillID: s.ID, SkillName: s.Name, Proficiency: proficiency}
		return nil
	})
	if err != nil {
		return skill.WorkerSkill{}, err
	}
	return out, nil
}

func (r *PostgresWorkerSkillRepository) UpdateProficiency(ctx context.Context, id, workerID uuid.UUID, proficiency int) (skill.WorkerSkill, error) {
	if err := r.checkOwner(ctx, id, workerID); err != nil {
		return skill.WorkerSkill{}, err
	}

	if _, err := r.db.Exec(ctx,
		`UPDATE worker_skills SET proficiency = $1 WHERE id = $2 AND worker_id = $3`,
		proficiency, id, workerID,
	); err != nil {
		return skill.WorkerSkill{}, err
	}

	var ws skill.WorkerSkill
	row := r.db.QueryRow(ctx, workerSkillSelect+` WHERE ws.id = $1`, id)
	if err := row.Scan(&ws.ID, &ws.WorkerID, &ws.SkillID, &ws.SkillName, &ws.Proficiency); err != nil {
		if isNoRows(err) {
			return skill.WorkerSkill{}, ErrWorkerSkillNotFound
		}
		return skill.WorkerSkill{}, err
	}
	return ws, nil
}

func (r *PostgresWorkerSkillRepository) Delete(ctx context.Context, id, workerID uuid.UUID) error {
	if err := r.checkOwner(ctx, id, workerID); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, `DELETE FROM worker_skills WHERE id = $1 AND worker_id = $2`, id, workerID)
	return err
}

func (r *PostgresWorkerSkillRepository) checkOwner(ctx context.Context, id, workerID uuid.UUID) error {
	var owner uuid.UUID
	if err := r.db.QueryRow(ctx, `SELECT worker_id FROM worker_skills WHERE id = $1`, id).Scan(&owner); err != nil {
		if isNoRows(err) {
			return ErrWorkerSkillNotFound
		}
		return err
	}
	if owner != workerID {
		return ErrWorkerSkillForbidden
	}
	return nil
}
