package repository

import (
	"context"
	"strings"

	"workmatch/internal/database"
	"workmatch/internal/domain/job"
	"workmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type JobRepository interface {
	// CreateWithSkills stores the job and its requirements atomically. Skill
	// names are resolved case-insensitively and created when unknown.
	CreateWithSkills(ctx context.Context, j job.Job, skills []job.SkillInput) (job.Job, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error)
	Delete(ctx context.Context, jobID uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) CreateWithSkills(ctx context.Context, j job.Job, skills []job.SkillInput) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	j.Skills = make([]skill.JobSkill, 0, len(skills))

	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO jobs (id, title, description, created_by_manager_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING created_at`,
			j.ID, j.Title, j.Description, j.CreatedByManagerID,
		)
		if err := row.Scan(&j.CreatedAt); err != nil {
			return err
		}

		seen := make(map[uuid.UUID]int, len(skills))
		for _, in := range skills {
			s, err := getOrCreateSkill(ctx, tx, in.Name, "")
			if err != nil {
				return err
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO job_skills (job_id, skill_id, required_level)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (job_id, skill_id) DO UPDATE SET required_level = EXCLUDED.required_level`,
				j.ID, s.ID, in.RequiredLevel,
			); err != nil {
				return err
			}

			js := skill.JobSkill{JobID: j.ID, SkillID: s.ID, SkillName: s.Name, RequiredLevel: in.RequiredLevel}
			if i, ok := seen[s.ID]; ok {
				j.Skills[i] = js
				continue
			}
			seen[s.ID] = len(j.Skills)
			j.Skills = append(j.Skills, js)
		}
		return nil
	})
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	var j job.Job
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, created_by_manager_id, created_at FROM jobs WHERE id = $1`,
		jobID,
	)
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.CreatedByManagerID, &j.CreatedAt); err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	reqs, err := findJobSkills(ctx, r.db, []uuid.UUID{jobID})
	if err != nil {
		return job.Job{}, err
	}
	j.Skills = reqs[jobID]
	if j.Skills == nil {
		j.Skills = make([]skill.JobSkill, 0)
	}
	return j, nil
}

// ListJobs returns jobs newest first, each with its requirements.
func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, created_by_manager_id, created_at
		 FROM jobs
		 ORDER BY created_at DESC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.CreatedByManagerID, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	reqs, err := findJobSkills(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = reqs[out[i].ID]
		if out[i].Skills == nil {
			out[i].Skills = make([]skill.JobSkill, 0)
		}
	}
	return out, nil
}

// Delete removes a job and its requirements. Jobs referenced by any
// assignment are kept and ErrJobHasAssignments is returned.
func (r *PostgresJobRepository) Delete(ctx context.Context, jobID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrJobHasAssignments
		}
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}
