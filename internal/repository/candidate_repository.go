package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/matching"

	"github.com/google/uuid"
)

// CandidateRepository loads the inputs of candidate ranking: the job's
// requirements and every worker with the subset of skills relevant to it.
type CandidateRepository interface {
	Requirements(ctx context.Context, jobID uuid.UUID) ([]matching.Requirement, error)
	WorkerProfiles(ctx context.Context, jobID uuid.UUID) ([]matching.WorkerProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Requirements(ctx context.Context, jobID uuid.UUID) ([]matching.Requirement, error) {
	m, err := findJobSkills(ctx, r.db, []uuid.UUID{jobID})
	if err != nil {
		return nil, err
	}
	rows := m[jobID]
	out := make([]matching.Requirement, 0, len(rows))
	for _, js := range rows {
		out = append(out, matching.Requirement{
			SkillID:       js.SkillID,
			SkillName:     js.SkillName,
			RequiredLevel: js.RequiredLevel,
		})
	}
	return out, nil
}

// WorkerProfiles returns all workers, including those without any relevant
// skill, so zero-score workers can still fill the shortlist.
func (r *PostgresCandidateRepository) WorkerProfiles(ctx context.Context, jobID uuid.UUID) ([]matching.WorkerProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT w.id, w.name,
		        COALESCE(ws.skill_id, '00000000-0000-0000-0000-000000000000'::uuid),
		        COALESCE(s.name, ''),
		        COALESCE(ws.proficiency, 0)
		 FROM workers w
		 LEFT JOIN worker_skills ws
		        ON ws.worker_id = w.id
		       AND ws.skill_id IN (SELECT skill_id FROM job_skills WHERE job_id = $1)
		 LEFT JOIN skills s ON s.id = ws.skill_id
		 ORDER BY w.id`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.WorkerProfile, 0)
	idx := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			workerID uuid.UUID
			name     string
			ws       matching.WorkerSkill
		)
		if err := rows.Scan(&workerID, &name, &ws.SkillID, &ws.SkillName, &ws.Proficiency); err != nil {
			return nil, err
		}

		i, ok := idx[workerID]
		if !ok {
			i = len(out)
			idx[workerID] = i
			out = append(out, matching.WorkerProfile{WorkerID: workerID, Name: name})
		}
		if ws.SkillID != uuid.Nil {
			out[i].Skills = append(out[i].Skills, ws)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
