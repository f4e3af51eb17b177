package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// findJobSkills loads the requirements of several jobs in one query.
func findJobSkills(ctx context.Context, q database.Querier, jobIDs []uuid.UUID) (map[uuid.UUID][]skill.JobSkill, error) {
	rows, err := q.Query(ctx,
		`SELECT js.job_id, js.skill_id, s.name, js.required_level
		 FROM job_skills js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = ANY($1)
		 ORDER BY js.job_id, lower(s.name) ASC`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]skill.JobSkill, len(jobIDs))
	for rows.Next() {
		var it skill.JobSkill
		if err := rows.Scan(&it.JobID, &it.SkillID, &it.SkillName, &it.RequiredLevel); err != nil {
			return nil, err
		}
		out[it.JobID] = append(out[it.JobID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
