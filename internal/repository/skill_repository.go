package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	List(ctx context.Context) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM skills ORDER BY lower(name) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// getOrCreateSkill resolves a skill by case-insensitive name, inserting it
// when missing. Safe to call inside a transaction; concurrent creators of
// the same name converge on one row.
func getOrCreateSkill(ctx context.Context, q database.Querier, name, category string) (skill.Skill, error) {
	name = skill.NormalizeName(name)
	if name == "" {
		return skill.Skill{}, ErrSkillNotFound
	}

	if _, err := q.Exec(ctx,
		`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		uuid.New(), name, category,
	); err != nil {
		return skill.Skill{}, err
	}

	var s skill.Skill
	row := q.QueryRow(ctx, `SELECT id, name, category, created_at FROM skills WHERE lower(name) = lower($1)`, name)
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}
