package job

import (
	"time"

	"workmatch/internal/domain/skill"

	"github.com/google/uuid"
)

type Job struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	CreatedByManagerID *uuid.UUID
	CreatedAt          time.Time

	Skills []skill.JobSkill
}

// SkillInput is a requirement as typed by a manager: a skill name that may
// not exist yet and the level demanded.
type SkillInput struct {
	Name          string
	RequiredLevel int
}
