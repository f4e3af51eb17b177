package skill

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinLevel     = 1
	MaxLevel     = 5
	DefaultLevel = 3
)

var ErrInvalidLevel = errors.New("skill level must be between 1 and 5")

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type WorkerSkill struct {
	ID          uuid.UUID
	WorkerID    uuid.UUID
	SkillID     uuid.UUID
	SkillName   string
	Proficiency int
}

type JobSkill struct {
	JobID         uuid.UUID
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
}

func ValidLevel(v int) bool {
	return v >= MinLevel && v <= MaxLevel
}

// NormalizeName trims and collapses inner whitespace. Names compare
// case-insensitively; see Key.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func Key(name string) string {
	return strings.ToLower(NormalizeName(name))
}
