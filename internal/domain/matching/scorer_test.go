package matching

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	skillA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	skillB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	skillC = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

func jobAB() []Requirement {
	return []Requirement{
		{SkillID: skillA, SkillName: "A", RequiredLevel: 4},
		{SkillID: skillB, SkillName: "B", RequiredLevel: 2},
	}
}

func TestScore_PartialCoverage(t *testing.T) {
	w := WorkerProfile{
		WorkerID: uuid.New(),
		Name:     "Ana",
		Skills: []WorkerSkill{
			{SkillID: skillA, SkillName: "A", Proficiency: 5},
			{SkillID: skillB, SkillName: "B", Proficiency: 1},
		},
	}

	c := Score(jobAB(), w)

	assert.Equal(t, 5, c.MatchedPoints)
	assert.Equal(t, 6, c.TotalRequired)
	assert.InDelta(t, 0.833, c.Score, 0.001)
	require.Len(t, c.MatchedSkills, 2)
	assert.Equal(t, 4, c.MatchedSkills[0].Points)
	assert.Equal(t, 1, c.MatchedSkills[1].Points)
	assert.Empty(t, c.MissingSkills)
}

func TestScore_NoOverlap(t *testing.T) {
	w := WorkerProfile{
		WorkerID: uuid.New(),
		Skills:   []WorkerSkill{{SkillID: skillC, Proficiency: 5}},
	}

	c := Score(jobAB(), w)

	assert.Zero(t, c.Score)
	assert.Zero(t, c.MatchedPoints)
	assert.Equal(t, 6, c.TotalRequired)
	assert.Len(t, c.MissingSkills, 2)
}

func TestScore_JobWithoutRequirements(t *testing.T) {
	w := WorkerProfile{
		WorkerID: uuid.New(),
		Skills:   []WorkerSkill{{SkillID: skillA, Proficiency: 5}},
	}

	c := Score(nil, w)

	assert.Zero(t, c.Score)
	assert.Zero(t, c.TotalRequired)
}

func TestScore_ProficiencyCappedAtRequired(t *testing.T) {
	reqs := []Requirement{{SkillID: skillA, RequiredLevel: 2}}
	w := WorkerProfile{WorkerID: uuid.New(), Skills: []WorkerSkill{{SkillID: skillA, Proficiency: 5}}}

	c := Score(reqs, w)

	assert.Equal(t, 2, c.MatchedPoints)
	assert.Equal(t, 1.0, c.Score)
}

func TestScore_DuplicateRequirementKeepsLast(t *testing.T) {
	reqs := []Requirement{
		{SkillID: skillA, RequiredLevel: 2},
		{SkillID: skillA, RequiredLevel: 4},
	}
	assert.Equal(t, 4, TotalRequired(reqs))
}

func TestRank_Ordering(t *testing.T) {
	strong := WorkerProfile{WorkerID: uuid.New(), Name: "Strong", Skills: []WorkerSkill{
		{SkillID: skillA, Proficiency: 4}, {SkillID: skillB, Proficiency: 2},
	}}
	partial := WorkerProfile{WorkerID: uuid.New(), Name: "Partial", Skills: []WorkerSkill{
		{SkillID: skillA, Proficiency: 5}, {SkillID: skillB, Proficiency: 1},
	}}
	none := WorkerProfile{WorkerID: uuid.New(), Name: "None"}

	got := Rank(jobAB(), []WorkerProfile{none, partial, strong}, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "Strong", got[0].WorkerName)
	assert.Equal(t, "Partial", got[1].WorkerName)
	assert.Equal(t, "None", got[2].WorkerName)
	assert.Zero(t, got[2].Score)
}

func TestRank_TieBreakByName(t *testing.T) {
	a := WorkerProfile{WorkerID: uuid.New(), Name: "bruno", Skills: []WorkerSkill{{SkillID: skillA, Proficiency: 3}}}
	b := WorkerProfile{WorkerID: uuid.New(), Name: "Alice", Skills: []WorkerSkill{{SkillID: skillA, Proficiency: 3}}}

	got := Rank(jobAB(), []WorkerProfile{a, b}, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].WorkerName)
	assert.Equal(t, "bruno", got[1].WorkerName)
}

func TestRank_CapsAtMaxCandidates(t *testing.T) {
	workers := make([]WorkerProfile, 0, 45)
	for i := 0; i < 45; i++ {
		workers = append(workers, WorkerProfile{
			WorkerID: uuid.New(),
			Name:     fmt.Sprintf("w%02d", i),
			Skills:   []WorkerSkill{{SkillID: skillA, Proficiency: i%5 + 1}},
		})
	}

	got := Rank(jobAB(), workers, 0)

	require.Len(t, got, MaxCandidates)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	assert.Equal(t, 4, got[0].MatchedPoints)
}

func TestRank_SkipsNilWorker(t *testing.T) {
	got := Rank(jobAB(), []WorkerProfile{{Name: "ghost"}}, 5)
	assert.Empty(t, got)
}
