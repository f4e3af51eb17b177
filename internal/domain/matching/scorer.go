// Package matching ranks workers against a job's skill requirements.
//
// A worker's score is the share of the job's required points the worker
// covers: for every shared skill the worker earns min(proficiency, required),
// and the sum is divided by the sum of all required levels of the job.
package matching

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MaxCandidates is the size of a job's candidate shortlist.
const MaxCandidates = 30

type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
}

type WorkerSkill struct {
	SkillID     uuid.UUID
	SkillName   string
	Proficiency int
}

type WorkerProfile struct {
	WorkerID uuid.UUID
	Name     string
	Skills   []WorkerSkill
}

type MatchedSkill struct {
	SkillID       uuid.UUID
	SkillName     string
	Proficiency   int
	RequiredLevel int
	Points        int
}

type MissingSkill struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel int
}

type Candidate struct {
	WorkerID      uuid.UUID
	WorkerName    string
	MatchedPoints int
	TotalRequired int
	Score         float64
	MatchedSkills []MatchedSkill
	MissingSkills []MissingSkill
}

// TotalRequired sums the required levels of a job. Requirements without a
// skill or with a non-positive level are ignored.
func TotalRequired(reqs []Requirement) int {
	total := 0
	for _, r := range normalizeRequirements(reqs) {
		total += r.RequiredLevel
	}
	return total
}

// Score computes one worker's candidate row for a job.
func Score(reqs []Requirement, w WorkerProfile) Candidate {
	return score(normalizeRequirements(reqs), w)
}

// Rank scores every worker and returns the best limit candidates ordered by
// score desc, matched points desc, then name and id for a stable order.
// limit <= 0 means MaxCandidates.
func Rank(reqs []Requirement, workers []WorkerProfile, limit int) []Candidate {
	if limit <= 0 {
		limit = MaxCandidates
	}

	norm := normalizeRequirements(reqs)
	out := make([]Candidate, 0, len(workers))
	for _, w := range workers {
		if w.WorkerID == uuid.Nil {
			continue
		}
		out = append(out, score(norm, w))
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.MatchedPoints != b.MatchedPoints {
			return a.MatchedPoints > b.MatchedPoints
		}
		an, bn := strings.ToLower(a.WorkerName), strings.ToLower(b.WorkerName)
		if an != bn {
			return an < bn
		}
		return a.WorkerID.String() < b.WorkerID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func score(reqs []Requirement, w WorkerProfile) Candidate {
	c := Candidate{
		WorkerID:      w.WorkerID,
		WorkerName:    w.Name,
		MatchedSkills: make([]MatchedSkill, 0),
		MissingSkills: make([]MissingSkill, 0),
	}

	bySkill := make(map[uuid.UUID]WorkerSkill, len(w.Skills))
	for _, s := range w.Skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		bySkill[s.SkillID] = s
	}

	for _, r := range reqs {
		c.TotalRequired += r.RequiredLevel

		ws, ok := bySkill[r.SkillID]
		if !ok || ws.Proficiency <= 0 {
			c.MissingSkills = append(c.MissingSkills, MissingSkill{
				SkillID:       r.SkillID,
				SkillName:     r.SkillName,
				RequiredLevel: r.RequiredLevel,
			})
			continue
		}

		pts := min(ws.Proficiency, r.RequiredLevel)
		c.MatchedPoints += pts
		c.MatchedSkills = append(c.MatchedSkills, MatchedSkill{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			Proficiency:   ws.Proficiency,
			RequiredLevel: r.RequiredLevel,
			Points:        pts,
		})
	}

	if c.TotalRequired > 0 {
		c.Score = float64(c.MatchedPoints) / float64(c.TotalRequired)
	}
	return c
}

// normalizeRequirements drops invalid rows and keeps the last level seen for
// a skill listed twice.
func normalizeRequirements(reqs []Requirement) []Requirement {
	idx := make(map[uuid.UUID]int, len(reqs))
	out := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		if r.SkillID == uuid.Nil || r.RequiredLevel <= 0 {
			continue
		}
		if i, ok := idx[r.SkillID]; ok {
			out[i] = r
			continue
		}
		idx[r.SkillID] = len(out)
		out = append(out, r)
	}
	return out
}
