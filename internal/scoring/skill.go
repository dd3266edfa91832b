// Package scoring implements the deterministic match calculators: weighted
// skill matching, experience tiering, education matching, and the composite
// score that combines them.
package scoring

import (
	"sort"

	"github.com/jonathan/jobmatch/internal/types"
)

// SkillMatch is the output of scoring a candidate profile against a job's
// weighted required-skill list.
type SkillMatch struct {
	Score     float64
	Strengths []string
	Gaps      []types.Gap
	Breakdown map[string]types.SkillScore
}

// MatchSkills scores the candidate's profile against the job's required
// skills. Each skill contributes min(have/need, 1)*100 scaled by its weight;
// the final score is the weight-normalized sum. A skill is a strength when
// the candidate meets or exceeds the requirement, otherwise a gap.
//
// A job with zero required skills scores 0, not 100: an empty requirement
// list is treated as missing data, not a trivially perfect match.
//
// A candidate with no recorded skills at all is a data-completeness problem,
// not a poor match, and is reported as a NoSkillsError.
func MatchSkills(profile types.SkillProfile, required []types.RequiredSkill) (SkillMatch, error) {
	if len(profile) == 0 {
		return SkillMatch{}, &NoSkillsError{}
	}

	match := SkillMatch{
		Strengths: make([]string, 0),
		Gaps:      make([]types.Gap, 0),
		Breakdown: make(map[string]types.SkillScore, len(required)),
	}

	totalWeight := 0.0
	weightedScore := 0.0
	for _, req := range required {
		have := profile.Level(req.Name)
		need := req.Level

		denominator := need
		if denominator < 1 {
			denominator = 1
		}
		perSkill := float64(have) / float64(denominator)
		if perSkill > 1 {
			perSkill = 1
		}
		perSkill *= 100

		totalWeight += req.Weight
		weightedScore += perSkill * req.Weight
		match.Breakdown[req.Name] = types.SkillScore{Have: have, Need: need, Score: perSkill}

		if have >= need {
			match.Strengths = append(match.Strengths, req.Name)
		} else {
			match.Gaps = append(match.Gaps, types.Gap{
				Skill:  req.Name,
				Have:   have,
				Need:   need,
				Weight: req.Weight,
			})
		}
	}

	if totalWeight > 0 {
		match.Score = weightedScore / totalWeight
	}

	// Largest deficiency first; ties keep requisition order.
	sort.SliceStable(match.Gaps, func(i, j int) bool {
		return match.Gaps[i].Score() > match.Gaps[j].Score()
	})

	return match, nil
}
