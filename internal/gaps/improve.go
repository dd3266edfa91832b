package gaps

import (
	"fmt"
	"sort"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// DefaultTopJobs is how many of the candidate's best-ranked jobs feed
	// the improvement aggregation.
	DefaultTopJobs = 5

	// maxRecommendations caps the aggregated output.
	maxRecommendations = 10

	// actionCount is how many top recommendations become action items.
	actionCount = 3
)

// skillTally accumulates one skill's gap data across jobs.
type skillTally struct {
	impact    float64
	jobTitles []string
}

// Aggregate merges gap data across the candidate's top-ranked jobs into
// prioritized cross-job recommendations. A skill that appears as even a
// small gap across many well-matched jobs is a higher-leverage investment
// than a large gap in a single job, so skills are ranked by aggregate
// impact: the summed requirement weight across all jobs requiring them.
//
// Only successfully scored jobs count toward the top-K window; annotated
// failures are skipped.
func Aggregate(ranked []types.RankedJob, topK int) ([]types.SkillRecommendation, []string) {
	if topK <= 0 {
		topK = DefaultTopJobs
	}

	tallies := make(map[string]*skillTally)
	considered := 0
	for _, job := range ranked {
		if job.Failed || job.Result == nil {
			continue
		}
		if considered >= topK {
			break
		}
		considered++

		for _, gap := range job.Result.Gaps {
			tally, ok := tallies[gap.Skill]
			if !ok {
				tally = &skillTally{}
				tallies[gap.Skill] = tally
			}
			tally.impact += gap.Weight
			tally.jobTitles = append(tally.jobTitles, job.Title)
		}
	}

	recommendations := make([]types.SkillRecommendation, 0, len(tallies))
	for skill, tally := range tallies {
		recommendations = append(recommendations, types.SkillRecommendation{
			Skill:     skill,
			Impact:    tally.impact,
			JobTitles: tally.jobTitles,
		})
	}

	// Highest impact first; ties break on skill name so the output is
	// stable across runs regardless of map iteration order.
	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Impact != recommendations[j].Impact {
			return recommendations[i].Impact > recommendations[j].Impact
		}
		return recommendations[i].Skill < recommendations[j].Skill
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations, buildActions(recommendations)
}

// buildActions derives a short natural-language plan from the top
// recommendations.
func buildActions(recommendations []types.SkillRecommendation) []string {
	actions := make([]string, 0, actionCount)
	for i, rec := range recommendations {
		if i >= actionCount {
			break
		}
		if len(rec.JobTitles) == 1 {
			actions = append(actions, fmt.Sprintf(
				"Prioritize %s: it is a gap for %s", rec.Skill, rec.JobTitles[0]))
			continue
		}
		actions = append(actions, fmt.Sprintf(
			"Prioritize %s: it is a gap in %d of your top-matched jobs",
			rec.Skill, len(rec.JobTitles)))
	}
	return actions
}
