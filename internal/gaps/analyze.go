// Package gaps turns match results into actionable output: per-gap learning
// resources for a single job, and cross-job improvement recommendations
// aggregated over a candidate's best matches.
package gaps

import (
	"context"
	"sort"

	"github.com/jonathan/jobmatch/internal/types"
)

// maxResourcesPerGap caps how many learning resources are attached to each
// gap record.
const maxResourcesPerGap = 3

// difficultyRank orders learning resources from easiest to hardest.
var difficultyRank = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

// ResourceLookup fetches learning resources for a skill, ranked ascending by
// difficulty. Implementations may return an empty list.
type ResourceLookup interface {
	GetLearningResources(ctx context.Context, skill string, limit int) ([]types.LearningResource, error)
}

// Analyze enriches a match result's gaps with progress percentages and
// learning resources. Resources are fetched independently per gap: a lookup
// failure for one skill leaves that gap with an empty resource list and
// never aborts analysis of the others. Strengths pass through unchanged for
// display.
func Analyze(ctx context.Context, result *types.MatchResult, lookup ResourceLookup) *types.GapAnalysis {
	analysis := &types.GapAnalysis{
		CandidateID: result.CandidateID,
		JobID:       result.JobID,
		Strengths:   result.Strengths,
		Gaps:        make([]types.GapRecord, 0, len(result.Gaps)),
	}

	for _, gap := range result.Gaps {
		record := types.GapRecord{
			Gap:         gap,
			ProgressPct: progressPct(gap),
			GapScore:    gap.Score(),
			Resources:   []types.LearningResource{},
		}

		resources, err := lookup.GetLearningResources(ctx, gap.Skill, maxResourcesPerGap)
		if err == nil && len(resources) > 0 {
			sort.SliceStable(resources, func(i, j int) bool {
				return difficultyRank[resources[i].Difficulty] < difficultyRank[resources[j].Difficulty]
			})
			if len(resources) > maxResourcesPerGap {
				resources = resources[:maxResourcesPerGap]
			}
			record.Resources = resources
		}

		analysis.Gaps = append(analysis.Gaps, record)
	}

	// Largest deficiency first, matching the match result's gap ordering.
	sort.SliceStable(analysis.Gaps, func(i, j int) bool {
		return analysis.Gaps[i].GapScore > analysis.Gaps[j].GapScore
	})

	return analysis
}

// progressPct expresses how far along the candidate already is toward the
// required level, rounded to a whole percentage.
func progressPct(gap types.Gap) int {
	need := gap.Need
	if need < 1 {
		need = 1
	}
	return int(float64(gap.Have)/float64(need)*100 + 0.5)
}
