package scoring

import "math"

// Default weights for the composite score. Skills dominate: they are the
// strongest signal a candidate can act on.
const (
	defaultSkillsWeight     = 0.7
	defaultExperienceWeight = 0.2
	defaultEducationWeight  = 0.1
)

// Weights configures how the three sub-scores combine into the overall
// match score. The result is a plain weighted sum, not a weighted average,
// so weights need not sum to 1.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultWeights returns the standard 0.7/0.2/0.1 weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:     defaultSkillsWeight,
		Experience: defaultExperienceWeight,
		Education:  defaultEducationWeight,
	}
}

// Compose combines the three sub-scores into the overall 0-100 match score,
// rounded to the nearest integer. No clamping is applied beyond what the
// sub-scores already guarantee.
func Compose(skill, experience, education float64, w Weights) int {
	return int(math.Round(skill*w.Skills + experience*w.Experience + education*w.Education))
}
