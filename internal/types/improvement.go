package types

import "github.com/google/uuid"

// SkillRecommendation aggregates one skill's gap data across a candidate's
// top-ranked jobs. Impact is the summed requirement weight of the skill
// across those jobs; JobTitles lists the jobs that require it.
type SkillRecommendation struct {
	Skill     string   `json:"skill"`
	Impact    float64  `json:"impact"`
	JobTitles []string `json:"job_titles"`
}

// ImprovementSet is the cross-job improvement recommendation output.
// Recommendations are sorted by descending impact and truncated; Actions is
// a short natural-language plan derived from the top recommendations.
type ImprovementSet struct {
	CandidateID     uuid.UUID             `json:"candidate_id"`
	JobsConsidered  int                   `json:"jobs_considered"`
	Recommendations []SkillRecommendation `json:"recommendations"`
	Actions         []string              `json:"actions"`
}
