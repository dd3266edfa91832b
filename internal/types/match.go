package types

import "github.com/google/uuid"

// Gap is a required skill where the candidate's level is below the requirement.
type Gap struct {
	Skill  string  `json:"skill"`
	Have   int     `json:"have"`
	Need   int     `json:"need"`
	Weight float64 `json:"weight"`
}

// Score returns the size of the deficiency (need minus have).
func (g Gap) Score() int {
	return g.Need - g.Have
}

// SkillScore is the per-skill breakdown of a skill match computation.
type SkillScore struct {
	Have  int     `json:"have"`
	Need  int     `json:"need"`
	Score float64 `json:"score"`
}

// MatchResult is the outcome of scoring one candidate against one job.
// Sub-scores are 0-100 floats; Overall is the weighted sum rounded to the
// nearest integer. A skill appears in exactly one of Strengths or Gaps.
type MatchResult struct {
	CandidateID     uuid.UUID             `json:"candidate_id"`
	JobID           uuid.UUID             `json:"job_id"`
	Overall         int                   `json:"overall"`
	SkillScore      float64               `json:"skill_score"`
	ExperienceScore float64               `json:"experience_score"`
	EducationScore  float64               `json:"education_score"`
	Strengths       []string              `json:"strengths"`
	Gaps            []Gap                 `json:"gaps"`
	Breakdown       map[string]SkillScore `json:"breakdown,omitempty"`
}

// LearningResource is an externally supplied pointer to learning material
// for a skill. Difficulty is one of "beginner", "intermediate", "advanced".
type LearningResource struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

// GapRecord extends a Gap with progress tracking and learning resources.
type GapRecord struct {
	Gap
	ProgressPct int                `json:"progress_pct"`
	GapScore    int                `json:"gap_score"`
	Resources   []LearningResource `json:"resources"`
}

// GapAnalysis is the enriched gap view for one candidate/job pair.
// Gaps are ordered by descending gap score; strengths are passed through
// from the match result for display.
type GapAnalysis struct {
	CandidateID uuid.UUID   `json:"candidate_id"`
	JobID       uuid.UUID   `json:"job_id"`
	Strengths   []string    `json:"strengths"`
	Gaps        []GapRecord `json:"gaps"`
}

// RankedJob is one entry in a batch ranking. A job that could not be scored
// is retained with Failed set and Error describing the cause, so callers can
// distinguish "low match" from "could not be scored".
type RankedJob struct {
	JobID   uuid.UUID    `json:"job_id"`
	Title   string       `json:"title"`
	Company string       `json:"company,omitempty"`
	Score   int          `json:"score"`
	Result  *MatchResult `json:"result,omitempty"`
	Failed  bool         `json:"failed,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// RankedJobs is the full output of a batch ranking: every requested job,
// sorted by score descending, plus summary statistics over the jobs that
// were scored successfully.
type RankedJobs struct {
	CandidateID  uuid.UUID   `json:"candidate_id"`
	Jobs         []RankedJob `json:"jobs"`
	ScoredCount  int         `json:"scored_count"`
	FailedCount  int         `json:"failed_count"`
	AverageScore float64     `json:"average_score"`
}
