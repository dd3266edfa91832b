package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/gaps"
	"github.com/jonathan/jobmatch/internal/ranking"
	"github.com/jonathan/jobmatch/internal/requirements"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/types"
)

// defaultJobListCap bounds "all known jobs" ranking when the caller gives no
// explicit job set.
const defaultJobListCap = 50

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	Weights     scoring.Weights // composite score weights; zero value uses DefaultWeights
	Concurrency int             // batch ranking fan-out bound
	TopJobs     int             // top-K window for improvement aggregation
	JobListCap  int             // cap when ranking "all known jobs"
}

// Service is the match engine facade. All operations are stateless with
// respect to shared mutable state: each call fetches immutable inputs once
// and produces a fresh result.
type Service struct {
	candidates  CandidateStore
	jobs        JobStore
	resources   ResourceStore
	weights     scoring.Weights
	concurrency int
	topJobs     int
	jobListCap  int
}

// New creates a match engine service over the given stores.
func New(candidates CandidateStore, jobs JobStore, resources ResourceStore, opts Options) *Service {
	if opts.Weights == (scoring.Weights{}) {
		opts.Weights = scoring.DefaultWeights()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = ranking.DefaultConcurrency
	}
	if opts.TopJobs <= 0 {
		opts.TopJobs = gaps.DefaultTopJobs
	}
	if opts.JobListCap <= 0 {
		opts.JobListCap = defaultJobListCap
	}
	return &Service{
		candidates:  candidates,
		jobs:        jobs,
		resources:   resources,
		weights:     opts.Weights,
		concurrency: opts.Concurrency,
		topJobs:     opts.TopJobs,
		jobListCap:  opts.JobListCap,
	}
}

// candidateData is the per-candidate input set, fetched once per operation.
type candidateData struct {
	profile    types.SkillProfile
	employment []types.EmploymentRecord
	education  []types.EducationRecord
}

// ComputeMatch scores one candidate against one job.
//
// When the candidate has no recorded skills the returned error is an
// IncompleteProfileError and the result is the dedicated error MatchResult
// (overall 0, experience and education reported as 100, empty strengths and
// gaps): the block is a data-completeness problem, not a poor match, and the
// caller gets both the signal and a renderable result.
func (s *Service) ComputeMatch(ctx context.Context, candidateID, jobID uuid.UUID) (*types.MatchResult, error) {
	candidate, err := s.loadCandidate(ctx, candidateID)
	if err != nil {
		if isCandidateNotFound(err) {
			return incompleteResult(candidateID, jobID), &IncompleteProfileError{CandidateID: candidateID}
		}
		return nil, err
	}

	result, _, err := s.scoreJob(ctx, candidateID, candidate, jobID)
	if err != nil {
		var noSkills *scoring.NoSkillsError
		if errors.As(err, &noSkills) {
			return incompleteResult(candidateID, jobID), &IncompleteProfileError{CandidateID: candidateID}
		}
		return nil, err
	}
	return result, nil
}

// ComputeGaps scores the candidate against the job and enriches every gap
// with learning resources.
func (s *Service) ComputeGaps(ctx context.Context, candidateID, jobID uuid.UUID) (*types.GapAnalysis, error) {
	result, err := s.ComputeMatch(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	return gaps.Analyze(ctx, result, s.resources), nil
}

// RankJobs scores the candidate against every requested job concurrently and
// returns all of them sorted by score. When jobIDs is empty the candidate's
// own job list is used, capped to avoid unbounded fan-out. Individual
// scoring failures are annotated per job, never dropped; an incomplete
// profile fails the whole ranking since no job could be scored.
func (s *Service) RankJobs(ctx context.Context, candidateID uuid.UUID, jobIDs []uuid.UUID) (*types.RankedJobs, error) {
	candidate, err := s.loadCandidate(ctx, candidateID)
	if err != nil {
		if isCandidateNotFound(err) {
			return nil, &IncompleteProfileError{CandidateID: candidateID}
		}
		return nil, err
	}
	if len(candidate.profile) == 0 {
		return nil, &IncompleteProfileError{CandidateID: candidateID}
	}

	if len(jobIDs) == 0 {
		jobIDs, err = s.jobs.ListCandidateCreatedJobs(ctx, candidateID, s.jobListCap)
		if err != nil {
			return nil, err
		}
	}

	ranked := ranking.RankAll(ctx, jobIDs, s.concurrency, func(ctx context.Context, jobID uuid.UUID) (types.RankedJob, error) {
		result, job, err := s.scoreJob(ctx, candidateID, candidate, jobID)
		if err != nil {
			return types.RankedJob{}, err
		}
		return types.RankedJob{
			JobID:   jobID,
			Title:   job.Title,
			Company: job.Company,
			Score:   result.Overall,
			Result:  result,
		}, nil
	})

	scored, failed, average := ranking.Summarize(ranked)
	return &types.RankedJobs{
		CandidateID:  candidateID,
		Jobs:         ranked,
		ScoredCount:  scored,
		FailedCount:  failed,
		AverageScore: average,
	}, nil
}

// RecommendImprovements ranks the candidate's jobs and aggregates gap data
// across the top-ranked ones into prioritized cross-job recommendations.
func (s *Service) RecommendImprovements(ctx context.Context, candidateID uuid.UUID, jobIDs []uuid.UUID) (*types.ImprovementSet, error) {
	ranked, err := s.RankJobs(ctx, candidateID, jobIDs)
	if err != nil {
		return nil, err
	}

	recommendations, actions := gaps.Aggregate(ranked.Jobs, s.topJobs)

	considered := ranked.ScoredCount
	if considered > s.topJobs {
		considered = s.topJobs
	}
	return &types.ImprovementSet{
		CandidateID:     candidateID,
		JobsConsidered:  considered,
		Recommendations: recommendations,
		Actions:         actions,
	}, nil
}

// loadCandidate fetches the candidate's profile, employment, and education
// once; scoring reads these immutable inputs for the rest of the call.
func (s *Service) loadCandidate(ctx context.Context, candidateID uuid.UUID) (candidateData, error) {
	profile, err := s.candidates.GetCandidateSkills(ctx, candidateID)
	if err != nil {
		return candidateData{}, err
	}
	employment, err := s.candidates.GetEmploymentHistory(ctx, candidateID)
	if err != nil {
		return candidateData{}, err
	}
	education, err := s.candidates.GetEducationHistory(ctx, candidateID)
	if err != nil {
		return candidateData{}, err
	}
	return candidateData{profile: profile, employment: employment, education: education}, nil
}

// scoreJob computes the full match result for one job against prefetched
// candidate data.
func (s *Service) scoreJob(ctx context.Context, candidateID uuid.UUID, candidate candidateData, jobID uuid.UUID) (*types.MatchResult, *types.JobRequisition, error) {
	job, err := s.jobs.GetJobRequisition(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	required, err := s.jobs.GetRequiredSkills(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	req := requirements.Normalize(requirements.DescriptionText(job.Description), job.Title, job.ExperienceLevel)

	skillMatch, err := scoring.MatchSkills(candidate.profile, required)
	if err != nil {
		return nil, nil, err
	}
	experienceScore := scoring.MatchExperience(candidate.employment, req)
	educationScore := scoring.MatchEducation(candidate.education, req)

	result := &types.MatchResult{
		CandidateID:     candidateID,
		JobID:           jobID,
		Overall:         scoring.Compose(skillMatch.Score, experienceScore, educationScore, s.weights),
		SkillScore:      skillMatch.Score,
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		Strengths:       skillMatch.Strengths,
		Gaps:            skillMatch.Gaps,
		Breakdown:       skillMatch.Breakdown,
	}
	return result, job, nil
}

// incompleteResult is the dedicated error MatchResult for a candidate with
// no recorded skills.
func incompleteResult(candidateID, jobID uuid.UUID) *types.MatchResult {
	return &types.MatchResult{
		CandidateID:     candidateID,
		JobID:           jobID,
		Overall:         0,
		SkillScore:      0,
		ExperienceScore: 100,
		EducationScore:  100,
		Strengths:       []string{},
		Gaps:            []types.Gap{},
	}
}

// isCandidateNotFound reports whether err is a candidate NotFoundError.
// Per the store contract, a candidate who never recorded any skill is
// reported as not found by GetCandidateSkills; the engine reinterprets that
// as an incomplete profile.
func isCandidateNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Resource == ResourceCandidate
}
