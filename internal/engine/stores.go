// Package engine exposes the match engine's operations behind a service
// facade. It orchestrates the requirement normalizer, the match calculators,
// the gap analyzer, and the batch ranker over abstract data stores; the
// stores' implementation (database, REST, cache) is a collaborator concern.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/types"
)

// CandidateStore supplies candidate profile data.
type CandidateStore interface {
	// GetCandidateSkills returns the candidate's skill profile. It fails
	// with a NotFoundError when the candidate has never recorded any skill.
	GetCandidateSkills(ctx context.Context, candidateID uuid.UUID) (types.SkillProfile, error)
	GetEmploymentHistory(ctx context.Context, candidateID uuid.UUID) ([]types.EmploymentRecord, error)
	GetEducationHistory(ctx context.Context, candidateID uuid.UUID) ([]types.EducationRecord, error)
}

// JobStore supplies job requisition data.
type JobStore interface {
	// GetJobRequisition fails with a NotFoundError for an unknown job id.
	GetJobRequisition(ctx context.Context, jobID uuid.UUID) (*types.JobRequisition, error)
	GetRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]types.RequiredSkill, error)
	// ListCandidateCreatedJobs returns up to limit job ids for ranking when
	// the caller does not name an explicit job set.
	ListCandidateCreatedJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]uuid.UUID, error)
}

// ResourceStore supplies learning resources for gap enrichment, ranked
// ascending by difficulty. It may return an empty list.
type ResourceStore interface {
	GetLearningResources(ctx context.Context, skill string, limit int) ([]types.LearningResource, error)
}
