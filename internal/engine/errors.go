package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Resource kinds used by NotFoundError.
const (
	ResourceCandidate = "candidate"
	ResourceJob       = "job"
)

// NotFoundError indicates an unknown candidate or job id. It aborts the
// single computation that requested it; batch ranking converts it into an
// annotated per-job failure instead of aborting the whole batch.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IncompleteProfileError indicates the candidate has no recorded skills at
// all. It is surfaced directly to the caller with a corrective message and
// never contributes a zero score to any ranking aggregate.
type IncompleteProfileError struct {
	CandidateID uuid.UUID
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("candidate %s has no recorded skills; add skills to the profile before requesting a match", e.CandidateID)
}
