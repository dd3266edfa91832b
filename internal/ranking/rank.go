// Package ranking runs the match scorer across many job requisitions for
// one candidate, tolerating individual failures.
package ranking

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultConcurrency bounds the scoring fan-out so that ranking a large job
// set does not overwhelm the backing data source.
const DefaultConcurrency = 8

// ScoreFunc computes the ranked entry for a single job. Implementations
// fetch their own job data; they share no mutable state with other calls.
type ScoreFunc func(ctx context.Context, jobID uuid.UUID) (types.RankedJob, error)

// RankAll scores every job concurrently and returns all of them sorted by
// score descending. A failure scoring any single job is captured as an
// annotated entry (score 0, Failed set, Error populated) rather than
// aborting the batch or silently dropping the job. Failed entries always
// sort below scored ones. The result is only produced once every task has
// resolved; no partial result is returned.
func RankAll(ctx context.Context, jobIDs []uuid.UUID, concurrency int, score ScoreFunc) []types.RankedJob {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]types.RankedJob, len(jobIDs))
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, jobID := range jobIDs {
		g.Go(func() error {
			// Each task writes only to its own result slot.
			entry, err := score(ctx, jobID)
			if err != nil {
				results[i] = types.RankedJob{JobID: jobID, Failed: true, Error: err.Error()}
				return nil
			}
			results[i] = entry
			return nil
		})
	}
	// Tasks never return errors; failures are annotated in place.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Failed != results[j].Failed {
			return !results[i].Failed
		}
		return results[i].Score > results[j].Score
	})

	return results
}

// Summarize computes the scored/failed counts and the average score over
// the successfully scored entries. Failed entries are excluded from the
// average so a fetch error cannot drag down the aggregate.
func Summarize(jobs []types.RankedJob) (scored, failed int, average float64) {
	total := 0
	for _, job := range jobs {
		if job.Failed {
			failed++
			continue
		}
		scored++
		total += job.Score
	}
	if scored > 0 {
		average = float64(total) / float64(scored)
	}
	return scored, failed, average
}
