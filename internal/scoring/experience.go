package scoring

import (
	"time"

	"github.com/jonathan/jobmatch/internal/requirements"
	"github.com/jonathan/jobmatch/internal/types"
)

// dateLayout parses employment dates in "YYYY-MM" form.
const dateLayout = "2006-01"

// experienceNow is swapped out in tests to make open-ended positions
// deterministic.
var experienceNow = time.Now

// MatchExperience converts the candidate's employment history into total
// years of experience and scores it against the normalized requirement.
//
// Tiers: meeting the requirement scores 100, >=70% of it scores 85, >=50%
// scores 70, below that the score is proportional. Exceeding the requirement
// by 1.5x earns a +10 bonus, clamped to 100. With no detectable requirement
// any history satisfies the first tier.
//
// Overlapping positions are summed without deduplication, so concurrent
// employment counts twice. Malformed history data (unparsable or inverted
// dates) degrades to a full score of 100 rather than zeroing out an
// otherwise good match.
func MatchExperience(records []types.EmploymentRecord, req requirements.Requirements) float64 {
	months, err := totalMonths(records)
	if err != nil {
		return 100
	}

	years := float64(months) / 12
	required := float64(req.RequiredYears)

	var score float64
	switch {
	case years >= required:
		score = 100
	case years >= 0.7*required:
		score = 85
	case years >= 0.5*required:
		score = 70
	default:
		// required > 0 here: years < 0.5*required rules out required == 0.
		score = years / required * 100
		if score > 100 {
			score = 100
		}
	}

	if years >= 1.5*required {
		score += 10
		if score > 100 {
			score = 100
		}
	}

	return score
}

// totalMonths sums the duration of every employment record. An empty or
// "present" end date means the position is still held.
func totalMonths(records []types.EmploymentRecord) (int, error) {
	now := experienceNow()
	total := 0
	for _, rec := range records {
		start, err := time.Parse(dateLayout, rec.StartDate)
		if err != nil {
			return 0, &MalformedRecordError{Field: "start_date", Value: rec.StartDate, Cause: err}
		}

		end := now
		if rec.EndDate != "" && rec.EndDate != "present" {
			end, err = time.Parse(dateLayout, rec.EndDate)
			if err != nil {
				return 0, &MalformedRecordError{Field: "end_date", Value: rec.EndDate, Cause: err}
			}
		}

		months := monthsBetween(start, end)
		if months < 0 {
			return 0, &MalformedRecordError{Field: "end_date", Value: rec.EndDate}
		}
		total += months
	}
	return total, nil
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
