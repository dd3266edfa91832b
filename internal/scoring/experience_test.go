package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmatch/internal/requirements"
	"github.com/jonathan/jobmatch/internal/types"
)

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := experienceNow
	experienceNow = func() time.Time { return now }
	t.Cleanup(func() { experienceNow = prev })
}

func TestMatchExperience_MeetsRequirement(t *testing.T) {
	records := []types.EmploymentRecord{
		{Title: "Engineer", StartDate: "2019-01", EndDate: "2024-01"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_SeventyPercentTier(t *testing.T) {
	// 42 months = 3.5 years against a 5 year requirement.
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "2023-07"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 85.0, MatchExperience(records, req))
}

func TestMatchExperience_FiftyPercentTier(t *testing.T) {
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "2022-07"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 70.0, MatchExperience(records, req))
}

func TestMatchExperience_BelowHalfIsProportional(t *testing.T) {
	// 12 months against 5 years required.
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "2021-01"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.InDelta(t, 20.0, MatchExperience(records, req), 0.001)
}

func TestMatchExperience_BonusClampedAt100(t *testing.T) {
	// 10 years against 5 required: 2x the requirement, bonus cannot push
	// past 100.
	records := []types.EmploymentRecord{
		{StartDate: "2014-01", EndDate: "2024-01"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_NoRequirement(t *testing.T) {
	assert.Equal(t, 100.0, MatchExperience(nil, requirements.Requirements{}))
}

func TestMatchExperience_OpenEndedPosition(t *testing.T) {
	withFixedNow(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

	records := []types.EmploymentRecord{
		{StartDate: "2019-01", EndDate: "present"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_EmptyEndDateMeansStillHeld(t *testing.T) {
	withFixedNow(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

	records := []types.EmploymentRecord{
		{StartDate: "2021-01"},
	}
	req := requirements.Requirements{RequiredYears: 3}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_OverlappingPositionsSum(t *testing.T) {
	// Two concurrent 2-year positions count as 4 years.
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "2022-01"},
		{StartDate: "2020-01", EndDate: "2022-01"},
	}
	req := requirements.Requirements{RequiredYears: 4}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_MalformedStartDate(t *testing.T) {
	records := []types.EmploymentRecord{
		{StartDate: "January 2020", EndDate: "2022-01"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestMatchExperience_InvertedDates(t *testing.T) {
	records := []types.EmploymentRecord{
		{StartDate: "2022-01", EndDate: "2020-01"},
	}
	req := requirements.Requirements{RequiredYears: 5}

	assert.Equal(t, 100.0, MatchExperience(records, req))
}

func TestTotalMonths_SumsRecords(t *testing.T) {
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "2021-01"},
		{StartDate: "2021-06", EndDate: "2022-06"},
	}

	months, err := totalMonths(records)
	assert.NoError(t, err)
	assert.Equal(t, 24, months)
}

func TestTotalMonths_MalformedEndDate(t *testing.T) {
	records := []types.EmploymentRecord{
		{StartDate: "2020-01", EndDate: "soon"},
	}

	_, err := totalMonths(records)
	var malformed *MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
	assert.Equal(t, "end_date", malformed.Field)
}
