package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_YearsWithoutSeniority(t *testing.T) {
	req := Normalize("We need 3+ years of backend development.", "Backend Engineer", "")

	assert.Equal(t, 3, req.RequiredYears)
	assert.Equal(t, LevelEntry, req.Level)
}

func TestNormalize_SeniorFloorsYears(t *testing.T) {
	req := Normalize("Senior role, 3+ years required.", "Senior Engineer", "")

	assert.Equal(t, LevelSenior, req.Level)
	assert.Equal(t, 5, req.RequiredYears)
}

func TestNormalize_SeniorKeepsHigherExplicitYears(t *testing.T) {
	req := Normalize("Looking for a senior engineer with 8 years of experience.", "", "")

	assert.Equal(t, LevelSenior, req.Level)
	assert.Equal(t, 8, req.RequiredYears)
}

func TestNormalize_LeadAndPrincipalAreSenior(t *testing.T) {
	assert.Equal(t, LevelSenior, Normalize("", "Lead Developer", "").Level)
	assert.Equal(t, LevelSenior, Normalize("", "Principal Engineer", "").Level)
}

func TestNormalize_MidLevel(t *testing.T) {
	req := Normalize("Mid-level position on the data team.", "", "")

	assert.Equal(t, LevelMid, req.Level)
	assert.Equal(t, 2, req.RequiredYears)
}

func TestNormalize_SeniorWinsOverMid(t *testing.T) {
	req := Normalize("Senior to mid-level engineers welcome.", "", "")

	assert.Equal(t, LevelSenior, req.Level)
	assert.Equal(t, 5, req.RequiredYears)
}

func TestNormalize_ExplicitLevelOverridesKeywords(t *testing.T) {
	req := Normalize("Senior engineer wanted.", "", "entry")

	assert.Equal(t, LevelEntry, req.Level)
	// Keyword detection already floored the years before the override.
	assert.Equal(t, 5, req.RequiredYears)
}

func TestNormalize_ExplicitSeniorFloorsYears(t *testing.T) {
	req := Normalize("Engineer wanted.", "", "senior")

	assert.Equal(t, LevelSenior, req.Level)
	assert.Equal(t, 5, req.RequiredYears)
}

func TestNormalize_DegreeDetection(t *testing.T) {
	assert.Equal(t, CredentialBachelor, Normalize("Bachelor's degree required.", "", "").Credential)
	assert.Equal(t, CredentialMaster, Normalize("Master's degree preferred.", "", "").Credential)
	assert.Equal(t, CredentialPhD, Normalize("PhD in a quantitative field.", "", "").Credential)
}

func TestNormalize_HighestDegreeWins(t *testing.T) {
	req := Normalize("PhD preferred, Master's or Bachelor's considered.", "", "")

	assert.Equal(t, CredentialPhD, req.Credential)
}

func TestNormalize_Certification(t *testing.T) {
	req := Normalize("AWS certification is a plus.", "", "")

	assert.True(t, req.RequiresCertification)
	assert.Equal(t, CredentialNone, req.Credential)
	assert.True(t, req.HasCredentialRequirement())
}

func TestNormalize_EmptyInput(t *testing.T) {
	req := Normalize("", "", "")

	assert.Equal(t, 0, req.RequiredYears)
	assert.Equal(t, LevelEntry, req.Level)
	assert.Equal(t, CredentialNone, req.Credential)
	assert.False(t, req.HasCredentialRequirement())
}

func TestNormalize_FirstYearsPhraseWins(t *testing.T) {
	req := Normalize("3 years with Go, 7 years total engineering.", "", "")

	assert.Equal(t, 3, req.RequiredYears)
}
