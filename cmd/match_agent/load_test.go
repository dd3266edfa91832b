package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCandidateFile_Valid(t *testing.T) {
	path := writeFile(t, "candidate.json", `{
		"skills": {"Go": 3, "SQL": 2},
		"employment": [{"title": "Engineer", "start_date": "2020-01", "end_date": "2023-06"}],
		"education": [{"credential_type": "Bachelor of Science", "field": "CS"}]
	}`)

	cand, err := loadCandidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cand.Skills["Go"])
	require.Len(t, cand.Employment, 1)
	assert.Equal(t, "2020-01", cand.Employment[0].StartDate)
	require.Len(t, cand.Education, 1)
}

func TestLoadCandidateFile_MissingSkills(t *testing.T) {
	path := writeFile(t, "candidate.json", `{"employment": []}`)

	_, err := loadCandidateFile(path)
	assert.Error(t, err)
}

func TestLoadCandidateFile_SkillLevelOutOfRange(t *testing.T) {
	path := writeFile(t, "candidate.json", `{"skills": {"Go": 9}}`)

	_, err := loadCandidateFile(path)
	assert.Error(t, err)
}

func TestLoadJobFile_DefaultsOmittedWeight(t *testing.T) {
	path := writeFile(t, "job.json", `{
		"title": "Backend Engineer",
		"company": "Acme",
		"required_skills": [
			{"name": "Go", "level": 3},
			{"name": "SQL", "level": 2, "weight": 2.5}
		]
	}`)

	job, err := loadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	require.Len(t, job.RequiredSkills, 2)
	assert.Equal(t, 1.0, job.RequiredSkills[0].Weight)
	assert.Equal(t, 2.5, job.RequiredSkills[1].Weight)
	assert.NotEqual(t, job.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestLoadJobFile_MissingTitle(t *testing.T) {
	path := writeFile(t, "job.json", `{"required_skills": []}`)

	_, err := loadJobFile(path)
	assert.Error(t, err)
}

func TestFileStore_ServesLoadedData(t *testing.T) {
	candPath := writeFile(t, "candidate.json", `{"skills": {"Go": 2}}`)
	jobPath := writeFile(t, "job.json", `{"title": "Engineer", "required_skills": [{"name": "Go", "level": 3}]}`)

	cand, err := loadCandidateFile(candPath)
	require.NoError(t, err)
	job, err := loadJobFile(jobPath)
	require.NoError(t, err)

	store := newFileStore(cand, job)
	ctx := context.Background()

	profile, err := store.GetCandidateSkills(ctx, store.candidateID)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Level("Go"))

	loaded, err := store.GetJobRequisition(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", loaded.Title)

	required, err := store.GetRequiredSkills(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, required, 1)

	jobs, err := store.ListCandidateCreatedJobs(ctx, store.candidateID, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{job.ID}, jobs)
}
