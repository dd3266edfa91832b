package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Skills())
}

func TestGetLearningResources_EasiestFirst(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	resources, err := cat.GetLearningResources(context.Background(), "Go", 3)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "beginner", resources[0].Difficulty)
	assert.Equal(t, "intermediate", resources[1].Difficulty)
	assert.Equal(t, "advanced", resources[2].Difficulty)
}

func TestGetLearningResources_CaseInsensitive(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	lower, err := cat.GetLearningResources(context.Background(), "kubernetes", 3)
	require.NoError(t, err)
	upper, err := cat.GetLearningResources(context.Background(), "Kubernetes", 3)
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.NotEmpty(t, lower)
}

func TestGetLearningResources_UnknownSkill(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	resources, err := cat.GetLearningResources(context.Background(), "COBOL", 3)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestGetLearningResources_RespectsLimit(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	resources, err := cat.GetLearningResources(context.Background(), "AWS", 2)
	require.NoError(t, err)
	assert.Len(t, resources, 2)
}

func TestLoad_CustomCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"resources": {
			"Zig": [
				{"title": "Ziglings", "url": "https://ziglings.org/", "difficulty": "beginner"}
			]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)

	resources, err := cat.GetLearningResources(context.Background(), "Zig", 3)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Ziglings", resources[0].Title)
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	// Resource entries must carry title, url, and difficulty.
	content := `{"resources": {"Zig": [{"title": "Ziglings"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
