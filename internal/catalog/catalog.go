// Package catalog provides a file-based learning-resource store. It backs
// gap enrichment when no database is available (offline CLI use) and ships
// with an embedded default catalog of common skills.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "embed"

	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/types"
)

//go:embed catalog.json
var defaultCatalog []byte

// difficultyRank orders resources easiest first within a skill.
var difficultyRank = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

// document is the on-disk catalog format: skill name to resource list.
type document struct {
	Resources map[string][]types.LearningResource `json:"resources"`
}

// Catalog is an immutable, in-memory learning-resource lookup keyed by
// lowercased skill name.
type Catalog struct {
	resources map[string][]types.LearningResource
}

// Default loads the embedded catalog.
func Default() (*Catalog, error) {
	return parse(defaultCatalog)
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	if err := schemas.ValidateJSONString(catalogSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	resources := make(map[string][]types.LearningResource, len(doc.Resources))
	for skill, list := range doc.Resources {
		sort.SliceStable(list, func(i, j int) bool {
			return difficultyRank[list[i].Difficulty] < difficultyRank[list[j].Difficulty]
		})
		resources[strings.ToLower(skill)] = list
	}
	return &Catalog{resources: resources}, nil
}

// GetLearningResources returns up to limit resources for a skill, easiest
// first. Skill lookup is case-insensitive; an unknown skill yields an empty
// list, never an error.
func (c *Catalog) GetLearningResources(_ context.Context, skill string, limit int) ([]types.LearningResource, error) {
	list := c.resources[strings.ToLower(skill)]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Skills returns the catalog's skill names, sorted, for diagnostics.
func (c *Catalog) Skills() []string {
	skills := make([]string, 0, len(c.resources))
	for skill := range c.resources {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
