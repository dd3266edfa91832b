package db

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch/internal/types"
)

// GetLearningResources returns up to limit learning resources for a skill,
// easiest first. An unknown skill yields an empty list, not an error.
func (db *DB) GetLearningResources(ctx context.Context, skill string, limit int) ([]types.LearningResource, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, url, difficulty
		 FROM learning_resources WHERE skill_name = $1
		 ORDER BY difficulty_rank ASC LIMIT $2`,
		skill, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query learning resources: %w", err)
	}
	defer rows.Close()

	var resources []types.LearningResource
	for rows.Next() {
		var res types.LearningResource
		if err := rows.Scan(&res.Title, &res.URL, &res.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan learning resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read learning resources: %w", err)
	}
	return resources, nil
}
