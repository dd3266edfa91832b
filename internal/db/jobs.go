package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/types"
)

// GetJobRequisition retrieves a job requisition by id. Required skills are
// fetched separately via GetRequiredSkills.
func (db *DB) GetJobRequisition(ctx context.Context, jobID uuid.UUID) (*types.JobRequisition, error) {
	var job types.JobRequisition
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(company, ''), COALESCE(description, ''), COALESCE(experience_level, '')
		 FROM job_requisitions WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Description, &job.ExperienceLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &engine.NotFoundError{Resource: engine.ResourceJob, ID: jobID}
		}
		return nil, fmt.Errorf("failed to get job requisition: %w", err)
	}
	return &job, nil
}

// GetRequiredSkills returns a job's weighted required-skill list in the
// order it was defined. A missing weight defaults to 1, a missing level to 0.
func (db *DB) GetRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]types.RequiredSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, COALESCE(category, ''), COALESCE(level, 0), COALESCE(weight, 1)
		 FROM job_required_skills WHERE job_id = $1 ORDER BY position`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query required skills: %w", err)
	}
	defer rows.Close()

	var skills []types.RequiredSkill
	for rows.Next() {
		var skill types.RequiredSkill
		if err := rows.Scan(&skill.Name, &skill.Category, &skill.Level, &skill.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan required skill: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read required skills: %w", err)
	}
	return skills, nil
}

// ListCandidateCreatedJobs returns up to limit job ids tracked by the
// candidate, most recent first.
func (db *DB) ListCandidateCreatedJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id FROM job_requisitions WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate jobs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan job id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job ids: %w", err)
	}
	return ids, nil
}
