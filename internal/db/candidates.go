package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/types"
)

// GetCandidateSkills builds the candidate's skill profile from their stored
// skill records. A candidate with zero recorded skills is reported as not
// found: the engine treats that as an incomplete profile rather than a set
// of level-0 skills.
func (db *DB) GetCandidateSkills(ctx context.Context, candidateID uuid.UUID) (types.SkillProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, level FROM candidate_skills WHERE candidate_id = $1`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate skills: %w", err)
	}
	defer rows.Close()

	profile := make(types.SkillProfile)
	for rows.Next() {
		var name string
		var level int
		if err := rows.Scan(&name, &level); err != nil {
			return nil, fmt.Errorf("failed to scan candidate skill: %w", err)
		}
		profile[name] = level
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate skills: %w", err)
	}

	if len(profile) == 0 {
		return nil, &engine.NotFoundError{Resource: engine.ResourceCandidate, ID: candidateID}
	}
	return profile, nil
}

// GetEmploymentHistory returns the candidate's employment records. Dates are
// stored as "YYYY-MM" strings; unparsable values are handled downstream by
// the experience calculator, not here.
func (db *DB) GetEmploymentHistory(ctx context.Context, candidateID uuid.UUID) ([]types.EmploymentRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, start_date, COALESCE(end_date, '')
		 FROM employment_history WHERE candidate_id = $1 ORDER BY start_date`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employment history: %w", err)
	}
	defer rows.Close()

	var records []types.EmploymentRecord
	for rows.Next() {
		var rec types.EmploymentRecord
		if err := rows.Scan(&rec.Title, &rec.StartDate, &rec.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan employment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employment history: %w", err)
	}
	return records, nil
}

// GetEducationHistory returns the candidate's education records.
func (db *DB) GetEducationHistory(ctx context.Context, candidateID uuid.UUID) ([]types.EducationRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT credential_type, COALESCE(field, '')
		 FROM education_history WHERE candidate_id = $1`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query education history: %w", err)
	}
	defer rows.Close()

	var records []types.EducationRecord
	for rows.Next() {
		var rec types.EducationRecord
		if err := rows.Scan(&rec.CredentialType, &rec.Field); err != nil {
			return nil, fmt.Errorf("failed to scan education record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education history: %w", err)
	}
	return records, nil
}
