package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/types"
)

// candidateFileSchema validates offline candidate profile documents.
const candidateFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0, "maximum": 4}
    },
    "employment": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["start_date"],
        "properties": {
          "title": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["credential_type"],
        "properties": {
          "credential_type": {"type": "string"},
          "field": {"type": "string"}
        }
      }
    }
  }
}`

// jobFileSchema validates offline job requisition documents.
const jobFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "company": {"type": "string"},
    "description": {"type": "string"},
    "experience_level": {"type": "string"},
    "required_skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "level": {"type": "integer", "minimum": 0, "maximum": 4},
          "weight": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`

// candidateFile is the offline candidate document format.
type candidateFile struct {
	Skills     map[string]int           `json:"skills"`
	Employment []types.EmploymentRecord `json:"employment,omitempty"`
	Education  []types.EducationRecord  `json:"education,omitempty"`
}

// jobSkillFile uses a pointer weight so an omitted weight can default to 1
// instead of 0.
type jobSkillFile struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Level    int      `json:"level,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type jobFile struct {
	Title           string         `json:"title"`
	Company         string         `json:"company,omitempty"`
	Description     string         `json:"description,omitempty"`
	ExperienceLevel string         `json:"experience_level,omitempty"`
	RequiredSkills  []jobSkillFile `json:"required_skills,omitempty"`
}

// loadCandidateFile reads and validates an offline candidate profile.
func loadCandidateFile(path string) (*candidateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	if err := schemas.ValidateJSONString(candidateFileSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid candidate file %s: %w", path, err)
	}

	var cand candidateFile
	if err := json.Unmarshal(data, &cand); err != nil {
		return nil, fmt.Errorf("failed to parse candidate file %s: %w", path, err)
	}
	return &cand, nil
}

// loadJobFile reads and validates an offline job requisition. An omitted
// skill weight defaults to 1.
func loadJobFile(path string) (*types.JobRequisition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	if err := schemas.ValidateJSONString(jobFileSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid job file %s: %w", path, err)
	}

	var doc jobFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	job := &types.JobRequisition{
		ID:              uuid.New(),
		Title:           doc.Title,
		Company:         doc.Company,
		Description:     doc.Description,
		ExperienceLevel: doc.ExperienceLevel,
	}
	for _, skill := range doc.RequiredSkills {
		weight := 1.0
		if skill.Weight != nil {
			weight = *skill.Weight
		}
		job.RequiredSkills = append(job.RequiredSkills, types.RequiredSkill{
			Name:     skill.Name,
			Category: skill.Category,
			Level:    skill.Level,
			Weight:   weight,
		})
	}
	return job, nil
}

// fileStore serves a single candidate and job loaded from local files,
// implementing the engine's candidate and job stores for offline matching.
type fileStore struct {
	candidateID uuid.UUID
	candidate   *candidateFile
	job         *types.JobRequisition
}

func newFileStore(cand *candidateFile, job *types.JobRequisition) *fileStore {
	return &fileStore{candidateID: uuid.New(), candidate: cand, job: job}
}

func (f *fileStore) GetCandidateSkills(_ context.Context, candidateID uuid.UUID) (types.SkillProfile, error) {
	if len(f.candidate.Skills) == 0 {
		return nil, &engine.NotFoundError{Resource: engine.ResourceCandidate, ID: candidateID}
	}
	return types.SkillProfile(f.candidate.Skills), nil
}

func (f *fileStore) GetEmploymentHistory(_ context.Context, _ uuid.UUID) ([]types.EmploymentRecord, error) {
	return f.candidate.Employment, nil
}

func (f *fileStore) GetEducationHistory(_ context.Context, _ uuid.UUID) ([]types.EducationRecord, error) {
	return f.candidate.Education, nil
}

func (f *fileStore) GetJobRequisition(_ context.Context, jobID uuid.UUID) (*types.JobRequisition, error) {
	if jobID != f.job.ID {
		return nil, &engine.NotFoundError{Resource: engine.ResourceJob, ID: jobID}
	}
	return f.job, nil
}

func (f *fileStore) GetRequiredSkills(_ context.Context, jobID uuid.UUID) ([]types.RequiredSkill, error) {
	if jobID != f.job.ID {
		return nil, &engine.NotFoundError{Resource: engine.ResourceJob, ID: jobID}
	}
	return f.job.RequiredSkills, nil
}

func (f *fileStore) ListCandidateCreatedJobs(_ context.Context, _ uuid.UUID, _ int) ([]uuid.UUID, error) {
	return []uuid.UUID{f.job.ID}, nil
}
