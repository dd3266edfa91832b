package types

import "github.com/google/uuid"

// RequiredSkill is one weighted skill requirement on a job requisition.
// Level is the minimum proficiency (0-4) the job asks for; Weight expresses
// its relative importance and has no enforced upper bound.
type RequiredSkill struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Level    int     `json:"level"`
	Weight   float64 `json:"weight"`
}

// JobRequisition is a job posting with structured and free-text requirements.
// Description may be empty; ExperienceLevel is an optional explicit field
// that overrides keyword detection when set.
type JobRequisition struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company,omitempty"`
	Description     string          `json:"description,omitempty"`
	ExperienceLevel string          `json:"experience_level,omitempty"`
	RequiredSkills  []RequiredSkill `json:"required_skills"`
}
