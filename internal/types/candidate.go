// Package types defines the core domain types shared across the match engine.
package types

// SkillProfile maps a skill name to the candidate's proficiency level (0-4).
// It is built once per scoring call from the candidate's stored skill records
// and treated as immutable for the duration of a match computation.
type SkillProfile map[string]int

// Level returns the candidate's proficiency for a skill.
// A skill absent from the profile is level 0.
func (p SkillProfile) Level(skill string) int {
	return p[skill]
}

// EmploymentRecord represents one entry in a candidate's employment history.
// Dates use the "YYYY-MM" format; an empty or "present" end date means the
// position is still held.
type EmploymentRecord struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

// EducationRecord represents a credential held by the candidate.
// CredentialType is free text (e.g. "Bachelor's", "PhD").
type EducationRecord struct {
	CredentialType string `json:"credential_type"`
	Field          string `json:"field,omitempty"`
}
