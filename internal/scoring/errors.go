package scoring

import "fmt"

// NoSkillsError indicates the candidate has no skills recorded at all.
// It signals incomplete profile data rather than a zero match: the candidate
// has not finished skill entry, so no meaningful score exists.
type NoSkillsError struct{}

func (e *NoSkillsError) Error() string {
	return "candidate has no recorded skills"
}

// MalformedRecordError indicates an employment or education record that
// could not be interpreted (unparsable or inverted dates, missing fields).
// Calculators recover from it locally by defaulting the affected sub-score;
// it is never surfaced to callers.
type MalformedRecordError struct {
	Field string
	Value string
	Cause error
}

func (e *MalformedRecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed record field %s (%q): %v", e.Field, e.Value, e.Cause)
	}
	return fmt.Sprintf("malformed record field %s (%q)", e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}
