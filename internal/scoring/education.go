package scoring

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/requirements"
	"github.com/jonathan/jobmatch/internal/types"
)

// heldCredentials summarizes which credential families appear among the
// candidate's education records, by case-insensitive substring containment.
type heldCredentials struct {
	phd           bool
	master        bool
	bachelor      bool
	certification bool
}

// MatchEducation compares held credentials against the normalized credential
// requirement. With no detected requirement the score is 100 unconditionally:
// no requirement means nothing to fall short of.
//
// Matching is containment-based on the free-text credential type, not exact:
// "Bachelor of Science" satisfies a bachelor requirement. Each degree tier
// scores a floor rather than zero on a miss, since education is a weak
// signal compared to skills.
func MatchEducation(records []types.EducationRecord, req requirements.Requirements) float64 {
	if !req.HasCredentialRequirement() {
		return 100
	}

	held := collectCredentials(records)

	switch req.Credential {
	case requirements.CredentialPhD:
		if held.phd {
			return 100
		}
		return 70
	case requirements.CredentialMaster:
		if held.master {
			return 100
		}
		if held.bachelor {
			return 85
		}
		return 70
	case requirements.CredentialBachelor:
		if held.bachelor || held.master || held.phd {
			return 100
		}
		return 80
	}

	// Certification-only requirement: no degree level was detected.
	if held.certification {
		return 100
	}
	return 80
}

func collectCredentials(records []types.EducationRecord) heldCredentials {
	var held heldCredentials
	for _, rec := range records {
		cred := strings.ToLower(rec.CredentialType)
		switch {
		case strings.Contains(cred, "phd") || strings.Contains(cred, "doctorate"):
			held.phd = true
		case strings.Contains(cred, "master"):
			held.master = true
		case strings.Contains(cred, "bachelor"):
			held.bachelor = true
		case strings.Contains(cred, "certif"):
			held.certification = true
		}
	}
	return held
}
