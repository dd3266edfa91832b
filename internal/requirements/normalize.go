// Package requirements extracts experience and credential requirements from
// job requisition text. The extraction is a best-effort keyword heuristic:
// a missed requirement is preferred over a false positive that would
// unfairly penalize a candidate.
package requirements

import (
	"regexp"
	"strconv"
	"strings"
)

// ExperienceLevel is the seniority tier detected for a job.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// CredentialLevel is the degree requirement detected for a job.
type CredentialLevel string

const (
	CredentialNone     CredentialLevel = "none"
	CredentialBachelor CredentialLevel = "bachelor"
	CredentialMaster   CredentialLevel = "master"
	CredentialPhD      CredentialLevel = "phd"
)

// Requirements holds the normalized requirement signals for a job.
type Requirements struct {
	RequiredYears         int
	Level                 ExperienceLevel
	Credential            CredentialLevel
	RequiresCertification bool
}

// yearsPattern matches "5+ years" / "5 years" style phrases. Only the first
// match in the description is used.
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// rule is one entry in the ordered normalization rule table. Rules are
// evaluated in priority order against the lowercased description+title text;
// apply mutates the requirements being built. Evaluation does not stop at
// the first hit: exclusive groups (seniority, degree level) guard themselves
// by checking what an earlier rule already set.
type rule struct {
	keywords []string
	apply    func(r *Requirements)
}

// normalizationRules is evaluated top to bottom. Seniority rules precede the
// mid-level rule, which precedes the entry default; degree rules go from the
// highest degree down so that "master" never downgrades a detected "phd".
var normalizationRules = []rule{
	{
		keywords: []string{"senior", "lead", "principal"},
		apply: func(r *Requirements) {
			r.Level = LevelSenior
			if r.RequiredYears < 5 {
				r.RequiredYears = 5
			}
		},
	},
	{
		keywords: []string{"mid", "intermediate"},
		apply: func(r *Requirements) {
			if r.Level != LevelEntry {
				return
			}
			r.Level = LevelMid
			if r.RequiredYears < 2 {
				r.RequiredYears = 2
			}
		},
	},
	{
		keywords: []string{"phd", "doctorate"},
		apply: func(r *Requirements) {
			r.Credential = CredentialPhD
		},
	},
	{
		keywords: []string{"master", "m.s.", "m.a."},
		apply: func(r *Requirements) {
			if r.Credential == CredentialNone {
				r.Credential = CredentialMaster
			}
		},
	},
	{
		keywords: []string{"bachelor", "b.s.", "b.a."},
		apply: func(r *Requirements) {
			if r.Credential == CredentialNone {
				r.Credential = CredentialBachelor
			}
		},
	},
	{
		keywords: []string{"certification", "certified"},
		apply: func(r *Requirements) {
			r.RequiresCertification = true
		},
	},
}

// Normalize extracts requirement signals from a job's free-text description
// and title. explicitLevel, when set to a known level name, overrides the
// keyword-detected seniority.
func Normalize(description, title, explicitLevel string) Requirements {
	req := Requirements{
		Level:      LevelEntry,
		Credential: CredentialNone,
	}

	if m := yearsPattern.FindStringSubmatch(description); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			req.RequiredYears = years
		}
	}

	text := strings.ToLower(description + " " + title)
	for _, r := range normalizationRules {
		if containsAny(text, r.keywords) {
			r.apply(&req)
		}
	}

	switch strings.ToLower(strings.TrimSpace(explicitLevel)) {
	case string(LevelSenior):
		req.Level = LevelSenior
		if req.RequiredYears < 5 {
			req.RequiredYears = 5
		}
	case string(LevelMid):
		req.Level = LevelMid
		if req.RequiredYears < 2 {
			req.RequiredYears = 2
		}
	case string(LevelEntry):
		req.Level = LevelEntry
	}

	return req
}

// HasCredentialRequirement reports whether any degree or certification
// requirement was detected. When false, education scoring short-circuits
// to a full score.
func (r Requirements) HasCredentialRequirement() bool {
	return r.Credential != CredentialNone || r.RequiresCertification
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
