package matching

import (
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/ats-engine/internal/types"
)

// Confidence values for each strategy in cascade order. The first strategy
// that succeeds wins; values are monotonically non-increasing down the
// cascade.
const (
	ConfidenceExact       = 1.0
	ConfidenceEquivalence = 0.95
	ConfidenceText        = 0.85
	ConfidencePartial     = 0.70

	// Threshold is the minimum confidence at which a skill counts as matched.
	// Identical for required and preferred evaluation; not tunable per call.
	Threshold = 0.70
)

// Matcher matches job-description skills against a candidate profile.
// Stateless apart from its read-only synonym table and regex cache; safe for
// concurrent use.
type Matcher struct {
	table *SynonymTable

	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

// NewMatcher returns a Matcher backed by the default synonym table
func NewMatcher() *Matcher {
	return &Matcher{table: defaultTable, patterns: make(map[string]*regexp.Regexp)}
}

// Match evaluates the strategy cascade for a single skill against the resume
// skill list and raw resume text. The first strategy that succeeds determines
// the confidence and reason code.
func (m *Matcher) Match(skill string, resumeSkills []string, resumeRawText string) types.MatchResult {
	skillLower := strings.ToLower(strings.TrimSpace(skill))

	// Strategy 1: exact match against any listed skill
	for _, rs := range resumeSkills {
		if strings.ToLower(strings.TrimSpace(rs)) == skillLower {
			return types.MatchResult{Skill: skill, Confidence: ConfidenceExact, Reason: types.ReasonExactMatch}
		}
	}

	// Strategy 2: equivalence via the synonym table
	canonical := m.table.Canonical(skill)
	for _, rs := range resumeSkills {
		if m.table.Canonical(rs) == canonical {
			return types.MatchResult{Skill: skill, Confidence: ConfidenceEquivalence, Reason: types.ReasonEquivalence}
		}
	}
	for _, syn := range skillEquivalences[canonical] {
		synLower := strings.ToLower(syn)
		for _, rs := range resumeSkills {
			if strings.ToLower(strings.TrimSpace(rs)) == synLower {
				return types.MatchResult{Skill: skill, Confidence: ConfidenceEquivalence, Reason: types.ReasonEquivalence}
			}
		}
	}

	// Strategy 3: word-boundary appearance in the raw resume text. The
	// boundary check keeps "go" from matching inside "going".
	if resumeRawText != "" && m.appearsInText(skillLower, resumeRawText) {
		return types.MatchResult{Skill: skill, Confidence: ConfidenceText, Reason: types.ReasonTextAppearance}
	}

	// Strategy 4: substring either direction against listed skills
	if skillLower != "" {
		for _, rs := range resumeSkills {
			rsLower := strings.ToLower(strings.TrimSpace(rs))
			if rsLower == "" {
				continue
			}
			if strings.Contains(rsLower, skillLower) || strings.Contains(skillLower, rsLower) {
				return types.MatchResult{Skill: skill, Confidence: ConfidencePartial, Reason: types.ReasonPartialMatch}
			}
		}
	}

	return types.MatchResult{Skill: skill, Confidence: 0.0, Reason: types.ReasonNoMatch}
}

// Matched reports whether a result meets the matching threshold
func Matched(result types.MatchResult) bool {
	return result.Confidence >= Threshold
}

// appearsInText runs a case-insensitive word-boundary search for the skill
// inside the resume text, caching compiled patterns per skill.
func (m *Matcher) appearsInText(skillLower, text string) bool {
	if skillLower == "" {
		return false
	}

	m.mu.Lock()
	pattern, ok := m.patterns[skillLower]
	if !ok {
		compiled, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(skillLower) + `\b`)
		if err != nil {
			m.mu.Unlock()
			return false
		}
		pattern = compiled
		m.patterns[skillLower] = pattern
	}
	m.mu.Unlock()

	return pattern.MatchString(text)
}
