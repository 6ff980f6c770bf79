package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func TestMatch_ExactMatch(t *testing.T) {
	m := NewMatcher()

	result := m.Match("Python", []string{"Go", "Python", "Docker"}, "")
	assert.Equal(t, types.ReasonExactMatch, result.Reason)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "Python", result.Skill)
}

func TestMatch_ExactMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher()

	result := m.Match("PYTHON", []string{"python"}, "")
	assert.Equal(t, types.ReasonExactMatch, result.Reason)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatch_EquivalenceViaSynonym(t *testing.T) {
	m := NewMatcher()

	// "JavaScript" should match a resume listing "JS"
	result := m.Match("JavaScript", []string{"JS", "HTML"}, "")
	assert.Equal(t, types.ReasonEquivalence, result.Reason)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestMatch_EquivalenceSQLFamily(t *testing.T) {
	m := NewMatcher()

	// A JD asking for SQL is satisfied by any SQL database variant
	result := m.Match("SQL", []string{"PostgreSQL"}, "")
	assert.Equal(t, types.ReasonEquivalence, result.Reason)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestMatch_EquivalenceKubernetes(t *testing.T) {
	m := NewMatcher()

	result := m.Match("Kubernetes", []string{"k8s"}, "")
	assert.Equal(t, types.ReasonEquivalence, result.Reason)
}

func TestMatch_TextAppearance(t *testing.T) {
	m := NewMatcher()

	result := m.Match("Python", nil, "Built data pipelines, experience with python and airflow")
	assert.Equal(t, types.ReasonTextAppearance, result.Reason)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestMatch_TextAppearanceRequiresWordBoundary(t *testing.T) {
	m := NewMatcher()

	// "go" must not match inside "going"
	result := m.Match("Go", nil, "going forward we will iterate")
	assert.Equal(t, types.ReasonNoMatch, result.Reason)
	assert.Equal(t, 0.0, result.Confidence)

	result = m.Match("Go", nil, "services written in go for five years")
	assert.Equal(t, types.ReasonTextAppearance, result.Reason)
}

func TestMatch_PartialMatch(t *testing.T) {
	m := NewMatcher()

	// Skill is a substring of a resume skill
	result := m.Match("AWS", []string{"AWS Lambda"}, "")
	assert.Equal(t, types.ReasonPartialMatch, result.Reason)
	assert.Equal(t, 0.70, result.Confidence)

	// Resume skill is a substring of the JD skill
	result = m.Match("React Native", []string{"React"}, "")
	assert.Equal(t, types.ReasonPartialMatch, result.Reason)
}

func TestMatch_NoMatch(t *testing.T) {
	m := NewMatcher()

	result := m.Match("Rust", []string{"Python", "Go"}, "backend services in production")
	assert.Equal(t, types.ReasonNoMatch, result.Reason)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestMatch_FirstStrategyWins(t *testing.T) {
	m := NewMatcher()

	// Exact match wins even though the skill also appears in the text
	result := m.Match("Docker", []string{"Docker"}, "docker everywhere")
	assert.Equal(t, types.ReasonExactMatch, result.Reason)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatch_EmptyResume(t *testing.T) {
	m := NewMatcher()

	result := m.Match("Python", nil, "")
	assert.Equal(t, types.ReasonNoMatch, result.Reason)
}

func TestMatch_ConfidenceCascadeMonotonic(t *testing.T) {
	require.GreaterOrEqual(t, ConfidenceExact, ConfidenceEquivalence)
	require.GreaterOrEqual(t, ConfidenceEquivalence, ConfidenceText)
	require.GreaterOrEqual(t, ConfidenceText, ConfidencePartial)
	require.GreaterOrEqual(t, ConfidencePartial, 0.0)
	assert.Equal(t, ConfidencePartial, Threshold, "partial matches sit exactly at the threshold")
}

func TestMatched_Threshold(t *testing.T) {
	assert.True(t, Matched(types.MatchResult{Confidence: 0.70}))
	assert.True(t, Matched(types.MatchResult{Confidence: 1.0}))
	assert.False(t, Matched(types.MatchResult{Confidence: 0.69}))
	assert.False(t, Matched(types.MatchResult{Confidence: 0.0}))
}

func TestSynonymTable_Canonical(t *testing.T) {
	table := NewSynonymTable()

	assert.Equal(t, "javascript", table.Canonical("JS"))
	assert.Equal(t, "javascript", table.Canonical("javascript"))
	assert.Equal(t, "kubernetes", table.Canonical("K8s"))
	assert.Equal(t, "go", table.Canonical(" Golang "))

	// Unknown skills map to lowercased, trimmed form
	assert.Equal(t, "cobol", table.Canonical("COBOL"))
}

func TestSynonymTable_Equivalent(t *testing.T) {
	table := NewSynonymTable()

	assert.True(t, table.Equivalent("JS", "ECMAScript"))
	assert.True(t, table.Equivalent("postgres", "psql"))
	assert.False(t, table.Equivalent("Python", "Go"))
}
