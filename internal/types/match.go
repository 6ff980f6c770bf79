package types

// MatchReason enumerates the strategy that produced a skill match result
type MatchReason string

// Match reason codes, in cascade order. Each strategy carries a fixed
// confidence; strategies are never combined or averaged.
const (
	ReasonExactMatch     MatchReason = "exact_match"
	ReasonEquivalence    MatchReason = "equivalence"
	ReasonTextAppearance MatchReason = "text_appearance"
	ReasonPartialMatch   MatchReason = "partial_match"
	ReasonNoMatch        MatchReason = "no_match"
)

// MatchResult is the transient outcome of matching a single job-description
// skill against a candidate profile. Consumed immediately by the gap analyzer.
type MatchResult struct {
	Skill      string      `json:"skill"`
	Confidence float64     `json:"confidence"`
	Reason     MatchReason `json:"reason"`
}

// SkillImportance distinguishes required from preferred job skills
type SkillImportance string

// Skill importance values
const (
	ImportanceRequired  SkillImportance = "required"
	ImportancePreferred SkillImportance = "preferred"
)

// Criticality enumerates gap severity tiers assigned by the classifier
type Criticality string

// Criticality tiers, from most to least severe
const (
	CriticalityCritical Criticality = "critical"
	CriticalityHigh     Criticality = "high"
	CriticalityMedium   Criticality = "medium"
	CriticalityLow      Criticality = "low"
)

// SkillMatch records a matched job-description skill. Created only when the
// match confidence meets the matching threshold.
type SkillMatch struct {
	Skill      string          `json:"skill"`
	Importance SkillImportance `json:"importance"`
	Reason     MatchReason     `json:"reason"`
	Confidence float64         `json:"confidence"`
}

// SkillGap records a missing job-description skill with its criticality tier
type SkillGap struct {
	Skill      string          `json:"skill"`
	Importance SkillImportance `json:"importance"`
	Category   Criticality     `json:"category"`
	Reason     MatchReason     `json:"reason"`
}
