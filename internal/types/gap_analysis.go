package types

// Readiness enumerates the qualitative candidate-preparedness labels
type Readiness string

// Readiness levels, from best to worst fit
const (
	ReadinessStrongFit        Readiness = "strong_fit"
	ReadinessReady            Readiness = "ready"
	ReadinessModeratelyReady  Readiness = "moderately_ready"
	ReadinessNeedsPreparation Readiness = "needs_preparation"
	ReadinessNotReady         Readiness = "not_ready"
)

// GapBreakdown partitions missing skills by criticality tier.
// BlockingGaps counts critical plus high entries.
type GapBreakdown struct {
	Critical     []string `json:"critical"`
	High         []string `json:"high"`
	Medium       []string `json:"medium"`
	Low          []string `json:"low"`
	BlockingGaps int      `json:"blocking_gaps"`
}

// GapSummary aggregates match rates and the readiness assessment.
// Match rates are percentages in [0,100]; an empty skill list yields 100
// (vacuous success, not failure).
type GapSummary struct {
	RequiredMatchRate  float64   `json:"required_match_rate"`
	PreferredMatchRate float64   `json:"preferred_match_rate"`
	OverallReadiness   Readiness `json:"overall_readiness"`
	Strengths          []string  `json:"strengths"`
	Weaknesses         []string  `json:"weaknesses"`
}

// GapAnalysis is the aggregate result of matching one resume against one job
// description. Created once per pair and never mutated; consumed by the issue
// detector and the ATS scorer.
type GapAnalysis struct {
	MatchingSkills   []SkillMatch `json:"matching_skills"`
	MissingSkills    []SkillGap   `json:"missing_skills"`
	MatchingTools    []string     `json:"matching_tools"`
	MissingTools     []string     `json:"missing_tools"`
	MatchingKeywords []string     `json:"matching_keywords"`
	MissingKeywords  []string     `json:"missing_keywords"`
	Breakdown        GapBreakdown `json:"gaps_by_category"`
	Summary          GapSummary   `json:"summary"`
	ExperienceMatch  bool         `json:"experience_match"`
	SeniorityMatch   bool         `json:"seniority_match"`
}

// HasCriticalGap reports whether any missing required skill carries the
// critical tier. Drives the readiness override and the scorer's hard cap.
func (ga *GapAnalysis) HasCriticalGap() bool {
	for _, gap := range ga.MissingSkills {
		if gap.Importance == ImportanceRequired && gap.Category == CriticalityCritical {
			return true
		}
	}
	return false
}
