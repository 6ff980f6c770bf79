package gaps

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/matching"
	"github.com/jonathan/ats-engine/internal/types"
)

// Readiness thresholds over the combined required+preferred match rate
const (
	readyMatchRate       = 0.8
	moderateMatchRate    = 0.6
	preparationMatchRate = 0.4

	// A candidate can still be ready with one high-tier gap outstanding
	readyMaxHighGaps = 1
)

// Analyzer runs the full gap analysis for a (resume, job) pair.
// Stateless apart from its matcher; safe for concurrent use.
type Analyzer struct {
	matcher *matching.Matcher
}

// NewAnalyzer returns an Analyzer backed by a fresh matcher
func NewAnalyzer() *Analyzer {
	return &Analyzer{matcher: matching.NewMatcher()}
}

// Analyze matches every job skill, tool, and keyword against the resume and
// produces an immutable GapAnalysis. Sparse inputs (empty skill lists, no
// experience) are absorbed via the documented vacuous-success rules; only nil
// top-level inputs are rejected.
func (a *Analyzer) Analyze(resume *types.ResumeProfile, job *types.JobRequirement) (*types.GapAnalysis, error) {
	if resume == nil {
		return nil, fmt.Errorf("gap analysis: resume profile is nil")
	}
	if job == nil {
		return nil, fmt.Errorf("gap analysis: job requirement is nil")
	}

	rawText := fullResumeText(resume)

	analysis := &types.GapAnalysis{
		MatchingSkills:   []types.SkillMatch{},
		MissingSkills:    []types.SkillGap{},
		MatchingTools:    []string{},
		MissingTools:     []string{},
		MatchingKeywords: []string{},
		MissingKeywords:  []string{},
	}

	// Required skills: misses are classified by criticality
	requiredMatched := 0
	for _, skill := range job.RequiredSkills {
		result := a.matcher.Match(skill, resume.Skills, rawText)
		if matching.Matched(result) {
			requiredMatched++
			analysis.MatchingSkills = append(analysis.MatchingSkills, types.SkillMatch{
				Skill:      skill,
				Importance: types.ImportanceRequired,
				Reason:     result.Reason,
				Confidence: result.Confidence,
			})
			continue
		}
		analysis.MissingSkills = append(analysis.MissingSkills, types.SkillGap{
			Skill:      skill,
			Importance: types.ImportanceRequired,
			Category:   Classify(skill, job),
			Reason:     result.Reason,
		})
	}

	// Preferred skills: misses are never escalated above medium
	preferredMatched := 0
	for _, skill := range job.PreferredSkills {
		result := a.matcher.Match(skill, resume.Skills, rawText)
		if matching.Matched(result) {
			preferredMatched++
			analysis.MatchingSkills = append(analysis.MatchingSkills, types.SkillMatch{
				Skill:      skill,
				Importance: types.ImportancePreferred,
				Reason:     result.Reason,
				Confidence: result.Confidence,
			})
			continue
		}
		analysis.MissingSkills = append(analysis.MissingSkills, types.SkillGap{
			Skill:      skill,
			Importance: types.ImportancePreferred,
			Category:   types.CriticalityMedium,
			Reason:     result.Reason,
		})
	}

	// Tools and keywords: boolean presence only, no importance tagging
	analysis.MatchingTools, analysis.MissingTools = a.matchPlain(job.Tools, resume.Skills, rawText)
	analysis.MatchingKeywords, analysis.MissingKeywords = a.matchPlain(job.Keywords, resume.Skills, rawText)

	analysis.Breakdown = buildBreakdown(analysis.MissingSkills)

	analysis.Summary = types.GapSummary{
		RequiredMatchRate:  matchRate(requiredMatched, len(job.RequiredSkills)),
		PreferredMatchRate: matchRate(preferredMatched, len(job.PreferredSkills)),
	}
	analysis.Summary.OverallReadiness = assessReadiness(analysis)
	analysis.Summary.Strengths = buildStrengths(resume, analysis)
	analysis.Summary.Weaknesses = buildWeaknesses(analysis)

	analysis.ExperienceMatch = experienceMatches(resume, job)
	analysis.SeniorityMatch = seniorityMatches(resume, job)

	return analysis, nil
}

// matchPlain runs the matcher over a plain term list, splitting into present
// and missing terms.
func (a *Analyzer) matchPlain(terms, resumeSkills []string, rawText string) (present, missing []string) {
	present = []string{}
	missing = []string{}
	for _, term := range terms {
		if matching.Matched(a.matcher.Match(term, resumeSkills, rawText)) {
			present = append(present, term)
		} else {
			missing = append(missing, term)
		}
	}
	return present, missing
}

// matchRate returns matched/total as a percentage. An empty list is vacuous
// success: 100, never 0.
func matchRate(matched, total int) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(matched) / float64(total) * 100.0
}

// buildBreakdown partitions missing skills into criticality buckets
func buildBreakdown(missing []types.SkillGap) types.GapBreakdown {
	breakdown := types.GapBreakdown{
		Critical: []string{},
		High:     []string{},
		Medium:   []string{},
		Low:      []string{},
	}
	for _, gap := range missing {
		switch gap.Category {
		case types.CriticalityCritical:
			breakdown.Critical = append(breakdown.Critical, gap.Skill)
		case types.CriticalityHigh:
			breakdown.High = append(breakdown.High, gap.Skill)
		case types.CriticalityMedium:
			breakdown.Medium = append(breakdown.Medium, gap.Skill)
		default:
			breakdown.Low = append(breakdown.Low, gap.Skill)
		}
	}
	breakdown.BlockingGaps = len(breakdown.Critical) + len(breakdown.High)
	return breakdown
}

// assessReadiness derives the readiness label. Rules are evaluated in order:
// a clean sheet wins outright, a critical gap is a hard override, then the
// combined required+preferred match rate is thresholded.
func assessReadiness(analysis *types.GapAnalysis) types.Readiness {
	if len(analysis.MissingSkills) == 0 {
		return types.ReadinessStrongFit
	}
	if len(analysis.Breakdown.Critical) > 0 {
		return types.ReadinessNotReady
	}

	matched := len(analysis.MatchingSkills)
	total := matched + len(analysis.MissingSkills)
	rate := float64(matched) / float64(total)

	switch {
	case rate >= readyMatchRate && len(analysis.Breakdown.High) <= readyMaxHighGaps:
		return types.ReadinessReady
	case rate >= moderateMatchRate:
		return types.ReadinessModeratelyReady
	case rate >= preparationMatchRate:
		return types.ReadinessNeedsPreparation
	default:
		return types.ReadinessNotReady
	}
}

// fullResumeText compiles every text fragment of the resume into one string
// for the text-appearance and partial strategies.
func fullResumeText(resume *types.ResumeProfile) string {
	parts := []string{resume.RawText, resume.Summary}

	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title, exp.Company)
		parts = append(parts, exp.Description...)
		parts = append(parts, exp.SkillsUsed...)
	}
	for _, proj := range resume.Projects {
		parts = append(parts, proj.Name, proj.Description)
		parts = append(parts, proj.Technologies...)
	}
	parts = append(parts, resume.Certifications...)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
