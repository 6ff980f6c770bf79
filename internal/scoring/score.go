package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/ats-engine/internal/types"
)

// Component weights for the base score
const (
	weightSkillMatch = 0.40
	weightKeyword    = 0.20
	weightFormatting = 0.20
	weightExperience = 0.20
)

// criticalGapCap is the hard ceiling applied after penalties whenever a
// missing required skill carries the critical tier. It is a cap, not a
// replacement for the penalties.
const criticalGapCap = 55

// Bucket thresholds on the post-cap final score
const (
	bucketStrongMin   = 80
	bucketModerateMin = 60
	bucketWeakMin     = 40

	// With critical gaps present only moderate and weak are reachable
	criticalModerateMin = 50
)

// severityPenalties maps issue severities to score deductions
var severityPenalties = map[types.IssueSeverity]int{
	types.SeverityCritical: 25,
	types.SeverityHigh:     10,
	types.SeverityMedium:   5,
	types.SeverityLow:      0,
}

// maxReportedMissingKeywords bounds the missing-keyword list on the output
const maxReportedMissingKeywords = 10

// Score combines the four component scores into the final ATS score. The
// issues must have been detected on the same gap analysis passed here; the
// scorer never recomputes them.
func Score(resume *types.ResumeProfile, job *types.JobRequirement, analysis *types.GapAnalysis, found []types.ATSIssue) (*types.ATSScore, error) {
	if resume == nil {
		return nil, fmt.Errorf("ats scoring: resume profile is nil")
	}
	if job == nil {
		return nil, fmt.Errorf("ats scoring: job requirement is nil")
	}
	if analysis == nil {
		return nil, fmt.Errorf("ats scoring: gap analysis is nil")
	}

	skill := skillMatchScore(analysis)
	keyword := keywordScore(analysis)
	formatting := formattingScore(resume)
	experience := experienceAlignmentScore(resume, job)

	base := int(math.Round(
		float64(skill)*weightSkillMatch +
			float64(keyword)*weightKeyword +
			float64(formatting)*weightFormatting +
			float64(experience)*weightExperience))

	penalty, err := totalPenalty(found)
	if err != nil {
		return nil, err
	}

	final := base - penalty
	if final < 0 {
		final = 0
	}

	hasCritical := analysis.HasCriticalGap()
	if hasCritical && final > criticalGapCap {
		final = criticalGapCap
	}

	missing := analysis.MissingKeywords
	if len(missing) > maxReportedMissingKeywords {
		missing = missing[:maxReportedMissingKeywords]
	}

	return &types.ATSScore{
		OverallScore:             final,
		Bucket:                   bucketFor(final, hasCritical),
		SkillMatchScore:          skill,
		KeywordScore:             keyword,
		FormattingScore:          formatting,
		ExperienceAlignmentScore: experience,
		Issues:                   found,
		MissingKeywords:          missing,
		Recommendations:          recommendations(found),
	}, nil
}

// totalPenalty sums severity penalties. An unrecognized severity is a
// programmer error and fails loudly rather than being defaulted.
func totalPenalty(found []types.ATSIssue) (int, error) {
	total := 0
	for _, issue := range found {
		penalty, ok := severityPenalties[issue.Severity]
		if !ok {
			return 0, fmt.Errorf("ats scoring: unrecognized issue severity %q", issue.Severity)
		}
		total += penalty
	}
	return total, nil
}

// bucketFor assigns the four-way bucket from the post-cap score and the
// critical-gap flag.
func bucketFor(score int, hasCriticalGap bool) types.ATSBucket {
	if hasCriticalGap {
		if score >= criticalModerateMin {
			return types.BucketModerate
		}
		return types.BucketWeak
	}
	switch {
	case score >= bucketStrongMin:
		return types.BucketStrong
	case score >= bucketModerateMin:
		return types.BucketModerate
	case score >= bucketWeakMin:
		return types.BucketWeak
	default:
		return types.BucketNotATSFriendly
	}
}

// recommendations derives one suggestion per issue, deduplicated by
// category plus description.
func recommendations(found []types.ATSIssue) []string {
	seen := make(map[string]bool)
	recs := []string{}
	for _, issue := range found {
		key := string(issue.Category) + "|" + issue.Description
		if seen[key] {
			continue
		}
		seen[key] = true
		recs = append(recs, issue.Suggestion)
	}
	return recs
}
