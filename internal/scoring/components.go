// Package scoring computes the four ATS component scores and combines them
// into a penalized, capped, bucketed final score.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Preferred-skill bonus applied on top of the required-skill band
const (
	preferredBonusPerSkill = 2
	preferredBonusCap      = 10
)

// Formatting presence credits. Purely additive; nothing is ever deducted.
const (
	creditSkillsSection     = 20
	creditExperienceSection = 20
	creditEducation         = 10
	creditEmail             = 15
	creditPhone             = 10
	creditSummary           = 10
	creditProjects          = 10
	creditCleanStructure    = 5
)

// skillMatchScore maps the required-skill match ratio through piecewise
// bands, then adds the preferred bonus. Only required skills feed the ratio;
// preferred skills never appear in numerator or denominator.
func skillMatchScore(analysis *types.GapAnalysis) int {
	requiredMatched := 0
	preferredMatched := 0
	for _, m := range analysis.MatchingSkills {
		if m.Importance == types.ImportanceRequired {
			requiredMatched++
		} else {
			preferredMatched++
		}
	}
	requiredMissing := 0
	for _, g := range analysis.MissingSkills {
		if g.Importance == types.ImportanceRequired {
			requiredMissing++
		}
	}

	ratio := 1.0 // vacuous success for an empty required list
	if total := requiredMatched + requiredMissing; total > 0 {
		ratio = float64(requiredMatched) / float64(total)
	}

	var score int
	switch {
	case ratio >= 0.8:
		score = 85 + roundInt((ratio-0.8)/0.2*15)
	case ratio >= 0.6:
		score = 65 + roundInt((ratio-0.6)/0.2*19)
	case ratio >= 0.4:
		score = 45 + roundInt((ratio-0.4)/0.2*19)
	default:
		score = roundInt(ratio / 0.4 * 44)
	}

	bonus := preferredMatched * preferredBonusPerSkill
	if bonus > preferredBonusCap {
		bonus = preferredBonusCap
	}
	return clamp(score + bonus)
}

// keywordScore maps the keyword hit ratio through its bands. The floor is 0,
// never an artificial minimum; an empty keyword list is vacuous success.
func keywordScore(analysis *types.GapAnalysis) int {
	total := len(analysis.MatchingKeywords) + len(analysis.MissingKeywords)
	ratio := 1.0
	if total > 0 {
		ratio = float64(len(analysis.MatchingKeywords)) / float64(total)
	}

	var score int
	switch {
	case ratio >= 0.8:
		score = 90 + roundInt((ratio-0.8)/0.2*10)
	case ratio >= 0.6:
		score = 70 + roundInt((ratio-0.6)/0.2*19)
	case ratio >= 0.4:
		score = 50 + roundInt((ratio-0.4)/0.2*19)
	default:
		score = roundInt(ratio / 0.4 * 49)
	}
	return clamp(score)
}

// formattingScore awards presence credit per section, capped at 100
func formattingScore(resume *types.ResumeProfile) int {
	score := 0
	if len(resume.Skills) > 0 {
		score += creditSkillsSection
	}
	if len(resume.Experience) > 0 {
		score += creditExperienceSection
	}
	if len(resume.Education) > 0 {
		score += creditEducation
	}
	if resume.Email != "" {
		score += creditEmail
	}
	if resume.Phone != "" {
		score += creditPhone
	}
	if resume.Summary != "" {
		score += creditSummary
	}
	if len(resume.Projects) > 0 {
		score += creditProjects
	}
	if resume.RawText != "" && resume.Name != "" {
		score += creditCleanStructure
	}
	return clamp(score)
}

// experienceAlignmentScore measures how relevant the resume experience is to
// the job role and seniority. A senior role paired with materially less
// experience scores low; abundant experience against a junior role is never
// penalized.
func experienceAlignmentScore(resume *types.ResumeProfile, job *types.JobRequirement) int {
	if len(resume.Experience) == 0 {
		return 20
	}

	keywords := relevanceKeywords(job)

	relevant := 0.0
	highRelevance := 0
	relevantBullets := 0
	for _, exp := range resume.Experience {
		text := experienceText(exp)
		hits := 0
		for kw := range keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		switch {
		case hits >= 3:
			highRelevance++
			relevant++
			relevantBullets += len(exp.Description)
		case hits >= 2:
			relevant++
			relevantBullets += len(exp.Description)
		case hits >= 1:
			relevant += 0.5
			relevantBullets += len(exp.Description) / 2
		}
	}

	var score int
	switch {
	case highRelevance >= 1 && relevant >= 2:
		score = 75
	case highRelevance >= 1:
		score = 70
	case relevant >= 2:
		score = 75
	case relevant >= 1:
		score = 60
	default:
		score = 45
	}

	// Seniority alignment: junior-side roles only need one entry; senior
	// roles need the implied entry count to earn the full credit.
	entries := len(resume.Experience)
	switch job.Seniority {
	case types.SeniorityEntry, types.SeniorityJunior, types.SeniorityMid:
		if entries >= 1 {
			score += 15
		}
	default:
		required := impliedEntries(job.Seniority)
		if entries >= required {
			score += 20
		} else if entries >= required-1 {
			score += 10
		}
	}

	if relevantBullets >= 8 {
		score += 10
	} else if relevantBullets >= 4 {
		score += 5
	}

	return clamp(score)
}

// relevanceKeywords builds the lowercase keyword set used to judge an
// experience entry: role-title words plus the leading required skills and job
// keywords.
func relevanceKeywords(job *types.JobRequirement) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(job.Role)) {
		if len(word) > 2 {
			keywords[word] = struct{}{}
		}
	}
	for _, skill := range head(job.RequiredSkills, 5) {
		keywords[strings.ToLower(skill)] = struct{}{}
	}
	for _, kw := range head(job.Keywords, 5) {
		keywords[strings.ToLower(kw)] = struct{}{}
	}
	return keywords
}

func experienceText(exp types.Experience) string {
	parts := []string{exp.Title, exp.Company}
	parts = append(parts, exp.Description...)
	parts = append(parts, exp.SkillsUsed...)
	return strings.ToLower(strings.Join(parts, " "))
}

func impliedEntries(s types.Seniority) int {
	switch s {
	case types.SenioritySenior:
		return 3
	case types.SeniorityLead:
		return 4
	case types.SeniorityPrincipal:
		return 5
	default:
		return 2
	}
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func roundInt(f float64) int {
	return int(math.Round(f))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
