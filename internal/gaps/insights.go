package gaps

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	maxStrengths    = 5
	maxWeaknesses   = 4
	maxListedSkills = 3
)

// buildStrengths derives a deterministic, capped strengths list from the
// resume and the matched skills.
func buildStrengths(resume *types.ResumeProfile, analysis *types.GapAnalysis) []string {
	strengths := []string{}

	highConfidence := 0
	for _, m := range analysis.MatchingSkills {
		if m.Confidence >= 0.9 {
			highConfidence++
		}
	}
	if highConfidence >= 3 {
		strengths = append(strengths, fmt.Sprintf("Strong match on %d core skills", highConfidence))
	}

	requiredMatched := []string{}
	for _, m := range analysis.MatchingSkills {
		if m.Importance == types.ImportanceRequired {
			requiredMatched = append(requiredMatched, m.Skill)
		}
	}
	if len(requiredMatched) > 0 {
		listed := requiredMatched
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		strengths = append(strengths, "Has required skills: "+strings.Join(listed, ", "))
	}

	if len(resume.Experience) > 0 {
		bullets := 0
		for _, exp := range resume.Experience {
			bullets += len(exp.Description)
		}
		if bullets >= 10 {
			strengths = append(strengths, "Detailed work experience with quantified achievements")
		} else if bullets >= 5 {
			strengths = append(strengths, "Solid work experience")
		}
	}

	if len(resume.Certifications) > 0 {
		listed := resume.Certifications
		if len(listed) > 2 {
			listed = listed[:2]
		}
		strengths = append(strengths, "Professional certifications: "+strings.Join(listed, ", "))
	}

	if len(resume.Projects) >= 2 {
		strengths = append(strengths, "Demonstrated hands-on project experience")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Resume shows relevant background")
	}
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

// buildWeaknesses derives a deterministic, capped weaknesses list from the
// gap breakdown.
func buildWeaknesses(analysis *types.GapAnalysis) []string {
	weaknesses := []string{}
	breakdown := analysis.Breakdown

	if len(breakdown.Critical) > 0 {
		listed := breakdown.Critical
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		weaknesses = append(weaknesses, "Critical: missing "+strings.Join(listed, ", ")+" - required for role")
	}
	if len(breakdown.High) > 0 {
		listed := breakdown.High
		if len(listed) > maxListedSkills {
			listed = listed[:maxListedSkills]
		}
		weaknesses = append(weaknesses, "High priority: strengthen "+strings.Join(listed, ", "))
	}
	if len(breakdown.Medium) > 0 && len(breakdown.Critical) == 0 {
		listed := breakdown.Medium
		if len(listed) > 2 {
			listed = listed[:2]
		}
		weaknesses = append(weaknesses, "Consider highlighting: "+strings.Join(listed, ", "))
	}

	if len(weaknesses) == 0 {
		if len(breakdown.Low) > 0 {
			weaknesses = append(weaknesses, "Minor gaps in preferred skills - mention in cover letter")
		} else {
			weaknesses = append(weaknesses, "Strong match - focus on demonstrating experience in interviews")
		}
	}
	if len(weaknesses) > maxWeaknesses {
		weaknesses = weaknesses[:maxWeaknesses]
	}
	return weaknesses
}
