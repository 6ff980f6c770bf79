// Package issues inspects resume/job/gap-analysis triples for concrete
// defects and emits severity-tagged issues. Rules are evaluated
// independently; every matching rule fires and none suppress others.
package issues

import (
	"fmt"

	"github.com/jonathan/ats-engine/internal/types"
)

// Experience-entry floor below which senior roles raise an issue
const seniorExperienceFloor = 3

// Detect runs the full rule set. Issues are pure observations: they carry no
// score, only a severity the scorer later converts to a penalty.
func Detect(resume *types.ResumeProfile, job *types.JobRequirement, analysis *types.GapAnalysis) ([]types.ATSIssue, error) {
	if resume == nil {
		return nil, fmt.Errorf("issue detection: resume profile is nil")
	}
	if job == nil {
		return nil, fmt.Errorf("issue detection: job requirement is nil")
	}
	if analysis == nil {
		return nil, fmt.Errorf("issue detection: gap analysis is nil")
	}

	found := []types.ATSIssue{}

	// One issue per missing required skill. Critical-tier gaps keep their
	// severity; everything else required is high.
	for _, gap := range analysis.MissingSkills {
		if gap.Importance != types.ImportanceRequired {
			continue
		}
		severity := types.SeverityHigh
		if gap.Category == types.CriticalityCritical {
			severity = types.SeverityCritical
		}
		found = append(found, types.ATSIssue{
			Category:    types.IssueSkills,
			Description: fmt.Sprintf("Missing required skill: %s", gap.Skill),
			Severity:    severity,
			Suggestion:  fmt.Sprintf("Add or highlight experience with %s if you have any", gap.Skill),
		})
	}

	if resume.Email == "" {
		found = append(found, types.ATSIssue{
			Category:    types.IssueContact,
			Description: "Missing email address",
			Severity:    types.SeverityHigh,
			Suggestion:  "Add a professional email address so recruiters can contact you",
		})
	}
	if resume.Phone == "" {
		found = append(found, types.ATSIssue{
			Category:    types.IssueContact,
			Description: "Missing phone number",
			Severity:    types.SeverityMedium,
			Suggestion:  "Add a phone number to your contact details",
		})
	}

	if isSeniorRole(job.Seniority) && len(resume.Experience) < seniorExperienceFloor {
		found = append(found, types.ATSIssue{
			Category:    types.IssueExperience,
			Description: fmt.Sprintf("Only %d experience entries for a %s-level role", len(resume.Experience), job.Seniority),
			Severity:    types.SeverityMedium,
			Suggestion:  "Add earlier roles, internships, or significant projects to show progression",
		})
	}

	found = append(found, detectFormatting(resume)...)

	return found, nil
}

// detectFormatting emits section-absence issues. Core sections (skills,
// experience) are medium; supporting sections are low.
func detectFormatting(resume *types.ResumeProfile) []types.ATSIssue {
	found := []types.ATSIssue{}

	if len(resume.Skills) == 0 {
		found = append(found, types.ATSIssue{
			Category:    types.IssueFormatting,
			Description: "Missing skills section",
			Severity:    types.SeverityMedium,
			Suggestion:  "Add a dedicated skills section listing your technical skills",
		})
	}
	if len(resume.Experience) == 0 {
		found = append(found, types.ATSIssue{
			Category:    types.IssueFormatting,
			Description: "Missing experience section",
			Severity:    types.SeverityMedium,
			Suggestion:  "Add work experience entries with bullet-point achievements",
		})
	}
	if resume.Summary == "" {
		found = append(found, types.ATSIssue{
			Category:    types.IssueFormatting,
			Description: "Missing professional summary",
			Severity:    types.SeverityLow,
			Suggestion:  "Add a 2-3 sentence summary highlighting your fit for the role",
		})
	}
	if len(resume.Education) == 0 {
		found = append(found, types.ATSIssue{
			Category:    types.IssueFormatting,
			Description: "Missing education section",
			Severity:    types.SeverityLow,
			Suggestion:  "List your degrees or relevant coursework",
		})
	}

	return found
}

func isSeniorRole(s types.Seniority) bool {
	switch s {
	case types.SenioritySenior, types.SeniorityLead, types.SeniorityPrincipal:
		return true
	}
	return false
}
