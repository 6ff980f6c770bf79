// Package gaps analyzes a resume against a job requirement: it matches every
// job skill, tool, and keyword, partitions the misses by criticality, and
// derives a readiness assessment.
package gaps

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Classify assigns a criticality tier to a skill given its role in the job
// description. Rules are evaluated in order; the first that applies wins.
//
// A required skill that also appears in the role title is escalated to
// critical: it names the job itself (e.g. "Python" for a "Python Developer")
// and is treated as non-negotiable.
func Classify(skill string, job *types.JobRequirement) types.Criticality {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	titleLower := strings.ToLower(job.Role)

	if containsFold(job.RequiredSkills, skillLower) {
		if skillLower != "" && strings.Contains(titleLower, skillLower) {
			return types.CriticalityCritical
		}
		return types.CriticalityHigh
	}
	if containsFold(job.PreferredSkills, skillLower) {
		return types.CriticalityMedium
	}
	return types.CriticalityLow
}

// containsFold reports whether list contains target, comparing
// case-insensitively. target must already be lowercased and trimmed.
func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.ToLower(strings.TrimSpace(s)) == target {
			return true
		}
	}
	return false
}
