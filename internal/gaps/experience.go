package gaps

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// minEntriesBySeniority maps a job seniority level to the number of
// experience entries it implies. A candidate one entry short still passes.
var minEntriesBySeniority = map[types.Seniority]int{
	types.SeniorityEntry:     0,
	types.SeniorityJunior:    1,
	types.SeniorityMid:       2,
	types.SenioritySenior:    4,
	types.SeniorityLead:      5,
	types.SeniorityPrincipal: 7,
}

// seniorityRank orders seniority levels for title-keyword comparison
var seniorityRank = map[types.Seniority]int{
	types.SeniorityEntry:     0,
	types.SeniorityJunior:    1,
	types.SeniorityMid:       2,
	types.SenioritySenior:    3,
	types.SeniorityLead:      4,
	types.SeniorityPrincipal: 5,
}

// titleKeywordRanks maps title keywords to the seniority rank they imply
var titleKeywordRanks = []struct {
	keyword string
	rank    int
}{
	{"principal", 5},
	{"staff", 4},
	{"lead", 4},
	{"senior", 3},
	{"sr.", 3},
	{"junior", 1},
	{"jr.", 1},
	{"intern", 0},
}

var yearsPattern = regexp.MustCompile(`\d+`)

// experienceMatches reports whether the candidate's total years of experience
// meet the lower bound implied by job.ExperienceYears. The bound is the first
// integer in the field; an absent or unparseable field is a vacuous pass.
func experienceMatches(resume *types.ResumeProfile, job *types.JobRequirement) bool {
	bound := yearsPattern.FindString(job.ExperienceYears)
	if bound == "" {
		return true
	}
	required, err := strconv.Atoi(bound)
	if err != nil {
		return true
	}
	return totalYears(resume.Experience) >= required
}

// totalYears estimates total years of experience from duration strings.
// A duration like "2019 - 2022" contributes the year difference (minimum 1);
// "3 years" contributes 3; anything unparseable counts as one year.
func totalYears(entries []types.Experience) int {
	total := 0
	for _, exp := range entries {
		total += durationYears(exp.Duration)
	}
	return total
}

func durationYears(duration string) int {
	lower := strings.ToLower(duration)
	numbers := yearsPattern.FindAllString(lower, -1)

	// "2019 - 2022" and "2019 - present" style ranges
	if len(numbers) >= 1 && len(numbers[0]) == 4 {
		start, err := strconv.Atoi(numbers[0])
		if err == nil {
			if len(numbers) >= 2 && len(numbers[1]) == 4 {
				end, err := strconv.Atoi(numbers[1])
				if err == nil && end >= start {
					return max(1, end-start)
				}
			}
			return 1
		}
	}

	// "3 years", "2 yrs"
	if len(numbers) >= 1 && (strings.Contains(lower, "year") || strings.Contains(lower, "yr")) {
		years, err := strconv.Atoi(numbers[0])
		if err == nil && years > 0 {
			return years
		}
	}

	return 1
}

// seniorityMatches reports whether the job's seniority is consistent with the
// candidate. The check passes when either the experience-entry count reaches
// one short of the level's implied minimum, or the candidate's most senior
// title keyword ranks at or above the job level.
func seniorityMatches(resume *types.ResumeProfile, job *types.JobRequirement) bool {
	minEntries, ok := minEntriesBySeniority[job.Seniority]
	if !ok {
		minEntries = minEntriesBySeniority[types.SeniorityMid]
	}
	if len(resume.Experience) >= max(0, minEntries-1) {
		return true
	}
	return candidateTitleRank(resume) >= seniorityRank[job.Seniority]
}

// candidateTitleRank returns the highest seniority rank implied by any
// experience title keyword. Titles with no keyword imply mid level.
func candidateTitleRank(resume *types.ResumeProfile) int {
	rank := -1
	for _, exp := range resume.Experience {
		titleLower := strings.ToLower(exp.Title)
		matched := false
		for _, kw := range titleKeywordRanks {
			if strings.Contains(titleLower, kw.keyword) {
				if kw.rank > rank {
					rank = kw.rank
				}
				matched = true
				break
			}
		}
		if !matched && rank < seniorityRank[types.SeniorityMid] {
			rank = seniorityRank[types.SeniorityMid]
		}
	}
	return rank
}
