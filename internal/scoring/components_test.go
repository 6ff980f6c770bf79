package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-engine/internal/types"
)

// analysisWithRequired builds a gap analysis with the given required
// matched/missing counts and optional preferred matches.
func analysisWithRequired(matched, missing, preferredMatched int) *types.GapAnalysis {
	analysis := &types.GapAnalysis{}
	for i := 0; i < matched; i++ {
		analysis.MatchingSkills = append(analysis.MatchingSkills, types.SkillMatch{
			Skill: "skill", Importance: types.ImportanceRequired,
		})
	}
	for i := 0; i < missing; i++ {
		analysis.MissingSkills = append(analysis.MissingSkills, types.SkillGap{
			Skill: "skill", Importance: types.ImportanceRequired, Category: types.CriticalityHigh,
		})
	}
	for i := 0; i < preferredMatched; i++ {
		analysis.MatchingSkills = append(analysis.MatchingSkills, types.SkillMatch{
			Skill: "skill", Importance: types.ImportancePreferred,
		})
	}
	return analysis
}

func TestSkillMatchScore_Bands(t *testing.T) {
	tests := []struct {
		name    string
		matched int
		missing int
		want    int
	}{
		{"full match", 4, 0, 100},
		{"band floor at 80 percent", 4, 1, 85},
		{"70 percent lands mid band", 7, 3, 75},
		{"50 percent", 1, 1, 55},
		{"25 percent", 1, 3, 28},
		{"nothing matched", 0, 4, 0},
		{"empty required list is vacuous success", 0, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skillMatchScore(analysisWithRequired(tt.matched, tt.missing, 0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkillMatchScore_PreferredBonus(t *testing.T) {
	// 80% required lands on 85; each preferred match adds 2, capped at 10
	assert.Equal(t, 91, skillMatchScore(analysisWithRequired(4, 1, 3)))
	assert.Equal(t, 95, skillMatchScore(analysisWithRequired(4, 1, 7)))
}

func TestSkillMatchScore_BonusNeverExceedsHundred(t *testing.T) {
	assert.Equal(t, 100, skillMatchScore(analysisWithRequired(4, 0, 5)))
}

func TestKeywordScore_Bands(t *testing.T) {
	tests := []struct {
		name    string
		matched int
		missing int
		want    int
	}{
		{"full match", 4, 0, 100},
		{"80 percent", 4, 1, 90},
		{"50 percent", 1, 1, 60},
		{"25 percent", 1, 3, 31},
		{"nothing matched", 0, 4, 0},
		{"empty keyword list is vacuous success", 0, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := &types.GapAnalysis{}
			for i := 0; i < tt.matched; i++ {
				analysis.MatchingKeywords = append(analysis.MatchingKeywords, "kw")
			}
			for i := 0; i < tt.missing; i++ {
				analysis.MissingKeywords = append(analysis.MissingKeywords, "kw")
			}
			assert.Equal(t, tt.want, keywordScore(analysis))
		})
	}
}

func TestFormattingScore(t *testing.T) {
	full := &types.ResumeProfile{
		Name:       "Jordan Smith",
		Email:      "jordan@example.com",
		Phone:      "555-0100",
		Summary:    "Engineer.",
		Skills:     []string{"Go"},
		Experience: []types.Experience{{Title: "Engineer"}},
		Education:  []types.Education{{Degree: "B.S."}},
		Projects:   []types.Project{{Name: "CLI tool"}},
		RawText:    "Jordan Smith ...",
	}
	assert.Equal(t, 100, formattingScore(full))

	assert.Equal(t, 0, formattingScore(&types.ResumeProfile{}))

	partial := &types.ResumeProfile{
		Email:  "jordan@example.com",
		Skills: []string{"Go"},
	}
	assert.Equal(t, 35, formattingScore(partial))
}

func TestExperienceAlignmentScore_NoExperience(t *testing.T) {
	job := &types.JobRequirement{Role: "Engineer", Seniority: types.SeniorityMid}
	assert.Equal(t, 20, experienceAlignmentScore(&types.ResumeProfile{}, job))
}

func TestExperienceAlignmentScore_HighRelevanceEntry(t *testing.T) {
	job := &types.JobRequirement{
		Role:           "Python Developer",
		RequiredSkills: []string{"Python", "Docker"},
		Seniority:      types.SeniorityMid,
	}
	resume := &types.ResumeProfile{
		Experience: []types.Experience{
			{
				Title:   "Python Developer",
				Company: "Acme",
				Description: []string{
					"Built python services",
					"Containerized deployments with docker",
					"Mentored junior developers",
					"Owned the release pipeline",
				},
			},
		},
	}

	// 3 keyword hits: high relevance (70) + mid-seniority entry credit (15)
	// + 4 relevant bullets (5)
	assert.Equal(t, 90, experienceAlignmentScore(resume, job))
}

func TestExperienceAlignmentScore_IrrelevantEntry(t *testing.T) {
	job := &types.JobRequirement{
		Role:           "Python Developer",
		RequiredSkills: []string{"Python"},
		Seniority:      types.SeniorityMid,
	}
	resume := &types.ResumeProfile{
		Experience: []types.Experience{
			{Title: "Chef", Company: "Bistro", Description: []string{"Ran the kitchen"}},
		},
	}

	// No keyword hits (45) + mid-seniority entry credit (15)
	assert.Equal(t, 60, experienceAlignmentScore(resume, job))
}

func TestExperienceAlignmentScore_SeniorEntryCount(t *testing.T) {
	job := &types.JobRequirement{
		Role:           "Senior Go Engineer",
		RequiredSkills: []string{"Go"},
		Seniority:      types.SenioritySenior,
	}
	entry := types.Experience{Title: "Chef", Company: "Bistro"}

	two := &types.ResumeProfile{Experience: []types.Experience{entry, entry}}
	three := &types.ResumeProfile{Experience: []types.Experience{entry, entry, entry}}

	// Base 45 for irrelevant entries; one short of the implied three earns
	// half the seniority credit.
	assert.Equal(t, 55, experienceAlignmentScore(two, job))
	assert.Equal(t, 65, experienceAlignmentScore(three, job))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5))
	assert.Equal(t, 42, clamp(42))
	assert.Equal(t, 100, clamp(130))
}
