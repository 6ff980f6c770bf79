package types

// Seniority enumerates job seniority levels
type Seniority string

// Seniority levels, ordered from least to most senior
const (
	SeniorityEntry     Seniority = "entry"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityPrincipal Seniority = "principal"
)

// IsValid reports whether s is a recognized seniority level
func (s Seniority) IsValid() bool {
	switch s {
	case SeniorityEntry, SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead, SeniorityPrincipal:
		return true
	}
	return false
}

// JobRequirement represents a structured job description produced by an
// upstream analysis stage. Keywords hold ATS-relevant technical terms only;
// generic buzzwords are filtered before entry.
type JobRequirement struct {
	Role            string    `json:"role"`
	Company         string    `json:"company,omitempty"`
	RequiredSkills  []string  `json:"required_skills"`
	PreferredSkills []string  `json:"preferred_skills"`
	Tools           []string  `json:"tools"`
	Keywords        []string  `json:"keywords"`
	Seniority       Seniority `json:"seniority"`
	ExperienceYears string    `json:"experience_years,omitempty"`
}
