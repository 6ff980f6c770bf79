// Package types provides type definitions for structured data exchanged between
// the gap-analysis engine and its upstream/downstream collaborators.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile represents a normalized candidate resume produced by an
// upstream parsing stage. Skills are case-preserved but compared
// case-insensitively everywhere; deduplication happens before entry.
type ResumeProfile struct {
	Name           string       `json:"name,omitempty"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Location       string       `json:"location,omitempty"`
	LinkedIn       string       `json:"linkedin,omitempty"`
	GitHub         string       `json:"github,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages,omitempty"`
	RawText        string       `json:"raw_text"`
}

// Experience represents a single work experience entry
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
	SkillsUsed  []string `json:"skills_used,omitempty"`
}

// Education represents an education entry
type Education struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	Year         string `json:"year,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// Project represents a project entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}
