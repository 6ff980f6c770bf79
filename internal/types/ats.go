package types

// ATSBucket enumerates the four-way compatibility classification
type ATSBucket string

// ATS buckets. When a critical gap exists only moderate and weak are
// reachable: a resume cannot be labeled strong, or dismissed outright, while
// failing on a core requirement.
const (
	BucketStrong         ATSBucket = "strong"
	BucketModerate       ATSBucket = "moderate"
	BucketWeak           ATSBucket = "weak"
	BucketNotATSFriendly ATSBucket = "not_ats_friendly"
)

// IssueCategory enumerates ATS issue categories
type IssueCategory string

// Issue categories
const (
	IssueSkills     IssueCategory = "skills"
	IssueContact    IssueCategory = "contact"
	IssueExperience IssueCategory = "experience"
	IssueFormatting IssueCategory = "formatting"
)

// IssueSeverity enumerates ATS issue severities
type IssueSeverity string

// Issue severities, from most to least severe
const (
	SeverityCritical IssueSeverity = "critical"
	SeverityHigh     IssueSeverity = "high"
	SeverityMedium   IssueSeverity = "medium"
	SeverityLow      IssueSeverity = "low"
)

// ATSIssue is a single defect observed in a resume/job/gap-analysis triple.
// Issues carry no score themselves; penalties are derived from severities by
// the scorer.
type ATSIssue struct {
	Category    IssueCategory `json:"category"`
	Description string        `json:"description"`
	Severity    IssueSeverity `json:"severity"`
	Suggestion  string        `json:"suggestion"`
}

// ATSScore is the terminal scoring output. Immutable once returned; field
// names and value ranges are the wire contract for downstream consumers.
type ATSScore struct {
	OverallScore             int        `json:"overall_score"`
	Bucket                   ATSBucket  `json:"bucket"`
	SkillMatchScore          int        `json:"skill_match_score"`
	KeywordScore             int        `json:"keyword_score"`
	FormattingScore          int        `json:"formatting_score"`
	ExperienceAlignmentScore int        `json:"experience_alignment_score"`
	Issues                   []ATSIssue `json:"issues"`
	MissingKeywords          []string   `json:"missing_keywords"`
	Recommendations          []string   `json:"recommendations"`
}
