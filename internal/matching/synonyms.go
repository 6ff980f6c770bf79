// Package matching determines whether a single job-description skill is
// present in a candidate profile, via an ordered cascade of strategies with
// fixed confidence values.
package matching

import (
	"sort"
	"strings"
)

// skillEquivalences maps canonical skill names to their accepted synonyms.
// A job skill matches at equivalence confidence when its canonical form, or
// any synonym of that form, appears in the resume skill list.
var skillEquivalences = map[string][]string{
	// Languages
	"python":     {"python3", "py"},
	"javascript": {"js", "ecmascript", "es6"},
	"typescript": {"ts"},
	"go":         {"golang", "go lang"},

	// SQL family: a JD asking for SQL is satisfied by any SQL database variant
	"sql":        {"postgresql", "postgres", "psql", "pg", "mysql", "mariadb", "sqlite", "sql server", "mssql", "oracle", "structured query language"},
	"postgresql": {"postgres", "psql", "pg"},
	"mysql":      {"mariadb", "my sql"},
	"sqlite":     {"sqlite3"},
	"mongodb":    {"mongo"},
	"redis":      {"redis cache"},
	"nosql":      {"no-sql", "non-relational"},

	// Frameworks and runtimes
	"fastapi": {"fast api", "fast-api"},
	"react":   {"reactjs", "react.js"},
	"vue":     {"vuejs", "vue.js"},
	"node.js": {"node", "nodejs"},

	// Architecture
	"rest api":      {"rest", "restful", "restful api", "restful apis"},
	"microservices": {"microservice", "micro-services", "microservice architecture"},
	"graphql":       {"graph ql"},
	"grpc":          {"g-rpc"},
	"protobuf":      {"protocol buffers", "proto"},

	// DevOps and cloud
	"docker":     {"containerization", "docker containers"},
	"kubernetes": {"k8s", "kube"},
	"aws":        {"amazon web services", "amazon aws"},
	"azure":      {"microsoft azure"},
	"gcp":        {"google cloud", "google cloud platform"},
	"git":        {"github", "gitlab", "version control"},
	"ci/cd":      {"cicd", "ci cd", "continuous integration", "continuous deployment"},

	// Patterns and practice
	"orm":     {"object relational mapping", "sqlalchemy", "sequelize", "typeorm"},
	"testing": {"unit testing", "automated testing"},
	"agile":   {"agile methodology", "agile methodologies", "scrum"},
}

// SynonymTable resolves skill names to canonical forms. Built once at process
// start; read-only afterwards, safe to share across concurrent evaluations.
type SynonymTable struct {
	canonical map[string]string
}

// defaultTable is the process-wide table used by the package-level matcher.
var defaultTable = NewSynonymTable()

// NewSynonymTable builds a reverse index from every canonical name and
// synonym to its canonical form. Canonical names always map to themselves,
// and synonyms shared by several canonicals resolve in sorted-key order, so
// the index is identical across processes.
func NewSynonymTable() *SynonymTable {
	keys := make([]string, 0, len(skillEquivalences))
	for canonical := range skillEquivalences {
		keys = append(keys, canonical)
	}
	sort.Strings(keys)

	index := make(map[string]string)
	for _, canonical := range keys {
		index[canonical] = canonical
	}
	for _, canonical := range keys {
		for _, syn := range skillEquivalences[canonical] {
			synLower := strings.ToLower(syn)
			if _, taken := index[synLower]; !taken {
				index[synLower] = canonical
			}
		}
	}
	return &SynonymTable{canonical: index}
}

// Canonical returns the canonical form of a skill name. Unknown skills map to
// their lowercased, trimmed form.
func (t *SynonymTable) Canonical(skill string) string {
	cleaned := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := t.canonical[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// Equivalent reports whether two skill names share a canonical form
func (t *SynonymTable) Equivalent(a, b string) bool {
	return t.Canonical(a) == t.Canonical(b)
}
