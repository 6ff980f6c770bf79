// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGapAnalysis outputs a human-readable summary of a gap analysis
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Readiness:       %s\n", analysis.Summary.OverallReadiness))
	sb.WriteString(fmt.Sprintf("Required match:  %.1f%%\n", analysis.Summary.RequiredMatchRate))
	sb.WriteString(fmt.Sprintf("Preferred match: %.1f%%\n", analysis.Summary.PreferredMatchRate))
	sb.WriteString("\n")

	if len(analysis.MatchingSkills) > 0 {
		sb.WriteString("Matched Skills:\n")
		count := min(len(analysis.MatchingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := analysis.MatchingSkills[i]
			sb.WriteString(fmt.Sprintf("  + %s (%s, %.2f)\n", m.Skill, m.Reason, m.Confidence))
		}
		if len(analysis.MatchingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MatchingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.MissingSkills) > 0 {
		sb.WriteString("Missing Skills:\n")
		count := min(len(analysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := analysis.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  - %s (%s/%s)\n", gap.Skill, gap.Importance, gap.Category))
		}
		if len(analysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Blocking gaps:   %d\n", analysis.Breakdown.BlockingGaps))
	sb.WriteString(fmt.Sprintf("Experience fit:  %t\n", analysis.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Seniority fit:   %t", analysis.SeniorityMatch))

	p.printBox("Gap Analysis", sb.String())
}

// PrintATSScore outputs a human-readable summary of an ATS score
func (p *Printer) PrintATSScore(score *types.ATSScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %d / 100 (%s)\n", score.OverallScore, score.Bucket))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", score.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Keywords:   %d\n", score.KeywordScore))
	sb.WriteString(fmt.Sprintf("Formatting: %d\n", score.FormattingScore))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", score.ExperienceAlignmentScore))

	if len(score.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(score.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := score.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, issue.Description))
		}
		if len(score.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Issues)-maxItemsToShow))
		}
	}

	if len(score.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(score.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  * %s\n", score.Recommendations[i]))
		}
	}

	p.printBox("ATS Score", strings.TrimRight(sb.String(), "\n"))
}
