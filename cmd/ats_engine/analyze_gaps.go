package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/gaps"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/schemas"
)

var analyzeGapsCmd = &cobra.Command{
	Use:   "analyze-gaps",
	Short: "Run gap analysis for a resume against a job description",
	Long:  "Matches every job skill, tool, and keyword against a ResumeProfile JSON file, producing a GapAnalysis JSON with categorized gaps and a readiness assessment.",
	RunE:  runAnalyzeGaps,
}

var (
	analyzeGapsResume  string
	analyzeGapsJob     string
	analyzeGapsOutput  string
	analyzeGapsVerbose bool
)

func init() {
	analyzeGapsCmd.Flags().StringVarP(&analyzeGapsResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	analyzeGapsCmd.Flags().StringVarP(&analyzeGapsJob, "job", "j", "", "Path to input JobRequirement JSON file (required)")
	analyzeGapsCmd.Flags().StringVarP(&analyzeGapsOutput, "out", "o", "", "Path to output GapAnalysis JSON file (default stdout)")
	analyzeGapsCmd.Flags().BoolVarP(&analyzeGapsVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := analyzeGapsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeGapsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeGapsCmd)
}

func runAnalyzeGaps(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(analyzeGapsResume)
	if err != nil {
		return err
	}
	job, err := loadJob(analyzeGapsJob)
	if err != nil {
		return err
	}

	analysis, err := gaps.NewAnalyzer().Analyze(resume, job)
	if err != nil {
		return fmt.Errorf("failed to analyze gaps: %w", err)
	}

	if analyzeGapsVerbose {
		observability.NewPrinter(os.Stderr).PrintGapAnalysis(analysis)
	}

	if err := writeJSON(analyzeGapsOutput, analysis); err != nil {
		return err
	}

	// Validate the written artifact against the wire contract when possible
	if analyzeGapsOutput != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemas.GapAnalysisSchema); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, analyzeGapsOutput); err != nil {
				return fmt.Errorf("generated gap analysis is invalid: %w", err)
			}
		}
	}

	return nil
}
