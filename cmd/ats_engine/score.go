package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/gaps"
	"github.com/jonathan/ats-engine/internal/issues"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the ATS compatibility score for a resume against a job",
	Long:  "Runs gap analysis, issue detection, and the weighted scoring pipeline, producing an ATSScore JSON with component scores, issues, and recommendations.",
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreJob     string
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input JobRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ATSScore JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(scoreResume)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	analysis, err := gaps.NewAnalyzer().Analyze(resume, job)
	if err != nil {
		return fmt.Errorf("failed to analyze gaps: %w", err)
	}

	found, err := issues.Detect(resume, job, analysis)
	if err != nil {
		return fmt.Errorf("failed to detect issues: %w", err)
	}

	score, err := scoring.Score(resume, job, analysis, found)
	if err != nil {
		return fmt.Errorf("failed to compute score: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintATSScore(score)
	}

	if err := writeJSON(scoreOutput, score); err != nil {
		return err
	}

	if scoreOutput != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemas.ATSScoreSchema); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, scoreOutput); err != nil {
				return fmt.Errorf("generated score is invalid: %w", err)
			}
		}
	}

	return nil
}
