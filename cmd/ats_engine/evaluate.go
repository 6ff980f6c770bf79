package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/observability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the full evaluation pipeline for a resume against a job",
	Long:  "Runs gap analysis, issue detection, and ATS scoring in one pass, producing a combined evaluation JSON tagged with an evaluation ID.",
	RunE:  runEvaluate,
}

var (
	evaluateResume  string
	evaluateJob     string
	evaluateOutput  string
	evaluateVerbose bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateResume, "resume", "r", "", "Path to input ResumeProfile JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateJob, "job", "j", "", "Path to input JobRequirement JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output evaluation JSON file (default stdout)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print formatted summaries to stderr")

	if err := evaluateCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := evaluateCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(evaluateResume)
	if err != nil {
		return err
	}
	job, err := loadJob(evaluateJob)
	if err != nil {
		return err
	}

	eval, err := engine.New().Evaluate(resume, job)
	if err != nil {
		return fmt.Errorf("failed to evaluate: %w", err)
	}

	if evaluateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGapAnalysis(eval.GapAnalysis)
		printer.PrintATSScore(eval.Score)
	}

	return writeJSON(evaluateOutput, eval)
}
