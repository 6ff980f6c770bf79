package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/engine"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many resume/job pairs concurrently",
	Long:  "Reads a JSON array of {resume, job} pairs and evaluates them concurrently. Each evaluation is independent; results are written in input order.",
	RunE:  runBatch,
}

var (
	batchPairs       string
	batchOutput      string
	batchConfig      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchPairs, "pairs", "p", "", "Path to input JSON array of {resume, job} pairs (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to config JSON file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum concurrent evaluations (0 uses the default)")

	if err := batchCmd.MarkFlagRequired("pairs"); err != nil {
		panic(fmt.Sprintf("failed to mark pairs flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	concurrency := batchConcurrency
	output := batchOutput

	if batchConfig != "" {
		cfg, err := config.LoadConfig(batchConfig)
		if err != nil {
			return err
		}
		if concurrency == 0 {
			concurrency = cfg.Concurrency
		}
		if output == "" {
			output = cfg.Output
		}
	}

	content, err := os.ReadFile(batchPairs)
	if err != nil {
		return fmt.Errorf("failed to read pairs file %s: %w", batchPairs, err)
	}

	var pairs []engine.Pair
	if err := json.Unmarshal(content, &pairs); err != nil {
		return fmt.Errorf("failed to unmarshal pairs JSON: %w", err)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("pairs file %s contains no pairs", batchPairs)
	}

	results, err := engine.New().EvaluateBatch(cmd.Context(), pairs, concurrency)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	return writeJSON(output, results)
}
