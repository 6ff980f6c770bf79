package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/dataset"
)

// Defaults for dataset generation; the seed is fixed for reproducibility
const (
	defaultDatasetSize = 500
	defaultDatasetSeed = 42
)

var generateDatasetCmd = &cobra.Command{
	Use:   "generate-dataset",
	Short: "Generate synthetic scored resume/job pairs as JSONL",
	Long:  "Generates seeded synthetic resume/job pairs across role archetypes, scores each with the real evaluation pipeline, and writes one JSON record per line. The same seed always produces the same dataset.",
	RunE:  runGenerateDataset,
}

var (
	generateDatasetOutput string
	generateDatasetSize   int
	generateDatasetSeed   int64
)

func init() {
	generateDatasetCmd.Flags().StringVarP(&generateDatasetOutput, "out", "o", "", "Path to output JSONL file (required)")
	generateDatasetCmd.Flags().IntVarP(&generateDatasetSize, "size", "n", defaultDatasetSize, "Number of samples to generate")
	generateDatasetCmd.Flags().Int64VarP(&generateDatasetSeed, "seed", "s", defaultDatasetSeed, "RNG seed")

	if err := generateDatasetCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(generateDatasetCmd)
}

func runGenerateDataset(_ *cobra.Command, _ []string) error {
	if generateDatasetSize <= 0 {
		return fmt.Errorf("dataset size must be positive, got %d", generateDatasetSize)
	}

	samples, err := dataset.NewGenerator(generateDatasetSeed).Generate(generateDatasetSize)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	outputDir := filepath.Dir(generateDatasetOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	file, err := os.Create(generateDatasetOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", generateDatasetOutput, err)
	}
	defer func() { _ = file.Close() }()

	if err := dataset.WriteJSONL(file, samples); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote %d samples to %s\n", len(samples), generateDatasetOutput)
	return nil
}
