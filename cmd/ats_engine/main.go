// Package main implements the ats_engine CLI for resume/job gap analysis and
// ATS compatibility scoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_engine",
	Short: "Resume gap analysis and ATS scoring engine",
	Long:  "ats_engine evaluates how well a candidate resume matches a job description, producing a reproducible compatibility score and a gap report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
