// Package engine wires the gap analyzer, issue detector, and ATS scorer into
// a single evaluation pipeline, with concurrent fan-out for batches.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/ats-engine/internal/gaps"
	"github.com/jonathan/ats-engine/internal/issues"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/types"
)

// Evaluation is the terminal output for one (resume, job) pair
type Evaluation struct {
	ID          uuid.UUID          `json:"id"`
	GapAnalysis *types.GapAnalysis `json:"gap_analysis"`
	Score       *types.ATSScore    `json:"ats_score"`
}

// Engine runs the full evaluation pipeline. Its lookup tables are read-only;
// a single Engine is safe for concurrent use.
type Engine struct {
	analyzer *gaps.Analyzer
}

// New returns an Engine with freshly built lookup tables
func New() *Engine {
	return &Engine{analyzer: gaps.NewAnalyzer()}
}

// Evaluate runs gap analysis, issue detection, and scoring for one pair.
// The detector and scorer both consume the same GapAnalysis instance; nothing
// is recomputed between stages.
func (e *Engine) Evaluate(resume *types.ResumeProfile, job *types.JobRequirement) (*Evaluation, error) {
	analysis, err := e.analyzer.Analyze(resume, job)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	found, err := issues.Detect(resume, job, analysis)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	score, err := scoring.Score(resume, job, analysis, found)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	return &Evaluation{
		ID:          uuid.New(),
		GapAnalysis: analysis,
		Score:       score,
	}, nil
}
