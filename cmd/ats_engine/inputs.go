package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
)

// loadResume reads and unmarshals a ResumeProfile JSON file, validating it
// against the wire-contract schema when the schema can be located.
func loadResume(path string) (*types.ResumeProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			return nil, fmt.Errorf("resume file %s is invalid: %w", path, err)
		}
	}

	var resume types.ResumeProfile
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

// loadJob reads and unmarshals a JobRequirement JSON file, validating it
// against the wire-contract schema when the schema can be located.
func loadJob(path string) (*types.JobRequirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.JobRequirementSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			return nil, fmt.Errorf("job file %s is invalid: %w", path, err)
		}
	}

	var job types.JobRequirement
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return &job, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory if needed. An empty path writes to stdout.
func writeJSON(path string, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Println(string(output))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
