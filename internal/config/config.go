// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty" validate:"omitempty,filepath"` // Path to ResumeProfile JSON
	Job    string `json:"job,omitempty" validate:"omitempty,filepath"`    // Path to JobRequirement JSON
	Output string `json:"output,omitempty"`                               // Path to write results to

	// Behavior
	Verbose     bool `json:"verbose,omitempty"`                              // Print formatted summaries
	Concurrency int  `json:"concurrency,omitempty" validate:"min=0,max=64"`  // Batch fan-out bound
	SkipSchemas bool `json:"skip_schemas,omitempty"`                         // Skip JSON Schema validation

	// Dataset generation
	DatasetSize int   `json:"dataset_size,omitempty" validate:"min=0,max=100000"`
	DatasetSeed int64 `json:"dataset_seed,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file and validates it.
// Returns an error if the file cannot be read, parsed, or validated.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field constraints via struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
