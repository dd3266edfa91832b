// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobmatch/internal/scoring"
)

// Config is the match engine configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Scoring
	SkillsWeight     float64 `json:"skills_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	EducationWeight  float64 `json:"education_weight,omitempty"`

	// Batch ranking
	RankConcurrency int `json:"rank_concurrency,omitempty"` // bound on concurrent job scoring
	TopJobs         int `json:"top_jobs,omitempty"`         // top-K window for improvement aggregation
	JobListCap      int `json:"job_list_cap,omitempty"`     // cap when ranking "all known jobs"

	// Resources
	CatalogPath string `json:"catalog_path,omitempty"` // learning-resource catalog file; empty uses the embedded default
}

// LoadConfig loads configuration from a JSON file.
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
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SkillsWeight < 0 || c.ExperienceWeight < 0 || c.EducationWeight < 0 {
		return fmt.Errorf("config error: score weights must be non-negative")
	}
	if c.RankConcurrency < 0 {
		return fmt.Errorf("config error: 'rank_concurrency' must be non-negative")
	}
	if c.TopJobs < 0 {
		return fmt.Errorf("config error: 'top_jobs' must be non-negative")
	}
	if c.JobListCap < 0 {
		return fmt.Errorf("config error: 'job_list_cap' must be non-negative")
	}
	return nil
}

// Weights returns the configured composite weights, or the scoring defaults
// when no weight is set.
func (c *Config) Weights() scoring.Weights {
	if c.SkillsWeight == 0 && c.ExperienceWeight == 0 && c.EducationWeight == 0 {
		return scoring.DefaultWeights()
	}
	return scoring.Weights{
		Skills:     c.SkillsWeight,
		Experience: c.ExperienceWeight,
		Education:  c.EducationWeight,
	}
}
