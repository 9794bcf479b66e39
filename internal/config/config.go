// Package config holds the tunable knobs for the enrichment pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persistent pipeline configuration.
//
// Every heuristic knob is deliberately exposed: the similarity threshold and
// tie-break order are starting points, not load-bearing constants.
type Config struct {
	// SimilarityThreshold is the 0-1 score above which two normalized
	// titles count as the same story.
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// TieBreak picks the survivor among duplicates: "description-first"
	// (default) or "recency-first".
	TieBreak string `json:"tie_break"`

	// Workers bounds parallel tagging. 0 means one worker per CPU.
	Workers int `json:"workers"`

	// ExtraSuffixes are additional site brandings to strip from titles
	// during normalization, on top of the built-in list.
	ExtraSuffixes []string `json:"extra_suffixes,omitempty"`

	// BatchLimit caps how many articles survive the query filter before
	// deduplication. 0 means no cap.
	BatchLimit int `json:"batch_limit"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		SimilarityThreshold: 0.85,
		TieBreak:            "description-first",
		Workers:             0,
		BatchLimit:          40,
	}
}

// Load reads configuration from path. A missing file returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to path, creating parent directories if needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
