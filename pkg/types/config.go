// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record structs shared across
// the pdfsplit stages.
package types

import "time"

// HTTPConfig holds HTTP settings used when the input document is fetched
// from a URL rather than read from disk.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdfsplit/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SplitConfig holds the settings for one split run.
type SplitConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the destination root. Empty means the input's directory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MinLevel and MaxLevel define the inclusive extraction window over
	// outline depths. Level 0 denotes top-level chapters.
	MinLevel int `json:"min_level" yaml:"min_level"`
	MaxLevel int `json:"max_level" yaml:"max_level"`

	// MinPages is the minimum page count per output file (default 1).
	// Ranges shorter than this are widened toward the document end.
	MinPages int `json:"min_pages" yaml:"min_pages"`

	// Quiet suppresses per-unit status lines. Summaries and errors are
	// always printed.
	Quiet bool `json:"quiet" yaml:"quiet"`

	// RunLogDir is the directory holding the SQLite run log. Empty
	// disables run logging.
	RunLogDir string `json:"run_log_dir" yaml:"run_log_dir"`
}
