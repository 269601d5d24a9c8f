// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// UnitStatus records the outcome of writing one extraction unit.
type UnitStatus string

const (
	UnitWritten UnitStatus = "written"
	UnitFailed  UnitStatus = "failed"
)

// UnitRecord describes one output file of a split run.
type UnitRecord struct {
	// Path is the output file path relative to the run's root folder.
	Path string `json:"path" yaml:"path"`

	// Title is the bookmark title the unit was derived from.
	Title string `json:"title" yaml:"title"`

	// StartPage and EndPage are the inclusive 1-based page range copied
	// into the output file.
	StartPage int `json:"start_page" yaml:"start_page"`
	EndPage   int `json:"end_page" yaml:"end_page"`

	// Status is written or failed.
	Status UnitStatus `json:"status" yaml:"status"`

	// Error holds the write failure message for failed units.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunRecord summarizes one split run. It is written as the run manifest
// and, when run logging is enabled, persisted to the run log.
type RunRecord struct {
	// ID is assigned by the run log; zero for unlogged runs.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Input is the source document path or URL as given by the user.
	Input string `json:"input" yaml:"input"`

	// OutputDir is the root folder the run wrote into.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// MinLevel and MaxLevel echo the extraction window used.
	MinLevel int `json:"min_level" yaml:"min_level"`
	MaxLevel int `json:"max_level" yaml:"max_level"`

	// Written and Failed count the run's units by outcome.
	Written int `json:"written" yaml:"written"`
	Failed  int `json:"failed" yaml:"failed"`

	Units []UnitRecord `json:"units,omitempty" yaml:"units,omitempty"`
}
