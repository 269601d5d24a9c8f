// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdfsplit/pkg/types"
)

// PageExtractor copies an inclusive 1-based page range of the source
// document into w as a standalone PDF. *outline.Document is the production
// implementation.
type PageExtractor interface {
	WriteRange(start, end int, w io.Writer) error
}

// Result holds the outcome of writing a plan's units.
type Result struct {
	Written int
	Failed  int

	// Units records per-unit outcomes in plan order, for the manifest and
	// the run log.
	Units []types.UnitRecord
}

// Total returns the number of units processed.
func (r Result) Total() int {
	return r.Written + r.Failed
}

// HasFailures reports whether any unit failed to write.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Write materializes every unit of the plan, creating ancestor folders as
// needed. A unit that fails is reported and counted but never aborts the
// run; the remaining units are still written. Per-unit status lines go to
// w unless quiet is set; the final summary is always printed.
func Write(x PageExtractor, plan *Plan, w io.Writer, quiet bool) Result {
	var result Result
	for _, u := range plan.Units {
		rec := types.UnitRecord{
			Path:      u.RelPath(),
			Title:     u.Node.Title,
			StartPage: u.Node.StartPage,
			EndPage:   u.Node.EndPage,
		}

		if err := writeUnit(x, plan.RootDir, u); err != nil {
			rec.Status = types.UnitFailed
			rec.Error = err.Error()
			result.Failed++
			fmt.Fprintf(w, "failed:  %s (%v)\n", rec.Path, err)
		} else {
			rec.Status = types.UnitWritten
			result.Written++
			if !quiet {
				fmt.Fprintf(w, "written: %s (pages %d-%d)\n", rec.Path, rec.StartPage, rec.EndPage)
			}
		}
		result.Units = append(result.Units, rec)
	}

	fmt.Fprintf(w, "\nSplit summary: %d written, %d failed (total: %d)\n",
		result.Written, result.Failed, result.Total())
	return result
}

// writeUnit creates the unit's folder chain and output file, overwriting
// any previous run's file at the same path. Partial output from a failed
// extraction is removed.
func writeUnit(x PageExtractor, rootDir string, u Unit) error {
	dir := filepath.Join(rootDir, u.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, u.Filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := x.WriteRange(u.Node.StartPage, u.Node.EndPage, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
