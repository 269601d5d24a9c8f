// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter selects extraction units from a resolved outline, plans
// their output paths, and writes each unit's page range as a standalone PDF.
package splitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfsplit/internal/outline"
	"github.com/pdiddy/pdfsplit/pkg/types"
)

// Unit is one planned output file.
type Unit struct {
	// Node is the bookmark the unit was selected from.
	Node *outline.Node

	// Dir is the unit's folder chain relative to the plan root; empty for
	// units placed directly in the root.
	Dir string

	// Filename is the sanitized, numeric-prefixed output name.
	Filename string
}

// RelPath returns the unit's output path relative to the plan root.
func (u Unit) RelPath() string {
	if u.Dir == "" {
		return u.Filename
	}
	return filepath.Join(u.Dir, u.Filename)
}

// Plan holds the output layout of one split run.
type Plan struct {
	// RootDir is the run's root output folder, named after the input.
	RootDir string

	Units []Unit
}

// WindowError reports an extraction window that matches no outline nodes.
type WindowError struct {
	MinLevel, MaxLevel       int
	DetectedMin, DetectedMax int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf(
		"no bookmarks at levels %d-%d; this outline has levels %d-%d (adjust --min-level/--max-level)",
		e.MinLevel, e.MaxLevel, e.DetectedMin, e.DetectedMax)
}

// RootDir resolves the run's root output folder: the configured output
// directory (default: the input's directory) plus the input's base name.
func RootDir(inputPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, base)
}

// Build selects the nodes whose level falls inside [MinLevel, MaxLevel] and
// plans one output file per node, nested under sanitized folders named after
// its ancestors. Sibling order is preserved; name collisions get a numeric
// suffix. An empty selection yields a WindowError carrying the outline's
// detected level range.
func Build(doc *outline.Document, cfg types.SplitConfig) (*Plan, error) {
	plan := &Plan{RootDir: RootDir(doc.Path, cfg.OutputDir)}
	seen := make(map[string]int)

	for _, n := range outline.Flatten(doc.Roots) {
		if n.Level < cfg.MinLevel || n.Level > cfg.MaxLevel {
			continue
		}
		u := Unit{
			Node:     n,
			Dir:      folderChain(n),
			Filename: fileName(n),
		}
		key := strings.ToLower(u.RelPath())
		seen[key]++
		if c := seen[key]; c > 1 {
			u.Filename = fmt.Sprintf("%s_%d.pdf", strings.TrimSuffix(u.Filename, ".pdf"), c)
		}
		plan.Units = append(plan.Units, u)
	}

	if len(plan.Units) == 0 {
		dmin, dmax, _ := outline.DetectedLevels(doc.Roots)
		return nil, &WindowError{
			MinLevel:    cfg.MinLevel,
			MaxLevel:    cfg.MaxLevel,
			DetectedMin: dmin,
			DetectedMax: dmax,
		}
	}
	return plan, nil
}

// WholeDocument plans the fallback split for documents without a usable
// outline: a single unit spanning every page, named after the input.
func WholeDocument(doc *outline.Document, cfg types.SplitConfig) *Plan {
	base := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
	node := &outline.Node{
		Title:        base,
		DisplayTitle: base,
		Page:         1,
		StartPage:    1,
		EndPage:      doc.PageCount,
	}
	return &Plan{
		RootDir: RootDir(doc.Path, cfg.OutputDir),
		Units: []Unit{{
			Node:     node,
			Filename: SanitizeName(base) + ".pdf",
		}},
	}
}

// folderChain builds the unit's folder path from its ancestors, topmost
// first, each segment a sanitized "<number>_<title>".
func folderChain(n *outline.Node) string {
	var segments []string
	for p := n.Parent; p != nil; p = p.Parent {
		segments = append([]string{segment(p)}, segments...)
	}
	return filepath.Join(segments...)
}

func segment(n *outline.Node) string {
	return SanitizeName(underscored(n.Number) + "_" + n.DisplayTitle)
}

func fileName(n *outline.Node) string {
	if n.Number == "" {
		return SanitizeName(n.DisplayTitle) + ".pdf"
	}
	return SanitizeName(underscored(n.Number)+"_"+n.DisplayTitle) + ".pdf"
}

func underscored(number string) string {
	return strings.ReplaceAll(number, ".", "_")
}
