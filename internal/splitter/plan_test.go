// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdiddy/pdfsplit/internal/outline"
	"github.com/pdiddy/pdfsplit/pkg/types"
)

// bookDoc builds a small resolved document: two chapters with sections,
// ranges precomputed the way the outline package would.
func bookDoc() *outline.Document {
	ch1 := &outline.Node{
		Title: "Chapter 1: Basics", DisplayTitle: "Basics", Number: "1",
		Page: 1, Level: 0, StartPage: 1, EndPage: 10,
	}
	s11 := &outline.Node{
		Title: "1.1 Overview", DisplayTitle: "Overview", Number: "1.1",
		Page: 2, Level: 1, StartPage: 2, EndPage: 5, Parent: ch1,
	}
	s12 := &outline.Node{
		Title: "1.2 Details", DisplayTitle: "Details", Number: "1.2",
		Page: 6, Level: 1, StartPage: 6, EndPage: 10, Parent: ch1,
	}
	ch1.Children = []*outline.Node{s11, s12}

	ch2 := &outline.Node{
		Title: "Chapter 2: More", DisplayTitle: "More", Number: "2",
		Page: 11, Level: 0, StartPage: 11, EndPage: 20,
	}

	return &outline.Document{
		Path:      filepath.Join("testdata", "book.pdf"),
		PageCount: 20,
		Roots:     []*outline.Node{ch1, ch2},
	}
}

func TestBuild_SectionWindow(t *testing.T) {
	doc := bookDoc()
	cfg := types.SplitConfig{MinLevel: 1, MaxLevel: 1}

	plan, err := Build(doc, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if want := filepath.Join("testdata", "book"); plan.RootDir != want {
		t.Errorf("RootDir = %q, want %q", plan.RootDir, want)
	}
	if len(plan.Units) != 2 {
		t.Fatalf("got %d units, want 2", len(plan.Units))
	}
	if got, want := plan.Units[0].RelPath(), filepath.Join("1_Basics", "1_1_Overview.pdf"); got != want {
		t.Errorf("unit 0 path = %q, want %q", got, want)
	}
	if got, want := plan.Units[1].RelPath(), filepath.Join("1_Basics", "1_2_Details.pdf"); got != want {
		t.Errorf("unit 1 path = %q, want %q", got, want)
	}
}

func TestBuild_ChapterWindow(t *testing.T) {
	doc := bookDoc()
	cfg := types.SplitConfig{MinLevel: 0, MaxLevel: 0}

	plan, err := Build(doc, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(plan.Units) != 2 {
		t.Fatalf("got %d units, want 2 (one per chapter)", len(plan.Units))
	}
	// Top-level units sit directly in the root folder.
	if plan.Units[0].Dir != "" {
		t.Errorf("chapter unit dir = %q, want root", plan.Units[0].Dir)
	}
	if got := plan.Units[0].Filename; got != "1_Basics.pdf" {
		t.Errorf("chapter filename = %q, want %q", got, "1_Basics.pdf")
	}
	// Ranges must tile the document when min-level = max-level.
	covered := 0
	for _, u := range plan.Units {
		covered += u.Node.EndPage - u.Node.StartPage + 1
	}
	if covered != doc.PageCount {
		t.Errorf("chapter ranges cover %d pages, want %d", covered, doc.PageCount)
	}
}

func TestBuild_EmptyWindow(t *testing.T) {
	doc := bookDoc()
	cfg := types.SplitConfig{MinLevel: 5, MaxLevel: 5}

	_, err := Build(doc, cfg)
	var we *WindowError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WindowError", err)
	}
	if we.DetectedMin != 0 || we.DetectedMax != 1 {
		t.Errorf("detected range = %d-%d, want 0-1", we.DetectedMin, we.DetectedMax)
	}
}

func TestBuild_CollisionSuffix(t *testing.T) {
	dup1 := &outline.Node{Title: "Notes", DisplayTitle: "Notes", Number: "1", Level: 0, Page: 1, StartPage: 1, EndPage: 2}
	dup2 := &outline.Node{Title: "Notes", DisplayTitle: "Notes", Number: "1", Level: 0, Page: 3, StartPage: 3, EndPage: 4}
	doc := &outline.Document{Path: "dup.pdf", PageCount: 4, Roots: []*outline.Node{dup1, dup2}}

	plan, err := Build(doc, types.SplitConfig{MinLevel: 0, MaxLevel: 0})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Units[0].Filename == plan.Units[1].Filename {
		t.Errorf("colliding units share filename %q", plan.Units[0].Filename)
	}
	if got := plan.Units[1].Filename; got != "1_Notes_2.pdf" {
		t.Errorf("suffixed filename = %q, want %q", got, "1_Notes_2.pdf")
	}
}

func TestWholeDocument(t *testing.T) {
	doc := &outline.Document{Path: filepath.Join("in", "my report.pdf"), PageCount: 7}
	plan := WholeDocument(doc, types.SplitConfig{})

	if len(plan.Units) != 1 {
		t.Fatalf("got %d units, want exactly 1", len(plan.Units))
	}
	u := plan.Units[0]
	if u.Node.StartPage != 1 || u.Node.EndPage != 7 {
		t.Errorf("fallback range = %d-%d, want 1-7", u.Node.StartPage, u.Node.EndPage)
	}
	if u.Filename != "my_report.pdf" {
		t.Errorf("fallback filename = %q, want %q", u.Filename, "my_report.pdf")
	}
}

func TestRootDir_DefaultsToInputDir(t *testing.T) {
	got := RootDir(filepath.Join("docs", "spec.pdf"), "")
	if want := filepath.Join("docs", "spec"); got != want {
		t.Errorf("RootDir = %q, want %q", got, want)
	}

	got = RootDir(filepath.Join("docs", "spec.pdf"), "out")
	if want := filepath.Join("out", "spec"); got != want {
		t.Errorf("RootDir with output dir = %q, want %q", got, want)
	}
}
