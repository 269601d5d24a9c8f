// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runlog

import (
	"context"
	"testing"
	"time"

	"github.com/pdiddy/pdfsplit/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(input string) types.RunRecord {
	return types.RunRecord{
		Input:     input,
		OutputDir: "out/book",
		StartedAt: time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC),
		MinLevel:  1,
		MaxLevel:  1,
		Written:   2,
		Failed:    1,
		Units: []types.UnitRecord{
			{Path: "1_Basics/1_1_Overview.pdf", Title: "1.1 Overview", StartPage: 2, EndPage: 5, Status: types.UnitWritten},
			{Path: "1_Basics/1_2_Details.pdf", Title: "1.2 Details", StartPage: 6, EndPage: 10, Status: types.UnitWritten},
			{Path: "2_More/2_1_Extras.pdf", Title: "2.1 Extras", StartPage: 11, EndPage: 12, Status: types.UnitFailed, Error: "disk full"},
		},
	}
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id1, err := s.Record(ctx, sampleRun("book.pdf"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	id2, err := s.Record(ctx, sampleRun("other.pdf"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("run IDs not unique: %d", id1)
	}

	runs, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Input != "other.pdf" || runs[1].Input != "book.pdf" {
		t.Errorf("order = %q, %q", runs[0].Input, runs[1].Input)
	}
	if runs[1].Written != 2 || runs[1].Failed != 1 {
		t.Errorf("counts = %d written, %d failed", runs[1].Written, runs[1].Failed)
	}
	if !runs[1].StartedAt.Equal(time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("StartedAt = %v", runs[1].StartedAt)
	}
}

func TestList_Limit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.Record(ctx, sampleRun("book.pdf")); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := s.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}

func TestUnits(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, sampleRun("book.pdf"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	units, err := s.Units(ctx, id)
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("got %d units, want 3", len(units))
	}
	if units[0].Path != "1_Basics/1_1_Overview.pdf" {
		t.Errorf("unit order not preserved: %q", units[0].Path)
	}
	if units[2].Status != types.UnitFailed || units[2].Error != "disk full" {
		t.Errorf("failed unit = %+v", units[2])
	}
}

func TestOpen_Reopens(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Record(context.Background(), sampleRun("book.pdf")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Close()

	// Reopening an existing database must not lose runs.
	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	runs, err := s2.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
