// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"errors"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

func TestFromBookmarks(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{Title: "Chapter 1: Intro", PageFrom: 1, Kids: []pdfcpu.Bookmark{
			{Title: "1.1 Scope", PageFrom: 2},
			{Title: "1.2 Terms", PageFrom: 4},
		}},
		{Title: "Chapter 2: Body", PageFrom: 6},
	}

	roots := fromBookmarks(bms, 0, nil, 10)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Level != 0 || roots[0].Children[0].Level != 1 {
		t.Error("levels not assigned by depth")
	}
	if roots[0].Children[1].Parent != roots[0] {
		t.Error("parent link not set")
	}

	flat := Flatten(roots)
	wantOrder := []string{"Chapter 1: Intro", "1.1 Scope", "1.2 Terms", "Chapter 2: Body"}
	for i, title := range wantOrder {
		if flat[i].Title != title {
			t.Errorf("flat[%d] = %q, want %q (sibling order must be preserved)", i, flat[i].Title, title)
		}
	}
}

func TestFromBookmarks_ClampsPages(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{Title: "Bad Low", PageFrom: 0},
		{Title: "Bad High", PageFrom: 99},
	}
	roots := fromBookmarks(bms, 0, nil, 10)
	if roots[0].Page != 1 {
		t.Errorf("low page clamped to %d, want 1", roots[0].Page)
	}
	if roots[1].Page != 10 {
		t.Errorf("high page clamped to %d, want 10", roots[1].Page)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.pdf", 1)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}
