// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline reads a PDF's bookmark tree and resolves it into a
// hierarchy of nodes with levels, display numbers, and page ranges.
package outline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnreadable marks a document that cannot be opened or parsed as a PDF.
// It aborts the whole run.
var ErrUnreadable = errors.New("document unreadable")

// ErrNoOutline marks a readable document without usable bookmarks. The
// caller falls back to a whole-document split.
var ErrNoOutline = errors.New("no bookmarks found")

// Node is one bookmark entry resolved into the hierarchy.
type Node struct {
	// Title is the bookmark title exactly as stored in the document.
	Title string

	// DisplayTitle is Title with any parsed numeric prefix removed.
	DisplayTitle string

	// Number is the node's dotted section number ("1.2.3"), parsed from
	// the title when present, positional otherwise.
	Number string

	// Page is the 1-based target page of the bookmark.
	Page int

	// Level is the node's depth in the outline. 0 is top level.
	Level int

	// StartPage and EndPage are the node's inclusive page range,
	// StartPage <= EndPage.
	StartPage int
	EndPage   int

	Children []*Node
	Parent   *Node
}

// Document is an open source PDF with its resolved outline. It holds the
// underlying file for the duration of the run so page ranges can be
// extracted from a single read context.
type Document struct {
	Path      string
	PageCount int

	// Roots are the top-level outline nodes. Empty when the document
	// carries no usable bookmarks.
	Roots []*Node

	file *os.File
	ctx  *model.Context
}

// Open reads the document at path, resolves its outline hierarchy, and
// computes per-node page ranges. A file that cannot be parsed yields an
// error wrapping ErrUnreadable. A parseable file without bookmarks yields
// a valid Document (for the fallback split) together with ErrNoOutline.
func Open(path string, minPages int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnreadable, path, err)
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrUnreadable, path, err)
	}

	doc := &Document{
		Path:      path,
		PageCount: ctx.PageCount,
		file:      f,
		ctx:       ctx,
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: rewinding %s: %v", ErrUnreadable, path, err)
	}

	// pdfcpu reports a missing or empty outline as an error. The document
	// itself is fine, so hand it back for the chapter-less fallback.
	bms, err := api.Bookmarks(f, conf)
	if err != nil || len(bms) == 0 {
		return doc, ErrNoOutline
	}

	doc.Roots = fromBookmarks(bms, 0, nil, doc.PageCount)
	assignNumbers(doc.Roots, "")
	computeRanges(Flatten(doc.Roots), doc.PageCount, minPages)

	return doc, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// WriteRange copies the inclusive 1-based page range [start, end] from the
// source document into w as a standalone PDF.
func (d *Document) WriteRange(start, end int, w io.Writer) error {
	if start < 1 || end > d.PageCount || start > end {
		return fmt.Errorf("invalid page range %d-%d (document has %d pages)", start, end, d.PageCount)
	}

	pages := make([]int, end-start+1)
	for i := range pages {
		pages[i] = start + i
	}

	extracted, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("extracting pages %d-%d: %w", start, end, err)
	}
	if err := api.WriteContext(extracted, w); err != nil {
		return fmt.Errorf("writing pages %d-%d: %w", start, end, err)
	}
	return nil
}

// fromBookmarks converts pdfcpu's bookmark tree into outline nodes,
// preserving sibling order and clamping target pages into [1, pageCount].
func fromBookmarks(bms []pdfcpu.Bookmark, level int, parent *Node, pageCount int) []*Node {
	nodes := make([]*Node, 0, len(bms))
	for i := range bms {
		bm := bms[i]
		page := bm.PageFrom
		if page < 1 {
			page = 1
		}
		if page > pageCount {
			page = pageCount
		}
		n := &Node{
			Title:  bm.Title,
			Page:   page,
			Level:  level,
			Parent: parent,
		}
		n.Children = fromBookmarks(bm.Kids, level+1, n, pageCount)
		nodes = append(nodes, n)
	}
	return nodes
}

// Flatten returns the nodes of the trees rooted at roots in document order.
func Flatten(roots []*Node) []*Node {
	var flat []*Node
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			flat = append(flat, n)
			walk(n.Children)
		}
	}
	walk(roots)
	return flat
}

// DetectedLevels reports the shallowest and deepest levels present in the
// outline. It returns ok=false for an empty outline.
func DetectedLevels(roots []*Node) (min, max int, ok bool) {
	flat := Flatten(roots)
	if len(flat) == 0 {
		return 0, 0, false
	}
	min, max = flat[0].Level, flat[0].Level
	for _, n := range flat[1:] {
		if n.Level < min {
			min = n.Level
		}
		if n.Level > max {
			max = n.Level
		}
	}
	return min, max, true
}
