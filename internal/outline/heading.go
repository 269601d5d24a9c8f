// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"regexp"
	"strconv"
	"strings"
)

// Heading is a section number parsed from a bookmark title.
type Heading struct {
	// Number is the dotted section number ("7", "1.2.3", "A").
	Number string

	// Title is the remainder of the bookmark title after the prefix.
	Title string
}

// Bookmark titles come in a handful of recognizable shapes. Matching is
// ordered: the more specific chapter/appendix forms win over bare numbers.
var (
	chapterRe  = regexp.MustCompile(`^Chapter\s+(\d+)[:.]?\s+(.*)$`)
	appendixRe = regexp.MustCompile(`^Appendix\s+([A-Z])[:.]?\s*(.*)$`)
	dottedRe   = regexp.MustCompile(`^(\d+(?:\.\d+){1,3})\s*(.*)$`)
	simpleRe   = regexp.MustCompile(`^(\d+)\s+(.*)$`)
)

// ParseHeading extracts a section number from a bookmark title. Supported
// forms: "Chapter 7: Title", "Appendix A: Title", dotted numbers with or
// without a following space ("1.2 Title", "1.2.3Title"), and a bare
// leading number ("7 Title"). ok is false when the title carries no
// recognizable prefix; callers then number the node positionally.
func ParseHeading(title string) (Heading, bool) {
	title = strings.TrimSpace(title)

	if m := chapterRe.FindStringSubmatch(title); m != nil {
		return Heading{Number: m[1], Title: strings.TrimSpace(m[2])}, true
	}
	if m := appendixRe.FindStringSubmatch(title); m != nil {
		return Heading{Number: m[1], Title: strings.TrimSpace(m[2])}, true
	}
	if m := dottedRe.FindStringSubmatch(title); m != nil {
		return Heading{Number: m[1], Title: strings.TrimSpace(m[2])}, true
	}
	if m := simpleRe.FindStringSubmatch(title); m != nil {
		return Heading{Number: m[1], Title: strings.TrimSpace(m[2])}, true
	}
	return Heading{}, false
}

// assignNumbers fills Number and DisplayTitle for every node. Titles with a
// parseable prefix keep it as their number; the rest are numbered by
// position under their parent (1-based).
func assignNumbers(nodes []*Node, parentNumber string) {
	for i, n := range nodes {
		if h, ok := ParseHeading(n.Title); ok {
			n.Number = h.Number
			n.DisplayTitle = h.Title
		} else {
			if parentNumber == "" {
				n.Number = strconv.Itoa(i + 1)
			} else {
				n.Number = parentNumber + "." + strconv.Itoa(i+1)
			}
			n.DisplayTitle = strings.TrimSpace(n.Title)
		}
		if n.DisplayTitle == "" {
			n.DisplayTitle = n.Title
		}
		assignNumbers(n.Children, n.Number)
	}
}
