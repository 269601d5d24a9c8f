// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

// computeRanges assigns each node its inclusive page range. A node ends on
// the page before the next node in document order at the same or a
// shallower level, or on the document's last page when no such node
// follows. A node whose boundary lands on its own start page collapses to
// a single page rather than an empty range, so a chapter heading that
// shares a page with its first subsection still yields output.
//
// minPages widens ranges toward the document end; values below 2 leave
// ranges untouched.
func computeRanges(flat []*Node, pageCount, minPages int) {
	for i, n := range flat {
		start := n.Page
		end := pageCount
		for _, next := range flat[i+1:] {
			if next.Level <= n.Level {
				end = next.Page - 1
				break
			}
		}
		if end < start {
			end = start
		}
		if minPages > 1 && end-start+1 < minPages {
			end = start + minPages - 1
			if end > pageCount {
				end = pageCount
			}
		}
		n.StartPage = start
		n.EndPage = end
	}
}
