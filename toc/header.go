package toc

import (
	"strings"
)

// Header renders generated table of contents: heading, blank line, one bullet
// per entry pointing to its anchor and a trailing blank line.
func Header(title string, entries []Entry, anchor AnchorFunc) string {
	if anchor == nil {
		anchor = Slug
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, e := range entries {
		b.WriteString("* [")
		b.WriteString(e.Title)
		b.WriteString("](#")
		b.WriteString(anchor(e.Title))
		b.WriteString(")\n")
	}
	b.WriteString("\n")
	return b.String()
}
