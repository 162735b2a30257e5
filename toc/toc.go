// Package toc holds text transformations used to assemble a document from a
// table of contents: entry extraction, anchor slugs, generated header and
// cross-chapter link rewriting. Nothing here touches the file system.
package toc

import (
	"regexp"
	"strings"
)

// Entry is a single chapter reference from the table of contents.
type Entry struct {
	Title string
	Path  string
}

// One match per markdown link, several may share a line.
var entryRe = regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\n]*)\)`)

// Parse extracts entries from TOC text in order of appearance. Text which is
// not a link, as well as links with empty target, is ignored.
func Parse(text string) []Entry {
	matches := entryRe.FindAllStringSubmatch(text, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		path := strings.TrimSpace(m[2])
		if len(path) == 0 {
			continue
		}
		entries = append(entries, Entry{Title: m[1], Path: path})
	}
	return entries
}

// Format produces TOC text, one link per line, which Parse reads back.
func Format(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("[")
		b.WriteString(e.Title)
		b.WriteString("](")
		b.WriteString(e.Path)
		b.WriteString(")\n")
	}
	return b.String()
}
