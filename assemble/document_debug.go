package assemble

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"docasm/utils/debug"
)

const excerptLen = 60

// String returns a readable tree of assembled document. It exists solely for
// debug reports.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document %q: %d entries, %d chapters", d.Source, len(d.Entries), len(d.Chapters))
	for i, ch := range d.Chapters {
		tw.Line(1, "Chapter[%d]", i)
		tw.TextBlock(2, "title", ch.Title)
		tw.TextBlock(2, "path", ch.Path)
		tw.TextBlock(2, "file", ch.Name)
		if i < len(d.Anchors) {
			tw.TextBlock(2, "anchor", d.Anchors[i])
		}
		tw.Excerpt(2, "body", ch.Body, excerptLen)
	}

	if len(d.Anchors) > 0 {
		counts := make(map[string]int, len(d.Anchors))
		for _, a := range d.Anchors {
			counts[a]++
		}
		keys := slices.Collect(maps.Keys(counts))
		sort.Sort(natural.StringSlice(keys))

		tw.Line(0, "Anchors index: %d", len(keys))
		for _, k := range keys {
			if counts[k] > 1 {
				tw.Line(1, "Anchor[%q] duplicated %d times", k, counts[k])
				continue
			}
			tw.Line(1, "Anchor[%q]", k)
		}
	}

	tw.Line(0, "Output: header %d bytes, body %d bytes", len(d.Header), len(d.Body))
	return tw.String()
}
