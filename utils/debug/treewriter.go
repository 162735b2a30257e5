// Package debug produces indented human readable dumps stored in debug
// reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const indent = "  "

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Line writes formatted line at requested depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.w.WriteString(strings.Repeat(indent, depth))
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value quoted, so line breaks and
// control characters stay on the same line.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.Line(depth, "%s: %s", label, encodeText(value))
}

// Excerpt is TextBlock for potentially long values: only first limit runes
// are written followed by total length.
func (tw *TreeWriter) Excerpt(depth int, label, value string, limit int) {
	n := utf8.RuneCountInString(value)
	if n <= limit {
		tw.TextBlock(depth, label, value)
		return
	}
	cut := value
	for i := range value {
		if limit == 0 {
			cut = value[:i]
			break
		}
		limit--
	}
	tw.Line(depth, "%s: %s... (%d runes)", label, encodeText(cut), n)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
