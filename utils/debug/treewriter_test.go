package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "value: %d", []any{42}, "  value: 42\n"},
		{"multiple args", 0, "%s = %d", []any{"count", 5}, "count = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "field", "", "field: \n"},
		{"with value", 0, "text", "hello world", "text: \"hello world\"\n"},
		{"depth 2", 2, "nested", "data", "    nested: \"data\"\n"},
		{"value with quotes", 0, "quoted", `he said "hello"`, "quoted: \"he said \\\"hello\\\"\"\n"},
		{"value with newline", 1, "body", "line1\nline2", "  body: \"line1\\nline2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Excerpt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short value", "# Intro", 10, "body: \"# Intro\"\n"},
		{"exact limit", "abcde", 5, "body: \"abcde\"\n"},
		{"cut", "# Intro\nHello", 7, "body: \"# Intro\"... (13 runes)\n"},
		{"multibyte", "Привет мир", 6, "body: \"Привет\"... (10 runes)\n"},
		{"zero limit", "abc", 0, "body: ... (3 runes)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Excerpt(0, "body", tt.value, tt.limit)
			if got := tw.String(); got != tt.want {
				t.Errorf("Excerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"col1\tcol2", `"col1\tcol2"`},
		{`path\to\file`, `"path\\to\\file"`},
	}

	for _, tt := range tests {
		if got := encodeText(tt.input); got != tt.want {
			t.Errorf("encodeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Document %q", "toc.md")
	tw.Line(1, "Entry[%d]", 0)
	tw.TextBlock(2, "title", "Intro")
	tw.Line(1, "Entry[%d]", 1)
	tw.TextBlock(2, "title", "Setup")

	got := tw.String()
	want := "Document \"toc.md\"\n  Entry[0]\n    title: \"Intro\"\n  Entry[1]\n    title: \"Setup\"\n"
	if got != want {
		t.Errorf("tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Count(got, "\n") != 5 {
		t.Errorf("unexpected line count in %q", got)
	}
}
