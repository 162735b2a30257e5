package assemble

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"docasm/common"
	"docasm/config"
	"docasm/state"
	"docasm/toc"
)

func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func textFile(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s), Mode: 0644}
}

func TestAssemble_Example(t *testing.T) {
	ctx, env := setupTestEnv(t)

	fsys := fstest.MapFS{
		"toc.md":   textFile("[Intro](intro.md)\n[Setup](setup.md)"),
		"intro.md": textFile("# Intro\nHello"),
		"setup.md": textFile("# Setup\nWorld"),
	}

	doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := "# Table of Contents\n\n* [Intro](#intro)\n* [Setup](#setup)\n\n# Intro\nHello\n# Setup\nWorld"
	if got := string(doc.Bytes()); got != want {
		t.Errorf("Assemble() output:\n%q\nwant:\n%q", got, want)
	}
	if len(doc.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(doc.Chapters))
	}
	if doc.Chapters[1].Name != "setup.md" {
		t.Errorf("chapter name = %q, want setup.md", doc.Chapters[1].Name)
	}
	if strings.Join(doc.Anchors, ",") != "intro,setup" {
		t.Errorf("anchors = %v", doc.Anchors)
	}
}

func TestAssemble_EmptyTOC(t *testing.T) {
	ctx, env := setupTestEnv(t)

	fsys := fstest.MapFS{
		"toc.md": textFile("nothing to see here\n[broken link](\n"),
	}

	doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if got, want := string(doc.Bytes()), "# Table of Contents\n\n\n"; got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
	if len(doc.Chapters) != 0 {
		t.Errorf("expected no chapters, got %d", len(doc.Chapters))
	}
}

func TestAssemble_MissingChapter(t *testing.T) {
	ctx, env := setupTestEnv(t)

	fsys := fstest.MapFS{
		"toc.md":   textFile("[Intro](intro.md)\n[Gone](missing.md)\n"),
		"intro.md": textFile("# Intro\n"),
	}

	doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if err == nil {
		t.Fatal("expected error for missing chapter")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "Gone") {
		t.Errorf("error should name the chapter: %v", err)
	}
	if doc != nil {
		t.Error("expected nil document on error")
	}
}

func TestAssemble_MissingTOC(t *testing.T) {
	ctx, env := setupTestEnv(t)

	_, err := Assemble(ctx, fstest.MapFS{}, "toc.md", &env.Cfg.Document, env.Log)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestAssemble_Order(t *testing.T) {
	ctx, env := setupTestEnv(t)

	files := fstest.MapFS{
		"a.md": textFile("A"),
		"b.md": textFile("B"),
		"c.md": textFile("C"),
	}

	tests := []struct {
		order []string
		want  string
	}{
		{[]string{"a", "b", "c"}, "A\nB\nC"},
		{[]string{"a", "c", "b"}, "A\nC\nB"},
		{[]string{"b", "a", "c"}, "B\nA\nC"},
		{[]string{"b", "c", "a"}, "B\nC\nA"},
		{[]string{"c", "a", "b"}, "C\nA\nB"},
		{[]string{"c", "b", "a"}, "C\nB\nA"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.order, ""), func(t *testing.T) {
			entries := make([]toc.Entry, 0, len(tt.order))
			for _, n := range tt.order {
				entries = append(entries, toc.Entry{Title: strings.ToUpper(n), Path: n + ".md"})
			}
			fsys := fstest.MapFS{"toc.md": textFile(toc.Format(entries))}
			for k, v := range files {
				fsys[k] = v
			}

			doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
			if err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}
			if doc.Body != tt.want {
				t.Errorf("body = %q, want %q", doc.Body, tt.want)
			}
			if n := strings.Count(doc.Header, "\n* ["); n != len(tt.order) {
				t.Errorf("header has %d bullets, want %d", n, len(tt.order))
			}
		})
	}
}

func TestAssemble_Links(t *testing.T) {
	fsys := fstest.MapFS{
		"toc.md":      textFile("[One](one.md)\n"),
		"one.md":      textFile("See [two](chapter2.md#section-a) and [site](https://example.com)"),
		"chapter2.md": textFile("unused"),
	}

	tests := []struct {
		name    string
		rewrite bool
		want    string
	}{
		{"rewrite", true, "See [two](#section-a) and [site](https://example.com)"},
		{"verbatim", false, "See [two](chapter2.md#section-a) and [site](https://example.com)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			env.Cfg.Document.Links.Rewrite = tt.rewrite

			doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
			if err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}
			if doc.Body != tt.want {
				t.Errorf("body = %q, want %q", doc.Body, tt.want)
			}
		})
	}
}

func TestAssemble_SubdirTOC(t *testing.T) {
	ctx, env := setupTestEnv(t)

	fsys := fstest.MapFS{
		"docs/toc.md":         textFile("[Intro](intro.md)\n[Guide](guide/start.md)\n"),
		"docs/intro.md":       textFile("intro"),
		"docs/guide/start.md": textFile("start"),
	}

	doc, err := Assemble(ctx, fsys, "docs/toc.md", &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if doc.Body != "intro\nstart" {
		t.Errorf("body = %q", doc.Body)
	}
	if doc.Chapters[1].Name != "docs/guide/start.md" {
		t.Errorf("chapter name = %q", doc.Chapters[1].Name)
	}
}

func TestAssemble_EscapingChapter(t *testing.T) {
	ctx, env := setupTestEnv(t)

	fsys := fstest.MapFS{
		"docs/toc.md": textFile("[Out](../secret.md)\n"),
		"secret.md":   textFile("secret"),
	}

	_, err := Assemble(ctx, fsys, "docs/toc.md", &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("chapter inside source root should be accepted: %v", err)
	}

	_, err = Assemble(ctx, fsys, "toc2.md", &env.Cfg.Document, env.Log)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	fsys["toc.md"] = textFile("[Out](../secret.md)\n")
	_, err = Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("expected fs.ErrInvalid, got %v", err)
	}
}

func TestAssemble_FrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"toc.md":   textFile("[Intro](intro.md)\n"),
		"intro.md": textFile("---\ntitle: Intro\n---\n# Intro\nHello\n"),
	}

	t.Run("keep", func(t *testing.T) {
		ctx, env := setupTestEnv(t)
		doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if !strings.HasPrefix(doc.Body, "---\ntitle: Intro\n---\n") {
			t.Errorf("front matter should be kept: %q", doc.Body)
		}
	})

	t.Run("strip", func(t *testing.T) {
		ctx, env := setupTestEnv(t)
		env.Cfg.Document.FrontMatter = common.FrontMatterModeStrip
		doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if strings.Contains(doc.Body, "title:") {
			t.Errorf("front matter should be removed: %q", doc.Body)
		}
		if strings.TrimSpace(doc.Body) != "# Intro\nHello" {
			t.Errorf("body = %q", doc.Body)
		}
	})
}

func TestAssemble_Encodings(t *testing.T) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("# Глава\nТекст")
	if err != nil {
		t.Fatalf("encode utf16: %v", err)
	}
	cp1251, err := charmap.Windows1251.NewEncoder().String("# Глава\nТекст")
	if err != nil {
		t.Fatalf("encode cp1251: %v", err)
	}

	fsys := fstest.MapFS{
		"toc.md": textFile("\xEF\xBB\xBF[Один](one.md)\n[Два](two.md)\n"),
		"one.md": textFile(utf16),
		"two.md": textFile(cp1251),
	}

	ctx, env := setupTestEnv(t)
	env.CodePage = charmap.Windows1251

	doc, err := Assemble(ctx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if doc.Entries[0].Title != "Один" {
		t.Errorf("byte order mark was not removed from TOC: %q", doc.Entries[0].Title)
	}
	if want := "# Глава\nТекст\n# Глава\nТекст"; doc.Body != want {
		t.Errorf("body = %q, want %q", doc.Body, want)
	}
}

func TestAssemble_CancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	fsys := fstest.MapFS{
		"toc.md":   textFile("[Intro](intro.md)\n"),
		"intro.md": textFile("intro"),
	}
	_, err := Assemble(cancelCtx, fsys, "toc.md", &env.Cfg.Document, env.Log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out", "README.md")
	doc := &Document{Header: "# TOC\n\n\n", Body: "body"}

	if err := Write(doc, dst); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "# TOC\n\n\nbody" {
		t.Errorf("output = %q", data)
	}

	// existing file is overwritten
	doc.Body = "new"
	if err := Write(doc, dst); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "# TOC\n\n\nnew" {
		t.Errorf("output = %q", data)
	}
}
