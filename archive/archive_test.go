package archive

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func createZip(t *testing.T, files map[string]string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for n, content := range files {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", n, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize zip: %v", err)
	}
	return name
}

func TestOpen(t *testing.T) {
	name := createZip(t, map[string]string{
		"book/toc.md":            "[Intro](intro.md)",
		"book/intro.md":          "# Intro",
		"book/chapters/setup.md": "# Setup",
	})

	a, err := Open(name)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	if a.Name() != name {
		t.Errorf("Name() = %q, want %q", a.Name(), name)
	}

	data, err := fs.ReadFile(a, "book/chapters/setup.md")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "# Setup" {
		t.Errorf("ReadFile() = %q", data)
	}

	if _, err := fs.ReadFile(a, "book/missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() of absent entry error = %v, want fs.ErrNotExist", err)
	}

	entries, err := fs.ReadDir(a, "book")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("ReadDir() returned %d entries, want 3", len(entries))
	}
}

func TestOpen_UnsafeEntries(t *testing.T) {
	for _, bad := range []string{"../evil.md", "docs/../../evil.md", "/abs/evil.md"} {
		t.Run(bad, func(t *testing.T) {
			name := createZip(t, map[string]string{"ok.md": "ok", bad: "evil"})
			a, err := Open(name)
			if err == nil {
				a.Close()
				t.Fatal("expected error for archive with unsafe entry")
			}
		})
	}
}

func TestOpen_NotArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "plain.zip")
	if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(name); err == nil {
		t.Error("expected error for non archive file")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "absent.zip")); err == nil {
		t.Error("expected error for absent file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"toc.md", true},
		{"docs/intro.md", true},
		{"docs/..hidden/x.md", true},
		{"../x.md", false},
		{"a/../../x.md", false},
		{"/x.md", false},
		{`\x.md`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
