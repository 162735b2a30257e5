// Package assemble builds single markdown document from table of contents
// and chapter files it references.
package assemble

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"docasm/common"
	"docasm/config"
	"docasm/state"
	"docasm/toc"
)

// Chapter is TOC entry with its file content.
type Chapter struct {
	toc.Entry
	// Name is chapter file location in the source file system.
	Name string
	Body string
}

// Document is the assembled result. Its content is Header followed by Body.
type Document struct {
	Source   string
	Entries  []toc.Entry
	Chapters []Chapter
	// Anchors holds header link targets in entry order.
	Anchors []string
	Header  string
	Body    string
}

// Bytes returns complete document content.
func (d *Document) Bytes() []byte {
	return []byte(d.Header + d.Body)
}

// Assemble reads TOC file tocName and every chapter it lists from fsys and
// produces document. Nothing is written, so failure to read any of the files
// leaves no partial output behind.
func Assemble(ctx context.Context, fsys fs.FS, tocName string, cfg *config.DocumentConfig, log *zap.Logger) (*Document, error) {
	cp := state.EnvFromContext(ctx).CodePage

	text, err := readText(fsys, tocName, cp)
	if err != nil {
		return nil, fmt.Errorf("unable to read table of contents: %w", err)
	}

	entries := toc.Parse(text)
	if len(entries) == 0 {
		log.Warn("No chapters found in table of contents", zap.String("toc", tocName))
	} else {
		log.Debug("Table of contents parsed", zap.String("toc", tocName), zap.Int("entries", len(entries)))
	}

	doc := &Document{
		Source:   tocName,
		Entries:  entries,
		Chapters: make([]Chapter, 0, len(entries)),
	}

	bodies := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := chapterName(tocName, e.Path)
		if err != nil {
			return nil, fmt.Errorf("unable to locate chapter %q: %w", e.Title, err)
		}
		body, err := readChapter(fsys, name, cfg.FrontMatter, cp)
		if err != nil {
			return nil, fmt.Errorf("unable to read chapter %q: %w", e.Title, err)
		}
		log.Debug("Chapter loaded", zap.String("title", e.Title), zap.String("file", name), zap.Int("size", len(body)))

		doc.Chapters = append(doc.Chapters, Chapter{Entry: e, Name: name, Body: body})
		bodies = append(bodies, body)
	}

	anchor := toc.AnchorFor(cfg.TOCPage.Anchors)
	doc.Anchors = make([]string, 0, len(entries))
	for _, e := range entries {
		doc.Anchors = append(doc.Anchors, anchor(e.Title))
	}
	doc.Header = toc.Header(cfg.TOCPage.Title, entries, anchor)
	doc.Body = strings.Join(bodies, "\n")
	if cfg.Links.Rewrite {
		doc.Body = toc.RewriteLinks(doc.Body, cfg.Links.Mode)
	}
	return doc, nil
}

// Write stores assembled document, creating destination directory when
// necessary. Existing file is overwritten.
func Write(doc *Document, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return os.WriteFile(dst, doc.Bytes(), 0644)
}

func readText(fsys fs.FS, name string, cp encoding.Encoding) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	text, err := decodeText(data, cp)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return text, nil
}

func readChapter(fsys fs.FS, name string, fm common.FrontMatterMode, cp encoding.Encoding) (string, error) {
	body, err := readText(fsys, name, cp)
	if err != nil {
		return "", err
	}
	if fm != common.FrontMatterModeStrip {
		return body, nil
	}

	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(body), &meta)
	if err != nil {
		return "", fmt.Errorf("unable to parse front matter in %s: %w", name, err)
	}
	return string(rest), nil
}
