// Package scaffold produces initial table of contents for a directory of
// markdown files.
package scaffold

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docasm/state"
	"docasm/toc"
)

// Run is the action of scaffold command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("scaffold")
	cfg := &env.Cfg.Document

	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		dir = "."
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = filepath.Join(dir, cfg.TOCFile)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Output file already exists, overwriting", zap.String("file", dst))
	}

	log.Info("Scaffolding starting", zap.String("source", dir), zap.String("destination", dst))

	exclude := []string{path.Base(filepath.ToSlash(cfg.TOCFile)), cfg.OutputName}
	if filepath.Dir(dst) == dir {
		exclude = append(exclude, filepath.Base(dst))
	}

	entries, err := Collect(ctx, os.DirFS(dir), exclude, log)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Warn("No markdown files found", zap.String("directory", dir))
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(toc.Format(entries)), 0644); err != nil {
		return fmt.Errorf("unable to write table of contents: %w", err)
	}
	env.Rpt.Store(fmt.Sprintf("result/%s", filepath.Base(dst)), dst)

	log.Info("Scaffolding completed", zap.Int("entries", len(entries)))
	return nil
}

// Collect lists markdown files in the root of fsys in natural order and
// produces TOC entry for each of them. Files named in exclude are skipped.
func Collect(ctx context.Context, fsys fs.FS, exclude []string, log *zap.Logger) ([]toc.Entry, error) {
	des, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("unable to read directory: %w", err)
	}

	names := make([]string, 0, len(des))
	for _, de := range des {
		name := de.Name()
		switch {
		case !de.Type().IsRegular():
		case !strings.EqualFold(path.Ext(name), ".md"):
		case slices.ContainsFunc(exclude, func(e string) bool { return strings.EqualFold(e, name) }):
			log.Debug("Skipping excluded file", zap.String("file", name))
		case strings.ContainsAny(name, "()[] \t"):
			// would not survive TOC parsing
			log.Warn("Skipping file with unsupported name", zap.String("file", name))
		default:
			names = append(names, name)
		}
	}
	sort.Sort(natural.StringSlice(names))

	entries := make([]toc.Entry, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", name, err)
		}
		title := Title(data, name)
		log.Debug("Chapter found", zap.String("file", name), zap.String("title", title))
		entries = append(entries, toc.Entry{Title: title, Path: name})
	}
	return entries, nil
}

var titleCleaner = strings.NewReplacer("[", "(", "]", ")")

// Title returns chapter title: front matter "title" if present, text of the
// first ATX heading otherwise, and file name without extension as a last
// resort.
func Title(data []byte, name string) string {
	var meta struct {
		Title string `yaml:"title" toml:"title" json:"title"`
	}
	rest, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		rest = data
	} else if t := strings.TrimSpace(meta.Title); len(t) > 0 {
		return titleCleaner.Replace(t)
	}

	if t := firstHeading(rest); len(t) > 0 {
		return titleCleaner.Replace(t)
	}
	return strings.TrimSuffix(name, path.Ext(name))
}

func firstHeading(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	inFence := false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		trimmed := strings.TrimLeft(line, " ")
		// up to three spaces of indentation are allowed
		if len(line)-len(trimmed) > 3 {
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		if level == 0 || level > 6 {
			continue
		}
		text := trimmed[level:]
		if len(text) > 0 && text[0] != ' ' && text[0] != '\t' {
			continue
		}
		text = strings.TrimSpace(text)
		// optional closing sequence has to be separated by space
		if s := strings.TrimRight(text, "#"); len(s) == 0 {
			text = ""
		} else if s != text && strings.HasSuffix(s, " ") {
			text = strings.TrimSpace(s)
		}
		if len(text) > 0 {
			return text
		}
	}
	return ""
}
