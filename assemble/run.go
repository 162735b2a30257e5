package assemble

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"docasm/common"
	"docasm/config"
	"docasm/state"
)

// Run is the action of assemble command and of the program itself when no
// command is given.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("assemble")
	cfg := &env.Cfg.Document

	if cmd.IsSet("output") {
		cfg.OutputName = cmd.String("output")
	}
	if cmd.IsSet("rewrite-links") {
		cfg.Links.Rewrite = cmd.Bool("rewrite-links")
	}
	if cmd.IsSet("links-mode") {
		mode, err := common.ParseLinkMode(cmd.String("links-mode"))
		if err != nil {
			log.Warn("Unknown links mode requested, ignoring", zap.Stringer("using", cfg.Links.Mode), zap.Error(err))
		} else {
			cfg.Links.Mode = mode
		}
	}
	if cmd.IsSet("encoding") {
		cfg.Encoding = cmd.String("encoding")
	}

	// Files without byte order mark are UTF-8 unless told otherwise
	if len(cfg.Encoding) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cfg.Encoding)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown or unsupported character set specification. Ignoring...", zap.String("charset", cfg.Encoding), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Decoding files without byte order mark", zap.String("charset", n))
		}
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = cfg.TOCFile
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst, err := outputPath(cmd.Args().Get(1), cfg.OutputName)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Bool("rewrite", cfg.Links.Rewrite), zap.Stringer("links", cfg.Links.Mode))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, cfg, log)
}

// outputPath returns absolute name of the file to produce. Empty dst means
// working directory, existing directory (or name ending with separator) gets
// name appended, anything else is file name.
func outputPath(dst, name string) (string, error) {
	if len(dst) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
		return filepath.Join(wd, name), nil
	}

	asDir := os.IsPathSeparator(dst[len(dst)-1])
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		asDir = true
	}
	if asDir {
		return filepath.Join(dst, name), nil
	}
	return dst, nil
}

// process handles the core assembly independently of CLI framework.
func process(ctx context.Context, src, dst string, cfg *config.DocumentConfig, log *zap.Logger) (err error) {
	fsys, tocName, closeSource, err := openSource(src, cfg.TOCFile)
	if err != nil {
		return err
	}
	defer func() {
		if er := closeSource(); er != nil && err == nil {
			err = fmt.Errorf("unable to close source: %w", er)
		}
	}()

	doc, err := Assemble(ctx, fsys, tocName, cfg, log)
	if err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("document/%s.txt", filepath.Base(tocName)), []byte(doc.String()))
	}

	if err := Write(doc, dst); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}
	env.Rpt.Store(fmt.Sprintf("result/%s", filepath.Base(dst)), dst)

	log.Debug("Document written", zap.String("file", dst), zap.Int("chapters", len(doc.Chapters)), zap.Int("size", len(doc.Header)+len(doc.Body)))
	return nil
}
