// typegen compiles the definitions of an OpenAPI/Kubernetes swagger document
// into Go source: one file per definition with its structural type, schema
// document constant and registration function, plus per-directory index
// packages.
//
// Usage:
//
//	typegen -input swagger.json -out ./models -pkg github.com/org/project/models
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kubeschema/typegen/compiler/gen"
	"github.com/kubeschema/typegen/compiler/load"
)

func main() {
	var (
		input   = flag.String("input", "", "path to the swagger/OpenAPI document (JSON or YAML)")
		out     = flag.String("out", "", "output directory for generated files")
		pkg     = flag.String("pkg", "", "import path of the generated module root")
		header  = flag.String("header", "", "custom header comment for generated files")
		workers = flag.Int("workers", 0, "number of parallel workers (default GOMAXPROCS)")
		cache   = flag.Bool("cache", false, "skip regenerating unchanged definitions")
		watch   = flag.Bool("watch", false, "watch the input document and regenerate on change")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *input == "" || *out == "" || *pkg == "" {
		fmt.Fprintln(os.Stderr, "typegen: -input, -out and -pkg are required")
		flag.Usage()
		os.Exit(2)
	}

	opts := []gen.Option{
		gen.WithTarget(*out),
		gen.WithPackage(*pkg),
		gen.WithCache(*cache),
		gen.WithLogger(logger),
	}
	if *header != "" {
		opts = append(opts, gen.WithHeader(*header))
	}
	if *workers > 0 {
		opts = append(opts, gen.WithWorkers(*workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		fatal(logger, err)
	}

	if err := run(cfg, *input, logger); err != nil {
		fatal(logger, err)
	}
	if !*watch {
		return
	}
	if err := watchLoop(cfg, *input, logger); err != nil {
		fatal(logger, err)
	}
}

// run loads the document and generates the full output tree once.
func run(cfg *gen.Config, input string, logger *slog.Logger) error {
	start := time.Now()
	doc, err := load.FromFile(input)
	if err != nil {
		return err
	}
	g := gen.NewGenerator(cfg, doc.Definitions)
	if err := g.Generate(context.Background()); err != nil {
		return err
	}
	logger.Info("done", "definitions", len(doc.Definitions), "elapsed", time.Since(start))
	return nil
}

// watchLoop regenerates whenever the input document changes. Editors often
// replace files via rename, so the parent directory is watched and events
// are filtered by name.
func watchLoop(cfg *gen.Config, input string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return err
	}
	logger.Info("watching", "input", input)

	target := filepath.Clean(input)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Info("input changed, regenerating")
			if err := run(cfg, input, logger); err != nil {
				// Keep watching: a half-saved document parses again on the
				// next write.
				logger.Error("generate failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("typegen failed", "err", err)
	os.Exit(1)
}
