package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Generator compiles every definition of a document into the target
// directory. Definitions are independent of each other, so they compile and
// write in parallel; the index pass runs only after all of them finished.
type Generator struct {
	cfg  *Config
	defs map[string]map[string]any
}

// NewGenerator creates a generator for the given definitions map.
func NewGenerator(cfg *Config, definitions map[string]map[string]any) *Generator {
	return &Generator{cfg: cfg, defs: definitions}
}

// Generate compiles all definitions and writes the output tree: one file per
// definition plus per-directory index files. Any write failure aborts the
// whole run.
func (g *Generator) Generate(ctx context.Context) error {
	if len(g.defs) == 0 {
		return ErrNoDefinitions
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return err
	}

	var cache *Cache
	if g.cfg.Cache {
		cache = LoadCache(g.cfg.Target)
	}

	names := make([]string, 0, len(g.defs))
	for name := range g.defs {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu       sync.Mutex
		compiled []*Compiled
	)
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.cfg.Workers)
	for _, name := range names {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c, err := CompileDefinition(g.cfg, name, g.defs[name])
			if err != nil {
				return err
			}
			if err := g.writeDefinition(c, cache); err != nil {
				return NewDefinitionError(name, "write output", err)
			}
			mu.Lock()
			compiled = append(compiled, c)
			mu.Unlock()
			return nil
		})
	}
	// Barrier: the index tree may only be built once every definition has
	// been compiled.
	if err := errg.Wait(); err != nil {
		return err
	}

	sort.Slice(compiled, func(i, j int) bool {
		return compiled[i].Names.ID < compiled[j].Names.ID
	})
	tree := NewModuleTree()
	for _, c := range compiled {
		tree.Insert(c)
	}
	indexes := tree.IndexFiles(g.cfg)
	rels := make([]string, 0, len(indexes))
	for rel := range indexes {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	for _, rel := range rels {
		if err := g.writeFile(indexes[rel], filepath.FromSlash(rel)); err != nil {
			return err
		}
		g.cfg.Logger.Info("generated index", "path", rel)
	}

	if cache != nil {
		if err := cache.Save(); err != nil {
			return err
		}
	}
	return nil
}

// writeDefinition writes one compiled definition, skipping definitions whose
// fingerprint is unchanged since the previous run.
func (g *Generator) writeDefinition(c *Compiled, cache *Cache) error {
	rel := filepath.Join(filepath.FromSlash(c.Names.Dir), c.Names.File)
	if cache != nil {
		fp := Fingerprint(g.defs[c.Names.ID])
		if cache.Unchanged(c.Names.ID, fp) && !fileMissing(filepath.Join(g.cfg.Target, rel)) {
			g.cfg.Logger.Debug("unchanged", "definition", c.Names.ID)
			return nil
		}
		cache.Put(c.Names.ID, fp)
	}
	if err := g.writeFile(c.File, rel); err != nil {
		return err
	}
	g.cfg.Logger.Info("generated", "definition", c.Names.ID, "path", rel)
	return nil
}

// writeFile renders a file, normalizes its imports, and writes it atomically
// under the target directory.
func (g *Generator) writeFile(f *jen.File, rel string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return err
	}
	abs := filepath.Join(g.cfg.Target, rel)
	src, err := imports.Process(abs, buf.Bytes(), nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	// Write-then-rename keeps readers of the output tree from observing a
	// half-written file.
	tmp := abs + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, src, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, abs); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
