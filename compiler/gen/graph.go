package gen

import (
	"path"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"
)

// ModuleTree accumulates compiled definition names into a tree keyed by
// their path segments. The tree is an explicit value threaded through the
// generation pass: the compile phase inserts into a fresh tree and the index
// phase flattens it, so definition compilation itself stays free of shared
// state.
type ModuleTree struct {
	dir      string
	children map[string]*ModuleTree
	entries  []indexEntry
}

// indexEntry is one compiled definition as seen by the index pass.
type indexEntry struct {
	names          Names
	hasConstructor bool
}

// NewModuleTree returns an empty tree rooted at the target directory.
func NewModuleTree() *ModuleTree {
	return &ModuleTree{children: make(map[string]*ModuleTree)}
}

// Insert records a compiled definition under its directory path.
func (t *ModuleTree) Insert(c *Compiled) {
	node := t
	if c.Names.Dir != "" {
		for _, seg := range strings.Split(c.Names.Dir, "/") {
			child, ok := node.children[seg]
			if !ok {
				child = &ModuleTree{
					dir:      path.Join(node.dir, seg),
					children: make(map[string]*ModuleTree),
				}
				node.children[seg] = child
			}
			node = child
		}
	}
	node.entries = append(node.entries, indexEntry{
		names:          c.Names,
		hasConstructor: c.HasConstructor,
	})
}

// IndexFiles flattens the tree into per-directory index files. Every
// directory that has subdirectories gets a file re-exporting all definitions
// beneath it by their full, collision-free names. Leaf directories need no
// index: their definitions already live in the package.
func (t *ModuleTree) IndexFiles(cfg *Config) map[string]*jen.File {
	files := make(map[string]*jen.File)
	t.indexInto(cfg, files)
	return files
}

func (t *ModuleTree) indexInto(cfg *Config, files map[string]*jen.File) {
	for _, name := range sortedKeys(t.children) {
		t.children[name].indexInto(cfg, files)
	}
	if len(t.children) == 0 {
		return
	}

	pkgPath := cfg.Package
	pkgName := path.Base(cfg.Package)
	if t.dir != "" {
		pkgPath = cfg.Package + "/" + t.dir
		pkgName = path.Base(t.dir)
	}
	f := jen.NewFilePathName(pkgPath, pkgName)
	header := cfg.Header
	if header == "" {
		header = defaultHeader
	}
	f.HeaderComment(header)

	var subtree []indexEntry
	for _, name := range sortedKeys(t.children) {
		subtree = append(subtree, t.children[name].collect()...)
	}
	sort.Slice(subtree, func(i, j int) bool {
		return subtree[i].names.Type < subtree[j].names.Type
	})
	for _, e := range subtree {
		from := cfg.definitionPkg(e.names)
		f.Type().Id(e.names.Type).Op("=").Qual(from, e.names.Type)
		f.Var().Id(e.names.Descriptor).Op("=").Qual(from, e.names.Descriptor)
		f.Const().Id(e.names.Schema).Op("=").Qual(from, e.names.Schema)
		f.Var().Id(e.names.AddFunc).Op("=").Qual(from, e.names.AddFunc)
		if e.hasConstructor {
			f.Var().Id(e.names.Constructor).Op("=").Qual(from, e.names.Constructor)
		}
	}

	files[path.Join(t.dir, "index.go")] = f
}

// collect returns every entry in the subtree rooted at t, including t's own.
func (t *ModuleTree) collect() []indexEntry {
	out := append([]indexEntry(nil), t.entries...)
	for _, name := range sortedKeys(t.children) {
		out = append(out, t.children[name].collect()...)
	}
	return out
}

func sortedKeys(m map[string]*ModuleTree) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
