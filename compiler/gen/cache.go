package gen

import (
	"errors"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// cacheFile is the on-disk name of the incremental-generation cache inside
// the target directory.
const cacheFile = ".typegen.cache"

// Cache remembers a fingerprint per definition between runs so unchanged
// definitions are not rewritten. A missing or unreadable cache file simply
// means everything regenerates.
type Cache struct {
	path string

	mu      sync.Mutex
	entries map[string]uint64
}

// LoadCache reads the cache for a target directory.
func LoadCache(dir string) *Cache {
	c := &Cache{
		path:    filepath.Join(dir, cacheFile),
		entries: make(map[string]uint64),
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return c
	}
	var entries map[string]uint64
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return c
	}
	c.entries = entries
	return c
}

// Unchanged reports whether id's fingerprint matches the previous run.
func (c *Cache) Unchanged(id string, fp uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[id] == fp
}

// Put records id's fingerprint for the next run.
func (c *Cache) Put(id string, fp uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = fp
}

// Save persists the cache next to the generated files.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := msgpack.Marshal(c.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// Fingerprint hashes a definition's raw schema. JSON marshaling sorts map
// keys, so the hash is stable across runs.
func Fingerprint(raw map[string]any) uint64 {
	h := fnv.New64a()
	data, err := json.Marshal(raw)
	if err != nil {
		return 0
	}
	h.Write(data)
	return h.Sum64()
}

// fileMissing reports whether path does not exist.
func fileMissing(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}
