package schema

import (
	"sort"
	"sync"

	json "github.com/goccy/go-json"
)

// Registry is a name-keyed store of schema documents consulted at validation
// time. Registration is insert-if-absent: registering a name twice keeps the
// first document and is never an error, so generated registration functions
// may re-register shared dependencies freely.
//
// The registry also tracks in-progress registrations. Generated registration
// functions call Begin before recursing into their dependencies, which
// guarantees termination even when two definitions reference each other.
type Registry struct {
	mu      sync.Mutex
	docs    map[string]json.RawMessage
	pending map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		docs:    make(map[string]json.RawMessage),
		pending: make(map[string]bool),
	}
}

// Begin marks id as in-progress and reports whether the caller should proceed
// with registration. It returns false if id is already registered or another
// registration of id is already underway further up the call stack.
func (r *Registry) Begin(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; ok {
		return false
	}
	if r.pending[id] {
		return false
	}
	r.pending[id] = true
	return true
}

// Register stores doc under id if no document is registered yet and clears
// the in-progress mark set by Begin. Re-registering an id is a no-op.
func (r *Registry) Register(id string, doc []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, id)
	if _, ok := r.docs[id]; ok {
		return
	}
	r.docs[id] = json.RawMessage(doc)
}

// Resolve returns the document registered under id.
func (r *Registry) Resolve(id string) (json.RawMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	return doc, ok
}

// Has reports whether a document is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.Resolve(id)
	return ok
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

// IDs returns the registered names in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset removes all registered documents and in-progress marks.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = make(map[string]json.RawMessage)
	r.pending = make(map[string]bool)
}

// global is the shared registry the generated code registers into.
var global = NewRegistry()

// Default returns the shared registry used by generated registration
// functions.
func Default() *Registry {
	return global
}

// Begin calls Begin on the shared registry.
func Begin(id string) bool {
	return global.Begin(id)
}

// Register calls Register on the shared registry.
func Register(id string, doc []byte) {
	global.Register(id, doc)
}

// Resolve calls Resolve on the shared registry.
func Resolve(id string) (json.RawMessage, bool) {
	return global.Resolve(id)
}
