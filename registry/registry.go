// Package registry accumulates component entries contributed by
// independently initialized parts of a program and turns them into built
// graphs on demand.
//
// The intended lifecycle has two phases: a single-threaded registration
// phase during program startup, in which every component registers itself
// (directly or through an init function), strictly followed by a read phase
// in which Rebuild and Entries may be called from any goroutine. The
// registry still guards its buffer with a mutex so that misuse degrades to
// contention rather than data races.
package registry

import (
	"sync"

	"github.com/hexmap-dev/hexmap/graph"
)

// Registry is a write-once-then-read-many collection of component entries.
// The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	entries []graph.Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register appends an entry to the registry. Accumulation order is
// unspecified from the caller's point of view; duplicates are accepted here
// and resolved at build time with a duplicate-node-id finding.
func (r *Registry) Register(e graph.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// RegisterAll appends every entry in the slice.
func (r *Registry) RegisterAll(entries []graph.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entries...)
}

// Entries returns a snapshot of everything registered so far. Each call
// produces an independent copy, so every build can enumerate the full set
// without being affected by later registrations.
func (r *Registry) Entries() []graph.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]graph.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset clears the registry. Used by tests and by callers that own the
// registry and want a clean slate before re-registration.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Rebuild collects a snapshot of all registered entries and constructs a
// fresh Graph from scratch. It is the single explicit reconstruction entry
// point; nothing in the engine ever invokes it automatically.
func (r *Registry) Rebuild() (*graph.Graph, []graph.Finding) {
	return graph.Build(r.Entries())
}

// Default is the process-wide registry that package-level Register and
// Rebuild operate on. Programs that want isolated registries (tests,
// embedders hosting several graphs) construct their own with New.
var Default = New()

// Register adds an entry to the default registry.
func Register(e graph.Entry) {
	Default.Register(e)
}

// Entries snapshots the default registry.
func Entries() []graph.Entry {
	return Default.Entries()
}

// Rebuild reconstructs a graph from the default registry.
func Rebuild() (*graph.Graph, []graph.Finding) {
	return Default.Rebuild()
}
