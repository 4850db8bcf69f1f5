package server

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hexmap-dev/hexmap/graph"
)

// Snapshot pairs a built graph with the findings its construction produced.
// A snapshot is immutable; refreshing means building a new one and swapping
// the holder's pointer.
type Snapshot struct {
	Graph    *graph.Graph
	Findings []graph.Finding
	BuiltAt  time.Time
}

// Holder owns the current snapshot and knows how to rebuild it from an
// entry source. Reads are lock-free; rebuilds are explicit and swap the
// pointer atomically, so in-flight queries keep the snapshot they started
// with.
type Holder struct {
	source  func() ([]graph.Entry, error)
	current atomic.Pointer[Snapshot]
}

// NewHolder builds the initial snapshot from source and retains source for
// later explicit rebuilds. A source error here is fatal: there is no
// previous snapshot to fall back to.
func NewHolder(source func() ([]graph.Entry, error)) (*Holder, error) {
	h := &Holder{source: source}
	if _, err := h.Rebuild(); err != nil {
		return nil, err
	}
	return h, nil
}

// Current returns the snapshot in effect. Never nil after NewHolder.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Rebuild re-enumerates the entry source, constructs a fresh graph from
// scratch, and makes it current. If the source fails, the previous snapshot
// stays in effect and the error is returned; a broken source never replaces
// a valid graph.
func (h *Holder) Rebuild() (*Snapshot, error) {
	entries, err := h.source()
	if err != nil {
		return nil, fmt.Errorf("collect entries: %w", err)
	}
	g, findings := graph.Build(entries)
	snap := &Snapshot{Graph: g, Findings: findings, BuiltAt: time.Now().UTC()}
	h.current.Store(snap)
	return snap, nil
}
