// Package manifest loads component entries from a JSON manifest file. The
// manifest is the explicit composition-root registration path for programs
// that describe their architecture as data instead of linking the library:
// every component appears as one record, no hand-maintained central wiring
// beyond the file itself.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hexmap-dev/hexmap/graph"
)

// Manifest is the on-disk document shape.
type Manifest struct {
	// Project optionally names the described system; exporters use it as
	// a document title.
	Project string `json:"project,omitempty"`

	// Components lists every declared component. Unknown layer or role
	// names decode to their Unknown fallbacks and surface as
	// malformed-entry findings at build time rather than failing the
	// load.
	Components []graph.Entry `json:"components"`
}

// Load reads and decodes a manifest file. A file that cannot be read or is
// not valid JSON is an error; individually malformed components are not —
// they flow through the build as findings.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Entries returns the declared components as build input.
func (m *Manifest) Entries() []graph.Entry {
	return m.Components
}

// Build is a convenience that builds a graph straight from the manifest.
func (m *Manifest) Build() (*graph.Graph, []graph.Finding) {
	return graph.Build(m.Components)
}
