// Package export maps built graphs to textual and structured
// representations: Mermaid and DOT diagram markup, a JSON document, a
// Markdown listing, and a SQLite snapshot. Exporters are pure functions of
// the graph with no retained state; everything they emit is derived from
// Nodes() and Edges() alone, so any faithful exporter round-trips the same
// node and edge counts the live graph reports.
package export

import (
	"fmt"
	"sort"

	"github.com/hexmap-dev/hexmap/graph"
)

// Exporter renders a built graph into one output format.
type Exporter interface {
	// Format names the output format (for example "mermaid" or "dot").
	Format() string

	// Export renders the graph. The graph is never mutated.
	Export(g *graph.Graph) ([]byte, error)
}

// Error describes an export failure, naming the format that produced it.
type Error struct {
	Format string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ForFormat returns the exporter registered under the given format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "mermaid":
		return Mermaid{}, nil
	case "dot":
		return DOT{}, nil
	case "json":
		return JSON{}, nil
	case "markdown", "md":
		return Markdown{}, nil
	default:
		return nil, &Error{Format: format, Err: fmt.Errorf("unknown format")}
	}
}

// Formats lists the text formats ForFormat understands. The SQLite exporter
// is separate because it writes to a file path rather than returning bytes
// directly.
func Formats() []string {
	return []string{"mermaid", "dot", "json", "markdown"}
}

// sortedNodes returns the graph's nodes ordered by type name, giving every
// exporter deterministic output.
func sortedNodes(g *graph.Graph) []graph.Node {
	nodes := g.Nodes()
	sortNodesByName(nodes)
	return nodes
}

func sortNodesByName(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].TypeName < nodes[j].TypeName })
}

// nodeName resolves an endpoint to its type name, falling back to the raw
// ID for endpoints that cannot be resolved (which a well-formed graph never
// produces).
func nodeName(g *graph.Graph, id graph.NodeID) string {
	if n, ok := g.Node(id); ok {
		return n.TypeName
	}
	return id.String()
}
