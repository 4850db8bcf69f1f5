package export

import (
	"fmt"
	"strings"

	"github.com/hexmap-dev/hexmap/graph"
)

// Mermaid renders the graph as Mermaid flowchart markup, one subgraph per
// populated layer.
type Mermaid struct {
	// Direction is the flowchart direction, default "TD".
	Direction string
}

// Format implements Exporter.
func (Mermaid) Format() string { return "mermaid" }

// Export implements Exporter.
func (m Mermaid) Export(g *graph.Graph) ([]byte, error) {
	direction := m.Direction
	if direction == "" {
		direction = "TD"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s\n", direction)

	for _, layer := range graph.Layers() {
		nodes := g.NodesByLayer(layer)
		if len(nodes) == 0 {
			continue
		}
		sortNodesByName(nodes)

		fmt.Fprintf(&b, "  subgraph %s\n", layer)
		for _, n := range nodes {
			fmt.Fprintf(&b, "    %s[\"%s\\n(%s)\"]\n", mermaidID(n.TypeName), n.TypeName, n.Role)
		}
		b.WriteString("  end\n")
	}

	b.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -->|%s| %s\n",
			mermaidID(nodeName(g, e.From)), e.Relation, mermaidID(nodeName(g, e.To)))
	}

	return []byte(b.String()), nil
}

// mermaidID sanitizes a type name into a Mermaid-safe node identifier.
// Whenever sanitization alters the name, the node's ID is appended so that
// distinct names (such as "a.b" and "a_b") never collapse into one node.
func mermaidID(name string) string {
	r := strings.NewReplacer("::", "_", ".", "_", "/", "_", " ", "_", "-", "_")
	id := r.Replace(name)
	if id != name {
		id = fmt.Sprintf("%s_%s", id, graph.NodeIDFromName(name))
	}
	return id
}
