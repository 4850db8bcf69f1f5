package export

import (
	"fmt"
	"strings"

	"github.com/hexmap-dev/hexmap/graph"
)

// Markdown renders the graph as a human-readable architecture listing:
// one section per populated layer, plus a dependency table.
type Markdown struct {
	// Title overrides the document heading. Default "Architecture".
	Title string
}

// Format implements Exporter.
func (Markdown) Format() string { return "markdown" }

// Export implements Exporter.
func (m Markdown) Export(g *graph.Graph) ([]byte, error) {
	title := m.Title
	if title == "" {
		title = "Architecture"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%d components, %d dependencies.\n", g.NodeCount(), g.EdgeCount())

	for _, layer := range graph.Layers() {
		nodes := g.NodesByLayer(layer)
		if len(nodes) == 0 {
			continue
		}
		sortNodesByName(nodes)

		fmt.Fprintf(&b, "\n## %s\n\n", layer)
		for _, n := range nodes {
			if n.ModulePath != "" {
				fmt.Fprintf(&b, "- **%s** (%s) — `%s`\n", n.TypeName, n.Role, n.ModulePath)
			} else {
				fmt.Fprintf(&b, "- **%s** (%s)\n", n.TypeName, n.Role)
			}
		}
	}

	if g.EdgeCount() > 0 {
		b.WriteString("\n## Dependencies\n\n")
		b.WriteString("| From | To | Relation |\n|---|---|---|\n")
		for _, e := range g.Edges() {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				nodeName(g, e.From), nodeName(g, e.To), e.Relation)
		}
	}

	return []byte(b.String()), nil
}
