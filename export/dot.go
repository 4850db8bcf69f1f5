package export

import (
	"fmt"
	"strings"

	"github.com/hexmap-dev/hexmap/graph"
)

// DOT renders the graph as Graphviz digraph markup with per-layer fill
// colors.
type DOT struct {
	// RankDir is the graph layout direction, default "TB".
	RankDir string
}

var layerColors = map[graph.Layer]string{
	graph.LayerDomain:         "lightyellow",
	graph.LayerPort:           "lightblue",
	graph.LayerApplication:    "lightgreen",
	graph.LayerAdapter:        "lightsalmon",
	graph.LayerInfrastructure: "lightgrey",
}

// Format implements Exporter.
func (DOT) Format() string { return "dot" }

// Export implements Exporter.
func (d DOT) Export(g *graph.Graph) ([]byte, error) {
	rankdir := d.RankDir
	if rankdir == "" {
		rankdir = "TB"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph architecture {\n  rankdir=%s;\n", rankdir)
	b.WriteString("  node [shape=box, style=\"rounded,filled\"];\n\n")

	for _, n := range sortedNodes(g) {
		color := layerColors[n.Layer]
		if color == "" {
			color = "white"
		}
		fmt.Fprintf(&b, "  %q [label=\"%s\\n(%s)\", fillcolor=%s];\n",
			n.TypeName, n.TypeName, n.Role, color)
	}

	b.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n",
			nodeName(g, e.From), nodeName(g, e.To), string(e.Relation))
	}

	b.WriteString("}\n")
	return []byte(b.String()), nil
}
