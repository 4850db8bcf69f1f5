package export

import (
	"encoding/json"

	"github.com/hexmap-dev/hexmap/graph"
)

// Document is the JSON export shape. Node and edge counts are included so
// downstream tooling can verify round-trip fidelity without re-counting.
type Document struct {
	NodeCount int          `json:"node_count"`
	EdgeCount int          `json:"edge_count"`
	Nodes     []graph.Node `json:"nodes"`
	Edges     []DocEdge    `json:"edges"`
}

// DocEdge is an edge with its endpoints resolved to type names, which keeps
// the document readable and independent of the numeric ID encoding.
type DocEdge struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Relation graph.Relation `json:"relation"`
}

// JSON renders the graph as a structured document.
type JSON struct {
	// Indent pretty-prints the output when true.
	Indent bool
}

// Format implements Exporter.
func (JSON) Format() string { return "json" }

// Export implements Exporter.
func (j JSON) Export(g *graph.Graph) ([]byte, error) {
	doc := BuildDocument(g)

	var (
		data []byte
		err  error
	)
	if j.Indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, &Error{Format: "json", Err: err}
	}
	return data, nil
}

// BuildDocument assembles the export document from a graph. Exposed so the
// query server can serve the same shape without re-encoding.
func BuildDocument(g *graph.Graph) Document {
	doc := Document{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Nodes:     sortedNodes(g),
		Edges:     make([]DocEdge, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, DocEdge{
			From:     nodeName(g, e.From),
			To:       nodeName(g, e.To),
			Relation: e.Relation,
		})
	}
	return doc
}
