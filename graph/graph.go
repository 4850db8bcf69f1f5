package graph

// Graph is an immutable dependency graph over registered components.
//
// A Graph is only ever produced by Build. Once returned it is frozen: no
// node or edge is added, removed, or altered, which is what makes it safe
// to share by reference among arbitrarily many concurrent readers without
// locks. Query methods return copies or freshly allocated slices so callers
// can never reach the internal storage.
type Graph struct {
	nodes     map[NodeID]Node
	edges     []Edge
	edgesFrom map[NodeID][]int // indexes into edges, declaration order
	edgesTo   map[NodeID][]int
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeByName returns the node registered under the given type name.
func (g *Graph) NodeByName(typeName string) (Node, bool) {
	return g.Node(NodeIDFromName(typeName))
}

// Nodes returns every node in the graph. Order is not significant.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// NodesByLayer returns exactly the subset of nodes whose layer matches.
func (g *Graph) NodesByLayer(layer Layer) []Node {
	var out []Node
	for _, n := range g.nodes {
		if n.Layer == layer {
			out = append(out, n)
		}
	}
	return out
}

// NodesByRole returns exactly the subset of nodes whose role matches.
func (g *Graph) NodesByRole(role Role) []Node {
	var out []Node
	for _, n := range g.nodes {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge in the graph, in the order the builder created
// them.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesFrom returns the edges whose source is the given node, in
// declaration order. Uses the adjacency index precomputed at build time.
func (g *Graph) EdgesFrom(id NodeID) []Edge {
	return g.edgesAt(g.edgesFrom[id])
}

// EdgesTo returns the edges whose target is the given node, in declaration
// order.
func (g *Graph) EdgesTo(id NodeID) []Edge {
	return g.edgesAt(g.edgesTo[id])
}

func (g *Graph) edgesAt(idx []int) []Edge {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
