package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hexmap-dev/hexmap/graph"
)

// RuleCircularDependency identifies findings from the cycle-detection rule.
const RuleCircularDependency = "circular-dependency"

// CircularDependency reports dependency cycles. A cycle means no member can
// be built, tested, or reasoned about independently of the others, so each
// one is a violation.
type CircularDependency struct{}

// ID implements Rule.
func (CircularDependency) ID() string { return RuleCircularDependency }

// Check implements Rule.
func (CircularDependency) Check(g *graph.Graph) []graph.Finding {
	// Iterate nodes in a stable order so repeated runs report cycles
	// identically.
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].TypeName < nodes[j].TypeName })

	visited := make(map[graph.NodeID]bool)
	onStack := make(map[graph.NodeID]bool)
	var findings []graph.Finding

	var walk func(id graph.NodeID, path []graph.NodeID)
	walk = func(id graph.NodeID, path []graph.NodeID) {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, e := range g.EdgesFrom(id) {
			next := e.To
			if onStack[next] {
				findings = append(findings, cycleFinding(g, path, next))
				continue
			}
			if !visited[next] {
				walk(next, path)
			}
		}

		onStack[id] = false
	}

	for _, n := range nodes {
		if !visited[n.ID] {
			walk(n.ID, nil)
		}
	}
	return findings
}

// cycleFinding extracts the cycle members from the DFS path and renders
// them as A -> B -> A.
func cycleFinding(g *graph.Graph, path []graph.NodeID, closing graph.NodeID) graph.Finding {
	start := 0
	for i, id := range path {
		if id == closing {
			start = i
			break
		}
	}
	cycle := append(append([]graph.NodeID{}, path[start:]...), closing)

	names := make([]string, len(cycle))
	for i, id := range cycle {
		if n, ok := g.Node(id); ok {
			names[i] = n.TypeName
		} else {
			names[i] = id.String()
		}
	}

	return graph.Finding{
		RuleID:   RuleCircularDependency,
		Severity: graph.SeverityViolation,
		Nodes:    cycle[:len(cycle)-1],
		Message:  fmt.Sprintf("dependency cycle: %s", strings.Join(names, " -> ")),
	}
}
