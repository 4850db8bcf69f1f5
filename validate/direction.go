package validate

import (
	"fmt"

	"github.com/hexmap-dev/hexmap/graph"
)

// RuleDependencyDirection identifies findings from the dependency-direction
// rule.
const RuleDependencyDirection = "dependency-direction"

// DependencyDirection is the core correctness rule: dependencies must point
// inward or stay within the same layer. An edge from a node to a node in a
// strictly outer layer (higher rank) is a violation — business logic must
// never depend on infrastructure.
type DependencyDirection struct{}

// ID implements Rule.
func (DependencyDirection) ID() string { return RuleDependencyDirection }

// Check implements Rule.
func (DependencyDirection) Check(g *graph.Graph) []graph.Finding {
	var findings []graph.Finding
	for _, e := range g.Edges() {
		from, ok := g.Node(e.From)
		if !ok {
			continue
		}
		to, ok := g.Node(e.To)
		if !ok {
			continue
		}
		if to.Layer.Rank() > from.Layer.Rank() {
			findings = append(findings, graph.Finding{
				RuleID:   RuleDependencyDirection,
				Severity: graph.SeverityViolation,
				Nodes:    []graph.NodeID{from.ID, to.ID},
				Message: fmt.Sprintf("%s (%s) depends outward on %s (%s)",
					from.TypeName, from.Layer, to.TypeName, to.Layer),
			})
		}
	}
	return findings
}
