package validate

import (
	"fmt"

	"github.com/hexmap-dev/hexmap/graph"
)

// RuleOrphanNode identifies findings from the orphan-node rule.
const RuleOrphanNode = "orphan-node"

// OrphanNode reports nodes with no incident edges in either direction.
// Severity is info: a standalone value object is legitimate, but a node
// nobody references and that references nobody is worth a look.
type OrphanNode struct{}

// ID implements Rule.
func (OrphanNode) ID() string { return RuleOrphanNode }

// Check implements Rule.
func (OrphanNode) Check(g *graph.Graph) []graph.Finding {
	var findings []graph.Finding
	for _, n := range g.Nodes() {
		if len(g.EdgesFrom(n.ID)) == 0 && len(g.EdgesTo(n.ID)) == 0 {
			findings = append(findings, graph.Finding{
				RuleID:   RuleOrphanNode,
				Severity: graph.SeverityInfo,
				Nodes:    []graph.NodeID{n.ID},
				Message:  fmt.Sprintf("%s has no dependencies and no dependents", n.TypeName),
			})
		}
	}
	return findings
}
