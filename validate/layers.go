package validate

import (
	"fmt"

	"github.com/hexmap-dev/hexmap/graph"
)

// RuleMissingLayer identifies findings from the missing-layer rule.
const RuleMissingLayer = "missing-layer"

// MissingLayer warns when an expected architectural layer has no nodes at
// all. Advisory only: a minimal program may intentionally omit a layer.
type MissingLayer struct{}

// ID implements Rule.
func (MissingLayer) ID() string { return RuleMissingLayer }

// Check implements Rule.
func (MissingLayer) Check(g *graph.Graph) []graph.Finding {
	var findings []graph.Finding
	for _, layer := range graph.Layers() {
		if len(g.NodesByLayer(layer)) == 0 {
			findings = append(findings, graph.Finding{
				RuleID:   RuleMissingLayer,
				Severity: graph.SeverityWarning,
				Message:  fmt.Sprintf("no component declares the %s layer", layer),
			})
		}
	}
	return findings
}
