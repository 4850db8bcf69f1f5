package validate

import (
	"fmt"

	"github.com/hexmap-dev/hexmap/graph"
)

// Rule IDs for the architectural-smell rules.
const (
	RuleGodComponent      = "god-component"
	RuleUnimplementedPort = "unimplemented-port"
)

// defaultGodComponentThreshold is the incident-edge count above which a
// node is considered a god component.
const defaultGodComponentThreshold = 10

// GodComponent warns about nodes with an excessive number of incident
// edges. Such hubs concentrate knowledge of the whole system and are the
// usual place architectural erosion starts.
type GodComponent struct {
	// Threshold is the incident-edge count above which a node is
	// reported. Zero means the default of 10.
	Threshold int
}

// ID implements Rule.
func (GodComponent) ID() string { return RuleGodComponent }

// Check implements Rule.
func (r GodComponent) Check(g *graph.Graph) []graph.Finding {
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = defaultGodComponentThreshold
	}

	var findings []graph.Finding
	for _, n := range g.Nodes() {
		total := len(g.EdgesFrom(n.ID)) + len(g.EdgesTo(n.ID))
		if total > threshold {
			findings = append(findings, graph.Finding{
				RuleID:   RuleGodComponent,
				Severity: graph.SeverityWarning,
				Nodes:    []graph.NodeID{n.ID},
				Message: fmt.Sprintf("%s has %d incident edges (threshold %d)",
					n.TypeName, total, threshold),
			})
		}
	}
	return findings
}

// UnimplementedPort warns about Port-layer nodes with no incoming edge
// from any Adapter-layer node: an interface nothing fulfils.
type UnimplementedPort struct{}

// ID implements Rule.
func (UnimplementedPort) ID() string { return RuleUnimplementedPort }

// Check implements Rule.
func (UnimplementedPort) Check(g *graph.Graph) []graph.Finding {
	var findings []graph.Finding
	for _, port := range g.NodesByLayer(graph.LayerPort) {
		implemented := false
		for _, e := range g.EdgesTo(port.ID) {
			if from, ok := g.Node(e.From); ok && from.Layer == graph.LayerAdapter {
				implemented = true
				break
			}
		}
		if !implemented {
			findings = append(findings, graph.Finding{
				RuleID:   RuleUnimplementedPort,
				Severity: graph.SeverityWarning,
				Nodes:    []graph.NodeID{port.ID},
				Message:  fmt.Sprintf("port %s has no adapter implementation", port.TypeName),
			})
		}
	}
	return findings
}
