package graph

import "fmt"

// Build constructs an immutable Graph from a snapshot of entries.
//
// Build is deterministic and side-effect free. It never fails: structurally
// malformed entries are excluded and reported, duplicate node IDs are
// resolved first-registration-wins and reported, dependency names that
// match no registered component are reported and produce no edge. The
// returned findings describe everything irregular observed during
// construction, independent of any later validation pass.
func Build(entries []Entry) (*Graph, []Finding) {
	var findings []Finding

	nodes := make(map[NodeID]Node, len(entries))

	// Pass 1: structural validation and node index.
	accepted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if ok, reason := e.wellFormed(); !ok {
			findings = append(findings, Finding{
				RuleID:   RuleMalformedEntry,
				Severity: SeverityWarning,
				Message:  reason,
			})
			continue
		}

		id := NodeIDFromName(e.TypeName)
		if prev, exists := nodes[id]; exists {
			// First registration wins. The duplicate is dropped from the
			// graph but never silently: the finding names both sides.
			findings = append(findings, Finding{
				RuleID:   RuleDuplicateNodeID,
				Severity: SeverityWarning,
				Nodes:    []NodeID{id},
				Message: fmt.Sprintf(
					"duplicate registration for %q (%s/%s kept, %s/%s dropped)",
					e.TypeName, prev.Layer, prev.Role, e.Layer, e.Role),
			})
			continue
		}

		nodes[id] = Node{
			ID:         id,
			TypeName:   e.TypeName,
			Layer:      e.Layer,
			Role:       e.Role,
			ModulePath: e.ModulePath,
		}
		accepted = append(accepted, e)
	}

	// Pass 2: resolve declared dependencies into edges.
	var edges []Edge
	for _, e := range accepted {
		from := NodeIDFromName(e.TypeName)
		for _, dep := range e.Dependencies {
			to := NodeIDFromName(dep)
			if _, known := nodes[to]; !known {
				findings = append(findings, Finding{
					RuleID:   RuleDanglingDependency,
					Severity: SeverityWarning,
					Nodes:    []NodeID{from},
					Message: fmt.Sprintf(
						"%s depends on %q, which is not registered",
						e.TypeName, dep),
				})
				continue
			}
			edges = append(edges, Edge{From: from, To: to, Relation: RelationDependsOn})
		}
	}

	// Pass 3: adjacency indexes for O(1)-amortized EdgesFrom/EdgesTo.
	edgesFrom := make(map[NodeID][]int)
	edgesTo := make(map[NodeID][]int)
	for i, edge := range edges {
		edgesFrom[edge.From] = append(edgesFrom[edge.From], i)
		edgesTo[edge.To] = append(edgesTo[edge.To], i)
	}

	return &Graph{
		nodes:     nodes,
		edges:     edges,
		edgesFrom: edgesFrom,
		edgesTo:   edgesTo,
	}, findings
}
