// Package graph implements the architecture-graph engine: it turns a flat
// set of component entries into an immutable dependency graph and exposes
// read-only structural queries over it.
//
// # Overview
//
// Components describe themselves with an Entry (type name, architectural
// layer, role, module path, declared dependencies). Build consumes a
// snapshot of entries and produces a frozen Graph plus a list of Findings
// describing everything irregular it observed: malformed entries, duplicate
// node IDs, dangling dependencies. A build never fails on bad input data;
// it returns the best graph it can construct and reports the rest.
//
// # Immutability
//
// A built Graph is never modified. Any number of goroutines may query it
// concurrently without coordination; query methods return copies or freshly
// allocated slices, never handles into internal storage. Refreshing after
// components change means building a new Graph from a new entry snapshot.
//
// # Example
//
//	g, findings := graph.Build([]graph.Entry{
//		{TypeName: "User", Layer: graph.LayerDomain, Role: graph.RoleEntity},
//		{TypeName: "UserRepository", Layer: graph.LayerPort, Role: graph.RoleRepository},
//		{TypeName: "PgUserRepository", Layer: graph.LayerAdapter, Role: graph.RoleAdapter,
//			Dependencies: []string{"UserRepository"}},
//	})
//	for _, n := range g.NodesByLayer(graph.LayerDomain) {
//		fmt.Println(n.TypeName)
//	}
//	_ = findings
package graph
