package registry

import (
	"testing"

	"github.com/hexmap-dev/hexmap/graph"
)

func TestRegistry_RegisterAndSnapshot(t *testing.T) {
	r := New()
	r.Register(graph.Entry{TypeName: "User", Layer: graph.LayerDomain, Role: graph.RoleEntity})
	r.Register(graph.Entry{TypeName: "UserRepository", Layer: graph.LayerPort, Role: graph.RoleRepository})

	if r.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", r.Len())
	}

	snap := r.Entries()
	r.Register(graph.Entry{TypeName: "Later", Layer: graph.LayerDomain, Role: graph.RoleEntity})

	if len(snap) != 2 {
		t.Errorf("snapshot grew after later registration: %d", len(snap))
	}
	if r.Len() != 3 {
		t.Errorf("Len after third registration: got %d, want 3", r.Len())
	}
}

func TestRegistry_SnapshotIsRestartable(t *testing.T) {
	r := New()
	r.RegisterAll([]graph.Entry{
		{TypeName: "A", Layer: graph.LayerDomain, Role: graph.RoleEntity},
		{TypeName: "B", Layer: graph.LayerPort, Role: graph.RoleRepository},
	})

	first := r.Entries()
	second := r.Entries()
	if len(first) != len(second) {
		t.Fatalf("repeated snapshots disagree: %d vs %d", len(first), len(second))
	}

	// Snapshots are independent copies.
	first[0].TypeName = "tampered"
	if second[0].TypeName != "A" {
		t.Error("mutating one snapshot affected another")
	}
	if r.Entries()[0].TypeName != "A" {
		t.Error("mutating a snapshot affected the registry buffer")
	}
}

func TestRegistry_Rebuild(t *testing.T) {
	r := New()
	r.RegisterAll([]graph.Entry{
		{TypeName: "User", Layer: graph.LayerDomain, Role: graph.RoleEntity},
		{TypeName: "UserRepository", Layer: graph.LayerPort, Role: graph.RoleRepository,
			Dependencies: []string{"User"}},
	})

	g, findings := r.Rebuild()
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("rebuild: got %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if len(findings) != 0 {
		t.Errorf("findings: %v", findings)
	}

	// Each rebuild is a full reconstruction from the current entry set.
	r.Register(graph.Entry{TypeName: "PgUserRepository", Layer: graph.LayerAdapter,
		Role: graph.RoleAdapter, Dependencies: []string{"UserRepository"}})

	g2, _ := r.Rebuild()
	if g2.NodeCount() != 3 || g2.EdgeCount() != 2 {
		t.Errorf("second rebuild: got %d nodes, %d edges", g2.NodeCount(), g2.EdgeCount())
	}

	// The first graph is frozen; the rebuild must not have touched it.
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("first graph changed after rebuild: %d nodes, %d edges",
			g.NodeCount(), g.EdgeCount())
	}
}

func TestDefaultRegistry(t *testing.T) {
	Default.Reset()
	defer Default.Reset()

	Register(graph.Entry{TypeName: "Order", Layer: graph.LayerDomain, Role: graph.RoleAggregate})

	if len(Entries()) != 1 {
		t.Fatalf("Entries: got %d, want 1", len(Entries()))
	}

	g, _ := Rebuild()
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount: got %d, want 1", g.NodeCount())
	}
}
