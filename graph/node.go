package graph

// Node is a single component in a built Graph. There is exactly one node
// per distinct NodeID.
type Node struct {
	ID         NodeID `json:"id"`
	TypeName   string `json:"type_name"`
	Layer      Layer  `json:"layer"`
	Role       Role   `json:"role"`
	ModulePath string `json:"module_path,omitempty"`
}

// Relation describes the kind of relationship an edge records.
type Relation string

const (
	// RelationDependsOn records that the source component's implementation
	// references the target component by name.
	RelationDependsOn Relation = "depends_on"

	// RelationImplements records that an adapter fulfils a port contract.
	// It is accepted on input for forward compatibility with richer
	// authoring metadata; the builder currently emits depends_on edges only.
	RelationImplements Relation = "implements"
)

// Edge is a directed relationship between two nodes of the same Graph.
// Both endpoints are guaranteed to be present in the graph that owns the
// edge.
type Edge struct {
	From     NodeID   `json:"from"`
	To       NodeID   `json:"to"`
	Relation Relation `json:"relation"`
}
