package graph

// Entry is the unit of input metadata: one statically declared record per
// component. Entries are created once at registration time and never
// mutated; the builder consumes a snapshot of them to construct a Graph.
type Entry struct {
	// TypeName is the globally unique identifier of the component,
	// typically its fully-qualified type name. Required.
	TypeName string `json:"type_name"`

	// Layer is the architectural tier the component declares itself in.
	Layer Layer `json:"layer"`

	// Role is the component's structural category within its layer.
	Role Role `json:"role"`

	// ModulePath records where the component lives. Informational only.
	ModulePath string `json:"module_path,omitempty"`

	// Dependencies names the type names this component depends on, in
	// declaration order. Names that match no registered component produce
	// dangling-dependency findings, not edges.
	Dependencies []string `json:"dependencies,omitempty"`
}

// wellFormed reports whether the entry passes structural validation and,
// if not, a short reason suitable for a finding message.
func (e Entry) wellFormed() (bool, string) {
	if e.TypeName == "" {
		return false, "entry has an empty type_name"
	}
	if !e.Layer.Valid() {
		return false, "entry " + e.TypeName + " declares an unknown layer"
	}
	if !e.Role.Valid() {
		return false, "entry " + e.TypeName + " declares an unknown role"
	}
	return true, ""
}
