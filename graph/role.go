package graph

// Role is the structural category of a component within its layer.
type Role int

const (
	// RoleUnknown is the fallback for unclassified or unparseable roles.
	RoleUnknown Role = iota

	// RoleEntity is a domain object with identity.
	RoleEntity

	// RoleValueObject is an immutable domain value without identity.
	RoleValueObject

	// RoleAggregate is a consistency boundary around entities.
	RoleAggregate

	// RoleRepository is a persistence port abstraction.
	RoleRepository

	// RoleDirective is a state-changing operation request.
	RoleDirective

	// RoleQuery is a read-side port abstraction.
	RoleQuery

	// RoleUseCase orchestrates a single application workflow.
	RoleUseCase

	// RoleService is a stateless domain or application service.
	RoleService

	// RoleAdapter is a concrete implementation of a port.
	RoleAdapter

	// RoleOther is a declared catch-all for components outside the
	// canonical categories. Unlike RoleUnknown it is a valid declaration.
	RoleOther
)

var roleNames = map[Role]string{
	RoleUnknown:     "Unknown",
	RoleEntity:      "Entity",
	RoleValueObject: "ValueObject",
	RoleAggregate:   "Aggregate",
	RoleRepository:  "Repository",
	RoleDirective:   "Directive",
	RoleQuery:       "Query",
	RoleUseCase:     "UseCase",
	RoleService:     "Service",
	RoleAdapter:     "Adapter",
	RoleOther:       "Other",
}

// Roles lists every valid role.
func Roles() []Role {
	return []Role{
		RoleEntity, RoleValueObject, RoleAggregate, RoleRepository,
		RoleDirective, RoleQuery, RoleUseCase, RoleService, RoleAdapter,
		RoleOther,
	}
}

// ParseRole converts a role name to a Role. Unrecognized names map to
// RoleUnknown with ok == false.
func ParseRole(name string) (Role, bool) {
	for r, n := range roleNames {
		if n == name && r != RoleUnknown {
			return r, true
		}
	}
	return RoleUnknown, false
}

// Valid reports whether the role is one of the declared categories.
func (r Role) Valid() bool {
	return r != RoleUnknown
}

// String returns the role name.
func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler so roles serialize as names.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to RoleUnknown; the builder reports them as malformed entries.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, _ := ParseRole(string(text))
	*r = parsed
	return nil
}
