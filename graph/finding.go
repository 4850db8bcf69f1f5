package graph

// Severity classifies how serious a finding is.
type Severity string

const (
	// SeverityInfo marks observations that need no action.
	SeverityInfo Severity = "info"

	// SeverityWarning marks conditions that are probably unintended.
	SeverityWarning Severity = "warning"

	// SeverityViolation marks breaches of architectural rules.
	SeverityViolation Severity = "violation"
)

// Rule IDs for findings produced during graph construction. Validation
// rules carry their own IDs in the validate package.
const (
	RuleMalformedEntry     = "malformed-entry"
	RuleDuplicateNodeID    = "duplicate-node-id"
	RuleDanglingDependency = "dangling-dependency"
)

// Finding is an advisory record describing a structural observation,
// inconsistency, or rule violation. Findings are produced by the builder
// and by validation rules; they are returned as data and never stored in
// the Graph they describe.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Nodes    []NodeID `json:"nodes,omitempty"`
	Message  string   `json:"message"`
}
