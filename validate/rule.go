// Package validate runs architectural rules over a built graph and reports
// advisory findings. Rules never mutate the graph and never fail: every
// result, including a rule violation, is returned as data for the caller to
// inspect.
package validate

import "github.com/hexmap-dev/hexmap/graph"

// Rule is a single independently invocable validation rule.
type Rule interface {
	// ID identifies the rule in findings it produces.
	ID() string

	// Check evaluates the rule against a built graph.
	Check(g *graph.Graph) []graph.Finding
}

// Options configures a validation run.
type Options struct {
	// Strict escalates dangling-dependency build findings from warning to
	// violation when they are passed through Run. Rules themselves are
	// unaffected.
	Strict bool

	// GodComponentThreshold overrides the incident-edge count above which
	// the god-component rule reports a node. Zero means the default (10).
	GodComponentThreshold int
}

// DefaultRules returns the core rule set: dependency direction, orphan
// nodes, and missing layers.
func DefaultRules() []Rule {
	return []Rule{
		DependencyDirection{},
		OrphanNode{},
		MissingLayer{},
	}
}

// AllRules returns the core rules plus the extended architectural checks:
// circular dependencies, god components, and unimplemented ports.
func AllRules(opts Options) []Rule {
	return append(DefaultRules(),
		CircularDependency{},
		GodComponent{Threshold: opts.GodComponentThreshold},
		UnimplementedPort{},
	)
}

// Run evaluates every rule against the graph and concatenates the results.
// If buildFindings are supplied they are prepended to the output, with
// strict-mode escalation applied; this gives callers one list describing
// everything irregular about the graph.
func Run(g *graph.Graph, rules []Rule, buildFindings []graph.Finding, opts Options) []graph.Finding {
	out := make([]graph.Finding, 0, len(buildFindings))
	for _, f := range buildFindings {
		if opts.Strict && f.RuleID == graph.RuleDanglingDependency {
			f.Severity = graph.SeverityViolation
		}
		out = append(out, f)
	}
	for _, rule := range rules {
		out = append(out, rule.Check(g)...)
	}
	return out
}

// HasViolations reports whether any finding carries violation severity.
func HasViolations(findings []graph.Finding) bool {
	for _, f := range findings {
		if f.Severity == graph.SeverityViolation {
			return true
		}
	}
	return false
}
