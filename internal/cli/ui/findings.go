package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hexmap-dev/hexmap/graph"
)

// severityColor maps a finding severity to its terminal color.
func severityColor(sev graph.Severity) *color.Color {
	switch sev {
	case graph.SeverityViolation:
		return color.New(color.FgRed, color.Bold)
	case graph.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// WriteFinding writes one finding as a severity-colored line.
//
// Example output:
//
//	violation  dependency-direction  Order (Domain) depends outward on OrderMapper (Adapter)
func WriteFinding(w io.Writer, f graph.Finding, noColor bool) {
	c := severityColor(f.Severity)
	if noColor {
		c.DisableColor()
	}
	c.Fprint(w, padRight(string(f.Severity), len(graph.SeverityViolation)))
	fmt.Fprintf(w, "  %s  %s\n", padRight(f.RuleID, 22), f.Message)
}

// WriteFindings writes all findings followed by a severity tally.
func WriteFindings(w io.Writer, findings []graph.Finding, noColor bool) {
	counts := map[graph.Severity]int{}
	for _, f := range findings {
		WriteFinding(w, f, noColor)
		counts[f.Severity]++
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d finding(s): %d violation(s), %d warning(s), %d info\n",
		len(findings),
		counts[graph.SeverityViolation],
		counts[graph.SeverityWarning],
		counts[graph.SeverityInfo],
	)
}

// FormatSuccess creates a success message.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// FormatFailure creates a failure message.
func FormatFailure(message string, noColor bool) string {
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		red.DisableColor()
	}
	return red.Sprintf("✗ %s", message)
}
