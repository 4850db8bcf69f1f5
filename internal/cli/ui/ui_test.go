package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexmap-dev/hexmap/graph"
)

func TestTableAlignment(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Type", "Layer"}, true)
	table.AddRow("User", "Domain")
	table.AddRow("PgUserRepository", "Adapter")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Type"))
	// The Layer column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[2], "Domain"), strings.Index(lines[3], "Adapter"))
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)
	kv.AddRow("Nodes", "12")
	kv.AddRow("Edges", "31")
	kv.Render()

	assert.Contains(t, buf.String(), "Nodes: 12")
	assert.Contains(t, buf.String(), "Edges: 31")
}

func TestWriteFindings(t *testing.T) {
	var buf bytes.Buffer
	WriteFindings(&buf, []graph.Finding{
		{RuleID: "dependency-direction", Severity: graph.SeverityViolation, Message: "bad edge"},
		{RuleID: "orphan-node", Severity: graph.SeverityInfo, Message: "isolated node"},
	}, true)

	out := buf.String()
	assert.Contains(t, out, "violation")
	assert.Contains(t, out, "bad edge")
	assert.Contains(t, out, "2 finding(s): 1 violation(s), 0 warning(s), 1 info")
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Nodes", true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Nodes", lines[0])
	assert.Equal(t, strings.Repeat("─", len("Nodes")), lines[1])
}

func TestFormatSuccessAndFailure(t *testing.T) {
	assert.Equal(t, "✓ no violations", FormatSuccess("no violations", true))
	assert.Equal(t, "✗ 2 violations", FormatFailure("2 violations", true))
}
