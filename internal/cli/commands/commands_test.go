package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanManifest = `{
  "project": "shop",
  "components": [
    {"type_name": "User", "layer": "Domain", "role": "Entity"},
    {"type_name": "UserRepository", "layer": "Port", "role": "Repository",
     "dependencies": ["User"]},
    {"type_name": "PgUserRepository", "layer": "Adapter", "role": "Adapter",
     "dependencies": ["UserRepository"]}
  ]
}`

const violatingManifest = `{
  "components": [
    {"type_name": "OrderMapper", "layer": "Adapter", "role": "Adapter"},
    {"type_name": "Order", "layer": "Domain", "role": "Aggregate",
     "dependencies": ["OrderMapper"]}
  ]
}`

// writeManifest drops a manifest into a temp working directory and chdirs
// there so config loading sees no stray hexmap.yml.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })

	path := filepath.Join(dir, "hexmap.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCommand executes the root command with args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInspect_Summary(t *testing.T) {
	writeManifest(t, cleanManifest)

	out, err := runCommand(t, "inspect", "--no-color")
	require.NoError(t, err)

	assert.Regexp(t, `Nodes:\s+3`, out)
	assert.Regexp(t, `Edges:\s+2`, out)
	assert.Contains(t, out, "Domain")
}

func TestInspect_Node(t *testing.T) {
	writeManifest(t, cleanManifest)

	out, err := runCommand(t, "inspect", "UserRepository", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "UserRepository")
	assert.Contains(t, out, "→ User (Domain)")
	assert.Contains(t, out, "← PgUserRepository (Adapter)")
}

func TestInspect_UnknownNode(t *testing.T) {
	writeManifest(t, cleanManifest)

	_, err := runCommand(t, "inspect", "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component not found")
}

func TestInspect_LayerFilter(t *testing.T) {
	writeManifest(t, cleanManifest)

	out, err := runCommand(t, "inspect", "--layer", "Adapter", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "PgUserRepository")
	assert.NotContains(t, out, "UserRepository  Port")
}

func TestValidate_Clean(t *testing.T) {
	writeManifest(t, cleanManifest)

	out, err := runCommand(t, "validate", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "no violations")
}

func TestValidate_Violation(t *testing.T) {
	writeManifest(t, violatingManifest)

	out, err := runCommand(t, "validate", "--no-color")
	require.Error(t, err)

	assert.Contains(t, out, "dependency-direction")
	assert.Contains(t, out, "architecture violations found")
}

func TestExport_Stdout(t *testing.T) {
	writeManifest(t, cleanManifest)

	out, err := runCommand(t, "export", "--format", "dot", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
}

func TestExport_ToFile(t *testing.T) {
	dir := writeManifest(t, cleanManifest)

	target := filepath.Join(filepath.Dir(dir), "arch.mmd")
	_, err := runCommand(t, "export", "--format", "mermaid", "--output", target, "--no-color")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph TD")
}

func TestExport_UnknownFormat(t *testing.T) {
	writeManifest(t, cleanManifest)

	_, err := runCommand(t, "export", "--format", "pdf")
	require.Error(t, err)
}

func TestExport_SQLiteNeedsOutput(t *testing.T) {
	writeManifest(t, cleanManifest)

	_, err := runCommand(t, "export", "--format", "sqlite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestManifestFlagOverride(t *testing.T) {
	writeManifest(t, cleanManifest)

	other := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(other, []byte(violatingManifest), 0o644))

	out, err := runCommand(t, "validate", "--manifest", other, "--no-color")
	require.Error(t, err)
	assert.Contains(t, out, "dependency-direction")
}
