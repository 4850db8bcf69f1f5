package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/internal/cli/config"
	"github.com/hexmap-dev/hexmap/internal/cli/ui"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [type-name]",
		Short: "Inspect the architecture graph",
		Long: `Inspect the architecture graph built from the component manifest.

Without arguments, prints a summary: node and edge counts and the
per-layer breakdown. With a type name, prints that component's entry
and its incoming and outgoing dependencies. The --layer and --role
flags list matching components instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().String("layer", "", "list components in this layer")
	cmd.Flags().String("role", "", "list components with this role")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	g, buildFindings, err := buildFromManifest(cmd, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	plain := noColor(cmd)

	if len(args) == 1 {
		return inspectNode(cmd, g, args[0])
	}

	if layerName, _ := cmd.Flags().GetString("layer"); layerName != "" {
		layer, ok := graph.ParseLayer(layerName)
		if !ok {
			return fmt.Errorf("unknown layer: %s", layerName)
		}
		return listNodes(cmd, g.NodesByLayer(layer))
	}
	if roleName, _ := cmd.Flags().GetString("role"); roleName != "" {
		role, ok := graph.ParseRole(roleName)
		if !ok {
			return fmt.Errorf("unknown role: %s", roleName)
		}
		return listNodes(cmd, g.NodesByRole(role))
	}

	ui.Header(out, "Architecture", plain)
	kv := ui.NewKeyValueTable(out, plain)
	kv.AddRow("Nodes", strconv.Itoa(g.NodeCount()))
	kv.AddRow("Edges", strconv.Itoa(g.EdgeCount()))
	for _, layer := range graph.Layers() {
		kv.AddRow(layer.String(), strconv.Itoa(len(g.NodesByLayer(layer))))
	}
	kv.AddRow("Build findings", strconv.Itoa(len(buildFindings)))
	kv.Render()

	return nil
}

// inspectNode prints one component with its neighborhood.
func inspectNode(cmd *cobra.Command, g *graph.Graph, typeName string) error {
	out := cmd.OutOrStdout()
	plain := noColor(cmd)

	node, ok := g.NodeByName(typeName)
	if !ok {
		return fmt.Errorf("component not found: %s", typeName)
	}

	ui.Header(out, node.TypeName, plain)
	kv := ui.NewKeyValueTable(out, plain)
	kv.AddRow("Layer", node.Layer.String())
	kv.AddRow("Role", node.Role.String())
	if node.ModulePath != "" {
		kv.AddRow("Module", node.ModulePath)
	}
	kv.Render()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Depends on:")
	for _, edge := range g.EdgesFrom(node.ID) {
		if to, ok := g.Node(edge.To); ok {
			fmt.Fprintf(out, "  → %s (%s)\n", to.TypeName, to.Layer)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Depended on by:")
	for _, edge := range g.EdgesTo(node.ID) {
		if from, ok := g.Node(edge.From); ok {
			fmt.Fprintf(out, "  ← %s (%s)\n", from.TypeName, from.Layer)
		}
	}

	return nil
}

// listNodes prints a table of nodes sorted by type name.
func listNodes(cmd *cobra.Command, nodes []graph.Node) error {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].TypeName < nodes[j].TypeName
	})

	table := ui.NewTable(cmd.OutOrStdout(), []string{"Type", "Layer", "Role", "Module"}, noColor(cmd))
	for _, node := range nodes {
		table.AddRow(node.TypeName, node.Layer.String(), node.Role.String(), node.ModulePath)
	}
	table.Render()
	return nil
}
