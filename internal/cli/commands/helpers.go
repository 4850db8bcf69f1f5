package commands

import (
	"github.com/spf13/cobra"

	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/internal/cli/config"
	"github.com/hexmap-dev/hexmap/internal/manifest"
	"github.com/hexmap-dev/hexmap/validate"
)

// loadManifest resolves the manifest path (flag over config file) and
// loads it.
func loadManifest(cmd *cobra.Command, cfg *config.Config) (*manifest.Manifest, error) {
	path, _ := cmd.Flags().GetString("manifest")
	if path == "" {
		path = cfg.Manifest
	}
	return manifest.Load(path)
}

// buildFromManifest loads the manifest and builds the graph in one step.
func buildFromManifest(cmd *cobra.Command, cfg *config.Config) (*graph.Graph, []graph.Finding, error) {
	m, err := loadManifest(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	g, findings := m.Build()
	return g, findings, nil
}

// validationOptions maps the config file settings onto rule options.
func validationOptions(cfg *config.Config) validate.Options {
	return validate.Options{
		Strict:                cfg.Validate.Strict,
		GodComponentThreshold: cfg.Validate.GodComponentThreshold,
	}
}

// noColor reports whether colored output is disabled for this invocation.
func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}
