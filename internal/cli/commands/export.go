package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexmap-dev/hexmap/export"
	"github.com/hexmap-dev/hexmap/internal/cli/config"
	"github.com/hexmap-dev/hexmap/internal/cli/ui"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the architecture graph",
		Long: fmt.Sprintf(`Render the architecture graph in a diagram or data format.

Text formats (%s) write to stdout or, with --output, to a file.
The sqlite format always writes to the --output database path,
replacing any rows from a previous export.`, strings.Join(export.Formats(), ", ")),
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "", "output format (default from hexmap.yml)")
	cmd.Flags().StringP("output", "o", "", "output path (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	g, _, err := buildFromManifest(cmd, cfg)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Export.Format
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Export.Output
	}

	if format == "sqlite" {
		if output == "" {
			return fmt.Errorf("sqlite export needs --output")
		}
		if err := export.WriteSQLite(g, output); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(),
			ui.FormatSuccess("exported to "+output, noColor(cmd)))
		return nil
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		return err
	}
	rendered, err := exporter.Export(g)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(rendered)
		return err
	}
	if err := os.WriteFile(output, rendered, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(),
		ui.FormatSuccess("exported to "+output, noColor(cmd)))
	return nil
}
