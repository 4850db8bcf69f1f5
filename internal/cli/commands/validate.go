package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexmap-dev/hexmap/internal/cli/config"
	"github.com/hexmap-dev/hexmap/internal/cli/ui"
	"github.com/hexmap-dev/hexmap/validate"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the architecture graph against the rule set",
		Long: `Build the graph from the component manifest and run every
validation rule against it.

Findings are advisory: the graph always builds. The command exits
non-zero only when a rule reports a violation, so it can gate CI.
Warnings and info findings never fail the run.`,
		RunE: runValidate,
	}

	cmd.Flags().Bool("strict", false, "escalate dangling-dependency findings to violations")
	cmd.Flags().Int("threshold", 0, "god-component fan-out threshold (0 uses the configured value)")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	g, buildFindings, err := buildFromManifest(cmd, cfg)
	if err != nil {
		return err
	}

	opts := validationOptions(cfg)
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts.Strict = true
	}
	if threshold, _ := cmd.Flags().GetInt("threshold"); threshold > 0 {
		opts.GodComponentThreshold = threshold
	}

	findings := validate.Run(g, validate.AllRules(opts), buildFindings, opts)

	out := cmd.OutOrStdout()
	plain := noColor(cmd)

	if len(findings) == 0 {
		fmt.Fprintln(out, ui.FormatSuccess("no findings", plain))
		return nil
	}

	ui.WriteFindings(out, findings, plain)

	if validate.HasViolations(findings) {
		fmt.Fprintln(out, ui.FormatFailure("architecture violations found", plain))
		return fmt.Errorf("validation failed")
	}

	fmt.Fprintln(out, ui.FormatSuccess("no violations", plain))
	return nil
}
