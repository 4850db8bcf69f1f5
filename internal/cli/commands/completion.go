package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the completion command for shell completions.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for the hexmap CLI.

To load completions:

Bash:

  $ source <(hexmap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ hexmap completion bash > /etc/bash_completion.d/hexmap
  # macOS:
  $ hexmap completion bash > $(brew --prefix)/etc/bash_completion.d/hexmap

Zsh:

  # To load completions for each session, execute once:
  $ hexmap completion zsh > "${fpath[1]}/_hexmap"

Fish:

  $ hexmap completion fish | source

  # To load completions for each session, execute once:
  $ hexmap completion fish > ~/.config/fish/completions/hexmap.fish

PowerShell:

  PS> hexmap completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
