package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for adoc.

To load completions in your current shell session:

  source <(adoc completion bash)

To load completions for every new session:

  # Linux
  adoc completion bash > /etc/bash_completion.d/adoc

  # macOS (requires bash-completion)
  adoc completion bash > $(brew --prefix)/etc/bash_completion.d/adoc`,
		Example: `  # Load in current session
  source <(adoc completion bash)

  # Install permanently (Linux)
  adoc completion bash | sudo tee /etc/bash_completion.d/adoc > /dev/null

  # Install permanently (macOS with Homebrew)
  adoc completion bash > $(brew --prefix)/etc/bash_completion.d/adoc`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
