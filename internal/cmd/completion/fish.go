package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for adoc.

To load completions in your current shell session:

  adoc completion fish | source

To load completions for every new session:

  adoc completion fish > ~/.config/fish/completions/adoc.fish`,
		Example: `  # Load in current session
  adoc completion fish | source

  # Install permanently
  adoc completion fish > ~/.config/fish/completions/adoc.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
