package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
	"github.com/dwomick/adoc-mode/pkg/adoc"
)

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configuration yields a usable grammar",
		Long: `Validate the current configuration and build the full rule table from
it, reporting any grammar parameter that would reject construction.`,
		Example: `  # Check config
  adoc config check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runCheck(configPath, noColor, nil)
		},
	}

	return cmd
}

func runCheck(configPath string, noColor bool, cfg *config.Config) error {
	if noColor {
		color.NoColor = true
	}

	if cfg == nil {
		var err error
		cfg, err = config.LoadWithEnv(config.ResolvePath(configPath))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if err := cfg.Validate(); err != nil {
		_, _ = red.Println("✗ Invalid configuration:", err)
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Println("✓ Configuration valid")

	classifier, err := adoc.NewClassifier(cfg.ToGrammar())
	if err != nil {
		_, _ = red.Println("✗ Rule table construction failed:", err)
		return fmt.Errorf("rule table construction failed: %w", err)
	}
	_, _ = green.Printf("✓ Rule table built (%d rules)\n", len(classifier.RuleNames()))

	return nil
}
