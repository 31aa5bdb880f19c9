// Package init provides the init command for adoc.
package init

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		outputFormat string
		defaults     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize adoc configuration",
		Long: `Initialize adoc with your preferred output format and grammar tuning.

This command will guide you through the output format, the deepest title
level to recognize, and the two-line heading length heuristics. The
configuration will be saved to ~/.config/adoc/config.yml.`,
		Example: `  # Interactive setup
  adoc init

  # Skip the prompts and write stock defaults
  adoc init --defaults

  # Pre-select the output format
  adoc init --output-format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runInit(configPath, outputFormat, defaults)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", "", "Default output format: table, json, plain")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write stock defaults without prompting")

	return cmd
}

func runInit(configPath, prefillFormat string, defaults bool) error {
	configPath = config.ResolvePath(configPath)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	if prefillFormat != "" {
		cfg.OutputFormat = prefillFormat
	}

	if !defaults {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  adoc classify README.adoc")
	fmt.Println("  adoc outline README.adoc")

	return nil
}

func promptConfig(cfg *config.Config) error {
	maxLevel := strconv.Itoa(cfg.TitleMaxLevel)
	threshold := strconv.Itoa(cfg.UnderlineDiffThreshold)
	words := strings.Join(cfg.SpecialWords, ",")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for command output").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),

			huh.NewInput().
				Title("Title max level").
				Description("Deepest heading level to recognize (0-4)").
				Value(&maxLevel).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > 4 {
						return fmt.Errorf("must be a number between 0 and 4")
					}
					return nil
				}),

			huh.NewInput().
				Title("Underline diff threshold").
				Description("Two-line headings are rejected when the underline length differs this much").
				Value(&threshold).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("must be a number of at least 1")
					}
					return nil
				}),

			huh.NewInput().
				Title("Special words (optional)").
				Description("Comma-separated words to highlight wherever they appear").
				Placeholder("WARNING,DANGER").
				Value(&words),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.TitleMaxLevel, _ = strconv.Atoi(maxLevel)
	cfg.UnderlineDiffThreshold, _ = strconv.Atoi(threshold)
	cfg.SpecialWords = nil
	for _, w := range strings.Split(words, ",") {
		if w = strings.TrimSpace(w); w != "" {
			cfg.SpecialWords = append(cfg.SpecialWords, w)
		}
	}

	return nil
}
