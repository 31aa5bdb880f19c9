package configcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current adoc configuration with value source indicators.`,
		Example: `  # Show current config
  adoc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath, noColor)
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath = config.ResolvePath(configPath)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = config.Default()
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Printf("%-28s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(value)

		source := "config"
		if fileErr != nil {
			source = "default"
		}
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		} else if fileValue != value && source == "config" {
			source = "default"
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Output format", cfg.OutputFormat, fileCfg.OutputFormat, "ADOC_OUTPUT_FORMAT")
	printField("Title max level", strconv.Itoa(cfg.TitleMaxLevel),
		strconv.Itoa(fileCfg.TitleMaxLevel), "ADOC_TITLE_MAX_LEVEL")
	printField("Underline diff threshold", strconv.Itoa(cfg.UnderlineDiffThreshold),
		strconv.Itoa(fileCfg.UnderlineDiffThreshold), "ADOC_UNDERLINE_DIFF_THRESHOLD")
	printField("Underline disable length", strconv.Itoa(cfg.UnderlineDisableLength),
		strconv.Itoa(fileCfg.UnderlineDisableLength), "ADOC_UNDERLINE_DISABLE_LENGTH")
	printField("Special words", strings.Join(cfg.SpecialWords, ","),
		strings.Join(fileCfg.SpecialWords, ","), "ADOC_SPECIAL_WORDS")

	if len(cfg.Entities) > 0 {
		_, _ = bold.Printf("%-28s", "Entities:")
		fmt.Printf("%d custom\n", len(cfg.Entities))
	}

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
