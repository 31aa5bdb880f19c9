// Package root provides the root command for the adoc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/cmd/classify"
	"github.com/dwomick/adoc-mode/internal/cmd/completion"
	"github.com/dwomick/adoc-mode/internal/cmd/configcmd"
	initcmd "github.com/dwomick/adoc-mode/internal/cmd/init"
	"github.com/dwomick/adoc-mode/internal/cmd/outline"
	"github.com/dwomick/adoc-mode/internal/cmd/resolve"
	"github.com/dwomick/adoc-mode/internal/version"
)

// NewCmdRoot creates the root command for adoc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adoc",
		Short: "A classification engine for AsciiDoc documents",
		Long: `adoc classifies line-oriented lightweight markup into categorized spans:
titles, lists, delimited blocks, tables, attributes, inline styling,
macros, references and replacements.

It provides commands for inspecting span listings, extracting document
outlines, and resolving replacement text.

Get started by running: adoc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/adoc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("adoc version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(classify.NewCmdClassify())
	cmd.AddCommand(outline.NewCmdOutline())
	cmd.AddCommand(resolve.NewCmdResolve())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
