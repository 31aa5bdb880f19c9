// Package outline provides the outline command, which lists a document's
// headings as an indented tree.
package outline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
	"github.com/dwomick/adoc-mode/internal/view"
	"github.com/dwomick/adoc-mode/pkg/adoc"
)

type outlineOptions struct {
	file     string
	maxLevel int

	configPath string
	output     string
	noColor    bool

	// test seam
	writer io.Writer
}

// entry is one heading in the outline.
type entry struct {
	Level int    `json:"level"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Kind  string `json:"kind"`
}

// NewCmdOutline creates the outline command.
func NewCmdOutline() *cobra.Command {
	opts := &outlineOptions{}

	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "List a document's headings",
		Long: `Scan a document line by line and list every heading, one-line and
two-line alike, indented by level.

Reads from stdin when no file is given or the file is "-".`,
		Example: `  # Outline a document
  adoc outline README.adoc

  # Only top-level sections
  adoc outline --max-level 1 README.adoc

  # JSON for scripting
  adoc outline -o json README.adoc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.file = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runOutline(opts, nil)
		},
	}

	cmd.Flags().IntVar(&opts.maxLevel, "max-level", -1, "Deepest heading level to list (default: all)")

	return cmd
}

func runOutline(opts *outlineOptions, cfg *config.Config) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	text, err := readInput(opts.file)
	if err != nil {
		return err
	}

	if cfg == nil {
		cfg, err = config.LoadWithEnv(config.ResolvePath(opts.configPath))
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	entries := collect(text, cfg.ToGrammar(), opts.maxLevel)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.writer != nil {
		renderer.SetWriter(opts.writer)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(entries)
	}

	if len(entries) == 0 {
		renderer.RenderText("No headings found.")
		return nil
	}

	for _, e := range entries {
		renderer.RenderText(strings.Repeat("  ", e.Level) + e.Text)
	}
	return nil
}

// collect queries every line for a heading. Lines consumed as a two-line
// title's underline are skipped so the underline never reports a second hit.
func collect(text string, g adoc.GrammarConfig, maxLevel int) []entry {
	var entries []entry

	lineNo := 0
	start := 0
	skipNext := false
	for start <= len(text) {
		end := len(text)
		if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
			end = start + i
		}
		lineNo++

		if skipNext {
			skipNext = false
		} else if d, ok := adoc.QueryTitle(text, adoc.Span{Start: start, End: end}, g); ok {
			if maxLevel < 0 || d.Level <= maxLevel {
				kind := "one-line"
				if d.Kind == adoc.TitleTwoLine {
					kind = "two-line"
				}
				entries = append(entries, entry{
					Level: d.Level,
					Line:  lineNo,
					Text:  d.Text,
					Kind:  kind,
				})
			}
			skipNext = d.Kind == adoc.TitleTwoLine
		}

		if end >= len(text) {
			break
		}
		start = end + 1
	}
	return entries
}

// readInput reads the named file, or stdin for "" or "-".
func readInput(file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
