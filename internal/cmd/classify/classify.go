// Package classify provides the classify command, the main entry point for
// running a classification pass over a document.
package classify

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
	"github.com/dwomick/adoc-mode/internal/view"
	"github.com/dwomick/adoc-mode/pkg/adoc"
)

type classifyOptions struct {
	file   string
	start  int
	end    int
	source bool

	configPath string
	output     string
	noColor    bool

	// test seam
	writer io.Writer
}

// NewCmdClassify creates the classify command.
func NewCmdClassify() *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify a document into categorized spans",
		Long: `Run a classification pass over an AsciiDoc document and report every
categorized span: titles, block delimiters, list markers, inline styling,
macros, references and replacements.

Reads from stdin when no file is given or the file is "-".`,
		Example: `  # Classify a document
  adoc classify README.adoc

  # Classify stdin
  cat notes.adoc | adoc classify

  # Restrict the pass to a byte range
  adoc classify --start 120 --end 480 README.adoc

  # Print the document itself with spans styled
  adoc classify --source README.adoc

  # JSON for scripting
  adoc classify -o json README.adoc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.file = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runClassify(opts, nil)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", 0, "Start byte offset of the region to classify")
	cmd.Flags().IntVar(&opts.end, "end", -1, "End byte offset of the region (default: end of input)")
	cmd.Flags().BoolVar(&opts.source, "source", false, "Render the styled source instead of a span listing")

	return cmd
}

func runClassify(opts *classifyOptions, cfg *config.Config) error {
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

	classifier, err := adoc.NewClassifier(cfg.ToGrammar())
	if err != nil {
		return err
	}

	region := adoc.Span{Start: opts.start, End: opts.end}
	if region.End < 0 {
		region.End = len(text)
	}

	c, err := classifier.ClassifyRegion(text, region)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.writer != nil {
		renderer.SetWriter(opts.writer)
	}
	if opts.source {
		renderer.RenderSource(text, c)
		return nil
	}
	return renderer.RenderSpans(text, c)
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
