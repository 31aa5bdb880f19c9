// Package resolve provides the resolve command for replacement tokens and
// character references.
package resolve

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dwomick/adoc-mode/internal/config"
	"github.com/dwomick/adoc-mode/internal/view"
	"github.com/dwomick/adoc-mode/pkg/adoc"
)

type resolveOptions struct {
	tokens []string
	file   string

	configPath string
	output     string
	noColor    bool

	// test seam
	writer io.Writer
}

// NewCmdResolve creates the resolve command.
func NewCmdResolve() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [token...]",
		Short: "Resolve replacement tokens and character references",
		Long: `Resolve typographic tokens, numeric character references, and named
character entities to their replacement text.

With --file, every replacement found in the document is substituted and
the transformed text is printed instead. Unresolvable references are left
as their literal source text.`,
		Example: `  # Resolve individual tokens
  adoc resolve "(C)" "-->" "&#65;" "&copy;"

  # Substitute every replacement in a document
  adoc resolve --file README.adoc`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.tokens = args
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runResolve(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Substitute replacements in a document (\"-\" for stdin)")

	return cmd
}

func runResolve(opts *resolveOptions, cfg *config.Config) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	var err error
	if cfg == nil {
		cfg, err = config.LoadWithEnv(config.ResolvePath(opts.configPath))
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	resolver := cfg.EntityResolver()

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.writer != nil {
		renderer.SetWriter(opts.writer)
	}

	if opts.file != "" {
		return substituteFile(opts, cfg, resolver, renderer)
	}

	if len(opts.tokens) == 0 {
		return fmt.Errorf("nothing to resolve: pass tokens or --file")
	}

	headers := []string{"TOKEN", "RESOLVED"}
	var rows [][]string
	for _, tok := range opts.tokens {
		if s, ok := adoc.ResolveReplacement(tok, resolver); ok {
			rows = append(rows, []string{tok, s})
		} else {
			rows = append(rows, []string{tok, "-"})
		}
	}
	renderer.RenderTable(headers, rows)
	return nil
}

// substituteFile classifies the document and rewrites every resolvable
// replacement span, leaving everything else untouched.
func substituteFile(opts *resolveOptions, cfg *config.Config, resolver adoc.Resolver, renderer *view.Renderer) error {
	text, err := readInput(opts.file)
	if err != nil {
		return err
	}

	classifier, err := adoc.NewClassifier(cfg.ToGrammar())
	if err != nil {
		return err
	}
	c, err := classifier.Classify(text)
	if err != nil {
		return err
	}

	var spans []adoc.Span
	for _, s := range c.Spans {
		if s.Category == adoc.CategoryReplacement {
			spans = append(spans, s.Span)
		}
	}
	// The apostrophe rule runs as a second pass, so its spans arrive after
	// positionally later ones.
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos {
			continue
		}
		b.WriteString(text[pos:sp.Start])
		if out, ok := adoc.ResolveReplacement(text[sp.Start:sp.End], resolver); ok {
			b.WriteString(out)
		} else {
			b.WriteString(text[sp.Start:sp.End])
		}
		pos = sp.End
	}
	b.WriteString(text[pos:])

	renderer.RenderText(strings.TrimSuffix(b.String(), "\n"))
	return nil
}

// readInput reads the named file, or stdin for "-".
func readInput(file string) (string, error) {
	if file == "-" {
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
