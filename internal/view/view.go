// Package view provides output formatting for adoc commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/dwomick/adoc-mode/pkg/adoc"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidateFormat checks that the format string names a supported format.
func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatTable, FormatJSON, FormatPlain:
		return nil
	}
	return fmt.Errorf("invalid output format %q: must be table, json, or plain", format)
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable renders rows under headers, columns padded to their widest
// cell. Display width, not byte length, drives the padding.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	if r.format == FormatJSON {
		r.renderTableAsJSON(headers, rows)
		return
	}

	if r.format == FormatPlain {
		r.renderTableAsPlain(rows)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && runewidth.StringWidth(val) > widths[i] {
				widths[i] = runewidth.StringWidth(val)
			}
		}
	}

	bold := color.New(color.Bold)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		_, _ = bold.Fprint(r.writer, pad(h, widths[i]))
	}
	fmt.Fprintln(r.writer)

	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			fmt.Fprint(r.writer, pad(val, widths[i]))
		}
		fmt.Fprintln(r.writer)
	}
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.writer, strings.Join(row, "\t"))
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(r.writer, "✗ "+msg)
}

// categoryStyles maps each category onto its terminal style.
var categoryStyles = map[adoc.Category]*color.Color{
	adoc.CategoryTitle0:         color.New(color.FgMagenta, color.Bold),
	adoc.CategoryTitle1:         color.New(color.FgMagenta, color.Bold),
	adoc.CategoryTitle2:         color.New(color.FgMagenta),
	adoc.CategoryTitle3:         color.New(color.FgMagenta),
	adoc.CategoryTitle4:         color.New(color.FgMagenta),
	adoc.CategoryDelimiter:      color.New(color.FgCyan),
	adoc.CategoryListMarker:     color.New(color.FgYellow, color.Bold),
	adoc.CategoryTableMarker:    color.New(color.FgYellow),
	adoc.CategoryMacro:          color.New(color.FgBlue, color.Bold),
	adoc.CategoryAnchor:         color.New(color.FgBlue),
	adoc.CategoryComment:        color.New(color.Faint),
	adoc.CategoryPreprocessor:   color.New(color.FgRed),
	adoc.CategoryAttributeName:  color.New(color.FgGreen, color.Bold),
	adoc.CategoryAttributeValue: color.New(color.FgGreen),
	adoc.CategoryBlockTitle:     color.New(color.FgMagenta, color.Italic),
	adoc.CategorySecondaryText:  color.New(color.Faint),
	adoc.CategoryPassthrough:    color.New(color.FgRed),
	adoc.CategoryEmphasis:       color.New(color.Italic),
	adoc.CategoryStrong:         color.New(color.Bold),
	adoc.CategoryMonospace:      color.New(color.FgCyan),
	adoc.CategorySuperscript:    color.New(color.FgCyan, color.Italic),
	adoc.CategorySubscript:      color.New(color.FgCyan, color.Italic),
	adoc.CategoryGeneric:        color.New(color.Underline),
	adoc.CategoryReplacement:    color.New(color.FgYellow),
	adoc.CategoryReference:      color.New(color.FgBlue, color.Underline),
}

// spanRecord is the JSON shape of one classified span.
type spanRecord struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Category string `json:"category"`
	Role     string `json:"role,omitempty"`
	Text     string `json:"text"`
}

// RenderSpans renders the classification as a span listing.
func (r *Renderer) RenderSpans(text string, c *adoc.Classification) error {
	if r.format == FormatJSON {
		records := make([]spanRecord, 0, len(c.Spans))
		for _, s := range c.Spans {
			records = append(records, spanRecord{
				Start:    s.Span.Start,
				End:      s.Span.End,
				Category: s.Category.String(),
				Role:     roleName(s.Role),
				Text:     text[s.Span.Start:s.Span.End],
			})
		}
		return r.RenderJSON(records)
	}

	headers := []string{"START", "END", "CATEGORY", "TEXT"}
	rows := make([][]string, 0, len(c.Spans))
	for _, s := range c.Spans {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Span.Start),
			fmt.Sprintf("%d", s.Span.End),
			s.Category.String(),
			Truncate(escape(text[s.Span.Start:s.Span.End]), 50),
		})
	}
	r.RenderTable(headers, rows)
	return nil
}

func roleName(role adoc.Role) string {
	if role == adoc.RoleText {
		return ""
	}
	return role.String()
}

// escape makes control characters visible in table cells.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}

// RenderSource prints the buffer with each classified run styled by its
// category. Listing bodies introduced by a [source,<lang>] attribute line
// are syntax-highlighted instead.
func (r *Renderer) RenderSource(text string, c *adoc.Classification) {
	listings := listingLanguages(text, c)

	pos := c.Region.Start
	for pos < c.Region.End {
		cat := c.CategoryAt(pos)
		end := pos + 1
		for end < c.Region.End && c.CategoryAt(end) == cat {
			end++
		}
		run := text[pos:end]

		if lang, ok := listings[adoc.Span{Start: pos, End: end}]; ok && !r.noColor {
			if err := quick.Highlight(r.writer, run, lang, "terminal256", "monokai"); err != nil {
				fmt.Fprint(r.writer, run)
			}
		} else if style, ok := categoryStyles[cat]; ok {
			_, _ = style.Fprint(r.writer, run)
		} else {
			fmt.Fprint(r.writer, run)
		}
		pos = end
	}
}

// listingLanguages pairs each monospace listing body with the language named
// by the closest preceding [source,<lang>] attribute line.
func listingLanguages(text string, c *adoc.Classification) map[adoc.Span]string {
	var attrs []adoc.ClassifiedSpan
	var bodies []adoc.Span
	for _, s := range c.Spans {
		switch {
		case s.Category == adoc.CategoryAttributeValue &&
			strings.HasPrefix(text[s.Span.Start:s.Span.End], "source,"):
			attrs = append(attrs, s)
		case s.Category == adoc.CategoryMonospace &&
			strings.HasSuffix(text[s.Span.Start:s.Span.End], "\n"):
			bodies = append(bodies, s.Span)
		}
	}
	if len(attrs) == 0 || len(bodies) == 0 {
		return nil
	}

	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Span.Start < attrs[j].Span.Start })

	out := make(map[adoc.Span]string)
	for _, body := range bodies {
		for i := len(attrs) - 1; i >= 0; i-- {
			if attrs[i].Span.End <= body.Start {
				lang := strings.TrimPrefix(text[attrs[i].Span.Start:attrs[i].Span.End], "source,")
				if lang = strings.TrimSpace(lang); lang != "" {
					out[body] = lang
				}
				break
			}
		}
	}
	return out
}

// Truncate truncates a string to the specified length.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
