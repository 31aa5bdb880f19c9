// title.go builds the title-family patterns and implements the read-only
// title query consumed by structural-edit tooling. Promotion and demotion of
// headings is a collaborator's concern, not handled here.
package adoc

import (
	"fmt"
	"regexp"
	"strings"
)

// TitleKind distinguishes the two heading syntaxes.
type TitleKind int

const (
	TitleOneLine TitleKind = iota
	TitleTwoLine
)

// TitleSubtype applies to one-line titles only.
type TitleSubtype int

const (
	TitleLeadingOnly TitleSubtype = iota
	TitleLeadingAndTrailing
)

// TitleDescriptor describes a heading found on a single line (plus its
// underline for the two-line kind). Read-only from the engine's perspective.
type TitleDescriptor struct {
	Kind    TitleKind
	Subtype TitleSubtype
	Level   int
	Text    string
	Span    Span
}

// OneLineTitlePattern returns the pattern for a one-line heading of the given
// level. The leading delimiter is level+1 repetitions of "="; a symmetric
// trailing delimiter of the same length is optional. The title text must
// contain at least one non-whitespace character.
func OneLineTitlePattern(cfg GrammarConfig, level int) (*Pattern, error) {
	if level < 0 || level > cfg.TitleMaxLevel {
		return nil, fmt.Errorf("%w: one-line title level %d outside 0..%d",
			ErrInvalidParameter, level, cfg.TitleMaxLevel)
	}
	marker := fmt.Sprintf(`={%d}`, level+1)
	expr := `\A(` + marker + `)[ \t]+([^ \t\n](?:[^\n]*?[^ \t\n])?)(?:[ \t]+(` + marker + `))?` + eol
	return newPattern(expr, map[int]Role{
		1: RoleDelimiter,
		2: RoleText,
		3: RoleDelimiter,
	})
}

// TwoLineTitlePattern returns the pattern for a two-line heading of the given
// level. The underline is repetitions of the level's 2-character unit, with
// the first character alone permitted to close an odd-length run. The title
// text must contain at least one word character.
//
// The guard enforces the length heuristic: the underline length must differ
// from the title text length by fewer than UnderlineDiffThreshold bytes, and
// an underline of exactly UnderlineDisableLength bytes (when configured)
// never classifies as a title. Lines failing either check are left for the
// delimited-block rules.
func TwoLineTitlePattern(cfg GrammarConfig, level int) (*Pattern, error) {
	if level < 0 || level > cfg.TitleMaxLevel {
		return nil, fmt.Errorf("%w: two-line title level %d outside 0..%d",
			ErrInvalidParameter, level, cfg.TitleMaxLevel)
	}
	if level >= len(cfg.TwoLineUnderlines) {
		return nil, fmt.Errorf("%w: no underline configured for level %d", ErrInvalidParameter, level)
	}
	unit := cfg.TwoLineUnderlines[level]
	if len(unit) != 2 {
		return nil, fmt.Errorf("%w: two-line underline %q is not exactly 2 characters",
			ErrInvalidParameter, unit)
	}
	first := regexp.QuoteMeta(unit[:1])
	second := regexp.QuoteMeta(unit[1:])
	underline := `(?:` + first + second + `)+` + first + `?`
	expr := `\A([^\n]*?\w[^ \t\n]*)` + eolGroupless + `(` + underline + `)` + eol

	p, err := newPattern(expr, map[int]Role{
		1: RoleText,
		2: RoleDelimiter,
	})
	if err != nil {
		return nil, err
	}
	threshold := cfg.UnderlineDiffThreshold
	disable := cfg.UnderlineDisableLength
	p.guard = func(text string, m []int) bool {
		title, ok1 := group(m, 1)
		under, ok2 := group(m, 2)
		if !ok1 || !ok2 {
			return false
		}
		if disable != 0 && under.Len() == disable {
			return false
		}
		diff := under.Len() - title.Len()
		if diff < 0 {
			diff = -diff
		}
		return diff < threshold
	}
	return p, nil
}

// end of the title line proper: optional trailing blanks then the newline
// separating title text from its underline.
const eolGroupless = `[ \t]*\n`

// QueryTitle applies the title-family patterns to the single line starting at
// line.Start and returns its descriptor. For two-line titles the underline on
// the following line (beyond line.End) is consulted. Returns ok=false when
// the line is not a heading.
func QueryTitle(text string, line Span, cfg GrammarConfig) (*TitleDescriptor, bool) {
	if line.Start < 0 || line.Start > len(text) {
		return nil, false
	}

	for level := 0; level <= cfg.TitleMaxLevel; level++ {
		p, err := OneLineTitlePattern(cfg, level)
		if err != nil {
			return nil, false
		}
		m := p.find(text, line.Start, boundToLineEnd(text, line))
		if m == nil {
			continue
		}
		txt, _ := group(m, 2)
		subtype := TitleLeadingOnly
		if _, ok := group(m, 3); ok {
			subtype = TitleLeadingAndTrailing
		}
		return &TitleDescriptor{
			Kind:    TitleOneLine,
			Subtype: subtype,
			Level:   level,
			Text:    text[txt.Start:txt.End],
			Span:    Span{Start: m[0], End: m[1]},
		}, true
	}

	// Two-line titles need the underline line, so the search window extends
	// one line past the queried span.
	bound := boundPastNextLine(text, line)
	for level := 0; level <= cfg.TitleMaxLevel; level++ {
		p, err := TwoLineTitlePattern(cfg, level)
		if err != nil {
			return nil, false
		}
		m := p.find(text, line.Start, bound)
		if m == nil || (p.guard != nil && !p.guard(text, m)) {
			continue
		}
		txt, _ := group(m, 1)
		return &TitleDescriptor{
			Kind:  TitleTwoLine,
			Level: level,
			Text:  text[txt.Start:txt.End],
			Span:  Span{Start: m[0], End: m[1]},
		}, true
	}
	return nil, false
}

// boundToLineEnd widens the span to include the line's terminating newline.
func boundToLineEnd(text string, line Span) int {
	end := line.End
	if end > len(text) {
		end = len(text)
	}
	if i := strings.IndexByte(text[line.Start:], '\n'); i >= 0 && line.Start+i+1 > end {
		end = line.Start + i + 1
	}
	return end
}

// boundPastNextLine returns the offset just past the line following the
// queried one, capped at the end of the buffer.
func boundPastNextLine(text string, line Span) int {
	i := strings.IndexByte(text[line.Start:], '\n')
	if i < 0 {
		return len(text)
	}
	next := line.Start + i + 1
	j := strings.IndexByte(text[next:], '\n')
	if j < 0 {
		return len(text)
	}
	return next + j + 1
}
