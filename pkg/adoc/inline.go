// inline.go builds the inline patterns: passthrough constructs, quotes,
// special words, replacements, attribute references and inline macros.
package adoc

import (
	"fmt"
	"regexp"
	"strings"
)

// QuoteSpec describes one quote construct. Constrained quotes require a
// non-word boundary before the opening delimiter and after the closing one,
// and their content must not start or end with whitespace. Unconstrained
// quotes have no boundary requirement and may span at most one additional
// line.
type QuoteSpec struct {
	Delimiter   string
	Constrained bool
	Category    Category
}

// DefaultQuotes returns the stock quote table. Unconstrained quotes come
// first so that a doubled delimiter is never consumed as two constrained
// ones.
func DefaultQuotes() []QuoteSpec {
	return []QuoteSpec{
		{Delimiter: "**", Constrained: false, Category: CategoryStrong},
		{Delimiter: "__", Constrained: false, Category: CategoryEmphasis},
		{Delimiter: "##", Constrained: false, Category: CategoryGeneric},
		{Delimiter: "++", Constrained: false, Category: CategoryMonospace},
		{Delimiter: "^", Constrained: false, Category: CategorySuperscript},
		{Delimiter: "~", Constrained: false, Category: CategorySubscript},
		{Delimiter: "*", Constrained: true, Category: CategoryStrong},
		{Delimiter: "_", Constrained: true, Category: CategoryEmphasis},
		{Delimiter: "`", Constrained: true, Category: CategoryMonospace},
		{Delimiter: "+", Constrained: true, Category: CategoryMonospace},
		{Delimiter: "#", Constrained: true, Category: CategoryGeneric},
		{Delimiter: "'", Constrained: true, Category: CategoryEmphasis},
	}
}

// QuotePattern returns the pattern for one quote construct. Group 1 is the
// opening delimiter, group 2 the content, group 3 the closing delimiter.
func QuotePattern(spec QuoteSpec) (*Pattern, error) {
	if spec.Delimiter == "" {
		return nil, fmt.Errorf("%w: empty quote delimiter", ErrInvalidParameter)
	}
	if len(spec.Delimiter) > 2 {
		return nil, fmt.Errorf("%w: quote delimiter %q longer than 2 characters",
			ErrInvalidParameter, spec.Delimiter)
	}
	d := regexp.QuoteMeta(spec.Delimiter)

	if spec.Constrained {
		// The regexp engine has no lookbehind, and a `\A` alternation is
		// unsound here: the matcher's retry walk re-anchors the search
		// window mid-text, where `\A` would fire after a word character.
		// The right boundary stays in the expression (`\z` always refers
		// to the region end); the left boundary is the rule's to check.
		expr := `(` + d + `)([^ \t\n](?:[^\n]*?[^ \t\n])?)(` + d + `)(?:[^\w]|\z)`
		return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter})
	}

	content := `([^\n]*?(?:\n[^\n]*?)?)`
	if len(spec.Delimiter) == 1 {
		// Single-character unconstrained delimiters (superscript,
		// subscript) take tight single-line content; anything looser
		// claims half the paragraph.
		content = `([^ \t\n]+?)`
	}
	expr := `(` + d + `)` + content + `(` + d + `)`
	return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter})
}

// SpecialWordsPattern returns a word-boundary alternation over the configured
// special words.
func SpecialWordsPattern(words []string) (*Pattern, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty special word list", ErrInvalidParameter)
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty special word at index %d", ErrInvalidParameter, i)
		}
		quoted[i] = regexp.QuoteMeta(w)
	}
	expr := `\b(` + strings.Join(quoted, `|`) + `)\b`
	return newPattern(expr, map[int]Role{1: RoleText})
}

// inlinePassthroughPatterns returns the passthrough constructs, whose content
// is exempt from all later rules: +++text+++, $$text$$ and pass:[text].
func inlinePassthroughPatterns() []*Pattern {
	return []*Pattern{
		mustPattern(`(\+{3})([^\n]*?(?:\n[^\n]*?)?)(\+{3})`,
			map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter}),
		mustPattern(`(\${2})([^\n]*?(?:\n[^\n]*?)?)(\${2})`,
			map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter}),
		mustPattern(`(pass:[a-z,]*\[)([^\]\n]*)(\])`,
			map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter}),
	}
}

// replacementPattern matches the first-pass textual replacements: copyright
// marks, dashes, ellipsis, arrows and character references.
func replacementPattern() *Pattern {
	return mustPattern(
		`(\(C\)|\(R\)|\(TM\)|--|\.\.\.|->|=>|<-|<=|&#x[0-9a-fA-F]+;|&#[0-9]+;|&[a-zA-Z][a-zA-Z0-9]*;)`,
		map[int]Role{1: RoleText},
	)
}

// apostrophePattern is the second replacement pass: a straight apostrophe
// between word characters becomes typographic.
func apostrophePattern() *Pattern {
	return mustPattern(`\w(')\w`, map[int]Role{1: RoleText})
}

// attributeReferencePattern matches {name} attribute references.
func attributeReferencePattern() *Pattern {
	return mustPattern(
		`(\{)([a-zA-Z_][\w-]*)(\})`,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter},
	)
}

// anchorPattern matches [[id]] and [[id,reftext]] inline anchors.
func anchorPattern() *Pattern {
	return mustPattern(
		`(\[\[)([\w:-]+)(?:,([^\]\n]*))?(\]\])`,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleSecondaryText, 4: RoleDelimiter},
	)
}

// xrefPattern matches <<target>> and <<target,text>> cross references.
func xrefPattern() *Pattern {
	return mustPattern(
		`(<<)([\w:.#-]+)(?:,([^>\n]*))?(>>)`,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleSecondaryText, 4: RoleDelimiter},
	)
}

// inlineMacroPattern matches name:target[attributes] for the known inline
// macro names.
func inlineMacroPattern() *Pattern {
	return mustPattern(
		`((?:link|mailto|image|icon|footnote|footnoteref|indexterm|indexterm2|kbd|btn|menu):)([^ \t\n\[]*)(\[)([^\]\n]*)(\])`,
		map[int]Role{1: RoleDelimiter, 2: RoleSecondaryText, 3: RoleDelimiter, 4: RoleText, 5: RoleDelimiter},
	)
}

// urlPattern matches bare http(s) URLs with an optional attribute list.
func urlPattern() *Pattern {
	return mustPattern(
		`(https?://[^\s\[\]<>]+)(?:(\[)([^\]\n]*)(\]))?`,
		map[int]Role{1: RoleText, 2: RoleDelimiter, 3: RoleSecondaryText, 4: RoleDelimiter},
	)
}

// indexTermPattern matches ((flow)) index terms.
func indexTermPattern() *Pattern {
	return mustPattern(
		`(\(\()([^)\n]+)(\)\))`,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter},
	)
}
