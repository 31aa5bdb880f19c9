// list.go builds the list-item patterns: unordered, ordered (explicit and
// implicit numbering), labeled and callout items.
package adoc

import (
	"fmt"
	"regexp"
)

// ListKind selects a list-item family.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrderedExplicit
	ListOrderedImplicit
	ListLabeled
	ListCallout
)

// maxListLevel bounds marker repetition for unordered and explicit ordered
// items and indexes the labeled delimiter table.
const maxListLevel = 5

// labeled items use a distinct delimiter per nesting level.
var labeledDelimiters = []string{"::", ";;", ":::", "::::"}

// ListItemPattern returns the pattern for a list item of the given kind and
// nesting level (1-based). Kinds without nesting (implicit ordered, callout)
// require level 1.
func ListItemPattern(kind ListKind, level int) (*Pattern, error) {
	switch kind {
	case ListUnordered:
		if level < 1 || level > maxListLevel {
			return nil, fmt.Errorf("%w: unordered list level %d outside 1..%d",
				ErrInvalidParameter, level, maxListLevel)
		}
		marker := fmt.Sprintf(`\*{%d}`, level)
		if level == 1 {
			marker = `(?:\*|-)`
		}
		expr := `\A[ \t]*(` + marker + `)[ \t]+([^\n]+)(?:\n|\z)`
		return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText})

	case ListOrderedExplicit:
		if level < 1 || level > maxListLevel {
			return nil, fmt.Errorf("%w: ordered list level %d outside 1..%d",
				ErrInvalidParameter, level, maxListLevel)
		}
		marker := fmt.Sprintf(`\.{%d}`, level)
		expr := `\A[ \t]*(` + marker + `)[ \t]+([^\n]+)(?:\n|\z)`
		return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText})

	case ListOrderedImplicit:
		if level != 1 {
			return nil, fmt.Errorf("%w: implicit ordered lists have no nesting, got level %d",
				ErrInvalidParameter, level)
		}
		expr := `\A[ \t]*((?:\d+|[a-zA-Z])\.)[ \t]+([^\n]+)(?:\n|\z)`
		return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText})

	case ListLabeled:
		if level < 1 || level > len(labeledDelimiters) {
			return nil, fmt.Errorf("%w: labeled list level %d outside 1..%d",
				ErrInvalidParameter, level, len(labeledDelimiters))
		}
		delim := labeledDelimiters[level-1]
		// The label must not end in the delimiter's first character, which
		// disambiguates label text containing the character from the
		// delimiter itself.
		notLast := regexp.QuoteMeta(delim[:1])
		expr := `\A[ \t]*([^\n \t](?:[^\n]*?[^\n \t` + notLast + `])?)(` +
			regexp.QuoteMeta(delim) + `)(?:[ \t]+([^\n]*))?` + eol
		return newPattern(expr, map[int]Role{
			1: RoleText,
			2: RoleDelimiter,
			3: RoleSecondaryText,
		})

	case ListCallout:
		if level != 1 {
			return nil, fmt.Errorf("%w: callout lists have no nesting, got level %d",
				ErrInvalidParameter, level)
		}
		expr := `\A(<(?:\d+|\.)>)[ \t]+([^\n]+)(?:\n|\z)`
		return newPattern(expr, map[int]Role{1: RoleDelimiter, 2: RoleText})
	}
	return nil, fmt.Errorf("%w: unknown list kind %d", ErrInvalidParameter, kind)
}
