// block.go builds the block-level patterns: delimited blocks, block macros,
// tables, attribute entries and lists, block titles, comment lines and the
// paragraph family.
package adoc

import (
	"fmt"
	"regexp"
)

// BlockKind selects a delimited-block family.
type BlockKind int

const (
	BlockComment BlockKind = iota
	BlockPassthrough
	BlockListing
	BlockLiteral
	BlockQuote
	BlockExample
	BlockSidebar
	BlockOpen
)

// blockMarkers maps each delimited-block kind to its marker character.
// All kinds use runs of 4 or more markers except the open block, which is
// exactly two hyphens.
var blockMarkers = map[BlockKind]byte{
	BlockComment:     '/',
	BlockPassthrough: '+',
	BlockListing:     '-',
	BlockLiteral:     '.',
	BlockQuote:       '_',
	BlockExample:     '=',
	BlockSidebar:     '*',
	BlockOpen:        '-',
}

// String returns the lowercase name of the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockComment:
		return "comment"
	case BlockPassthrough:
		return "passthrough"
	case BlockListing:
		return "listing"
	case BlockLiteral:
		return "literal"
	case BlockQuote:
		return "quote"
	case BlockExample:
		return "example"
	case BlockSidebar:
		return "sidebar"
	case BlockOpen:
		return "open"
	}
	return "unknown"
}

// DelimitedBlockPattern returns the pattern for a delimited block: a start
// delimiter line, a non-greedy body of whole lines, and a matching end
// delimiter line.
func DelimitedBlockPattern(kind BlockKind) (*Pattern, error) {
	marker, ok := blockMarkers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown block kind %d", ErrInvalidParameter, kind)
	}
	var delim string
	if kind == BlockOpen {
		delim = `--`
	} else {
		delim = regexp.QuoteMeta(string(marker)) + `{4,}`
	}
	expr := `\A(` + delim + `)[ \t]*\n((?:[^\n]*\n)*?)(` + delim + `)` + eol
	return newPattern(expr, map[int]Role{
		1: RoleDelimiter,
		2: RoleText,
		3: RoleDelimiter,
	})
}

// delimiterLineFallbackPattern matches a lone delimiter-looking line: a run
// of 4 or more repeated marker characters, or the open block's two hyphens.
// It catches unpaired block delimiters so they still render as delimiters.
func delimiterLineFallbackPattern() *Pattern {
	return mustPattern(
		`\A((?:/{4,}|\+{4,}|-{4,}|\.{4,}|_{4,}|={4,}|\*{4,}|--))`+eol,
		map[int]Role{1: RoleDelimiter},
	)
}

// blockMacroPattern matches a block macro line: name::target[attributes].
func blockMacroPattern() *Pattern {
	return mustPattern(
		`\A(\w[\w-]*)::([^ \t\n\[]*)\[([^\]\n]*)\]`+eol,
		map[int]Role{1: RoleDelimiter, 2: RoleSecondaryText, 3: RoleText},
	)
}

// commentLinePattern matches a // line comment.
func commentLinePattern() *Pattern {
	return mustPattern(
		`\A(//[^\n]*)(?:\n|\z)`,
		map[int]Role{1: RoleText},
	)
}

// tableDelimiterPattern matches a table delimiter row such as |===.
func tableDelimiterPattern() *Pattern {
	return mustPattern(
		`\A([|,:!]={3,})`+eol,
		map[int]Role{1: RoleDelimiter},
	)
}

// tableRowPattern claims the leading cell separator of a table row.
func tableRowPattern() *Pattern {
	return mustPattern(
		`\A(\|)[^\n]*(?:\n|\z)`,
		map[int]Role{1: RoleDelimiter},
	)
}

// attributeEntryPattern matches a document attribute entry, :name: value.
// The bang form :name!: unsets an attribute.
func attributeEntryPattern() *Pattern {
	return mustPattern(
		`\A(:)(\w[\w-]*!?)(:)(?:[ \t]+([^\n]*))?`+eol,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter, 4: RoleSecondaryText},
	)
}

// attributeListPattern matches a block attribute list line, [attrs].
func attributeListPattern() *Pattern {
	return mustPattern(
		`\A(\[)([^\]\n]*)(\])`+eol,
		map[int]Role{1: RoleDelimiter, 2: RoleText, 3: RoleDelimiter},
	)
}

// blockTitlePattern matches a block title line, .Title.
func blockTitlePattern() *Pattern {
	return mustPattern(
		`\A(\.)([^ \t.\n][^\n]*)(?:\n|\z)`,
		map[int]Role{1: RoleDelimiter, 2: RoleText},
	)
}

// admonitionPattern matches an admonition paragraph opener, NOTE: and kin.
func admonitionPattern() *Pattern {
	return mustPattern(
		`\A(NOTE|TIP|IMPORTANT|CAUTION|WARNING)(:)[ \t]`,
		map[int]Role{1: RoleSecondaryText, 2: RoleDelimiter},
	)
}

// literalParagraphPattern matches an indented literal paragraph line.
func literalParagraphPattern() *Pattern {
	return mustPattern(
		`\A([ \t]+[^ \t\n][^\n]*)(?:\n|\z)`,
		map[int]Role{1: RoleText},
	)
}
