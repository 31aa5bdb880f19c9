// category.go defines the span, category, role and reservation tag types
// shared by the pattern library and the classifier.
package adoc

// Span is a half-open byte range [Start, End) over the text buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

// Overlaps reports whether s and o share at least one position.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool { return pos >= s.Start && pos < s.End }

// Category is the syntactic class assigned to a span.
type Category int

const (
	CategoryNone Category = iota

	// Document structure.
	CategoryTitle0
	CategoryTitle1
	CategoryTitle2
	CategoryTitle3
	CategoryTitle4

	// Structural / meta categories.
	CategoryDelimiter
	CategoryListMarker
	CategoryTableMarker
	CategoryMacro
	CategoryAnchor
	CategoryComment
	CategoryPreprocessor

	// Meta content.
	CategoryAttributeName
	CategoryAttributeValue
	CategoryBlockTitle
	CategorySecondaryText
	CategoryPassthrough

	// Text-level styling.
	CategoryEmphasis
	CategoryStrong
	CategoryMonospace
	CategorySuperscript
	CategorySubscript
	CategoryGeneric

	// Substitutions.
	CategoryReplacement
	CategoryReference
)

var categoryNames = map[Category]string{
	CategoryNone:           "none",
	CategoryTitle0:         "title0",
	CategoryTitle1:         "title1",
	CategoryTitle2:         "title2",
	CategoryTitle3:         "title3",
	CategoryTitle4:         "title4",
	CategoryDelimiter:      "delimiter",
	CategoryListMarker:     "list-marker",
	CategoryTableMarker:    "table-marker",
	CategoryMacro:          "macro",
	CategoryAnchor:         "anchor",
	CategoryComment:        "comment",
	CategoryPreprocessor:   "preprocessor",
	CategoryAttributeName:  "attribute-name",
	CategoryAttributeValue: "attribute-value",
	CategoryBlockTitle:     "block-title",
	CategorySecondaryText:  "secondary-text",
	CategoryPassthrough:    "passthrough",
	CategoryEmphasis:       "emphasis",
	CategoryStrong:         "strong",
	CategoryMonospace:      "monospace",
	CategorySuperscript:    "superscript",
	CategorySubscript:      "subscript",
	CategoryGeneric:        "generic",
	CategoryReplacement:    "replacement",
	CategoryReference:      "reference",
}

// String returns the lowercase name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// TitleCategory returns the title category for a level 0-4.
// Levels outside that range return CategoryNone.
func TitleCategory(level int) Category {
	if level < 0 || level > 4 {
		return CategoryNone
	}
	return CategoryTitle0 + Category(level)
}

// Structural reports whether the category belongs to the structural/meta
// dominance set used by the cleanup pass: delimiters, block markers, list
// markers, table markers, anchors, comments and preprocessor directives.
func (c Category) Structural() bool {
	switch c {
	case CategoryDelimiter, CategoryListMarker, CategoryTableMarker,
		CategoryMacro, CategoryAnchor, CategoryComment, CategoryPreprocessor:
		return true
	}
	return false
}

// TextLevel reports whether the category is text-level styling, which the
// cleanup pass discards wherever a structural category claims the same span.
func (c Category) TextLevel() bool {
	switch c {
	case CategoryEmphasis, CategoryStrong, CategoryMonospace,
		CategorySuperscript, CategorySubscript, CategoryGeneric:
		return true
	}
	return false
}

// Role describes the semantic function of a capture group within a pattern.
type Role int

const (
	RoleDelimiter Role = iota // marker characters, underlines, brackets
	RoleText                  // primary content
	RoleSecondaryText         // targets, values, optional trailing parts
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleDelimiter:
		return "delimiter"
	case RoleText:
		return "text"
	case RoleSecondaryText:
		return "secondary-text"
	}
	return "unknown"
}

// Tag is the reservation state of a single buffer position within one
// classification pass.
type Tag uint8

const (
	TagFree Tag = iota
	TagBlockDelimiter
	TagOther
)

// String returns the lowercase name of the tag.
func (t Tag) String() string {
	switch t {
	case TagFree:
		return "free"
	case TagBlockDelimiter:
		return "block-delimiter"
	case TagOther:
		return "other"
	}
	return "unknown"
}
