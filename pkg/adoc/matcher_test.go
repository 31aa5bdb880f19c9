package adoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spansOf collects the classified spans carrying one category.
func spansOf(c *Classification, cat Category) []ClassifiedSpan {
	var out []ClassifiedSpan
	for _, s := range c.Spans {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// spanTexts maps the spans of one category to their source text.
func spanTexts(c *Classification, text string, cat Category) []string {
	var out []string
	for _, s := range spansOf(c, cat) {
		out = append(out, text[s.Span.Start:s.Span.End])
	}
	return out
}

func mustClassify(t *testing.T, text string) *Classification {
	t.Helper()
	c, err := NewClassifier(DefaultGrammar())
	require.NoError(t, err)
	result, err := c.Classify(text)
	require.NoError(t, err)
	return result
}

// ==================== Classifier Construction ====================

func TestNewClassifier_InvalidGrammar(t *testing.T) {
	cfg := DefaultGrammar()
	cfg.TitleMaxLevel = 9
	_, err := NewClassifier(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestClassifyRegion_OutOfBounds(t *testing.T) {
	c, err := NewClassifier(DefaultGrammar())
	require.NoError(t, err)
	_, err = c.ClassifyRegion("abc", Span{Start: 0, End: 10})
	assert.Error(t, err)
}

// ==================== Headings ====================

func TestClassify_OneLineTitle(t *testing.T) {
	text := "== Section ==\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"Section"}, spanTexts(result, text, CategoryTitle1))
	assert.ElementsMatch(t, []string{"==", "=="}, spanTexts(result, text, CategoryDelimiter))
}

func TestClassify_DocumentTitle(t *testing.T) {
	text := "= Document\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"Document"}, spanTexts(result, text, CategoryTitle0))
}

func TestClassify_TwoLineTitleWithinLengthTolerance(t *testing.T) {
	// 5-byte title, 3-byte underline: difference 2 < 3, still a heading.
	text := "Title\n---\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"Title"}, spanTexts(result, text, CategoryTitle1))
	assert.Contains(t, spanTexts(result, text, CategoryDelimiter), "---")
}

func TestClassify_TwoLineTitleEqualLengths(t *testing.T) {
	text := "Title\n-----\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"Title"}, spanTexts(result, text, CategoryTitle1))
}

func TestClassify_TwoLineTitleLengthMismatchFallsToDelimiter(t *testing.T) {
	// Difference 4 >= threshold 3: the underline is a stray delimiter line,
	// not a heading underline.
	text := "Title\n---------\n"
	result := mustClassify(t, text)

	assert.Empty(t, spansOf(result, CategoryTitle1))
	assert.Contains(t, spanTexts(result, text, CategoryDelimiter), "---------")
}

func TestClassify_TwoLineTitleDisableLengthSuppresses(t *testing.T) {
	cfg := DefaultGrammar()
	cfg.UnderlineDisableLength = 5
	c, err := NewClassifier(cfg)
	require.NoError(t, err)

	text := "Title\n-----\n"
	result, err := c.Classify(text)
	require.NoError(t, err)

	assert.Empty(t, spansOf(result, CategoryTitle1))
	assert.Contains(t, spanTexts(result, text, CategoryDelimiter), "-----")
}

// ==================== Quotes ====================

func TestClassify_ConstrainedStrongNeedsBoundary(t *testing.T) {
	result := mustClassify(t, "a*b*c")
	assert.Empty(t, spansOf(result, CategoryStrong))
}

func TestClassify_ConstrainedStrongWithBoundary(t *testing.T) {
	text := "say *bold* ok"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"bold"}, spanTexts(result, text, CategoryStrong))
}

func TestClassify_UnconstrainedStrongMatchesUnconditionally(t *testing.T) {
	text := "a**b**c"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"b"}, spanTexts(result, text, CategoryStrong))
}

func TestClassify_ConstrainedEmphasisAndMonospace(t *testing.T) {
	text := "mix _em_ and `code` here"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"em"}, spanTexts(result, text, CategoryEmphasis))
	assert.Equal(t, []string{"code"}, spanTexts(result, text, CategoryMonospace))
}

func TestClassify_ConstrainedBoundaryHoldsAcrossRetries(t *testing.T) {
	// The reserved listing body forces the strong rule into its one-byte
	// retry walk; the word-prefixed candidate on the first line must stay
	// rejected at every cursor position.
	text := "a*b* c\n\n----\n *x* y\n----\n"
	result := mustClassify(t, text)

	assert.Empty(t, spansOf(result, CategoryStrong))
	assert.Equal(t, []string{" *x* y\n"}, spanTexts(result, text, CategoryMonospace))
}

// ==================== Reservation Precedence ====================

func TestClassify_QuoteMustNotCrossReservedListMarker(t *testing.T) {
	text := "NOTE: see <<x>> for ** bold attempt\n** next item\n"
	result := mustClassify(t, text)

	// The list marker on the second line is reserved as a block delimiter,
	// so the unconstrained strong quote cannot close on it; the stray ** on
	// the first line stays unmatched.
	assert.Empty(t, spansOf(result, CategoryStrong))
	require.NotEmpty(t, spansOf(result, CategoryListMarker))
	marker := spansOf(result, CategoryListMarker)[0]
	assert.Equal(t, "**", text[marker.Span.Start:marker.Span.End])

	assert.Equal(t, []string{"NOTE"}, spanTexts(result, text, CategorySecondaryText))
	assert.Equal(t, []string{"x"}, spanTexts(result, text, CategoryReference))
}

func TestClassify_TextLevelSpanNeverOverlapsBlockDelimiter(t *testing.T) {
	text := "NOTE: see <<x>> for ** bold attempt\n** next item\n* other *text* here\n"
	result := mustClassify(t, text)

	for _, s := range result.Spans {
		if !s.Category.TextLevel() {
			continue
		}
		for pos := s.Span.Start; pos < s.Span.End; pos++ {
			assert.NotEqual(t, TagBlockDelimiter, result.Tags[pos-result.Region.Start],
				"text-level span %q overlaps a block delimiter", text[s.Span.Start:s.Span.End])
		}
	}
}

// ==================== Matcher Loop ====================

func TestRunRule_RetryFindsLaterOccurrence(t *testing.T) {
	text := "x -- y -- z"
	region := Span{Start: 0, End: len(text)}
	tracker := NewTracker(region)
	// Reserve the first occurrence so only the second is acceptable.
	tracker.Apply(Span{Start: 2, End: 4}, TagBlockDelimiter)

	rule := Rule{
		Name:       "replacement",
		Pattern:    replacementPattern(),
		MustBeFree: []int{1},
		Tags:       []TagAssignment{{Group: 1, Tag: TagOther}},
	}
	matches := (&Classifier{}).runRule(&rule, text, region, tracker)

	require.Len(t, matches, 1)
	got := matches[0].Groups[1]
	assert.Equal(t, "--", text[got.Start:got.End])
	assert.Equal(t, 7, got.Start)
}

func TestRunRule_ZeroLengthPatternTerminates(t *testing.T) {
	text := "abc"
	region := Span{Start: 0, End: len(text)}
	rule := Rule{
		Name:    "zero",
		Pattern: mustPattern(`(q*)`, map[int]Role{1: RoleText}),
	}
	matches := (&Classifier{}).runRule(&rule, text, region, NewTracker(region))

	// At most region length + 1 iterations, one empty match per position.
	assert.LessOrEqual(t, len(matches), region.Len()+1)
}

func TestClassify_Deterministic(t *testing.T) {
	text := "= Doc\n:attr: v\n\n== Sec\n\n* one *b* {ref}\n* two\n\n----\ncode\n----\n\n|===\n| a | b\n|===\n"
	c, err := NewClassifier(DefaultGrammar())
	require.NoError(t, err)

	first, err := c.Classify(text)
	require.NoError(t, err)
	second, err := c.Classify(text)
	require.NoError(t, err)

	assert.Equal(t, first.Spans, second.Spans)
	assert.Equal(t, first.Tags, second.Tags)
}

// ==================== Blocks, Lists, Tables, Attributes ====================

func TestClassify_ListingBodyIsProtected(t *testing.T) {
	text := "----\n*not bold*\n----\n"
	result := mustClassify(t, text)

	assert.Empty(t, spansOf(result, CategoryStrong))
	assert.Equal(t, []string{"*not bold*\n"}, spanTexts(result, text, CategoryMonospace))
	assert.ElementsMatch(t, []string{"----", "----"}, spanTexts(result, text, CategoryDelimiter))
}

func TestClassify_CommentBlock(t *testing.T) {
	text := "////\nhidden *stuff*\n////\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"hidden *stuff*\n"}, spanTexts(result, text, CategoryComment))
	assert.Empty(t, spansOf(result, CategoryStrong))
}

func TestClassify_CommentLine(t *testing.T) {
	text := "// remark\nbody\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"// remark"}, spanTexts(result, text, CategoryComment))
}

func TestClassify_UnorderedListLevels(t *testing.T) {
	text := "* one\n** two\n"
	result := mustClassify(t, text)
	assert.ElementsMatch(t, []string{"*", "**"}, spanTexts(result, text, CategoryListMarker))
}

func TestClassify_LabeledListItem(t *testing.T) {
	text := "term:: definition\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"::"}, spanTexts(result, text, CategoryListMarker))
	assert.Equal(t, []string{"term"}, spanTexts(result, text, CategorySecondaryText))
}

func TestClassify_CalloutItem(t *testing.T) {
	text := "<1> explanation\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"<1>"}, spanTexts(result, text, CategoryListMarker))
}

func TestClassify_TableDelimitersAndRows(t *testing.T) {
	text := "|===\n| a | b\n|===\n"
	result := mustClassify(t, text)

	markers := spanTexts(result, text, CategoryTableMarker)
	assert.Contains(t, markers, "|===")
	assert.Contains(t, markers, "|")
}

func TestClassify_AttributeEntry(t *testing.T) {
	text := ":version: 1.2\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"version"}, spanTexts(result, text, CategoryAttributeName))
	assert.Equal(t, []string{"1.2"}, spanTexts(result, text, CategoryAttributeValue))
}

func TestClassify_AttributeListLine(t *testing.T) {
	text := "[source,go]\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"source,go"}, spanTexts(result, text, CategoryAttributeValue))
}

func TestClassify_BlockTitle(t *testing.T) {
	text := ".A block title\nparagraph\n"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"A block title"}, spanTexts(result, text, CategoryBlockTitle))
}

func TestClassify_BlockMacro(t *testing.T) {
	text := "image::logo.png[Logo]\n"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"image"}, spanTexts(result, text, CategoryMacro))
	assert.Equal(t, []string{"logo.png"}, spanTexts(result, text, CategorySecondaryText))
	assert.Equal(t, []string{"Logo"}, spanTexts(result, text, CategoryAttributeValue))
}

// ==================== Inline Substitutions ====================

func TestClassify_PassthroughContentIsExempt(t *testing.T) {
	text := "a +++*raw*+++ b"
	result := mustClassify(t, text)

	assert.Equal(t, []string{"*raw*"}, spanTexts(result, text, CategoryPassthrough))
	assert.Empty(t, spansOf(result, CategoryStrong))
}

func TestClassify_AttributeReference(t *testing.T) {
	text := "version {version} here"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"version"}, spanTexts(result, text, CategoryReference))
}

func TestClassify_InlineMacro(t *testing.T) {
	text := "press kbd:[F5] now"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"kbd:"}, spanTexts(result, text, CategoryMacro))
	assert.Equal(t, []string{"F5"}, spanTexts(result, text, CategorySecondaryText))
}

func TestClassify_BareURL(t *testing.T) {
	text := "see https://example.com/docs now"
	result := mustClassify(t, text)
	assert.Contains(t, spanTexts(result, text, CategoryReference), "https://example.com/docs")
}

func TestClassify_Replacements(t *testing.T) {
	text := "a -- b (C) c -> d"
	result := mustClassify(t, text)
	assert.ElementsMatch(t, []string{"--", "(C)", "->"},
		spanTexts(result, text, CategoryReplacement))
}

func TestClassify_ApostropheSecondPass(t *testing.T) {
	text := "don't stop"
	result := mustClassify(t, text)
	assert.Equal(t, []string{"'"}, spanTexts(result, text, CategoryReplacement))
}

func TestClassify_SpecialWords(t *testing.T) {
	cfg := DefaultGrammar()
	cfg.SpecialWords = []string{"FIXME"}
	c, err := NewClassifier(cfg)
	require.NoError(t, err)

	text := "a FIXME b"
	result, err := c.Classify(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"FIXME"}, spanTexts(result, text, CategorySecondaryText))
}

// ==================== Region Scoping ====================

func TestClassifyRegion_BoundedRegionOnly(t *testing.T) {
	text := "== One\npara\n== Two\n"
	c, err := NewClassifier(DefaultGrammar())
	require.NoError(t, err)

	result, err := c.ClassifyRegion(text, Span{Start: 0, End: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"One"}, spanTexts(result, text, CategoryTitle1))
	for _, s := range result.Spans {
		assert.LessOrEqual(t, s.Span.End, 7)
	}
}

func TestClassify_CategoryAt(t *testing.T) {
	text := "* item\n"
	result := mustClassify(t, text)

	assert.Equal(t, CategoryListMarker, result.CategoryAt(0))
	assert.Equal(t, CategoryNone, result.CategoryAt(3))
}
