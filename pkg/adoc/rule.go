// rule.go defines classification rules and assembles the ordered rule table.
// Table order encodes precedence: document structure, then block macros,
// lists, delimited blocks, tables, attribute entries and lists, block title,
// paragraphs, and finally the inline substitutions in their fixed sub-order.
package adoc

// TagAssignment writes a reservation tag over one capture group on match
// acceptance.
type TagAssignment struct {
	Group int
	Tag   Tag
}

// CategoryAssignment emits a classified span for one capture group on match
// acceptance.
type CategoryAssignment struct {
	Group    int
	Category Category
}

// Rule is one entry of the rule table.
type Rule struct {
	// Name identifies the rule in diagnostics and tests.
	Name string

	Pattern *Pattern

	// LineAnchored patterns are tried at line starts only; their
	// expressions are anchored with \A.
	LineAnchored bool

	// LeftBoundary requires the byte preceding the match to be a
	// non-word character; the region start counts as a boundary.
	// Constrained quotes use it in place of lookbehind.
	LeftBoundary bool

	// MustBeFree lists groups that must be entirely Free for acceptance.
	MustBeFree []int

	// MustNotBeBlockDelimiter lists groups that must not overlap any
	// position tagged BlockDelimiter.
	MustNotBeBlockDelimiter []int

	Tags       []TagAssignment
	Categories []CategoryAssignment
}

// buildRules assembles the full rule table for a grammar configuration.
func buildRules(cfg GrammarConfig) ([]Rule, error) {
	var rules []Rule
	add := func(r Rule, err error) error {
		if err != nil {
			return err
		}
		rules = append(rules, r)
		return nil
	}

	// Document structure: one-line titles before two-line titles, so a
	// marker line followed by an underline-looking line resolves to the
	// one-line form.
	for level := 0; level <= cfg.TitleMaxLevel; level++ {
		p, err := OneLineTitlePattern(cfg, level)
		if err := add(Rule{
			Name:         "title-oneline",
			Pattern:      p,
			LineAnchored: true,
			MustBeFree:   []int{0},
			Tags: []TagAssignment{
				{Group: 1, Tag: TagBlockDelimiter},
				{Group: 3, Tag: TagBlockDelimiter},
			},
			Categories: []CategoryAssignment{
				{Group: 1, Category: CategoryDelimiter},
				{Group: 2, Category: TitleCategory(level)},
				{Group: 3, Category: CategoryDelimiter},
			},
		}, err); err != nil {
			return nil, err
		}
	}
	for level := 0; level <= cfg.TitleMaxLevel; level++ {
		p, err := TwoLineTitlePattern(cfg, level)
		if err := add(Rule{
			Name:         "title-twoline",
			Pattern:      p,
			LineAnchored: true,
			MustBeFree:   []int{0},
			Tags: []TagAssignment{
				{Group: 1, Tag: TagOther},
				{Group: 2, Tag: TagBlockDelimiter},
			},
			Categories: []CategoryAssignment{
				{Group: 1, Category: TitleCategory(level)},
				{Group: 2, Category: CategoryDelimiter},
			},
		}, err); err != nil {
			return nil, err
		}
	}

	// Block macros.
	rules = append(rules, Rule{
		Name:         "block-macro",
		Pattern:      blockMacroPattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags:         []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryMacro},
			{Group: 2, Category: CategorySecondaryText},
			{Group: 3, Category: CategoryAttributeValue},
		},
	})

	// Lists. Deeper variants first so a longer marker run is never split.
	rules = append(rules, Rule{
		Name:         "list-callout",
		Pattern:      mustList(ListCallout, 1),
		LineAnchored: true,
		MustBeFree:   []int{1},
		Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryListMarker}},
	})
	for level := len(labeledDelimiters); level >= 1; level-- {
		rules = append(rules, Rule{
			Name:         "list-labeled",
			Pattern:      mustList(ListLabeled, level),
			LineAnchored: true,
			MustBeFree:   []int{1, 2},
			Tags:         []TagAssignment{{Group: 2, Tag: TagBlockDelimiter}},
			Categories: []CategoryAssignment{
				{Group: 1, Category: CategorySecondaryText},
				{Group: 2, Category: CategoryListMarker},
			},
		})
	}
	for level := maxListLevel; level >= 1; level-- {
		rules = append(rules, Rule{
			Name:         "list-ordered",
			Pattern:      mustList(ListOrderedExplicit, level),
			LineAnchored: true,
			MustBeFree:   []int{1},
			Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
			Categories:   []CategoryAssignment{{Group: 1, Category: CategoryListMarker}},
		})
	}
	rules = append(rules, Rule{
		Name:         "list-numbered",
		Pattern:      mustList(ListOrderedImplicit, 1),
		LineAnchored: true,
		MustBeFree:   []int{1},
		Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryListMarker}},
	})
	for level := maxListLevel; level >= 1; level-- {
		rules = append(rules, Rule{
			Name:         "list-unordered",
			Pattern:      mustList(ListUnordered, level),
			LineAnchored: true,
			MustBeFree:   []int{1},
			Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
			Categories:   []CategoryAssignment{{Group: 1, Category: CategoryListMarker}},
		})
	}

	// Delimited blocks. Bodies of verbatim kinds are reserved so inline
	// rules never re-interpret them; container kinds leave their bodies
	// free for later rules.
	type blockSpec struct {
		kind    BlockKind
		bodyCat Category
		bodyTag bool
	}
	for _, b := range []blockSpec{
		{BlockComment, CategoryComment, true},
		{BlockPassthrough, CategoryPassthrough, true},
		{BlockListing, CategoryMonospace, true},
		{BlockLiteral, CategoryMonospace, true},
		{BlockQuote, CategoryNone, false},
		{BlockExample, CategoryNone, false},
		{BlockSidebar, CategoryNone, false},
		{BlockOpen, CategoryNone, false},
	} {
		p, err := DelimitedBlockPattern(b.kind)
		if err != nil {
			return nil, err
		}
		r := Rule{
			Name:         "block-" + b.kind.String(),
			Pattern:      p,
			LineAnchored: true,
			MustBeFree:   []int{1, 3},
			Tags: []TagAssignment{
				{Group: 1, Tag: TagBlockDelimiter},
				{Group: 3, Tag: TagBlockDelimiter},
			},
			Categories: []CategoryAssignment{
				{Group: 1, Category: CategoryDelimiter},
				{Group: 3, Category: CategoryDelimiter},
			},
		}
		if b.bodyTag {
			r.Tags = append(r.Tags, TagAssignment{Group: 2, Tag: TagOther})
			r.Categories = append(r.Categories, CategoryAssignment{Group: 2, Category: b.bodyCat})
		}
		rules = append(rules, r)
	}

	// Unpaired delimiter lines still render as delimiters.
	rules = append(rules, Rule{
		Name:         "delimiter-line",
		Pattern:      delimiterLineFallbackPattern(),
		LineAnchored: true,
		MustBeFree:   []int{1},
		Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryDelimiter}},
	})

	// Comment lines. The paired comment block outranks these, so a //// run
	// inside a balanced block is already claimed by the time this rule runs.
	rules = append(rules, Rule{
		Name:         "comment-line",
		Pattern:      commentLinePattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags:         []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryComment}},
	})

	// Tables.
	rules = append(rules, Rule{
		Name:         "table-delimiter",
		Pattern:      tableDelimiterPattern(),
		LineAnchored: true,
		MustBeFree:   []int{1},
		Tags:         []TagAssignment{{Group: 1, Tag: TagBlockDelimiter}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryTableMarker}},
	})
	rules = append(rules, Rule{
		Name:         "table-row",
		Pattern:      tableRowPattern(),
		LineAnchored: true,
		MustBeFree:   []int{1},
		Tags:         []TagAssignment{{Group: 1, Tag: TagOther}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryTableMarker}},
	})

	// Attribute entries and lists.
	rules = append(rules, Rule{
		Name:         "attribute-entry",
		Pattern:      attributeEntryPattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags: []TagAssignment{
			{Group: 1, Tag: TagOther},
			{Group: 2, Tag: TagOther},
			{Group: 3, Tag: TagOther},
		},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryAttributeName},
			{Group: 3, Category: CategoryDelimiter},
			{Group: 4, Category: CategoryAttributeValue},
		},
	})
	rules = append(rules, Rule{
		Name:         "attribute-list",
		Pattern:      attributeListPattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags:         []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryAttributeValue},
			{Group: 3, Category: CategoryDelimiter},
		},
	})

	// Block title.
	rules = append(rules, Rule{
		Name:         "block-title",
		Pattern:      blockTitlePattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags:         []TagAssignment{{Group: 1, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryBlockTitle},
		},
	})

	// Paragraphs.
	rules = append(rules, Rule{
		Name:         "admonition",
		Pattern:      admonitionPattern(),
		LineAnchored: true,
		MustBeFree:   []int{1, 2},
		Tags: []TagAssignment{
			{Group: 1, Tag: TagOther},
			{Group: 2, Tag: TagOther},
		},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategorySecondaryText},
			{Group: 2, Category: CategoryDelimiter},
		},
	})
	rules = append(rules, Rule{
		Name:         "literal-paragraph",
		Pattern:      literalParagraphPattern(),
		LineAnchored: true,
		MustBeFree:   []int{0},
		Tags:         []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories:   []CategoryAssignment{{Group: 1, Category: CategoryMonospace}},
	})

	// Inline substitutions. Passthrough first: its content is exempt from
	// every later rule.
	for _, p := range inlinePassthroughPatterns() {
		rules = append(rules, Rule{
			Name:                    "passthrough",
			Pattern:                 p,
			MustBeFree:              []int{1, 2, 3},
			MustNotBeBlockDelimiter: []int{2},
			Tags: []TagAssignment{
				{Group: 1, Tag: TagOther},
				{Group: 2, Tag: TagOther},
				{Group: 3, Tag: TagOther},
			},
			Categories: []CategoryAssignment{
				{Group: 1, Category: CategoryDelimiter},
				{Group: 2, Category: CategoryPassthrough},
				{Group: 3, Category: CategoryDelimiter},
			},
		})
	}

	// Quotes.
	for _, spec := range DefaultQuotes() {
		p, err := QuotePattern(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{
			Name:                    "quote-" + spec.Delimiter,
			Pattern:                 p,
			LeftBoundary:            spec.Constrained,
			MustBeFree:              []int{1, 3},
			MustNotBeBlockDelimiter: []int{2},
			Tags: []TagAssignment{
				{Group: 1, Tag: TagOther},
				{Group: 3, Tag: TagOther},
			},
			Categories: []CategoryAssignment{
				{Group: 1, Category: CategoryDelimiter},
				{Group: 2, Category: spec.Category},
				{Group: 3, Category: CategoryDelimiter},
			},
		})
	}

	// Special words, empty by default.
	if len(cfg.SpecialWords) > 0 {
		p, err := SpecialWordsPattern(cfg.SpecialWords)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{
			Name:       "special-words",
			Pattern:    p,
			MustBeFree: []int{1},
			Tags:       []TagAssignment{{Group: 1, Tag: TagOther}},
			Categories: []CategoryAssignment{{Group: 1, Category: CategorySecondaryText}},
		})
	}

	// First replacement pass.
	rules = append(rules, Rule{
		Name:       "replacement",
		Pattern:    replacementPattern(),
		MustBeFree: []int{1},
		Tags:       []TagAssignment{{Group: 1, Tag: TagOther}},
		Categories: []CategoryAssignment{{Group: 1, Category: CategoryReplacement}},
	})

	// Attribute references.
	rules = append(rules, Rule{
		Name:       "attribute-reference",
		Pattern:    attributeReferencePattern(),
		MustBeFree: []int{1, 2, 3},
		Tags: []TagAssignment{
			{Group: 1, Tag: TagOther},
			{Group: 2, Tag: TagOther},
			{Group: 3, Tag: TagOther},
		},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryReference},
			{Group: 3, Category: CategoryDelimiter},
		},
	})

	// Inline macros.
	rules = append(rules, Rule{
		Name:       "anchor",
		Pattern:    anchorPattern(),
		MustBeFree: []int{0},
		Tags:       []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryAnchor},
			{Group: 3, Category: CategorySecondaryText},
			{Group: 4, Category: CategoryDelimiter},
		},
	})
	rules = append(rules, Rule{
		Name:       "xref",
		Pattern:    xrefPattern(),
		MustBeFree: []int{0},
		Tags:       []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryReference},
			{Group: 3, Category: CategorySecondaryText},
			{Group: 4, Category: CategoryDelimiter},
		},
	})
	rules = append(rules, Rule{
		Name:       "inline-macro",
		Pattern:    inlineMacroPattern(),
		MustBeFree: []int{1, 3, 5},
		Tags: []TagAssignment{
			{Group: 1, Tag: TagOther},
			{Group: 2, Tag: TagOther},
			{Group: 3, Tag: TagOther},
			{Group: 5, Tag: TagOther},
		},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryMacro},
			{Group: 2, Category: CategoryReference},
			{Group: 3, Category: CategoryDelimiter},
			{Group: 4, Category: CategorySecondaryText},
			{Group: 5, Category: CategoryDelimiter},
		},
	})
	rules = append(rules, Rule{
		Name:       "url",
		Pattern:    urlPattern(),
		MustBeFree: []int{1},
		Tags:       []TagAssignment{{Group: 1, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryReference},
			{Group: 2, Category: CategoryDelimiter},
			{Group: 3, Category: CategorySecondaryText},
			{Group: 4, Category: CategoryDelimiter},
		},
	})
	rules = append(rules, Rule{
		Name:       "index-term",
		Pattern:    indexTermPattern(),
		MustBeFree: []int{0},
		Tags:       []TagAssignment{{Group: 0, Tag: TagOther}},
		Categories: []CategoryAssignment{
			{Group: 1, Category: CategoryDelimiter},
			{Group: 2, Category: CategoryReference},
			{Group: 3, Category: CategoryDelimiter},
		},
	})

	// Second replacement pass.
	rules = append(rules, Rule{
		Name:       "apostrophe",
		Pattern:    apostrophePattern(),
		MustBeFree: []int{1},
		Tags:       []TagAssignment{{Group: 1, Tag: TagOther}},
		Categories: []CategoryAssignment{{Group: 1, Category: CategoryReplacement}},
	})

	return rules, nil
}

// mustList builds a list pattern for parameters the table itself controls.
func mustList(kind ListKind, level int) *Pattern {
	p, err := ListItemPattern(kind, level)
	if err != nil {
		panic(err)
	}
	return p
}
