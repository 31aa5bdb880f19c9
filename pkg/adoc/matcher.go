// matcher.go drives the rule table over a region: the bounded search loop
// with retry-on-conflict, and the classifier that owns the whole pass.
package adoc

import (
	"fmt"
	"strings"
)

// Match is one candidate occurrence of a rule's pattern.
type Match struct {
	Span     Span
	Groups   []Span // per capture group; absent groups have Start == End == -1
	Accepted bool
}

// ClassifiedSpan is one (span, category, role) triple emitted by a rule.
type ClassifiedSpan struct {
	Span     Span
	Category Category
	Role     Role
}

// Classification is the result of one pass over one region: the emitted
// spans in rule order plus the final reservation tag array, indexed from
// Region.Start. The tag array is a copy; the tracker itself is discarded
// when the pass completes.
type Classification struct {
	Region Span
	Spans  []ClassifiedSpan
	Tags   []Tag
}

// Classifier applies an ordered rule table built from one grammar
// configuration. Build a new classifier when the configuration changes.
// A classifier is safe to share across goroutines only because each pass
// owns its tracker; concurrent passes must cover non-overlapping regions.
type Classifier struct {
	cfg   GrammarConfig
	rules []Rule
}

// NewClassifier validates the configuration and builds the rule table.
func NewClassifier(cfg GrammarConfig) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := buildRules(cfg)
	if err != nil {
		return nil, err
	}
	return &Classifier{cfg: cfg, rules: rules}, nil
}

// Grammar returns the configuration the classifier was built from.
func (c *Classifier) Grammar() GrammarConfig { return c.cfg }

// RuleNames returns the rule table's names in priority order.
func (c *Classifier) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// Classify runs one pass over the whole buffer.
func (c *Classifier) Classify(text string) (*Classification, error) {
	return c.ClassifyRegion(text, Span{Start: 0, End: len(text)})
}

// ClassifyRegion runs one pass over region: every rule in priority order,
// each a finite scan, then the cleanup pass. There is no backtracking across
// rules; once a rule's scan finishes its reservations are final.
func (c *Classifier) ClassifyRegion(text string, region Span) (*Classification, error) {
	if region.Start < 0 || region.End > len(text) || region.Start > region.End {
		return nil, fmt.Errorf("region [%d,%d) outside buffer of %d bytes",
			region.Start, region.End, len(text))
	}

	tracker := NewTracker(region)
	result := &Classification{Region: region}

	for i := range c.rules {
		rule := &c.rules[i]
		matches := c.runRule(rule, text, region, tracker)
		for _, m := range matches {
			for _, ca := range rule.Categories {
				sp := m.Groups[ca.Group]
				if sp.Start < 0 || sp.Empty() {
					continue
				}
				result.Spans = append(result.Spans, ClassifiedSpan{
					Span:     sp,
					Category: ca.Category,
					Role:     rule.Pattern.RoleOf(ca.Group),
				})
			}
		}
	}

	result.Tags = tracker.Snapshot()
	result.Cleanup()
	return result, nil
}

// runRule scans one rule over the region. The cursor starts at the region
// start; every iteration either accepts the next match and jumps past it, or
// rejects it and advances exactly one byte past the previous start of search.
// The one-byte backoff lets the rule still find a later, non-conflicting
// occurrence instead of giving up on the whole region after one conflict,
// and bounds the loop at region length + 1 iterations. Zero-length matches
// force a one-byte advance even on acceptance.
func (c *Classifier) runRule(rule *Rule, text string, region Span, tracker *Tracker) []Match {
	var out []Match
	cursor := region.Start
	for cursor <= region.End {
		m := rule.find(text, cursor, region)
		if m == nil {
			break
		}
		if !rule.accepts(text, m, tracker) {
			cursor++
			continue
		}
		match := Match{Span: Span{Start: m[0], End: m[1]}, Accepted: true}
		match.Groups = make([]Span, rule.Pattern.NumGroups()+1)
		for g := range match.Groups {
			sp, ok := group(m, g)
			if !ok {
				sp = Span{Start: -1, End: -1}
			}
			match.Groups[g] = sp
		}
		for _, ta := range rule.Tags {
			sp := match.Groups[ta.Group]
			if sp.Start >= 0 {
				tracker.Apply(sp, ta.Tag)
			}
		}
		out = append(out, match)
		next := match.Span.End
		if next <= cursor {
			next = cursor + 1
		}
		cursor = next
	}
	return out
}

// accepts evaluates the rule's boundary, guard and reservation checks
// against a candidate match. Checks run before any tag is written.
func (r *Rule) accepts(text string, m []int, tracker *Tracker) bool {
	if r.LeftBoundary && m[0] > tracker.Region().Start && isWordByte(text[m[0]-1]) {
		return false
	}
	if r.Pattern.guard != nil && !r.Pattern.guard(text, m) {
		return false
	}
	for _, g := range r.MustBeFree {
		sp, ok := group(m, g)
		if !ok {
			continue
		}
		if !tracker.IsFree(sp) {
			return false
		}
	}
	for _, g := range r.MustNotBeBlockDelimiter {
		sp, ok := group(m, g)
		if !ok {
			continue
		}
		if tracker.OverlapsBlockDelimiter(sp) {
			return false
		}
	}
	return true
}

// find locates the leftmost candidate at or after from, bounded by the
// region end. Line-anchored rules are tried at successive line starts; the
// region start always counts as one.
func (r *Rule) find(text string, from int, region Span) []int {
	if r.LineAnchored {
		for ls := lineStartAtOrAfter(text, from, region.Start); ls >= 0 && ls <= region.End; ls = nextLineStart(text, ls, region.End) {
			if m := r.Pattern.find(text, ls, region.End); m != nil {
				return m
			}
		}
		return nil
	}
	return r.Pattern.find(text, from, region.End)
}

// isWordByte reports whether b belongs to the \w class.
func isWordByte(b byte) bool {
	return b == '_' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9'
}

// lineStartAtOrAfter returns the first line start at or after pos. The
// region start is treated as a line start; callers pass line-bounded regions.
func lineStartAtOrAfter(text string, pos, regionStart int) int {
	if pos <= regionStart {
		return regionStart
	}
	if text[pos-1] == '\n' {
		return pos
	}
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return -1
}

// nextLineStart returns the line start following ls, or -1 past the bound.
func nextLineStart(text string, ls, bound int) int {
	if ls >= bound {
		return -1
	}
	if i := strings.IndexByte(text[ls:bound], '\n'); i >= 0 {
		return ls + i + 1
	}
	return -1
}

// CategoryAt returns the rendering category for one position: structural
// categories win; otherwise the last-assigned category is reported.
func (c *Classification) CategoryAt(pos int) Category {
	result := CategoryNone
	for _, s := range c.Spans {
		if !s.Span.Contains(pos) {
			continue
		}
		if s.Category.Structural() {
			return s.Category
		}
		result = s.Category
	}
	return result
}
