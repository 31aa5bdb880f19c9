// pattern.go defines the pattern descriptor produced by the pattern library:
// a compiled regular expression, a map from capture-group index to semantic
// role, and an optional guard for predicates a regular expression cannot
// express (the two-line underline length heuristic). Descriptors are
// immutable once constructed.
package adoc

import (
	"fmt"
	"regexp"
)

// GuardFunc is an extra acceptance predicate evaluated against a candidate
// match. m is the submatch index slice in absolute buffer offsets. A guard
// returning false rejects the candidate exactly like a reservation conflict.
type GuardFunc func(text string, m []int) bool

// Pattern is an immutable pattern descriptor.
type Pattern struct {
	re    *regexp.Regexp
	roles map[int]Role
	guard GuardFunc
}

// trailing whitespace then newline or end of text; used by every
// line-oriented pattern so that "$" semantics never depend on regexp flags.
const eol = `[ \t]*(?:\n|\z)`

// newPattern compiles expr and attaches group roles. Group indices in roles
// must exist in the expression; a violation is a programming error in the
// pattern library and reported as ErrInvalidParameter.
func newPattern(expr string, roles map[int]Role) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	for idx := range roles {
		if idx < 0 || idx > re.NumSubexp() {
			return nil, fmt.Errorf("%w: group %d not present in pattern %q",
				ErrInvalidParameter, idx, expr)
		}
	}
	return &Pattern{re: re, roles: roles}, nil
}

// mustPattern is newPattern for expressions the library itself controls
// completely; a failure here is a defect, not a configuration error.
func mustPattern(expr string, roles map[int]Role) *Pattern {
	p, err := newPattern(expr, roles)
	if err != nil {
		panic(err)
	}
	return p
}

// RoleOf returns the semantic role of a capture group, defaulting to RoleText
// for groups without an explicit assignment.
func (p *Pattern) RoleOf(group int) Role {
	if r, ok := p.roles[group]; ok {
		return r
	}
	return RoleText
}

// NumGroups returns the number of capture groups in the expression.
func (p *Pattern) NumGroups() int { return p.re.NumSubexp() }

// String returns the underlying expression source.
func (p *Pattern) String() string { return p.re.String() }

// find runs the expression over text[from:bound] and returns the submatch
// index slice shifted to absolute offsets, or nil.
func (p *Pattern) find(text string, from, bound int) []int {
	if from > bound {
		return nil
	}
	m := p.re.FindStringSubmatchIndex(text[from:bound])
	if m == nil {
		return nil
	}
	out := make([]int, len(m))
	for i, v := range m {
		if v < 0 {
			out[i] = -1
			continue
		}
		out[i] = v + from
	}
	return out
}

// group returns the span of capture group i within an absolute submatch index
// slice, and whether the group participated in the match.
func group(m []int, i int) (Span, bool) {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return Span{}, false
	}
	return Span{Start: m[2*i], End: m[2*i+1]}, true
}
