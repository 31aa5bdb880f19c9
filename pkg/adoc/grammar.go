// grammar.go defines the immutable grammar configuration consumed by the
// pattern library. The rule table is rebuilt whenever the configuration
// changes; nothing in this package mutates shared state.
package adoc

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is reported by pattern constructors for malformed
// construct parameters: wrong delimiter lengths, unsupported nesting levels,
// contradictory level/sub-type combinations. It is raised at construction
// time, never at match time.
var ErrInvalidParameter = errors.New("invalid parameter")

// GrammarConfig carries every tunable the pattern library accepts.
// A zero value is not usable; start from DefaultGrammar.
type GrammarConfig struct {
	// TitleMaxLevel is the deepest title level (0-based, inclusive).
	TitleMaxLevel int

	// TwoLineUnderlines holds one 2-character underline unit per title
	// level. The underline of a two-line title is built by repeating the
	// unit; its first character alone may terminate an odd-length run.
	TwoLineUnderlines []string

	// UnderlineDiffThreshold suppresses two-line title classification when
	// the underline length differs from the title text length by this many
	// bytes or more. The historic default is 3; it is a tuning heuristic,
	// not a derived constant, so it stays configurable.
	UnderlineDiffThreshold int

	// UnderlineDisableLength, when non-zero, suppresses two-line title
	// classification for underlines of exactly this length regardless of
	// the difference check.
	UnderlineDisableLength int

	// SpecialWords is an optional list of words highlighted by the
	// special-word rule. Empty by default, which disables the rule.
	SpecialWords []string
}

// DefaultGrammar returns the stock AsciiDoc grammar configuration.
func DefaultGrammar() GrammarConfig {
	return GrammarConfig{
		TitleMaxLevel:          4,
		TwoLineUnderlines:      []string{"==", "--", "~~", "^^", "++"},
		UnderlineDiffThreshold: 3,
		UnderlineDisableLength: 0,
	}
}

// Validate checks the configuration for contradictions. All failures wrap
// ErrInvalidParameter.
func (g GrammarConfig) Validate() error {
	if g.TitleMaxLevel < 0 || g.TitleMaxLevel > 4 {
		return fmt.Errorf("%w: title max level %d outside 0..4", ErrInvalidParameter, g.TitleMaxLevel)
	}
	if len(g.TwoLineUnderlines) < g.TitleMaxLevel+1 {
		return fmt.Errorf("%w: %d two-line underlines for %d title levels",
			ErrInvalidParameter, len(g.TwoLineUnderlines), g.TitleMaxLevel+1)
	}
	for i, u := range g.TwoLineUnderlines {
		if len(u) != 2 {
			return fmt.Errorf("%w: two-line underline %q for level %d is not exactly 2 characters",
				ErrInvalidParameter, u, i)
		}
	}
	if g.UnderlineDiffThreshold < 1 {
		return fmt.Errorf("%w: underline diff threshold %d must be at least 1",
			ErrInvalidParameter, g.UnderlineDiffThreshold)
	}
	if g.UnderlineDisableLength < 0 {
		return fmt.Errorf("%w: underline disable length %d is negative",
			ErrInvalidParameter, g.UnderlineDisableLength)
	}
	return nil
}
