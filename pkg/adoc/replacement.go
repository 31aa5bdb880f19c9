// replacement.go resolves replacement text for the categories a presentation
// layer may substitute: typographic marks, arrows, and numeric or named
// character references. Resolution is pure; the named-entity variant depends
// on an injected resolver that may be absent.
package adoc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Resolver maps a character entity name to its codepoint. A nil resolver is
// valid and resolves nothing.
type Resolver func(name string) (rune, bool)

// fixed typographic substitutions, matched literally.
var typographic = map[string]string{
	"(C)":  "©",
	"(R)":  "®",
	"(TM)": "™",
	"--":   "—",
	"...":  "…",
	"->":   "→",
	"=>":   "⇒",
	"<-":   "←",
	"<=":   "⇐",
	"'":    "’",
}

// ResolveReplacement returns the substitution text for a span matched by a
// replacement rule. ok is false when no substitution exists: unknown named
// entity, absent resolver, or an invalid codepoint. The match stays tagged
// either way; the caller falls back to the literal source text.
func ResolveReplacement(matched string, resolver Resolver) (string, bool) {
	if s, ok := typographic[matched]; ok {
		return s, true
	}

	if strings.HasPrefix(matched, "&#") && strings.HasSuffix(matched, ";") {
		body := matched[2 : len(matched)-1]
		base := 10
		if len(body) > 1 && (body[0] == 'x' || body[0] == 'X') {
			base = 16
			body = body[1:]
		}
		n, err := strconv.ParseInt(body, base, 32)
		if err != nil || !utf8.ValidRune(rune(n)) || n == 0 {
			return "", false
		}
		return string(rune(n)), true
	}

	if strings.HasPrefix(matched, "&") && strings.HasSuffix(matched, ";") {
		if resolver == nil {
			return "", false
		}
		r, ok := resolver(matched[1 : len(matched)-1])
		if !ok || !utf8.ValidRune(r) {
			return "", false
		}
		return string(r), true
	}

	return "", false
}

// BuiltinEntities is a small name-to-codepoint table covering the entities
// the CLI resolves without an external table. Callers may layer their own
// names over it with MapResolver.
var BuiltinEntities = map[string]rune{
	"amp":    '&',
	"lt":     '<',
	"gt":     '>',
	"quot":   '"',
	"apos":   '\'',
	"nbsp":   ' ',
	"copy":   '©',
	"reg":    '®',
	"trade":  '™',
	"deg":    '°',
	"plusmn": '±',
	"ndash":  '–',
	"mdash":  '—',
	"hellip": '…',
	"larr":   '←',
	"rarr":   '→',
	"lArr":   '⇐',
	"rArr":   '⇒',
	"euro":   '€',
}

// MapResolver builds a Resolver over one or more name tables; later tables
// shadow earlier ones.
func MapResolver(tables ...map[string]rune) Resolver {
	return func(name string) (rune, bool) {
		var (
			r  rune
			ok bool
		)
		for _, t := range tables {
			if v, hit := t[name]; hit {
				r, ok = v, true
			}
		}
		return r, ok
	}
}
