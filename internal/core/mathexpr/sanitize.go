package mathexpr

import (
	"strings"
	"unicode"
)

// allowed is the punctuation side of the canonical allow-list; alphanumerics
// and whitespace are handled separately
const allowed = "+-*/^()[].,;=|_"

// Sanitize strips every rune outside the allow-list (each becomes a single
// space so adjacent tokens never fuse), collapses whitespace, trims, and
// tightens spaces just inside parentheses. Never fails; worst case is an
// empty string, which callers treat as no input
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case strings.ContainsRune(allowed, r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			b.WriteByte(' ')
		}
	}

	out := strings.Join(strings.Fields(b.String()), " ")
	out = strings.ReplaceAll(out, "( ", "(")
	out = strings.ReplaceAll(out, " )", ")")
	return out
}
