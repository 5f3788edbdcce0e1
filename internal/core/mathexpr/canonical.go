package mathexpr

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// arabicZero anchors the positional digit lookup for U+0660..U+0669
const arabicZero = '٠'

// glyphs maps typographic operator glyphs to their ASCII form
// multi-rune outputs (sqrt, pi) are literal solver tokens
var glyphs = map[rune]string{
	'×': "*", // multiplication sign
	'·': "*", // middle dot
	'•': "*", // bullet
	'÷': "/", // division sign
	'−': "-", // minus sign
	'–': "-", // en dash
	'—': "-", // em dash
	'√': "sqrt",
	'π': "pi",
	'،': ",", // arabic comma
	'؛': ";", // arabic semicolon
}

// pool of fresh Cf strippers; bidi marks and other format controls are
// invisible but break downstream matching if left in
var cfStripPool = sync.Pool{
	New: func() any {
		return runes.Remove(runes.In(unicode.Cf))
	},
}

// Canonicalize maps Arabic-Indic digits and typographic glyphs to ASCII and
// strips format control characters. It never errors; empty in, empty out
func Canonicalize(raw string) string {
	if raw == "" {
		return ""
	}

	raw = strings.ToValidUTF8(raw, "")

	tr := cfStripPool.Get().(transform.Transformer)
	s, _, _ := transform.String(tr, raw)
	tr.Reset()
	cfStripPool.Put(tr)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= arabicZero && r <= arabicZero+9:
			b.WriteByte(byte('0' + (r - arabicZero)))
		default:
			if rep, ok := glyphs[r]; ok {
				b.WriteString(rep)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
