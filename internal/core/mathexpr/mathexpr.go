// Package mathexpr turns loosely formatted human or OCR math input into a
// canonical expression string.
// Pipeline order
// 1 Canonicalize digits and glyphs, strip format controls
// 2 Rewrite vocabulary, degrees, bars and implicit multiplication
// 3 Sanitize against the character allow-list
// The full pipeline is idempotent: normalizing an already canonical string
// returns it unchanged
package mathexpr

import (
	"strings"

	"mathgate/internal/core/rulepack"
)

// Warning flags input the rewriter could not safely disambiguate; the text
// passes through unchanged rather than being silently "fixed"
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarnUnbalancedBars is the code for an odd number of absolute value bars
const WarnUnbalancedBars = "unbalanced_abs_bars"

// Pipeline composes the three stages over a loaded rule pack
type Pipeline struct {
	rw *Rewriter
}

// NewPipeline builds a Pipeline over the pack's vocabulary
func NewPipeline(p *rulepack.Pack) *Pipeline {
	return &Pipeline{rw: NewRewriter(p)}
}

// Normalize runs Canonicalize, Rewrite, Sanitize in order and reports any
// soft warnings. An empty result means no usable input
func (p *Pipeline) Normalize(raw string, mode AngleMode) (string, []Warning) {
	s := Canonicalize(raw)
	s = p.rw.Rewrite(s, mode)

	var warns []Warning
	if strings.Count(s, "|")%2 == 1 {
		warns = append(warns, Warning{
			Code:    WarnUnbalancedBars,
			Message: "unbalanced absolute value bars were left as-is",
		})
	}

	return Sanitize(s), warns
}
